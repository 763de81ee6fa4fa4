package sqlxrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/grade"
)

type gradeRepository struct {
	db core.DBExecutor
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *sqlx.DB) *gradeRepository {
	return &gradeRepository{db: db}
}

type gradeRow struct {
	ID           string  `db:"id"`
	StudentID    string  `db:"student_id"`
	AssignmentID string  `db:"assignment_id"`
	Grade        float64 `db:"grade"`
}

func (r gradeRow) toGrade() grade.Grade {
	return grade.Grade{
		ID:           r.ID,
		StudentID:    r.StudentID,
		AssignmentID: r.AssignmentID,
		Grade:        r.Grade,
	}
}

// UpsertGrade is atomic at the single-record level: the unique
// (student_id, assignment_id) constraint drives ON CONFLICT.
func (repo gradeRepository) UpsertGrade(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	var r gradeRow
	err := repo.db.GetContext(ctx, &r,
		`INSERT INTO grade (id, student_id, assignment_id, grade)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (student_id, assignment_id) DO UPDATE SET grade = EXCLUDED.grade
		 RETURNING *`,
		uuid.New().String(), g.StudentID, g.AssignmentID, g.Grade,
	)
	if err != nil {
		return grade.Grade{}, trapConnErr(err, "upserting grade")
	}
	return r.toGrade(), nil
}

func (repo gradeRepository) FilterGradesByAssignmentIDs(ctx context.Context, assignmentIDs []string) ([]grade.Grade, error) {
	if len(assignmentIDs) == 0 {
		return []grade.Grade{}, nil
	}
	var rows []gradeRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM grade WHERE assignment_id = ANY($1)`, pq.Array(assignmentIDs))
	if err != nil {
		return nil, trapConnErr(err, "filtering grades")
	}
	grades := make([]grade.Grade, 0, len(rows))
	for _, r := range rows {
		grades = append(grades, r.toGrade())
	}
	return grades, nil
}
