package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/assignment"
)

type assignmentRepository struct {
	db core.DBExecutor
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *sqlx.DB) *assignmentRepository {
	return &assignmentRepository{db: db}
}

type assignmentRow struct {
	ID          string    `db:"id"`
	Grade       string    `db:"grade"`
	Section     string    `db:"section"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     time.Time `db:"due_date"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r assignmentRow) toAssignment() assignment.Assignment {
	return assignment.Assignment{
		ID:          r.ID,
		Grade:       r.Grade,
		Section:     r.Section,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		CreatedAt:   r.CreatedAt,
	}
}

func (repo assignmentRepository) CreateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	asg.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO assignment (id, grade, section, title, description, due_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		asg.ID, asg.Grade, asg.Section, asg.Title, asg.Description, asg.DueDate, asg.CreatedAt,
	)
	if err != nil {
		return assignment.Assignment{}, trapConnErr(err, "inserting assignment")
	}
	return asg, nil
}

// earliest due date first
var assignmentOrdering = core.DBOrdering{Field: "due_date", Ascending: true}

func (repo assignmentRepository) FilterAssignments(ctx context.Context, grade, section string) ([]assignment.Assignment, error) {
	var rows []assignmentRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM assignment WHERE grade = $1 AND section = $2 ORDER BY `+assignmentOrdering.String(), grade, section)
	if err != nil {
		return nil, trapConnErr(err, "filtering assignments")
	}
	asgs := make([]assignment.Assignment, 0, len(rows))
	for _, r := range rows {
		asgs = append(asgs, r.toAssignment())
	}
	return asgs, nil
}
