package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/shule/core/grade"
)

type gradeRepository struct {
	db *gradeTable
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *DB) *gradeRepository {
	return &gradeRepository{db: db.grade}
}

func (repo *gradeRepository) UpsertGrade(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, existing := range repo.db.table {
		if existing.StudentID == g.StudentID && existing.AssignmentID == g.AssignmentID {
			existing.Grade = g.Grade
			return *existing, nil
		}
	}
	g.ID = uuid.New().String()
	repo.db.table[g.ID] = &g
	return g, nil
}

func (repo *gradeRepository) FilterGradesByAssignmentIDs(ctx context.Context, assignmentIDs []string) ([]grade.Grade, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	ids := make(map[string]struct{}, len(assignmentIDs))
	for _, id := range assignmentIDs {
		ids[id] = struct{}{}
	}

	grades := make([]grade.Grade, 0)
	for _, g := range repo.db.table {
		if _, ok := ids[g.AssignmentID]; ok {
			grades = append(grades, *g)
		}
	}
	return grades, nil
}
