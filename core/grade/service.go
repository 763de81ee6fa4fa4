package grade

import (
	"context"

	"github.com/trezcool/shule/core/assignment"
)

type (
	Repository interface {
		// UpsertGrade creates the record if the (studentId, assignmentId)
		// pair is absent, else overwrites its grade.
		UpsertGrade(ctx context.Context, g Grade) (Grade, error)
		FilterGradesByAssignmentIDs(ctx context.Context, assignmentIDs []string) ([]Grade, error)
	}

	ServiceInterface interface {
		Upsert(ctx context.Context, ng NewGrade) (Grade, error)
		QueryNested(ctx context.Context, grade, section string) (NestedGrades, error)
	}

	Service struct {
		repo    Repository
		asgRepo assignment.Repository
	}
)

var _ ServiceInterface = (*Service)(nil) // interface compliance check

func NewService(repo Repository, asgRepo assignment.Repository) *Service {
	return &Service{repo: repo, asgRepo: asgRepo}
}

func (svc *Service) Upsert(ctx context.Context, ng NewGrade) (Grade, error) {
	g := Grade{
		StudentID:    ng.StudentID,
		AssignmentID: ng.AssignmentID,
		Grade:        ng.Grade,
	}
	return svc.repo.UpsertGrade(ctx, g)
}

// QueryNested resolves the Assignment ids for the given grade and section,
// gathers the matching Grade records and reshapes them into a two-level
// studentId -> assignmentId -> grade mapping.
func (svc *Service) QueryNested(ctx context.Context, grade, section string) (NestedGrades, error) {
	asgs, err := svc.asgRepo.FilterAssignments(ctx, grade, section)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(asgs))
	for _, asg := range asgs {
		ids = append(ids, asg.ID)
	}

	grades, err := svc.repo.FilterGradesByAssignmentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	nested := make(NestedGrades)
	for _, g := range grades {
		if _, ok := nested[g.StudentID]; !ok {
			nested[g.StudentID] = make(map[string]float64)
		}
		nested[g.StudentID][g.AssignmentID] = g.Grade
	}
	return nested, nil
}
