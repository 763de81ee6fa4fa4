package assignment

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		// FilterAssignments returns records matching grade and section,
		// ordered by ascending due date.
		FilterAssignments(ctx context.Context, grade, section string) ([]Assignment, error)
	}

	ServiceInterface interface {
		Create(ctx context.Context, na NewAssignment) (Assignment, error)
		Filter(ctx context.Context, grade, section string) ([]Assignment, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil) // interface compliance check

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, na NewAssignment) (Assignment, error) {
	due, err := na.ParseDueDate()
	if err != nil {
		return Assignment{}, err
	}
	asg := Assignment{
		Grade:       na.Grade,
		Section:     na.Section,
		Title:       na.Title,
		Description: na.Description,
		DueDate:     due,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateAssignment(ctx, asg)
}

func (svc *Service) Filter(ctx context.Context, grade, section string) ([]Assignment, error) {
	return svc.repo.FilterAssignments(ctx, grade, section)
}
