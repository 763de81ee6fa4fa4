package class

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("class not found")

type (
	Repository interface {
		CreateClass(ctx context.Context, cls Class) (Class, error)
		QueryAllClasses(ctx context.Context) ([]Class, error)
		GetClassByID(ctx context.Context, id string) (Class, error)
		// UpdateClass fully replaces the stored record; returns ErrNotFound
		// when no record matches.
		UpdateClass(ctx context.Context, cls Class) (Class, error)
		DeleteClass(ctx context.Context, id string) error
	}

	ServiceInterface interface {
		Create(ctx context.Context, nc NewClass) (Class, error)
		QueryAll(ctx context.Context) ([]Class, error)
		GetByID(ctx context.Context, id string) (Class, error)
		Update(ctx context.Context, id string, nc NewClass) (Class, error)
		Delete(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil) // interface compliance check

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewClass) (Class, error) {
	now := time.Now().UTC()
	cls := Class{
		Name:           nc.Name,
		Section:        nc.Section,
		ClassTeacher:   nc.ClassTeacher,
		MaleStudents:   nc.MaleStudentList(),
		FemaleStudents: nc.FemaleStudentList(),
		Monitor:        nc.Monitor,
		Description:    nc.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return svc.repo.CreateClass(ctx, cls)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Class, error) {
	return svc.repo.QueryAllClasses(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Class, error) {
	return svc.repo.GetClassByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, nc NewClass) (Class, error) {
	cls := Class{
		ID:             id,
		Name:           nc.Name,
		Section:        nc.Section,
		ClassTeacher:   nc.ClassTeacher,
		MaleStudents:   nc.MaleStudentList(),
		FemaleStudents: nc.FemaleStudentList(),
		Monitor:        nc.Monitor,
		Description:    nc.Description,
		UpdatedAt:      time.Now().UTC(),
	}
	return svc.repo.UpdateClass(ctx, cls)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteClass(ctx, id)
}
