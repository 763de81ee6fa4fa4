package user

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")
)

type (
	Repository interface {
		CheckEmailUniqueness(ctx context.Context, email string) error
		CreateUser(ctx context.Context, usr User) (User, error)
		// FilterUsersByRole returns all users with the given role,
		// ordered by creation time.
		FilterUsersByRole(ctx context.Context, role string) ([]User, error)
		GetUserByEmail(ctx context.Context, email string) (User, error)
	}

	ServiceInterface interface {
		CheckEmailUniqueness(email string) error
		Create(ctx context.Context, nu NewUser) (User, error)
		QueryByRole(ctx context.Context, role string) ([]User, error)
		GetByEmail(ctx context.Context, email string) (User, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil) // interface compliance check

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckEmailUniqueness(email string) error {
	if err := svc.repo.CheckEmailUniqueness(context.Background(), email); err != nil {
		if errors.Cause(err) == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	usr := User{
		Name:      nu.Name,
		Role:      nu.Role,
		Email:     nu.Email,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *Service) QueryByRole(ctx context.Context, role string) ([]User, error) {
	return svc.repo.FilterUsersByRole(ctx, role)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return svc.repo.GetUserByEmail(ctx, core.CleanString(email, true /* lower */))
}
