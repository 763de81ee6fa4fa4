package attendance

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateAttendance(ctx context.Context, att Attendance) (Attendance, error)
		// FilterAttendance returns records matching grade and section,
		// newest date first.
		FilterAttendance(ctx context.Context, grade, section string) ([]Attendance, error)
	}

	ServiceInterface interface {
		Create(ctx context.Context, na NewAttendance) (Attendance, error)
		Filter(ctx context.Context, grade, section string) ([]Attendance, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil) // interface compliance check

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, na NewAttendance) (Attendance, error) {
	date, err := na.ParseDate()
	if err != nil {
		return Attendance{}, err
	}
	att := Attendance{
		Grade:     na.Grade,
		Section:   na.Section,
		Date:      date,
		Statuses:  na.Statuses,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateAttendance(ctx, att)
}

func (svc *Service) Filter(ctx context.Context, grade, section string) ([]Attendance, error) {
	return svc.repo.FilterAttendance(ctx, grade, section)
}
