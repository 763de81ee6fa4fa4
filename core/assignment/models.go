package assignment

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

type Assignment struct {
	ID          string    `json:"_id" db:"id"`
	Grade       string    `json:"grade" db:"grade"`
	Section     string    `json:"section" db:"section"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueDate     time.Time `json:"dueDate" db:"due_date"`     // UTC
	CreatedAt   time.Time `json:"createdAt" db:"created_at"` // UTC
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Grade       string `json:"grade" validate:"required"`
	Section     string `json:"section" validate:"required,section"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.Grade = core.CleanString(na.Grade)
	na.Section = core.CleanString(na.Section)
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	na.DueDate = core.CleanString(na.DueDate)

	if err := validate.Struct(na); err != nil {
		return err
	}
	if _, err := na.ParseDueDate(); err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "dueDate", Error: "invalid date"})
	}
	return nil
}

// ParseDueDate accepts both RFC 3339 timestamps and plain "2006-01-02" dates.
func (na *NewAssignment) ParseDueDate() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, na.DueDate); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", na.DueDate)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
