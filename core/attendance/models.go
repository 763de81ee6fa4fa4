package attendance

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

// Statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

type Attendance struct {
	ID      string    `json:"_id" db:"id"`
	Grade   string    `json:"grade" db:"grade"`
	Section string    `json:"section" db:"section"`
	Date    time.Time `json:"date" db:"date"` // UTC
	// Statuses maps student names to their attendance status.
	Statuses  map[string]string `json:"attendance" db:"statuses"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"` // UTC
}

// NewAttendance contains information needed to record a class attendance take.
// Multiple takes per (grade, section, date) are allowed; records are never
// merged or deduplicated.
type NewAttendance struct {
	Grade    string            `json:"grade" validate:"required"`
	Section  string            `json:"section" validate:"required,section"`
	Date     string            `json:"date" validate:"required"`
	Statuses map[string]string `json:"attendance" validate:"required,min=1,dive,oneof=present absent late"`
}

func (na *NewAttendance) Validate(validate *validator.Validate) error {
	na.Grade = core.CleanString(na.Grade)
	na.Section = core.CleanString(na.Section)
	na.Date = core.CleanString(na.Date)

	if err := validate.Struct(na); err != nil {
		return err
	}
	if _, err := na.ParseDate(); err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "date", Error: "invalid date"})
	}
	return nil
}

// ParseDate accepts both RFC 3339 timestamps and plain "2006-01-02" dates.
func (na *NewAttendance) ParseDate() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, na.Date); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", na.Date)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
