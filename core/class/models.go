package class

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

type Class struct {
	ID             string    `json:"_id" db:"id"`
	Name           string    `json:"name" db:"name"`       // e.g., "Grade 6"
	Section        string    `json:"section" db:"section"` // e.g., "A"
	ClassTeacher   string    `json:"classTeacher" db:"class_teacher"`
	MaleStudents   []string  `json:"maleStudents" db:"male_students"`
	FemaleStudents []string  `json:"femaleStudents" db:"female_students"`
	Monitor        string    `json:"monitor" db:"monitor"`
	Description    string    `json:"description,omitempty" db:"description"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"` // UTC
}

// NewClass contains information needed to create or replace a Class.
// The client submits the student rosters as comma-separated strings;
// they are split and trimmed server-side.
type NewClass struct {
	Name           string `json:"name" validate:"required"`
	Section        string `json:"section" validate:"required,section"`
	ClassTeacher   string `json:"classTeacher" validate:"required"`
	MaleStudents   string `json:"maleStudents"`
	FemaleStudents string `json:"femaleStudents"`
	Monitor        string `json:"monitor" validate:"required"`
	Description    string `json:"description"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Section = core.CleanString(nc.Section)
	nc.ClassTeacher = core.CleanString(nc.ClassTeacher)
	nc.Monitor = core.CleanString(nc.Monitor)
	nc.Description = core.CleanString(nc.Description)
	return validate.Struct(nc)
}

// MaleStudentList returns the male roster split into trimmed names.
func (nc *NewClass) MaleStudentList() []string {
	return core.SplitList(nc.MaleStudents)
}

// FemaleStudentList returns the female roster split into trimmed names.
func (nc *NewClass) FemaleStudentList() []string {
	return core.SplitList(nc.FemaleStudents)
}
