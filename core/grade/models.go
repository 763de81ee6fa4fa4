package grade

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

// Grade ties one student name to one Assignment id with a numeric score.
// The Assignment reference is weak: deleting an assignment leaves its
// grades orphaned; they are kept but never resolved by queries.
type Grade struct {
	ID           string  `json:"_id" db:"id"`
	StudentID    string  `json:"studentId" db:"student_id"` // free-text student name
	AssignmentID string  `json:"assignmentId" db:"assignment_id"`
	Grade        float64 `json:"grade" db:"grade"`
}

// NestedGrades maps studentId -> assignmentId -> grade for frontend consumption.
type NestedGrades map[string]map[string]float64

// NewGrade contains information needed to upsert a Grade,
// keyed on (studentId, assignmentId).
type NewGrade struct {
	StudentID    string  `json:"studentId" validate:"required"`
	AssignmentID string  `json:"assignmentId" validate:"required,uuid4"`
	Grade        float64 `json:"grade" validate:"gte=0,lte=100"`
}

func (ng *NewGrade) Validate(validate *validator.Validate) error {
	ng.StudentID = core.CleanString(ng.StudentID)
	ng.AssignmentID = core.CleanString(ng.AssignmentID)
	return validate.Struct(ng)
}
