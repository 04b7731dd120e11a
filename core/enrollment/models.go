package enrollment

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core"
)

type Status string

const (
	StatusEnrolled  Status = "enrolled"
	StatusCompleted Status = "completed"
	StatusDropped   Status = "dropped"
)

var Statuses = []Status{StatusEnrolled, StatusCompleted, StatusDropped}

// Enrollment records a user's participation in a course.
// CompletionDate is independent of Status.
type Enrollment struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	CourseID       int64     `json:"course_id" db:"course_id"`
	Status         Status    `json:"status" db:"status"`
	EnrollmentDate time.Time `json:"enrollment_date" db:"enrollment_date"` // UTC
	CompletionDate null.Time `json:"completion_date" db:"completion_date"` // UTC
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // UTC
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // UTC
}

// NewEnrollment contains information needed to enroll a user in a course.
type NewEnrollment struct {
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
	CourseID int64  `json:"course_id" validate:"required,gt=0"`
	Status   Status `json:"status" validate:"required,oneof=enrolled completed dropped"`
}

func (ne *NewEnrollment) Validate(validate *validator.Validate) error {
	ne.Status = Status(core.CleanString(string(ne.Status), true /* lower */))
	if ne.Status == "" {
		ne.Status = StatusEnrolled
	}
	return validate.Struct(ne)
}

// UpdateEnrollment defines what information may be provided to modify an existing Enrollment.
// Absent fields are left untouched; an explicit null completion_date clears it.
type UpdateEnrollment struct {
	ID             int64             `json:"id" validate:"required,gt=0"`
	Status         *Status           `json:"status" validate:"omitempty,oneof=enrolled completed dropped"`
	CompletionDate core.OptionalTime `json:"completion_date"`
}

func (ue *UpdateEnrollment) Validate(validate *validator.Validate) error {
	return validate.Struct(ue)
}

// Apply merges the provided fields into `e`. updated_at is left to the repository.
func (ue UpdateEnrollment) Apply(e Enrollment) Enrollment {
	if ue.Status != nil {
		e.Status = *ue.Status
	}
	if ue.CompletionDate.Set {
		e.CompletionDate = ue.CompletionDate.Value
	}
	return e
}

func (ue UpdateEnrollment) normalize() UpdateEnrollment {
	if ue.CompletionDate.Set && ue.CompletionDate.Value.Valid {
		ue.CompletionDate.Value.Time = ue.CompletionDate.Value.Time.UTC().Truncate(time.Microsecond)
	}
	return ue
}
