package course

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Instructor assigns a user to teach a course.
type Instructor struct {
	ID        int64     `json:"id" db:"id"`
	CourseID  int64     `json:"course_id" db:"course_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
}

type NewInstructor struct {
	CourseID int64 `json:"course_id" validate:"required,gt=0"`
	UserID   int64 `json:"user_id" validate:"required,gt=0"`
}

func (ni *NewInstructor) Validate(validate *validator.Validate) error {
	return validate.Struct(ni)
}
