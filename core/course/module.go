package course

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core"
)

// Module is an ordered section of a course.
type Module struct {
	ID          int64       `json:"id" db:"id"`
	CourseID    int64       `json:"course_id" db:"course_id"`
	Title       string      `json:"title" db:"title"`
	Description null.String `json:"description" db:"description"`
	Order       int         `json:"order" db:"order"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"` // UTC
}

// NewModule contains information needed to create a new Module.
type NewModule struct {
	CourseID    int64       `json:"course_id" validate:"required,gt=0"`
	Title       string      `json:"title" validate:"required,max=255"`
	Description null.String `json:"description" validate:"omitempty,max=5000"`
	Order       *int        `json:"order" validate:"required,min=0,max=2147483647"`
}

func (nm *NewModule) Validate(validate *validator.Validate) error {
	nm.Title = core.CleanString(nm.Title)
	cleanNullString(&nm.Description)
	return validate.Struct(nm)
}
