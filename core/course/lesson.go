package course

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core"
)

type LessonType string

const (
	LessonTypeVideo LessonType = "video"
	LessonTypeText  LessonType = "text"
	LessonTypeQuiz  LessonType = "quiz"
	LessonTypeFile  LessonType = "file"
)

var LessonTypes = []LessonType{LessonTypeVideo, LessonTypeText, LessonTypeQuiz, LessonTypeFile}

// Lesson is an ordered content unit of a module.
type Lesson struct {
	ID          int64       `json:"id" db:"id"`
	ModuleID    int64       `json:"module_id" db:"module_id"`
	Title       string      `json:"title" db:"title"`
	Description null.String `json:"description" db:"description"`
	Content     null.String `json:"content" db:"content"`
	Type        LessonType  `json:"type" db:"type"`
	Order       int         `json:"order" db:"order"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"` // UTC
}

// NewLesson contains information needed to create a new Lesson.
type NewLesson struct {
	ModuleID    int64       `json:"module_id" validate:"required,gt=0"`
	Title       string      `json:"title" validate:"required,max=255"`
	Description null.String `json:"description" validate:"omitempty,max=5000"`
	Content     null.String `json:"content"`
	Type        LessonType  `json:"type" validate:"required,oneof=video text quiz file"`
	Order       *int        `json:"order" validate:"required,min=0,max=2147483647"`
}

func (nl *NewLesson) Validate(validate *validator.Validate) error {
	nl.Title = core.CleanString(nl.Title)
	nl.Type = LessonType(core.CleanString(string(nl.Type), true /* lower */))
	cleanNullString(&nl.Description)
	return validate.Struct(nl)
}
