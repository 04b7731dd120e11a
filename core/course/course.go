package course

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

var Statuses = []Status{StatusDraft, StatusPublished, StatusArchived}

type Course struct {
	ID              int64        `json:"id" db:"id"`
	LMSID           int64        `json:"lms_id" db:"lms_id"`
	Title           string       `json:"title" db:"title"`
	Description     null.String  `json:"description" db:"description"`
	Slug            string       `json:"slug" db:"slug"`
	MetaTitle       null.String  `json:"meta_title" db:"meta_title"`
	MetaDescription null.String  `json:"meta_description" db:"meta_description"`
	Keywords        null.String  `json:"keywords" db:"keywords"`
	ThumbnailURL    null.String  `json:"thumbnail_url" db:"thumbnail_url"`
	DurationHours   null.Float64 `json:"duration_hours" db:"-"`
	Status          Status       `json:"status" db:"status"`
	CreatedAt       time.Time    `json:"created_at" db:"created_at"` // UTC
	UpdatedAt       time.Time    `json:"updated_at" db:"updated_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	LMSID           int64        `json:"lms_id" validate:"required,gt=0"`
	Title           string       `json:"title" validate:"required,max=255"`
	Description     null.String  `json:"description" validate:"omitempty,max=5000"`
	Slug            string       `json:"slug" validate:"required,max=255,slug"`
	MetaTitle       null.String  `json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription null.String  `json:"meta_description" validate:"omitempty,max=500"`
	Keywords        null.String  `json:"keywords" validate:"omitempty,max=500"`
	ThumbnailURL    null.String  `json:"thumbnail_url" validate:"omitempty,url,max=2048"`
	DurationHours   null.Float64 `json:"duration_hours" validate:"omitempty,gt=0,max=9999.99,maxdp=2"`
	Status          Status       `json:"status" validate:"required,oneof=draft published archived"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Slug = core.CleanString(nc.Slug)
	cleanNullString(&nc.Description)
	cleanNullString(&nc.MetaTitle)
	cleanNullString(&nc.MetaDescription)
	cleanNullString(&nc.Keywords)
	cleanNullString(&nc.ThumbnailURL)
	if nc.Status == "" {
		nc.Status = StatusDraft
	}
	return validate.Struct(nc)
}

func cleanNullString(s *null.String) {
	if s.Valid {
		s.String = core.CleanString(s.String)
	}
}
