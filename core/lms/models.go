package lms

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core"
)

// LMS is a learning platform instance owned by an organization.
type LMS struct {
	ID             int64       `json:"id" db:"id"`
	OrganizationID int64       `json:"organization_id" db:"organization_id"`
	Name           string      `json:"name" db:"name"`
	Description    null.String `json:"description" db:"description"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"` // UTC
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"` // UTC
}

// NewLMS contains information needed to create a new LMS.
type NewLMS struct {
	OrganizationID int64       `json:"organization_id" validate:"required,gt=0"`
	Name           string      `json:"name" validate:"required,max=255"`
	Description    null.String `json:"description" validate:"omitempty,max=2000"`
}

func (nl *NewLMS) Validate(validate *validator.Validate) error {
	nl.Name = core.CleanString(nl.Name)
	if nl.Description.Valid {
		nl.Description.String = core.CleanString(nl.Description.String)
	}
	return validate.Struct(nl)
}
