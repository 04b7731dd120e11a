package organization

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core"
)

// Organization is the top-level tenant.
type Organization struct {
	ID          int64       `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Description null.String `json:"description" db:"description"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"` // UTC
}

// NewOrganization contains information needed to create a new Organization.
type NewOrganization struct {
	Name        string      `json:"name" validate:"required,max=255"`
	Description null.String `json:"description" validate:"omitempty,max=2000"`
}

func (no *NewOrganization) Validate(validate *validator.Validate) error {
	no.Name = core.CleanString(no.Name)
	if no.Description.Valid {
		no.Description.String = core.CleanString(no.Description.String)
	}
	return validate.Struct(no)
}
