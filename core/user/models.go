package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/lmsadmin/core"
)

type User struct {
	ID             int64     `json:"id" db:"id"`
	OrganizationID int64     `json:"organization_id" db:"organization_id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   []byte    `json:"-" db:"password_hash"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"` // UTC
}

func (u *User) SetPassword(pwd string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	OrganizationID int64  `json:"organization_id" validate:"required,gt=0"`
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Password       string `json:"password" validate:"required"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return validate.Struct(nu)
}

// ResetPassword defines what is needed to set a new password on an existing User.
type ResetPassword struct {
	OrganizationID int64  `json:"organization_id" validate:"required,gt=0"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
}

func (rp *ResetPassword) Validate(validate *validator.Validate, usr User) error {
	rp.Email = core.CleanString(rp.Email, true /* lower */)
	if err := validate.Struct(rp); err != nil {
		return err
	}
	return validate.Struct(NewUser{
		OrganizationID: usr.OrganizationID,
		Name:           usr.Name,
		Email:          usr.Email,
		Password:       rp.Password,
	})
}
