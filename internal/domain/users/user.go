package users

import (
	"time"

	"github.com/MGTheTrain/rms/internal/pkg/apperrors"
	"github.com/MGTheTrain/rms/internal/pkg/validators"
)

// User types
const (
	TypeEmployee = "100"
	TypeAgency   = "200"
)

// User statuses
const (
	StatusActive   = "100"
	StatusInactive = "200"
)

// Errors
var (
	ErrUserNotFound      = apperrors.NotFound("USER_NOT_FOUND", "user not found")
	ErrUserAlreadyExists = apperrors.BadRequest("USER_ALREADY_EXISTS", "user already exists")
)

// User is an account able to sign in.
type User struct {
	Seq                 uint
	Username            string
	Email               string
	Password            string
	CurrentRefreshToken *string
	Type                string
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time
}

// CreateUser is the command creating a User. Password is the plain text secret.
type CreateUser struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Type     string `json:"type" validate:"omitempty,oneof=100 200"`
	Status   string `json:"status" validate:"omitempty,oneof=100 200"`
}

// Validate for validating CreateUser struct
func (c *CreateUser) Validate() error {
	return validators.Struct(c)
}

// ChangePassword is the command replacing a User password.
type ChangePassword struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Validate for validating ChangePassword struct
func (c *ChangePassword) Validate() error {
	return validators.Struct(c)
}
