package positions

import (
	"time"

	"github.com/MGTheTrain/rms/internal/pkg/apperrors"
	"github.com/MGTheTrain/rms/internal/pkg/validators"
)

// Errors
var (
	ErrPositionNotFound      = apperrors.NotFound("POSITION_NOT_FOUND", "position not found")
	ErrPositionAlreadyExists = apperrors.BadRequest("POSITION_ALREADY_EXISTS", "position already exists")
)

// Position is a job title, optionally bound to a role.
type Position struct {
	Seq         uint
	Title       string
	RoleSeq     *uint
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// CreatePosition is the command creating a Position.
type CreatePosition struct {
	Title       string  `json:"title" validate:"required,max=100"`
	RoleSeq     *uint   `json:"role_seq"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// Validate for validating CreatePosition struct
func (c *CreatePosition) Validate() error {
	return validators.Struct(c)
}

// UpdatePosition is a partial update of a Position.
type UpdatePosition struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
	RoleSeq     *uint   `json:"role_seq"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// Validate for validating UpdatePosition struct
func (u *UpdatePosition) Validate() error {
	return validators.Struct(u)
}

// IsEmpty reports whether the patch sets no field.
func (u *UpdatePosition) IsEmpty() bool {
	return u.Title == nil && u.RoleSeq == nil && u.Description == nil
}

// ApplyTo copies every set field onto p.
func (u *UpdatePosition) ApplyTo(p *Position) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.RoleSeq != nil {
		p.RoleSeq = u.RoleSeq
	}
	if u.Description != nil {
		p.Description = u.Description
	}
}
