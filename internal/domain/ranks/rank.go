package ranks

import (
	"time"

	"github.com/MGTheTrain/rms/internal/pkg/apperrors"
	"github.com/MGTheTrain/rms/internal/pkg/validators"
)

// Errors
var (
	ErrRankNotFound      = apperrors.NotFound("RANK_NOT_FOUND", "rank not found")
	ErrRankAlreadyExists = apperrors.BadRequest("RANK_ALREADY_EXISTS", "rank already exists")
)

// Rank is a grade in the company hierarchy.
type Rank struct {
	Seq         uint
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// CreateRank is the command creating a Rank.
type CreateRank struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// Validate for validating CreateRank struct
func (c *CreateRank) Validate() error {
	return validators.Struct(c)
}

// UpdateRank replaces the title and optionally the description.
type UpdateRank struct {
	Title       *string `json:"title" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// Validate for validating UpdateRank struct
func (u *UpdateRank) Validate() error {
	return validators.Struct(u)
}

// IsEmpty reports whether the patch sets no field.
func (u *UpdateRank) IsEmpty() bool {
	return u.Title == nil && u.Description == nil
}

// ApplyTo copies every set field onto r.
func (u *UpdateRank) ApplyTo(r *Rank) {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.Description != nil {
		r.Description = u.Description
	}
}
