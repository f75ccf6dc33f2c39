package shared

import (
	"context"
	"errors"
	"net/http"

	"github.com/MGTheTrain/rms/internal/pkg/apperrors"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned by repositories when a write violates a unique key.
var ErrDuplicate = errors.New("duplicate record")

// ErrNoUpdateData is returned when a patch carries no field to change.
var ErrNoUpdateData = apperrors.BadRequest("NO_UPDATE_DATA", "no data to update")

// ErrValidation is returned when a command fails its validation rules.
var ErrValidation = apperrors.New(http.StatusUnprocessableEntity, "VALIDATION_FAILED", "validation failed")

// Transactor runs a unit of work atomically. Repositories called with the ctx
// handed to fn take part in the transaction; fn returning an error rolls it back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
