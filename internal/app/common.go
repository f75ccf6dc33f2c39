package app

import (
	"errors"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/shared"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// found reports whether a lookup hit. A miss matching notFound is not an error.
func found(err, notFound error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, notFound) {
		return false, nil
	}
	return false, err
}

func validate(v interface{ Validate() error }) error {
	if err := v.Validate(); err != nil {
		return shared.ErrValidation.Wrap(err)
	}
	return nil
}

func page[T any](list func() ([]T, error), count func() (int64, error)) ([]T, int64, error) {
	items, err := list()
	if err != nil {
		return nil, 0, err
	}
	total, err := count()
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
