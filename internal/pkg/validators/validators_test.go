//go:build unit
// +build unit

package validators

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flagged struct {
	Email     string `json:"email" validate:"required,email"`
	Incentive string `json:"incentive_yn" validate:"required,yn"`
	Nested    inner  `json:"nested"`
}

type inner struct {
	Level int `json:"level" validate:"min=1,max=3"`
}

func TestStruct(t *testing.T) {
	err := Struct(&flagged{Email: "a@b.io", Incentive: "Y", Nested: inner{Level: 1}})
	require.NoError(t, err)

	err = Struct(&flagged{Email: "nope", Incentive: "X", Nested: inner{Level: 4}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: email, Tag: email")
	assert.Contains(t, err.Error(), "Field: incentive_yn, Tag: yn")
	assert.Contains(t, err.Error(), "Field: level, Tag: max")
}

func TestFieldErrors(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	err := v.Struct(&flagged{Incentive: "maybe"})
	fields := FieldErrors(err)

	require.NotNil(t, fields)
	assert.Equal(t, "field required", fields["email"])
	assert.Equal(t, "must be Y or N", fields["incentive_yn"])
	assert.Equal(t, "must be at least 1", fields["nested.level"])

	assert.Nil(t, FieldErrors(errors.New("plain")))
}
