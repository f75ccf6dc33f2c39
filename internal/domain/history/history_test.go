//go:build unit
// +build unit

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Zeta  string `json:"zeta"`
	Alpha int    `json:"alpha"`
	Inner struct {
		B bool `json:"b"`
		A *int `json:"a"`
	} `json:"inner"`
}

func TestSnapshot_SortsKeys(t *testing.T) {
	v := sample{Zeta: "z", Alpha: 12345678901}

	s, err := Snapshot(v)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, `{"alpha":12345678901,"inner":{"a":null,"b":false},"zeta":"z"}`, *s)
}

func TestSnapshot_Nil(t *testing.T) {
	s, err := Snapshot(nil)
	require.NoError(t, err)
	assert.Nil(t, s)

	var typedNil *sample
	s, err = Snapshot(typedNil)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSnapshot_Unsupported(t *testing.T) {
	_, err := Snapshot(make(chan int))
	require.Error(t, err)
}

func TestNotFoundError(t *testing.T) {
	assert.Same(t, ErrEmployeeHistoryNotFound, NotFoundError(KindEmployee))
	assert.Same(t, ErrOrganizationHistoryNotFound, NotFoundError(KindOrganization))
}
