//go:build unit
// +build unit

package shared

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageQueryValidation(t *testing.T) {
	tests := []struct {
		name          string
		query         *PageQuery
		expectedError bool
	}{
		{"defaults", NewPageQuery(), false},
		{"descending", &PageQuery{Page: 3, Size: 50, SortBy: "name", Order: OrderDesc}, false},
		{"page zero", &PageQuery{Page: 0, Size: 10, SortBy: "seq", Order: OrderAsc}, true},
		{"size zero", &PageQuery{Page: 1, Size: 0, SortBy: "seq", Order: OrderAsc}, true},
		{"bad order", &PageQuery{Page: 1, Size: 10, SortBy: "seq", Order: "up"}, true},
		{"empty sort", &PageQuery{Page: 1, Size: 10, Order: OrderAsc}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.expectedError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPageQuery))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPageQueryOffset(t *testing.T) {
	assert.Equal(t, 0, (&PageQuery{Page: 1, Size: 10}).Offset())
	assert.Equal(t, 40, (&PageQuery{Page: 3, Size: 20}).Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.March, 9)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-09"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"1990-12-31"`), &decoded))
	assert.Equal(t, "1990-12-31", decoded.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &decoded))
	assert.True(t, decoded.IsZero())

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	assert.Error(t, json.Unmarshal([]byte(`"31.12.1990"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`19901231`), &decoded))
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2024, time.May, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2024-05-01", d.String())
}

func TestActor(t *testing.T) {
	_, ok := ActorFrom(context.Background())
	assert.False(t, ok)

	ctx := WithActor(context.Background(), "admin")
	username, ok := ActorFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)

	_, ok = ActorFrom(WithActor(context.Background(), ""))
	assert.False(t, ok)
}
