// Package history records before/after snapshots of employee and organization
// mutations.
package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/MGTheTrain/rms/internal/pkg/apperrors"
)

// Action types
const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Kind names the audited entity.
type Kind string

// Audited entities
const (
	KindEmployee     Kind = "employee"
	KindOrganization Kind = "organization"
)

// Errors
var (
	ErrEmployeeHistoryNotFound     = apperrors.NotFound("EMPLOYEE_HISTORY_NOT_FOUND", "employee history not found")
	ErrOrganizationHistoryNotFound = apperrors.NotFound("ORGANIZATION_HISTORY_NOT_FOUND", "organization history not found")
)

// NotFoundError returns the not found error of kind.
func NotFoundError(kind Kind) *apperrors.Error {
	if kind == KindOrganization {
		return ErrOrganizationHistoryNotFound
	}
	return ErrEmployeeHistoryNotFound
}

// Entry is one recorded mutation. BeforeValue is nil for inserts and AfterValue
// is nil for deletes.
type Entry struct {
	Seq         uint
	TargetSeq   uint
	ActionType  string
	BeforeValue *string
	AfterValue  *string
	Username    *string
	CreatedAt   time.Time
}

// Snapshot serializes v as JSON with sorted object keys. A nil value (or nil
// pointer) yields nil.
func Snapshot(v interface{}) (*string, error) {
	if v == nil {
		return nil, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// decoding into interface{} turns objects into maps, which encoding/json
	// writes with sorted keys
	var generic interface{}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&generic); err != nil {
		return nil, fmt.Errorf("failed to normalize snapshot: %w", err)
	}

	sorted, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	s := string(sorted)
	return &s, nil
}
