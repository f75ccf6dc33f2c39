// Package validators holds the custom validation tags shared by domain commands
// and the REST binding layer.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Custom tag names
const (
	YesNoTag = "yn"
)

var (
	instance     *validator.Validate
	instanceErr  error
	instanceOnce sync.Once
)

// Register installs the custom validations and json field naming on v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(YesNoTag, YesNoValidation); err != nil {
		return fmt.Errorf("failed to register %s validator: %w", YesNoTag, err)
	}
	v.RegisterTagNameFunc(jsonFieldName)
	return nil
}

// YesNoValidation accepts the flag values "Y" and "N".
func YesNoValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "Y" || value == "N"
}

// Struct validates s with the shared validator and folds field errors into one error.
func Struct(s interface{}) error {
	instanceOnce.Do(func() {
		instance = validator.New()
		instanceErr = Register(instance)
	})
	if instanceErr != nil {
		return instanceErr
	}

	err := instance.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}

// FieldErrors maps every failing field of a validator error to a readable message.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldPath(fieldErr)] = message(fieldErr)
	}
	return fields
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case YesNoTag:
		return "must be Y or N"
	case "datetime":
		return fmt.Sprintf("must be a date formatted as %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
