package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported JWT signing algorithms
const (
	JWTAlgorithmHS256 = "HS256"
	JWTAlgorithmHS384 = "HS384"
	JWTAlgorithmHS512 = "HS512"
)

// JWTSettings holds the token signing settings
type JWTSettings struct {
	Secret                   string `yaml:"secret" validate:"required"`
	Algorithm                string `yaml:"algorithm" validate:"required,oneof=HS256 HS384 HS512"`
	ExpirationMinutes        int    `yaml:"expiration_minutes" validate:"required,min=1"`
	RefreshExpirationMinutes int    `yaml:"refresh_expiration_minutes" validate:"required,min=1"`
	RequireAuth              bool   `yaml:"require_auth"`
}

// Validate checks that all fields in JWTSettings are valid
func (s *JWTSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for JWTSettings: %w", err)
	}

	if s.RefreshExpirationMinutes < s.ExpirationMinutes {
		return fmt.Errorf("refresh token lifetime must not be shorter than access token lifetime")
	}

	return nil
}
