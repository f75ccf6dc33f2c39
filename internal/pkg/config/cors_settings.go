package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CORSSettings holds the cross origin settings of the REST API
type CORSSettings struct {
	AllowOrigins     []string      `yaml:"allow_origins" validate:"required,min=1,dive,required"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	MaxAge           time.Duration `yaml:"max_age" validate:"min=0"`
}

// Validate checks that all fields in CORSSettings are valid
func (s *CORSSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CORSSettings: %w", err)
	}

	if s.AllowCredentials {
		for _, origin := range s.AllowOrigins {
			if origin == "*" {
				return fmt.Errorf("wildcard origin is not allowed together with credentials")
			}
		}
	}

	return nil
}
