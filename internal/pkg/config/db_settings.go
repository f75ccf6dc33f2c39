package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	MysqlDbType    = "mysql"
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// Connection pool defaults: 10 pooled connections with up to 20 overflow connections.
const (
	DefaultMaxIdleConns       = 10
	DefaultMaxOpenConns       = 30
	DefaultConnMaxLifetime    = 30 * time.Minute
	DefaultSlowQueryThreshold = 2 * time.Second
	DefaultDatabaseName       = "rms"
)

// DatabaseSettings holds the database connection and pool settings.
// For MySQL either DSN or the Host/User/Name triple must be set.
type DatabaseSettings struct {
	Type               string        `yaml:"type" validate:"required,oneof=mysql postgres sqlite"`
	DSN                string        `yaml:"dsn"`
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port" validate:"omitempty,min=1,max=65535"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	MaxIdleConns       int           `yaml:"max_idle_conns" validate:"min=0"`
	MaxOpenConns       int           `yaml:"max_open_conns" validate:"min=0"`
	ConnMaxLifetime    time.Duration `yaml:"conn_max_lifetime" validate:"min=0"`
	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold" validate:"min=0"`
}

// Validate checks that the DatabaseSettings are complete for the selected type
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	switch s.Type {
	case MysqlDbType:
		if s.DSN == "" && (s.Host == "" || s.User == "" || s.Name == "") {
			return fmt.Errorf("mysql requires either a dsn or host, user and name")
		}
	case PostgresDbType:
		if s.DSN == "" {
			return fmt.Errorf("postgres requires a dsn")
		}
	}

	if s.MaxOpenConns > 0 && s.MaxIdleConns > s.MaxOpenConns {
		return fmt.Errorf("max idle connections (%d) exceed max open connections (%d)", s.MaxIdleConns, s.MaxOpenConns)
	}

	return nil
}
