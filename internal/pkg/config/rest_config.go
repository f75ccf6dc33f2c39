package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RestConfig holds the configuration of the REST API
type RestConfig struct {
	Env      string           `yaml:"env"`
	Port     string           `yaml:"port" validate:"required"`
	Logger   LoggerSettings   `yaml:"logger"`
	Database DatabaseSettings `yaml:"database"`
	JWT      JWTSettings      `yaml:"jwt"`
	CORS     CORSSettings     `yaml:"cors"`
}

// DefaultRestConfig returns the configuration used when no file overrides a value
func DefaultRestConfig() *RestConfig {
	return &RestConfig{
		Env:  DefaultAppEnv,
		Port: "8000",
		Logger: LoggerSettings{
			LogLevel:  LogLevelInfo,
			LogType:   LogTypeConsole,
			LogFormat: LogFormatText,
		},
		Database: DatabaseSettings{
			Type:               MysqlDbType,
			Host:               "localhost",
			Port:               3306,
			User:               "root",
			Name:               DefaultDatabaseName,
			MaxIdleConns:       DefaultMaxIdleConns,
			MaxOpenConns:       DefaultMaxOpenConns,
			ConnMaxLifetime:    DefaultConnMaxLifetime,
			SlowQueryThreshold: DefaultSlowQueryThreshold,
		},
		JWT: JWTSettings{
			Algorithm:                JWTAlgorithmHS256,
			ExpirationMinutes:        30,
			RefreshExpirationMinutes: 1440,
			RequireAuth:              true,
		},
		CORS: CORSSettings{
			AllowOrigins:     []string{"http://localhost:8000", "http://127.0.0.1:8001"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
	}
}

// Validate checks the whole RestConfig
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.JWT.Validate(); err != nil {
		return err
	}
	return c.CORS.Validate()
}

// InitializeRestConfig loads the REST configuration. The YAML file at path (optional)
// is applied over the defaults, then the layered .env files and finally the process
// environment.
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg, err := loadRestConfig(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadRestConfig(path string) (*RestConfig, error) {
	cfg := DefaultRestConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	appEnv := os.Getenv(AppEnvKey)
	if appEnv == "" {
		appEnv = cfg.Env
	}
	if err := LoadEnvFiles(EnvFiles(appEnv)...); err != nil {
		return nil, err
	}

	if err := applyRestEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// InitializeDatabaseSettings loads the REST configuration layers like
// InitializeRestConfig but validates only the database settings. It serves
// tools that never sign tokens or serve HTTP.
func InitializeDatabaseSettings(path string) (*DatabaseSettings, error) {
	cfg, err := loadRestConfig(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	return &cfg.Database, nil
}

func applyRestEnvOverrides(cfg *RestConfig) error {
	overrideString(&cfg.Env, AppEnvKey)
	overrideString(&cfg.Port, "PORT")

	overrideString(&cfg.Logger.LogLevel, "LOG_LEVEL")
	overrideString(&cfg.Logger.LogFormat, "LOG_FORMAT")
	overrideString(&cfg.Logger.FilePath, "LOG_FILE")

	overrideString(&cfg.Database.Type, "DB_TYPE")
	overrideString(&cfg.Database.DSN, "DB_DSN")
	overrideString(&cfg.Database.Host, "MYSQL_HOST")
	overrideString(&cfg.Database.User, "MYSQL_USER")
	overrideString(&cfg.Database.Password, "MYSQL_PASSWORD")
	overrideString(&cfg.Database.Name, "MYSQL_DB")
	if err := overrideInt(&cfg.Database.Port, "MYSQL_PORT"); err != nil {
		return err
	}
	if err := overrideDuration(&cfg.Database.SlowQueryThreshold, "SLOW_QUERY_THRESHOLD"); err != nil {
		return err
	}

	overrideString(&cfg.JWT.Secret, "JWT_SECRET")
	overrideString(&cfg.JWT.Algorithm, "JWT_ALGORITHM")
	if err := overrideInt(&cfg.JWT.ExpirationMinutes, "JWT_EXPIRATION_MINUTES"); err != nil {
		return err
	}
	if err := overrideInt(&cfg.JWT.RefreshExpirationMinutes, "JWT_REFRESH_EXPIRATION_MINUTES"); err != nil {
		return err
	}
	if err := overrideBool(&cfg.JWT.RequireAuth, "JWT_REQUIRE_AUTH"); err != nil {
		return err
	}

	overrideList(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
	return nil
}
