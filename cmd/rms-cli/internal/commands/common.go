package commands

import (
	"fmt"

	"github.com/MGTheTrain/rms/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rms/internal/pkg/config"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"gorm.io/gorm"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel:  "info",
		LogType:   "console",
		LogFormat: "text",
		FilePath:  "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openDatabase connects to the database configured at configPath (defaults
// when empty) and applies the schema migrations.
func openDatabase(configPath string, log logger.Logger) (*gorm.DB, error) {
	settings, err := config.InitializeDatabaseSettings(configPath)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(*settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}

	return db, nil
}
