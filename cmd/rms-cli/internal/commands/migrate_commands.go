package commands

import (
	"fmt"

	"github.com/MGTheTrain/rms/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler encapsulates logic for applying schema migrations via CLI.
type MigrateCommandHandler struct {
	logger logger.Logger
}

// NewMigrateCommandHandler initializes and returns a MigrateCommandHandler instance
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MigrateCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd creates or updates the tables of the configured database
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("invalid config flag: %w", err)
	}

	db, err := openDatabase(configPath, commandHandler.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Error("Failed to close database: ", err)
		}
	}()

	commandHandler.logger.Info("Database migrations completed successfully")
	return nil
}

// InitMigrateCommands registers the migrate command with the root command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create migrate command handler: %w", err)
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema migrations",
		RunE:  handler.MigrateCmd,
	}
	migrateCmd.Flags().String("config", "", "Path to the REST configuration file (defaults and environment when empty)")
	rootCmd.AddCommand(migrateCmd)

	return nil
}
