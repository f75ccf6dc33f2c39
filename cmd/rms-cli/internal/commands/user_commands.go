package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MGTheTrain/rms/internal/app"
	"github.com/MGTheTrain/rms/internal/domain/users"
	"github.com/MGTheTrain/rms/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rms/internal/infrastructure/security"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// EnvUserPassword supplies the password of create-user when --password is not given.
const EnvUserPassword = "RMS_USER_PASSWORD"

// UserCommandHandler encapsulates logic for managing accounts via CLI.
type UserCommandHandler struct {
	logger logger.Logger
}

// NewUserCommandHandler initializes and returns a UserCommandHandler instance
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &UserCommandHandler{logger: loggerInstance}, nil
}

// CreateUserCmd creates an account able to sign in, typically the first administrator
func (commandHandler *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("invalid config flag: %w", err)
	}

	create := &users.CreateUser{}
	if create.Username, err = cmd.Flags().GetString("username"); err != nil {
		return fmt.Errorf("invalid username flag: %w", err)
	}
	if create.Email, err = cmd.Flags().GetString("email"); err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	if create.Password, err = cmd.Flags().GetString("password"); err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}
	if create.Password == "" {
		create.Password = os.Getenv(EnvUserPassword)
	}
	if create.Type, err = cmd.Flags().GetString("type"); err != nil {
		return fmt.Errorf("invalid type flag: %w", err)
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

	return commandHandler.createUser(cmd.Context(), db, create, cmd.OutOrStdout())
}

func (commandHandler *UserCommandHandler) createUser(ctx context.Context, db *gorm.DB, create *users.CreateUser, out io.Writer) error {
	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}
	transactor, err := persistence.NewGormTransactor(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create transactor: %w", err)
	}
	hasher, err := security.NewBcryptHasher(0)
	if err != nil {
		return fmt.Errorf("failed to create password hasher: %w", err)
	}

	userService, err := app.NewUserService(userRepo, hasher, transactor, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}

	user, err := userService.Create(ctx, create)
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", create.Username, err)
	}

	commandHandler.logger.Info("Created user ", user.Username)
	fmt.Fprintf(out, "created user %s (seq %d)\n", user.Username, user.Seq)
	return nil
}

// InitUserCommands registers the user management commands with the root command
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create user command handler: %w", err)
	}

	createUserCmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account able to sign in",
		RunE:  handler.CreateUserCmd,
	}
	createUserCmd.Flags().String("config", "", "Path to the REST configuration file (defaults and environment when empty)")
	createUserCmd.Flags().String("username", "", "Login name")
	createUserCmd.Flags().String("email", "", "Email address")
	createUserCmd.Flags().String("password", "", "Plain text password ("+EnvUserPassword+" when empty)")
	createUserCmd.Flags().String("type", users.TypeEmployee, "User type (100 employee, 200 agency)")
	if err := createUserCmd.MarkFlagRequired("username"); err != nil {
		return fmt.Errorf("failed to mark username flag as required: %w", err)
	}
	if err := createUserCmd.MarkFlagRequired("email"); err != nil {
		return fmt.Errorf("failed to mark email flag as required: %w", err)
	}
	rootCmd.AddCommand(createUserCmd)

	return nil
}
