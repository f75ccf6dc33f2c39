// Package main is the entry point for the rms-cli application.
// It registers the deploy, migrate and user sub-commands and executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/rms/cmd/rms-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rms-cli",
		Short: "Operations tool for the resource management service",
		Long: `rms-cli deploys the resource management service and maintains its database.

The deploy command resolves the environment tracking the pushed branch
(develop deploys to DEV, main deploys to PROD) and runs the remote steps over SSH.
Credentials are read from the environment:
- SSH_PRIVATE_KEY
- SSH_USERNAME
- SSH_HOST
- SSH_PORT
Each variable may be prefixed with the environment name (DEV_SSH_HOST, PROD_SSH_HOST)
to take precedence over the plain one.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDeployCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize deploy commands: %w", err)
	}

	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
