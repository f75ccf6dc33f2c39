package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/MGTheTrain/rms/internal/app"
	"github.com/MGTheTrain/rms/internal/domain/deploy"
	"github.com/MGTheTrain/rms/internal/infrastructure/remote"
	"github.com/MGTheTrain/rms/internal/pkg/config"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Deploy credential variables. A variable prefixed with the environment name
// (DEV_SSH_HOST) takes precedence over the plain one (SSH_HOST).
const (
	EnvSSHPrivateKey = "SSH_PRIVATE_KEY"
	EnvSSHUsername   = "SSH_USERNAME"
	EnvSSHHost       = "SSH_HOST"
	EnvSSHPort       = "SSH_PORT"
)

// ReadTargetFromEnv reads the SSH target of environment from the process
// environment. All missing variables are reported in one error.
func ReadTargetFromEnv(environment string) (deploy.Target, error) {
	names := []string{EnvSSHPrivateKey, EnvSSHUsername, EnvSSHHost, EnvSSHPort}

	values := make(map[string]string, len(names))
	var missing []string
	for _, name := range names {
		value := lookupScopedEnv(environment, name)
		if value == "" {
			missing = append(missing, scopedEnvName(environment, name))
			continue
		}
		values[name] = value
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return deploy.Target{}, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(values[EnvSSHPort])
	if err != nil {
		return deploy.Target{}, fmt.Errorf("invalid %s value %q: %w", EnvSSHPort, values[EnvSSHPort], err)
	}

	target := deploy.Target{
		Host:       values[EnvSSHHost],
		Port:       port,
		Username:   values[EnvSSHUsername],
		PrivateKey: []byte(values[EnvSSHPrivateKey]),
	}
	if err := target.Validate(); err != nil {
		return deploy.Target{}, err
	}

	return target, nil
}

func lookupScopedEnv(environment, name string) string {
	if environment != "" {
		if value := os.Getenv(strings.ToUpper(environment) + "_" + name); value != "" {
			return value
		}
	}
	return os.Getenv(name)
}

func scopedEnvName(environment, name string) string {
	if environment == "" {
		return name
	}
	return strings.ToUpper(environment) + "_" + name + " or " + name
}

// NewPipelineFromConfig maps the configured environments onto a deploy pipeline.
func NewPipelineFromConfig(cfg *config.DeployConfig) *deploy.Pipeline {
	environments := make([]deploy.Environment, 0, len(cfg.Environments))
	for _, settings := range cfg.Environments {
		env := deploy.Environment{
			Name:        settings.Name,
			Branch:      settings.Branch,
			RemoteDir:   settings.RemoteDir,
			ServiceUnit: settings.ServiceUnit,
		}
		for _, step := range settings.Steps {
			env.Steps = append(env.Steps, deploy.Step{Name: step.Name, Command: step.Command})
		}
		environments = append(environments, env)
	}
	return deploy.NewPipeline(environments)
}

type dialerFactory func(options remote.SSHDialerOptions, logger logger.Logger) (deploy.Dialer, error)

// DeployCommandHandler encapsulates logic for deploying the service via CLI.
type DeployCommandHandler struct {
	newDialer dialerFactory
	logger    logger.Logger
}

// NewDeployCommandHandler initializes and returns a DeployCommandHandler instance
// with configured logger and SSH dialer factory.
func NewDeployCommandHandler() (*DeployCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DeployCommandHandler{
		newDialer: remote.NewSSHDialer,
		logger:    loggerInstance,
	}, nil
}

type deployOptions struct {
	Branch     string
	Commit     string
	ConfigPath string
	DryRun     bool
	Timeout    time.Duration
}

// DeployCmd deploys the environment tracking the given branch
func (commandHandler *DeployCommandHandler) DeployCmd(cmd *cobra.Command, _ []string) error {
	var (
		opts deployOptions
		err  error
	)

	if opts.Branch, err = cmd.Flags().GetString("branch"); err != nil {
		return fmt.Errorf("invalid branch flag: %w", err)
	}
	if opts.Commit, err = cmd.Flags().GetString("commit"); err != nil {
		return fmt.Errorf("invalid commit flag: %w", err)
	}
	if opts.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return fmt.Errorf("invalid config flag: %w", err)
	}
	if opts.DryRun, err = cmd.Flags().GetBool("dry-run"); err != nil {
		return fmt.Errorf("invalid dry-run flag: %w", err)
	}
	if opts.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return fmt.Errorf("invalid timeout flag: %w", err)
	}

	if opts.Branch == "" {
		return fmt.Errorf("branch is required: pass --branch or set GITHUB_REF_NAME")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return commandHandler.deploy(ctx, opts, cmd.OutOrStdout())
}

func (commandHandler *DeployCommandHandler) deploy(ctx context.Context, opts deployOptions, out io.Writer) error {
	cfg, err := config.LoadDeployConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	pipeline := NewPipelineFromConfig(cfg)
	env, err := pipeline.Resolve(opts.Branch)
	if errors.Is(err, deploy.ErrUntrackedBranch) {
		commandHandler.logger.Info("Branch ", opts.Branch, " is not tracked, nothing to deploy")
		fmt.Fprintf(out, "branch %s is not tracked by any environment, nothing to deploy\n", opts.Branch)
		return nil
	}
	if err != nil {
		return err
	}

	target, err := ReadTargetFromEnv(env.Name)
	if err != nil {
		if !opts.DryRun {
			return fmt.Errorf("failed to read %s credentials: %w", env.Name, err)
		}
		commandHandler.logger.Warn("Credentials of ", env.Name, " are incomplete: ", err)
	}

	var dialer deploy.Dialer
	if !opts.DryRun {
		dialer, err = commandHandler.newDialer(remote.SSHDialerOptions{KnownHostsPath: cfg.KnownHostsPath}, commandHandler.logger)
		if err != nil {
			return fmt.Errorf("failed to create ssh dialer: %w", err)
		}
	}

	service, err := app.NewDeployService(pipeline, dialer, opts.DryRun, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create deploy service: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = cfg.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	report, err := service.Deploy(ctx, opts.Branch, opts.Commit, target)
	if report != nil {
		writeReport(out, report)
	}
	return err
}

func writeReport(out io.Writer, report *deploy.Report) {
	mode := ""
	if report.DryRun {
		mode = " (dry run)"
	}
	fmt.Fprintf(out, "deploy %s -> %s%s\n", report.Branch, report.Environment, mode)
	if report.Commit != "" {
		fmt.Fprintf(out, "commit: %s\n", report.Commit)
	}
	if report.Host != "" {
		fmt.Fprintf(out, "host:   %s\n", report.Host)
	}

	for _, result := range report.Steps {
		switch {
		case report.DryRun:
			fmt.Fprintf(out, "  [plan] %-16s %s\n", result.Step.Name, result.Step.Command)
		case result.Err != nil:
			fmt.Fprintf(out, "  [fail] %-16s %v\n", result.Step.Name, result.Err)
			if output := strings.TrimSpace(result.Output); output != "" {
				fmt.Fprintf(out, "%s\n", output)
			}
		default:
			fmt.Fprintf(out, "  [ok]   %-16s %s\n", result.Step.Name, result.Duration.Round(time.Millisecond))
		}
	}

	if !report.DryRun {
		status := "succeeded"
		if !report.Succeeded() {
			status = "failed"
		}
		fmt.Fprintf(out, "deploy %s in %s\n", status, report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
	}
}

// InitDeployCommands registers the deploy command with the root command
func InitDeployCommands(rootCmd *cobra.Command) error {
	handler, err := NewDeployCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create deploy command handler: %w", err)
	}

	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the environment tracking a branch over SSH",
		RunE:  handler.DeployCmd,
	}
	deployCmd.Flags().String("branch", os.Getenv("GITHUB_REF_NAME"), "Pushed branch (develop deploys to DEV, main deploys to PROD)")
	deployCmd.Flags().String("commit", os.Getenv("GITHUB_SHA"), "Commit being deployed, reported only")
	deployCmd.Flags().String("config", "", "Path to the deploy configuration file (defaults when empty)")
	deployCmd.Flags().Bool("dry-run", false, "Print the planned steps without connecting")
	deployCmd.Flags().Duration("timeout", 0, "Overall deploy timeout (configured timeout when zero)")
	rootCmd.AddCommand(deployCmd)

	return nil
}
