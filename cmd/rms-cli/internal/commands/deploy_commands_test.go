//go:build unit
// +build unit

package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MGTheTrain/rms/internal/app"
	"github.com/MGTheTrain/rms/internal/domain/deploy"
	"github.com/MGTheTrain/rms/internal/infrastructure/remote"
	"github.com/MGTheTrain/rms/internal/pkg/config"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func clearTargetEnv(t *testing.T) {
	t.Helper()
	for _, prefix := range []string{"", "DEV_", "PROD_"} {
		for _, name := range []string{EnvSSHPrivateKey, EnvSSHUsername, EnvSSHHost, EnvSSHPort} {
			t.Setenv(prefix+name, "")
		}
	}
}

func setDevTarget(t *testing.T) {
	t.Helper()
	t.Setenv("DEV_SSH_PRIVATE_KEY", "dev-key")
	t.Setenv("DEV_SSH_USERNAME", "deploy")
	t.Setenv("DEV_SSH_HOST", "dev.example.com")
	t.Setenv("DEV_SSH_PORT", "2222")
}

func TestReadTargetFromEnv_PrefixedWins(t *testing.T) {
	clearTargetEnv(t)
	t.Setenv(EnvSSHPrivateKey, "shared-key")
	t.Setenv(EnvSSHUsername, "shared")
	t.Setenv(EnvSSHHost, "shared.example.com")
	t.Setenv(EnvSSHPort, "22")
	t.Setenv("PROD_SSH_HOST", "prod.example.com")

	target, err := ReadTargetFromEnv("PROD")
	require.NoError(t, err)
	assert.Equal(t, "prod.example.com", target.Host)
	assert.Equal(t, "shared", target.Username)
	assert.Equal(t, 22, target.Port)
	assert.Equal(t, []byte("shared-key"), target.PrivateKey)
}

func TestReadTargetFromEnv_ReportsAllMissing(t *testing.T) {
	clearTargetEnv(t)
	t.Setenv(EnvSSHUsername, "deploy")

	_, err := ReadTargetFromEnv("DEV")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEV_SSH_HOST or SSH_HOST")
	assert.Contains(t, err.Error(), "DEV_SSH_PORT or SSH_PORT")
	assert.Contains(t, err.Error(), "DEV_SSH_PRIVATE_KEY or SSH_PRIVATE_KEY")
	assert.NotContains(t, err.Error(), "SSH_USERNAME")
}

func TestReadTargetFromEnv_InvalidPort(t *testing.T) {
	clearTargetEnv(t)
	setDevTarget(t)

	t.Setenv("DEV_SSH_PORT", "ssh")
	_, err := ReadTargetFromEnv("DEV")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid SSH_PORT")

	t.Setenv("DEV_SSH_PORT", "70000")
	_, err = ReadTargetFromEnv("DEV")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ssh port")
}

func TestNewPipelineFromConfig(t *testing.T) {
	cfg := config.DefaultDeployConfig()
	cfg.Environments[1].Steps = []config.DeployStepSettings{{Name: "restart", Command: "sudo systemctl restart rms"}}

	pipeline := NewPipelineFromConfig(cfg)

	dev, err := pipeline.Resolve("refs/heads/develop")
	require.NoError(t, err)
	assert.Equal(t, "DEV", dev.Name)
	require.Len(t, dev.Steps, 5)
	assert.Equal(t, deploy.StepPull, dev.Steps[0].Name)
	assert.Equal(t, "cd /home/fastapi-rms && git pull origin develop", dev.Steps[0].Command)

	prod, err := pipeline.Resolve("main")
	require.NoError(t, err)
	assert.Equal(t, []deploy.Step{{Name: "restart", Command: "sudo systemctl restart rms"}}, prod.Steps)
}

func newTestDeployHandler(dialer deploy.Dialer) *DeployCommandHandler {
	return &DeployCommandHandler{
		newDialer: func(remote.SSHDialerOptions, logger.Logger) (deploy.Dialer, error) {
			return dialer, nil
		},
		logger: logger.Discard(),
	}
}

func TestDeploy_DryRunWithoutCredentials(t *testing.T) {
	clearTargetEnv(t)
	dialer := &app.MockDialer{}
	handler := newTestDeployHandler(dialer)

	var out bytes.Buffer
	err := handler.deploy(context.Background(), deployOptions{Branch: "develop", DryRun: true}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "deploy develop -> DEV (dry run)")
	assert.Equal(t, 5, bytes.Count(out.Bytes(), []byte("[plan]")))
	dialer.AssertNotCalled(t, "Dial", mock.Anything, mock.Anything)
}

func TestDeploy_UntrackedBranchDoesNothing(t *testing.T) {
	clearTargetEnv(t)
	dialer := &app.MockDialer{}
	handler := newTestDeployHandler(dialer)

	var out bytes.Buffer
	err := handler.deploy(context.Background(), deployOptions{Branch: "feature/login"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "nothing to deploy")
	dialer.AssertNotCalled(t, "Dial", mock.Anything, mock.Anything)
}

func TestDeploy_MissingCredentials(t *testing.T) {
	clearTargetEnv(t)
	handler := newTestDeployHandler(&app.MockDialer{})

	err := handler.deploy(context.Background(), deployOptions{Branch: "main"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read PROD credentials")
}

func TestDeploy_RunsStepsOnTarget(t *testing.T) {
	clearTargetEnv(t)
	setDevTarget(t)

	executor := &app.MockExecutor{}
	executor.On("Run", mock.Anything, mock.Anything).Return("ok", nil)
	executor.On("Close").Return(nil)

	dialer := &app.MockDialer{}
	dialer.On("Dial", mock.Anything, mock.MatchedBy(func(target deploy.Target) bool {
		return target.Host == "dev.example.com" && target.Port == 2222 && target.Username == "deploy"
	})).Return(executor, nil)

	var out bytes.Buffer
	err := newTestDeployHandler(dialer).deploy(context.Background(), deployOptions{Branch: "develop", Commit: "abc123"}, &out)
	require.NoError(t, err)

	executor.AssertNumberOfCalls(t, "Run", 5)
	dialer.AssertExpectations(t)
	assert.Contains(t, out.String(), "commit: abc123")
	assert.Contains(t, out.String(), "deploy succeeded")
}

func TestDeploy_StopsAtFailingStep(t *testing.T) {
	clearTargetEnv(t)
	setDevTarget(t)

	env, err := NewPipelineFromConfig(config.DefaultDeployConfig()).Resolve("develop")
	require.NoError(t, err)

	executor := &app.MockExecutor{}
	executor.On("Run", mock.Anything, env.Steps[0].Command).Return("", nil)
	executor.On("Run", mock.Anything, env.Steps[1].Command).Return("go: command not found", &deploy.ExitError{Status: 127})
	executor.On("Close").Return(nil)

	dialer := &app.MockDialer{}
	dialer.On("Dial", mock.Anything, mock.Anything).Return(executor, nil)

	var out bytes.Buffer
	err = newTestDeployHandler(dialer).deploy(context.Background(), deployOptions{Branch: "develop"}, &out)
	require.Error(t, err)

	var stepErr *deploy.StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, deploy.StepToolchain, stepErr.Step)
	assert.Equal(t, 127, stepErr.ExitStatus)

	executor.AssertNumberOfCalls(t, "Run", 2)
	assert.Contains(t, out.String(), "[fail]")
	assert.Contains(t, out.String(), "go: command not found")
	assert.Contains(t, out.String(), "deploy failed")
}
