//go:build unit
// +build unit

package deploy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackedPipeline() *Pipeline {
	return NewPipeline([]Environment{
		{Name: "DEV", Branch: "develop", RemoteDir: "/home/fastapi-rms", ServiceUnit: "fastapi-rms.service"},
		{Name: "PROD", Branch: "main", RemoteDir: "/home/fastapi-rms", ServiceUnit: "fastapi-rms.service"},
	})
}

func TestPipeline_Resolve(t *testing.T) {
	pipeline := trackedPipeline()

	tests := []struct {
		branch      string
		environment string
		untracked   bool
	}{
		{branch: "develop", environment: "DEV"},
		{branch: "refs/heads/develop", environment: "DEV"},
		{branch: "main", environment: "PROD"},
		{branch: "refs/heads/main", environment: "PROD"},
		{branch: "feature/login", untracked: true},
		{branch: "master", untracked: true},
		{branch: "", untracked: true},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			env, err := pipeline.Resolve(tt.branch)
			if tt.untracked {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUntrackedBranch))
				assert.Nil(t, env)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.environment, env.Name)
		})
	}
}

func TestPipeline_DevAndProdAreDistinct(t *testing.T) {
	pipeline := trackedPipeline()

	dev, err := pipeline.Resolve("develop")
	require.NoError(t, err)
	prod, err := pipeline.Resolve("main")
	require.NoError(t, err)

	assert.NotEqual(t, dev.Name, prod.Name)
	assert.Contains(t, dev.Steps[0].Command, "git pull origin develop")
	assert.Contains(t, prod.Steps[0].Command, "git pull origin main")
}

func TestPipeline_ResolveReturnsCopy(t *testing.T) {
	pipeline := trackedPipeline()

	env, err := pipeline.Resolve("develop")
	require.NoError(t, err)
	env.Name = "changed"

	again, err := pipeline.Resolve("develop")
	require.NoError(t, err)
	assert.Equal(t, "DEV", again.Name)
	assert.Len(t, pipeline.Environments(), 2)
}

func TestNewPipeline_KeepsExplicitSteps(t *testing.T) {
	pipeline := NewPipeline([]Environment{
		{Name: "STAGE", Branch: "release", Steps: []Step{{Name: "noop", Command: "true"}}},
	})

	env, err := pipeline.Resolve("release")
	require.NoError(t, err)
	require.Len(t, env.Steps, 1)
	assert.Equal(t, "noop", env.Steps[0].Name)
}

func TestDefaultSteps(t *testing.T) {
	steps := DefaultSteps("develop", "/home/fastapi-rms", "fastapi-rms.service")

	require.Len(t, steps, 5)
	names := []string{}
	for _, s := range steps {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{StepPull, StepToolchain, StepDependencies, StepStopService, StepStartService}, names)

	assert.Equal(t, "cd /home/fastapi-rms && git pull origin develop", steps[0].Command)
	assert.Equal(t, "sudo systemctl stop fastapi-rms.service", steps[3].Command)
	assert.Equal(t, "sudo systemctl start fastapi-rms.service", steps[4].Command)
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"develop", "develop"},
		{"/home/fastapi-rms", "/home/fastapi-rms"},
		{"feature/x_1.2", "feature/x_1.2"},
		{"", "''"},
		{"a b", "'a b'"},
		{"it's", `'it'"'"'s'`},
		{"x; rm -rf /", "'x; rm -rf /'"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ShellQuote(tt.in), tt.in)
	}
}

func TestTarget(t *testing.T) {
	target := Target{Host: "10.0.0.5", Port: 22, Username: "deploy", PrivateKey: []byte("key")}
	require.NoError(t, target.Validate())
	assert.Equal(t, "10.0.0.5:22", target.Address())

	ipv6 := Target{Host: "::1", Port: 2222}
	assert.Equal(t, "[::1]:2222", ipv6.Address())

	err := Target{Port: 22}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host, username, private key")

	target.Port = 0
	require.Error(t, target.Validate())
}

func TestStepError(t *testing.T) {
	exit := &ExitError{Status: 3}
	err := &StepError{Step: StepDependencies, ExitStatus: 3, Err: exit}

	assert.Equal(t, `deploy step "dependencies" failed with exit status 3`, err.Error())

	var target *ExitError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 3, target.Status)

	dialErr := &StepError{Step: StepPull, Err: errors.New("connection reset")}
	assert.Equal(t, `deploy step "pull" failed: connection reset`, dialErr.Error())
}

func TestReport_Succeeded(t *testing.T) {
	report := &Report{Steps: []StepResult{{Step: Step{Name: StepPull}}}}
	assert.True(t, report.Succeeded())

	report.Steps = append(report.Steps, StepResult{Step: Step{Name: StepStopService}, Err: errors.New("x")})
	assert.False(t, report.Succeeded())
}
