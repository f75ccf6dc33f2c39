package deploy

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Step names of the default plan
const (
	StepPull         = "pull"
	StepToolchain    = "toolchain"
	StepDependencies = "dependencies"
	StepStopService  = "stop-service"
	StepStartService = "start-service"
)

// ErrUntrackedBranch is returned for branches without a deploy environment.
var ErrUntrackedBranch = errors.New("branch is not tracked by any deploy environment")

// Target is the SSH endpoint of an environment.
type Target struct {
	Host       string
	Port       int
	Username   string
	PrivateKey []byte
}

// Address returns host:port.
func (t Target) Address() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// Validate checks that the target is complete
func (t Target) Validate() error {
	var missing []string
	if t.Host == "" {
		missing = append(missing, "host")
	}
	if t.Username == "" {
		missing = append(missing, "username")
	}
	if len(t.PrivateKey) == 0 {
		missing = append(missing, "private key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("incomplete deploy target: missing %s", strings.Join(missing, ", "))
	}
	if t.Port < 1 || t.Port > 65535 {
		return fmt.Errorf("invalid ssh port %d", t.Port)
	}
	return nil
}

// Step is one remote shell command.
type Step struct {
	Name    string
	Command string
}

// Environment binds a branch to a host directory and service unit.
type Environment struct {
	Name        string
	Branch      string
	RemoteDir   string
	ServiceUnit string
	Steps       []Step
}

// Pipeline maps tracked branches to environments.
type Pipeline struct {
	environments []Environment
}

// NewPipeline creates a Pipeline. Environments without explicit steps get DefaultSteps.
func NewPipeline(environments []Environment) *Pipeline {
	envs := make([]Environment, len(environments))
	for i, env := range environments {
		if len(env.Steps) == 0 {
			env.Steps = DefaultSteps(env.Branch, env.RemoteDir, env.ServiceUnit)
		}
		envs[i] = env
	}
	return &Pipeline{environments: envs}
}

// Resolve returns the environment tracking branch. A "refs/heads/" prefix is accepted.
func (p *Pipeline) Resolve(branch string) (*Environment, error) {
	branch = strings.TrimPrefix(branch, "refs/heads/")
	for i := range p.environments {
		if p.environments[i].Branch == branch {
			env := p.environments[i]
			return &env, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUntrackedBranch, branch)
}

// Environments returns the configured environments.
func (p *Pipeline) Environments() []Environment {
	return append([]Environment(nil), p.environments...)
}

// DefaultSteps pulls branch into remoteDir, checks the Go toolchain, downloads
// modules and rebuilds the server, then restarts serviceUnit.
func DefaultSteps(branch, remoteDir, serviceUnit string) []Step {
	dir := "cd " + ShellQuote(remoteDir) + " && "
	unit := ShellQuote(serviceUnit)
	return []Step{
		{Name: StepPull, Command: dir + "git pull origin " + ShellQuote(branch)},
		{Name: StepToolchain, Command: dir + "go version"},
		{Name: StepDependencies, Command: dir + "go mod download && go build -o bin/rms-rest-api ./cmd/rms-rest-api"},
		{Name: StepStopService, Command: "sudo systemctl stop " + unit},
		{Name: StepStartService, Command: "sudo systemctl start " + unit},
	}
}

// ShellQuote quotes s for a POSIX shell.
func ShellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./:@%+=", r))
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// ExitError reports a remote command that exited non-zero.
type ExitError struct {
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("remote command exited with status %d", e.Status)
}

// StepError identifies the step a deploy stopped at.
type StepError struct {
	Step       string
	ExitStatus int
	Output     string
	Err        error
}

func (e *StepError) Error() string {
	if e.ExitStatus != 0 {
		return fmt.Sprintf("deploy step %q failed with exit status %d", e.Step, e.ExitStatus)
	}
	return fmt.Sprintf("deploy step %q failed: %v", e.Step, e.Err)
}

// Unwrap returns the underlying failure.
func (e *StepError) Unwrap() error {
	return e.Err
}

// StepResult is the outcome of one step.
type StepResult struct {
	Step       Step
	Output     string
	ExitStatus int
	Duration   time.Duration
	Err        error
}

// Report summarizes a deploy run.
type Report struct {
	Environment string
	Branch      string
	Commit      string
	Host        string
	DryRun      bool
	Steps       []StepResult
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Succeeded reports whether every planned step ran without error.
func (r *Report) Succeeded() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return false
		}
	}
	return true
}
