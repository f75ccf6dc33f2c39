package deploy

import "context"

// Executor runs commands on a connected remote host.
type Executor interface {
	// Run executes command and returns its combined output. A non-zero exit is
	// reported as *ExitError.
	Run(ctx context.Context, command string) (string, error)
	Close() error
}

// Dialer opens an Executor to a Target.
type Dialer interface {
	Dial(ctx context.Context, target Target) (Executor, error)
}

// DeployService deploys a pushed branch.
type DeployService interface {
	// Plan resolves the environment of branch without connecting anywhere.
	Plan(branch string) (*Environment, error)
	// Deploy runs the plan of branch on target and stops at the first failing step.
	Deploy(ctx context.Context, branch, commit string, target Target) (*Report, error)
}
