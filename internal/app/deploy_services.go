package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/deploy"
	"github.com/MGTheTrain/rms/internal/pkg/logger"
)

// deployService implements the DeployService interface. It runs the steps of
// the environment tracking a branch over one remote session, strictly in
// order, and stops at the first failure. There is no retry and no rollback.
type deployService struct {
	pipeline *deploy.Pipeline
	dialer   deploy.Dialer
	dryRun   bool
	logger   logger.Logger
	now      func() time.Time
}

// NewDeployService creates a new deployService instance. With dryRun set the
// planned steps are reported without connecting.
func NewDeployService(pipeline *deploy.Pipeline, dialer deploy.Dialer, dryRun bool, logger logger.Logger) (deploy.DeployService, error) {
	if pipeline == nil {
		return nil, fmt.Errorf("deploy pipeline is required")
	}
	if dialer == nil && !dryRun {
		return nil, fmt.Errorf("ssh dialer is required unless running dry")
	}
	return &deployService{
		pipeline: pipeline,
		dialer:   dialer,
		dryRun:   dryRun,
		logger:   logger,
		now:      time.Now,
	}, nil
}

func (s *deployService) Plan(branch string) (*deploy.Environment, error) {
	return s.pipeline.Resolve(branch)
}

// Deploy runs the plan of branch against target. The returned report lists
// every step attempted; on failure the error is a *deploy.StepError unless
// the connection itself failed.
func (s *deployService) Deploy(ctx context.Context, branch, commit string, target deploy.Target) (*deploy.Report, error) {
	env, err := s.Plan(branch)
	if err != nil {
		return nil, err
	}

	log := s.logger.With("environment", env.Name, "branch", env.Branch, "commit", commit)
	report := &deploy.Report{
		Environment: env.Name,
		Branch:      env.Branch,
		Commit:      commit,
		Host:        target.Host,
		DryRun:      s.dryRun,
		StartedAt:   s.now(),
	}
	defer func() {
		report.FinishedAt = s.now()
	}()

	if s.dryRun {
		for _, step := range env.Steps {
			log.Info("[dry-run] ", step.Name, ": ", step.Command)
			report.Steps = append(report.Steps, deploy.StepResult{Step: step})
		}
		return report, nil
	}

	log.Info("Deploying to ", env.Name, " on ", target.Address())
	executor, err := s.dialer.Dial(ctx, target)
	if err != nil {
		return report, fmt.Errorf("failed to open remote session: %w", err)
	}
	defer func() {
		if err := executor.Close(); err != nil {
			log.Warn("Failed to close remote session: ", err)
		}
	}()

	for _, step := range env.Steps {
		if err := ctx.Err(); err != nil {
			return report, &deploy.StepError{Step: step.Name, Err: err}
		}

		started := s.now()
		output, err := executor.Run(ctx, step.Command)
		result := deploy.StepResult{
			Step:     step,
			Output:   output,
			Duration: s.now().Sub(started),
			Err:      err,
		}

		var exitErr *deploy.ExitError
		if errors.As(err, &exitErr) {
			result.ExitStatus = exitErr.Status
		}
		report.Steps = append(report.Steps, result)

		if err != nil {
			log.Error("Step ", step.Name, " failed: ", err)
			return report, &deploy.StepError{
				Step:       step.Name,
				ExitStatus: result.ExitStatus,
				Output:     output,
				Err:        err,
			}
		}
		log.Info("Step ", step.Name, " done in ", result.Duration.Round(time.Millisecond))
	}

	log.Info("Deployed ", env.Branch, " to ", env.Name)
	return report, nil
}
