package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Deploy defaults matching the host layout of the deployed service
const (
	DefaultRemoteDir     = "/home/fastapi-rms"
	DefaultServiceUnit   = "fastapi-rms.service"
	DefaultDeployTimeout = 10 * time.Minute
)

// DeployStepSettings overrides a single remote command of an environment
type DeployStepSettings struct {
	Name    string `yaml:"name" validate:"required"`
	Command string `yaml:"command" validate:"required"`
}

// DeployEnvironmentSettings binds a tracked branch to a deploy environment
type DeployEnvironmentSettings struct {
	Name        string               `yaml:"name" validate:"required"`
	Branch      string               `yaml:"branch" validate:"required"`
	RemoteDir   string               `yaml:"remote_dir" validate:"required"`
	ServiceUnit string               `yaml:"service_unit" validate:"required"`
	Steps       []DeployStepSettings `yaml:"steps" validate:"omitempty,dive"`
}

// DeployConfig holds the settings of the deploy command. Credentials are never
// part of the file; they are read from the environment at deploy time.
type DeployConfig struct {
	Timeout        time.Duration               `yaml:"timeout" validate:"min=0"`
	KnownHostsPath string                      `yaml:"known_hosts_path"`
	Environments   []DeployEnvironmentSettings `yaml:"environments" validate:"required,min=1,dive"`
}

// DefaultDeployConfig returns the two tracked environments: develop deploys to DEV
// and main deploys to PROD.
func DefaultDeployConfig() *DeployConfig {
	return &DeployConfig{
		Timeout: DefaultDeployTimeout,
		Environments: []DeployEnvironmentSettings{
			{Name: "DEV", Branch: "develop", RemoteDir: DefaultRemoteDir, ServiceUnit: DefaultServiceUnit},
			{Name: "PROD", Branch: "main", RemoteDir: DefaultRemoteDir, ServiceUnit: DefaultServiceUnit},
		},
	}
}

// Validate checks the settings and that branches and names are unique
func (c *DeployConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for DeployConfig: %w", err)
	}

	names := map[string]bool{}
	branches := map[string]bool{}
	for _, env := range c.Environments {
		if names[env.Name] {
			return fmt.Errorf("duplicate deploy environment %q", env.Name)
		}
		if branches[env.Branch] {
			return fmt.Errorf("branch %q is bound to more than one environment", env.Branch)
		}
		names[env.Name] = true
		branches[env.Branch] = true
	}

	return nil
}

// LoadDeployConfig reads the deploy configuration from path. An empty path yields
// the defaults.
func LoadDeployConfig(path string) (*DeployConfig, error) {
	cfg := DefaultDeployConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read deploy config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse deploy config %s: %w", path, err)
		}
	}

	if err := overrideDuration(&cfg.Timeout, "DEPLOY_TIMEOUT"); err != nil {
		return nil, err
	}
	overrideString(&cfg.KnownHostsPath, "SSH_KNOWN_HOSTS")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deploy configuration: %w", err)
	}

	return cfg, nil
}
