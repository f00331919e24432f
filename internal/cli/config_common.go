package cli

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vvka-141/codesnap/internal/config"
	"github.com/vvka-141/codesnap/pkg/codesnap"
)

// Environment variables consulted between codesnap.yaml and flags.
const (
	envRoot       = "CODESNAP_ROOT"
	envOutput     = "CODESNAP_OUTPUT"
	envExtensions = "CODESNAP_EXTENSIONS"
)

// envConfig holds the CODESNAP_* overrides. Unset or empty variables leave
// the lower layers untouched.
type envConfig struct {
	Root       string   `env:"CODESNAP_ROOT"`
	Output     string   `env:"CODESNAP_OUTPUT"`
	Extensions []string `env:"CODESNAP_EXTENSIONS" envSeparator:","`
}

// resolveConfig builds the run configuration.
// Priority (highest to lowest): flags and root argument > environment > codesnap.yaml > defaults
func resolveConfig(args []string, flags snapshotFlagValues) (codesnap.Config, error) {
	cfg := codesnap.DefaultConfig()

	projectCfg, err := loadProjectConfig(flags.configPath)
	if err != nil {
		return codesnap.Config{}, err
	}
	if projectCfg != nil {
		if err := applyProjectConfig(&cfg, projectCfg); err != nil {
			return codesnap.Config{}, err
		}
	}

	if err := applyEnvironment(&cfg); err != nil {
		return codesnap.Config{}, err
	}

	if err := applyFlags(&cfg, flags); err != nil {
		return codesnap.Config{}, err
	}
	if len(args) > 0 {
		cfg.Root = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return codesnap.Config{}, err
	}
	return cfg, nil
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if neither ./codesnap.yaml nor ./codesnap.toml exists (not an error).
// An explicit path that does not exist is an error.
func loadProjectConfig(explicitPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	if explicitPath != "" {
		projectCfg, err := config.LoadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to load %s: %w", codesnap.ErrInvalidConfig, explicitPath, err)
		}
		return projectCfg, nil
	}

	projectCfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("%w: failed to load %s: %w", codesnap.ErrInvalidConfig, config.ConfigFileName, err)
	}
	return projectCfg, nil
}

func applyProjectConfig(cfg *codesnap.Config, projectCfg *config.ProjectConfig) error {
	if projectCfg.Root != "" {
		cfg.Root = projectCfg.Root
	}
	if projectCfg.Output != "" {
		cfg.Output = projectCfg.Output
	}
	if len(projectCfg.Extensions) > 0 {
		cfg.Extensions = codesnap.NewExtensionSet(projectCfg.Extensions...)
	}
	return applyPolicies(cfg, projectCfg.Decode, projectCfg.OnWalkError)
}

func applyEnvironment(cfg *codesnap.Config) error {
	envCfg, err := env.ParseAs[envConfig]()
	if err != nil {
		return fmt.Errorf("%w: %w", codesnap.ErrInvalidConfig, err)
	}
	if envCfg.Root != "" {
		cfg.Root = envCfg.Root
	}
	if envCfg.Output != "" {
		cfg.Output = envCfg.Output
	}
	if exts := codesnap.NewExtensionSet(envCfg.Extensions...); len(exts) > 0 {
		cfg.Extensions = exts
	}
	return nil
}

func applyFlags(cfg *codesnap.Config, flags snapshotFlagValues) error {
	if flags.output != "" {
		cfg.Output = flags.output
	}
	if len(flags.extensions) > 0 {
		cfg.Extensions = codesnap.NewExtensionSet(flags.extensions...)
	}
	return applyPolicies(cfg, flags.decode, flags.onWalkError)
}

// applyPolicies overrides the policies that are set; empty values leave cfg unchanged.
func applyPolicies(cfg *codesnap.Config, decode, onWalkError string) error {
	if decode != "" {
		policy, err := codesnap.ParseDecodePolicy(decode)
		if err != nil {
			return err
		}
		cfg.Decode = policy
	}
	if onWalkError != "" {
		policy, err := codesnap.ParseWalkErrorPolicy(onWalkError)
		if err != nil {
			return err
		}
		cfg.OnWalkError = policy
	}
	return nil
}
