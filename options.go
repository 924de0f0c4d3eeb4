package teammap

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/teammap/internal/site"
	"github.com/agentstation/teammap/pkg/build"
	"github.com/agentstation/teammap/pkg/constants"
	"github.com/agentstation/teammap/pkg/errors"
)

// Option is a function that configures a Builder.
type Option func(*config) error

// RunOption configures one Build or Update run.
type RunOption = build.Option

// Run options, re-exported for callers of the root package.
var (
	WithDryRun  = build.WithDryRun
	WithReslug  = build.WithReslug
	WithTimeout = build.WithTimeout
)

type config struct {
	snapshotPath string
	outputDir    string
	claimSalt    string
	site         site.Config
	logger       *zerolog.Logger
	hooks        *Hooks
}

func defaultConfig() *config {
	return &config{
		snapshotPath: constants.DefaultSnapshotPath,
		outputDir:    constants.DefaultOutputDir,
		claimSalt:    constants.DefaultClaimSalt,
		site:         site.DefaultConfig(),
	}
}

// WithSnapshotPath sets the snapshot file. A .yaml or .yml extension
// selects YAML.
func WithSnapshotPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewConfigError("snapshot_path", "path must not be empty", nil)
		}
		c.snapshotPath = path
		return nil
	}
}

// WithOutputDir sets the directory pages are written to.
func WithOutputDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.NewConfigError("output_dir", "directory must not be empty", nil)
		}
		c.outputDir = dir
		return nil
	}
}

// WithClaimSalt sets the salt claim tokens are derived with.
func WithClaimSalt(salt string) Option {
	return func(c *config) error {
		if salt == "" {
			return errors.NewConfigError("claim_salt", "salt must not be empty", nil)
		}
		c.claimSalt = salt
		return nil
	}
}

// WithSiteConfig sets the page rendering settings.
func WithSiteConfig(cfg site.Config) Option {
	return func(c *config) error {
		c.site = cfg
		return nil
	}
}

// WithLogger sets the logger used when the run context carries none.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithHooks registers change hooks.
func WithHooks(h *Hooks) Option {
	return func(c *config) error {
		c.hooks = h
		return nil
	}
}
