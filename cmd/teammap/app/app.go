// Package app provides the application context and dependency management
// for the teammap CLI: configuration, logging and the lazily built
// directory builder.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/teammap"
	"github.com/agentstation/teammap/internal/appcontext"
	"github.com/agentstation/teammap/internal/config"
	"github.com/agentstation/teammap/internal/site"
	"github.com/agentstation/teammap/pkg/errors"
)

var _ appcontext.Interface = (*App)(nil)

// App represents the teammap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Builder instance (lazy-initialized, singleton)
	mu      sync.Mutex
	builder teammap.Builder
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	cfg, err := LoadConfig("")
	if err != nil {
		return nil, errors.NewConfigError("config", "loading configuration", err)
	}
	app.config = cfg

	logger := NewLogger(cfg)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// SnapshotPath returns the configured snapshot file.
func (a *App) SnapshotPath() string {
	return a.config.SnapshotPath
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Builder returns the builder, creating it from the configuration on first
// use. Missing registry settings or secrets fail here, before any run.
func (a *App) Builder() (teammap.Builder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.builder != nil {
		return a.builder, nil
	}

	users, pubs, err := a.registries()
	if err != nil {
		return nil, err
	}

	opts := []teammap.Option{
		teammap.WithSnapshotPath(a.config.SnapshotPath),
		teammap.WithOutputDir(a.config.OutputDir),
		teammap.WithSiteConfig(a.siteConfig()),
		teammap.WithLogger(a.logger),
	}
	if salt := config.GetString("claim_salt"); salt != "" {
		opts = append(opts, teammap.WithClaimSalt(salt))
	}

	b, err := teammap.New(users, pubs, opts...)
	if err != nil {
		return nil, err
	}
	a.builder = b
	return b, nil
}

func (a *App) siteConfig() site.Config {
	cfg := site.DefaultConfig()
	for l, name := range a.config.SiteName {
		if name != "" {
			cfg.SiteName[l] = name
		}
	}
	cfg.BaseURL = a.config.BaseURL
	if a.config.MailDomain != "" {
		cfg.MailDomain = a.config.MailDomain
	}
	if a.config.Address != "" {
		cfg.Address = a.config.Address
	}
	return cfg
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithBuilder sets a custom builder (useful for testing).
func WithBuilder(b teammap.Builder) Option {
	return func(a *App) error {
		a.builder = b
		return nil
	}
}
