// Package constants provides shared constants used throughout teammap:
// timeouts, file permissions, default paths and the fixed values of the
// directory's URL scheme.
package constants

import "time"

// Timeout constants
const (
	// DefaultHTTPTimeout is the timeout for one registry request
	DefaultHTTPTimeout = 30 * time.Second

	// RegistryFetchTimeout bounds the concurrent read of both registries
	RegistryFetchTimeout = 2 * time.Minute

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// RetryBackoff is the base backoff duration for retries
	RetryBackoff = 1 * time.Second

	// MaxRetryBackoff is the maximum backoff duration for retries
	MaxRetryBackoff = 30 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants
const (
	// MaxRetries is the default number of retries for a failed registry request
	MaxRetries = 3

	// ClaimTokenLength is the number of hex characters kept from a claim digest
	ClaimTokenLength = 32
)

// Default values
const (
	// DefaultSnapshotPath is the snapshot file name the site has always used
	DefaultSnapshotPath = "Team.json"

	// DefaultOutputDir is where pages are written when none is configured
	DefaultOutputDir = "team"

	// DefaultConfigName is the config file name looked up in home and cwd
	DefaultConfigName = ".teammap"

	// EnvPrefix prefixes every environment variable read by viper
	EnvPrefix = "TEAMMAP"

	// DefaultClaimSalt is used when no claim salt is configured. Deployments
	// are expected to set their own.
	DefaultClaimSalt = "teammap-claim-v1"

	// DefaultMailDomain hosts the institutional addresses of the editors-in-chief
	DefaultMailDomain = "revistacienciasestudiantes.com"
)

// Identity constants
const (
	// AnonymousIDPrefix prefixes the id of every synthesized placeholder
	AnonymousIDPrefix = "anon-"

	// FallbackSlug is used when neither the name nor the id yields a slug
	FallbackSlug = "profile"

	// TeamPathPrefix is the site path profile pages live under
	TeamPathPrefix = "/team/"

	// PageExtension is the file extension of rendered pages
	PageExtension = ".html"
)
