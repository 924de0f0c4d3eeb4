// Package appcontext provides the shared application context interface
// used by all commands.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/teammap"
)

// Interface defines what commands need from the application. The App
// struct from cmd/teammap/app implements it; tests use Mock.
type Interface interface {
	// Builder returns the directory builder, creating it lazily from the
	// loaded configuration.
	Builder() (teammap.Builder, error)

	// SnapshotPath returns the configured snapshot file.
	SnapshotPath() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
