// Package build provides the options and result of a directory build.
package build

import (
	"time"

	"github.com/agentstation/teammap/pkg/errors"
)

// Options controls one build or update run.
type Options struct {
	DryRun  bool          // Run every stage but write nothing
	Timeout time.Duration // Timeout for the whole run, zero for none

	// Reslug lists ids whose slug is re-derived from the current name
	Reslug []string
}

// Apply applies the given options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Defaults returns the default run options.
func Defaults() *Options {
	return &Options{
		DryRun:  false,
		Timeout: 0,
		Reslug:  nil,
	}
}

// New returns the defaults with opts applied.
func New(opts ...Option) *Options {
	return Defaults().Apply(opts...)
}

// Validate checks the options.
func (o *Options) Validate() error {
	if o.Timeout < 0 {
		return &errors.ValidationError{
			Field:   "Timeout",
			Value:   o.Timeout,
			Message: "timeout must be non-negative",
		}
	}
	for _, id := range o.Reslug {
		if id == "" {
			return &errors.ValidationError{
				Field:   "Reslug",
				Value:   id,
				Message: "contributor id must not be empty",
			}
		}
	}
	return nil
}

// Option is a function that configures Options.
type Option func(*Options)

// WithDryRun configures dry run mode.
func WithDryRun(dryRun bool) Option {
	return func(opts *Options) {
		opts.DryRun = dryRun
	}
}

// WithTimeout configures the run timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

// WithReslug forces a new slug for the given contributor ids.
func WithReslug(ids ...string) Option {
	return func(opts *Options) {
		opts.Reslug = append(opts.Reslug, ids...)
	}
}
