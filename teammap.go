// Package teammap builds a journal's contributor directory: it reads the
// user and publication registries, gives every contributor a stable URL
// slug, and writes one profile page per contributor and locale, plus
// redirect stubs for slugs that moved.
//
// The slug snapshot is the only state carried between runs. It is written
// last, after every page, so a failed or canceled run leaves the previous
// snapshot in place.
package teammap

import (
	"context"
	"fmt"

	"github.com/agentstation/teammap/internal/site"
	"github.com/agentstation/teammap/internal/sources"
	"github.com/agentstation/teammap/pkg/build"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
)

// Builder builds and maintains the contributor directory.
type Builder interface {
	// Build rebuilds every profile from the registries.
	Build(ctx context.Context, opts ...RunOption) (*build.Result, error)

	// Update refreshes a single registered user's profile. Other profiles
	// are taken from the snapshot as they are.
	Update(ctx context.Context, id string, opts ...RunOption) (*build.Result, error)

	// VerifyClaim checks a claim token against a placeholder profile
	// without changing anything.
	VerifyClaim(ctx context.Context, id, token string) (*build.ClaimResult, error)
}

// builder is the internal implementation of the Builder interface
type builder struct {
	config   *config
	users    sources.UserRegistry
	pubs     sources.PublicationRegistry
	renderer *site.Renderer
}

// New creates a Builder reading from the given registries.
func New(users sources.UserRegistry, pubs sources.PublicationRegistry, opts ...Option) (Builder, error) {
	if users == nil {
		return nil, errors.NewConfigError("registry", "user registry is required", nil)
	}
	if pubs == nil {
		return nil, errors.NewConfigError("registry", "publication registry is required", nil)
	}

	b := &builder{
		config: defaultConfig(),
		users:  users,
		pubs:   pubs,
	}
	for _, opt := range opts {
		if err := opt(b.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	renderer, err := site.NewRenderer(b.config.site)
	if err != nil {
		return nil, err
	}
	b.renderer = renderer

	return b, nil
}

// begin prepares the run context: options, timeout and logger.
func (b *builder) begin(ctx context.Context, opts []RunOption) (context.Context, context.CancelFunc, *build.Options, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := build.New(opts...)
	if err := options.Validate(); err != nil {
		return nil, nil, nil, err
	}

	cancel := context.CancelFunc(func() {})
	if options.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
	}
	if b.config.logger != nil {
		ctx = logging.WithLogger(ctx, b.config.logger)
	}
	return ctx, cancel, options, nil
}
