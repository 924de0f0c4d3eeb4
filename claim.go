package teammap

import (
	"context"

	"github.com/agentstation/teammap/pkg/anonymous"
	"github.com/agentstation/teammap/pkg/build"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
	"github.com/agentstation/teammap/pkg/snapshot"
)

// VerifyClaim checks token against the placeholder profile id.
func (b *builder) VerifyClaim(ctx context.Context, id, token string) (*build.ClaimResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if b.config.logger != nil {
		ctx = logging.WithLogger(ctx, b.config.logger)
	}
	return VerifyClaim(ctx, b.config.snapshotPath, id, token)
}

// VerifyClaim checks token against the placeholder profile id stored in the
// snapshot at snapshotPath. It needs no registry and changes nothing. A
// rejected token is reported in the result, not as an error.
func VerifyClaim(ctx context.Context, snapshotPath, id, token string) (*build.ClaimResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		return nil, err
	}
	c, ok := snap.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("contributor", id)
	}

	outcome := anonymous.Verify(c, token)
	logging.FromContext(logging.WithContributor(ctx, id)).Info().
		Str("outcome", string(outcome)).
		Msg("Claim verified")

	return &build.ClaimResult{ID: id, Valid: outcome.Valid(), Reason: string(outcome)}, nil
}
