package teammap

import (
	"context"

	"github.com/agentstation/teammap/internal/site"
	"github.com/agentstation/teammap/pkg/anonymous"
	"github.com/agentstation/teammap/pkg/authorship"
	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/differ"
	"github.com/agentstation/teammap/pkg/logging"
	"github.com/agentstation/teammap/pkg/reconcile"
	"github.com/agentstation/teammap/pkg/snapshot"
)

// A run moves through four stages, each a value built from the last:
// fetched → synthesized → reconciled → matched.

// fetched holds the registry input.
type fetched struct {
	records  []contributors.Contributor
	pubs     []contributors.Publication
	degraded bool
}

// synthesized adds placeholder profiles for unregistered authors.
type synthesized struct {
	fetched
	placeholders int
}

// reconciled carries the slug decisions and the snapshot diff.
type reconciled struct {
	pubs      []contributors.Publication
	degraded  bool
	previous  *snapshot.Snapshot
	result    *reconcile.Result
	changeset *differ.Changeset
	redirects []differ.Redirect
}

// matched carries profiles with their publications attached.
type matched struct {
	reconciled
	match *authorship.Result
}

func (b *builder) synthesize(ctx context.Context, f fetched) synthesized {
	ctx = logging.WithStage(ctx, "synthesize")
	placeholders := anonymous.New(
		anonymous.WithSalt(b.config.claimSalt),
		anonymous.WithLogger(logging.FromContext(ctx)),
	).Synthesize(f.pubs)

	f.records = append(f.records, placeholders...)
	return synthesized{fetched: f, placeholders: len(placeholders)}
}

func (b *builder) reconcile(ctx context.Context, s synthesized, previous *snapshot.Snapshot, reslug []string) (reconciled, error) {
	ctx = logging.WithStage(ctx, "reconcile")
	r, err := reconcile.New(
		reconcile.WithReslug(reslug...),
		reconcile.WithLogger(logging.FromContext(ctx)),
	)
	if err != nil {
		return reconciled{}, err
	}
	result, err := r.Reconcile(ctx, s.records, previous)
	if err != nil {
		return reconciled{}, err
	}

	changeset := differ.New().Snapshots(previous, result.Snapshot)
	redirects := changeset.Redirects()
	logging.FromContext(ctx).Info().
		Int("moved", changeset.Summary.Moved).
		Int("redirects", len(redirects)).
		Msg("Computed changeset")

	return reconciled{
		pubs:      s.pubs,
		degraded:  s.degraded,
		previous:  previous,
		result:    result,
		changeset: changeset,
		redirects: redirects,
	}, nil
}

func (b *builder) match(ctx context.Context, r reconciled) matched {
	ctx = logging.WithStage(ctx, "match")
	m := authorship.New(authorship.WithLogger(logging.FromContext(ctx))).Match(r.result.Records, r.pubs)
	return matched{reconciled: r, match: m}
}

// render renders every profile, or only target's when target is set, plus
// every redirect.
func (b *builder) render(m matched, target string) ([]site.Page, error) {
	if target == "" {
		return b.renderer.Render(m.match.Contributors, m.redirects)
	}

	var profiles []contributors.Contributor
	for _, c := range m.match.Contributors {
		if c.ID == target {
			profiles = append(profiles, c)
		}
	}
	return b.renderer.Render(profiles, m.redirects)
}
