// Package reconcile assigns a unique, stable slug to every contributor of a
// build, against the snapshot persisted by the previous one.
//
// A contributor already present in the snapshot keeps its slug. Anyone else
// gets the slug of their name, or the first free numeric variant of it when
// another id holds that slug. Slugs held by ids absent from the current run,
// and slugs retired by a forced change, stay reserved for their holder.
package reconcile

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/teammap/pkg/constants"
	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
	"github.com/agentstation/teammap/pkg/slug"
	"github.com/agentstation/teammap/pkg/snapshot"
)

// Reconciler assigns slugs.
type Reconciler interface {
	// Reconcile returns records with slugs assigned, in input order, and the
	// snapshot that replaces snap. Neither input is modified.
	Reconcile(ctx context.Context, records []contributors.Contributor, snap *snapshot.Snapshot) (*Result, error)
}

// reconciler is the default implementation of Reconciler
type reconciler struct {
	reslug map[string]bool
	logger *zerolog.Logger
}

// Option configures a Reconciler
type Option func(*reconciler) error

// WithReslug forces the listed ids to have their slug derived again from
// their current name. A slug given up this way stays reserved for the same
// id so it can serve a redirect.
func WithReslug(ids ...string) Option {
	return func(r *reconciler) error {
		for _, id := range ids {
			if id == "" {
				return errors.NewValidationError("reslug", id, "empty id")
			}
			r.reslug[id] = true
		}
		return nil
	}
}

// WithLogger sets the logger used for per-record decisions. By default the
// logger carried by the context is used.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *reconciler) error {
		r.logger = logger
		return nil
	}
}

// New creates a new Reconciler with options
func New(opts ...Option) (Reconciler, error) {
	r := &reconciler{reslug: map[string]bool{}}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Reconcile implements Reconciler.
func (r *reconciler) Reconcile(ctx context.Context, records []contributors.Contributor, snap *snapshot.Snapshot) (*Result, error) {
	logger := r.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	if snap == nil {
		snap = snapshot.Empty()
	}
	if err := validate(records); err != nil {
		return nil, err
	}

	// Every slug the snapshot knows about, current or retired, starts out
	// claimed by its holder.
	index := snap.SlugIndex()

	result := &Result{Records: make([]contributors.Contributor, 0, len(records))}
	for _, in := range records {
		out := in.Clone()
		stored, known := snap.Get(in.ID)
		out.PreviousSlugs = nil
		if known {
			out.PreviousSlugs = stored.PreviousSlugs
		}

		decision := Decision{ID: in.ID}
		switch {
		case known && stored.Slug != "" && !r.reslug[in.ID]:
			out.Slug = stored.Slug
			decision.Kind = Kept

		default:
			base := baseSlug(in)
			chosen, n := claimable(index, base, in.ID)
			out.Slug = chosen
			decision.Kind = Assigned
			if n > 0 {
				decision.Kind = Suffixed
			}
			if known && stored.Slug != "" && stored.Slug != chosen {
				out.PreviousSlugs = appendUnique(out.PreviousSlugs, stored.Slug)
				decision.From = stored.Slug
				result.Stats.Reslugged++
			}
		}
		out.PreviousSlugs = without(out.PreviousSlugs, out.Slug)
		index[out.Slug] = in.ID
		decision.Slug = out.Slug

		result.Stats.count(decision.Kind)
		result.Decisions = append(result.Decisions, decision)
		result.Records = append(result.Records, out)

		logger.Debug().
			Str("contributor_id", in.ID).
			Str("slug", out.Slug).
			Str("decision", string(decision.Kind)).
			Str("previous_slug", decision.From).
			Msg("Reconciled slug")
	}

	persisted := make([]contributors.Contributor, len(result.Records))
	for i, rec := range result.Records {
		persisted[i] = rec.Persistable()
	}
	next, err := snapshot.New(persisted)
	if err != nil {
		return nil, errors.WrapResource("reconcile", "snapshot", "", err)
	}
	result.Snapshot = next

	logger.Info().
		Int("kept", result.Stats.Kept).
		Int("assigned", result.Stats.Assigned).
		Int("suffixed", result.Stats.Suffixed).
		Int("reslugged", result.Stats.Reslugged).
		Msg("Reconciled slugs")
	return result, nil
}

// baseSlug derives the unsuffixed slug for c, falling back to its id and
// then to a fixed word when the name has no usable characters.
func baseSlug(c contributors.Contributor) string {
	if s := slug.Make(c.SlugSource()); s != "" {
		return s
	}
	if s := slug.Make(c.ID); s != "" {
		return s
	}
	return constants.FallbackSlug
}

// claimable returns base, or base with the smallest numeric suffix, that no
// id other than id holds, along with the suffix used (0 for none).
func claimable(index map[string]string, base, id string) (string, int) {
	if owner, taken := index[base]; !taken || owner == id {
		return base, 0
	}
	for n := 1; ; n++ {
		candidate := slug.WithSuffix(base, n)
		if owner, taken := index[candidate]; !taken || owner == id {
			return candidate, n
		}
	}
}

func validate(records []contributors.Contributor) error {
	seen := make(map[string]bool, len(records))
	for _, c := range records {
		if c.ID == "" {
			return errors.NewValidationError("uid", c.DisplayName, "contributor has no id")
		}
		if seen[c.ID] {
			return errors.NewValidationError("uid", c.ID, "duplicate contributor id")
		}
		seen[c.ID] = true
	}
	return nil
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func without(list []string, s string) []string {
	out := list[:0:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
