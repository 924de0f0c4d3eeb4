package teammap

import (
	"context"

	"github.com/agentstation/teammap/internal/site"
	"github.com/agentstation/teammap/internal/sources"
	"github.com/agentstation/teammap/pkg/build"
	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
	"github.com/agentstation/teammap/pkg/snapshot"
)

// Build rebuilds the whole directory.
func (b *builder) Build(ctx context.Context, opts ...RunOption) (*build.Result, error) {
	ctx, cancel, options, err := b.begin(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer cancel()

	// Step 1: Load the previous snapshot
	previous := snapshot.LoadOrEmpty(ctx, b.config.snapshotPath)

	// Step 2: Read both registries
	raw, err := sources.FetchAll(logging.WithStage(ctx, "fetch"), b.users, b.pubs)
	if err != nil {
		return nil, err
	}
	f := fetched{
		records:  contributors.FromUsers(raw.Users),
		pubs:     raw.Publications,
		degraded: raw.Degraded(),
	}

	// Step 3: Add placeholders for unregistered authors
	s := b.synthesize(ctx, f)

	// Step 4: Assign slugs and diff against the previous snapshot
	r, err := b.reconcile(ctx, s, previous, options.Reslug)
	if err != nil {
		return nil, err
	}

	// Step 5: Attach publications
	m := b.match(ctx, r)

	// Step 6: Render in memory, then write and persist
	return b.finish(ctx, m, "", options)
}

// Update refreshes the profile of one registered user.
func (b *builder) Update(ctx context.Context, id string, opts ...RunOption) (*build.Result, error) {
	if id == "" {
		return nil, errors.NewValidationError("id", id, "user id must not be empty")
	}
	ctx, cancel, options, err := b.begin(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer cancel()
	for _, other := range options.Reslug {
		if other != id {
			return nil, errors.NewValidationError("reslug", other, "update can only reslug its own target")
		}
	}
	ctx = logging.WithContributor(ctx, id)

	previous := snapshot.LoadOrEmpty(ctx, b.config.snapshotPath)

	user, raw, err := sources.FetchUser(logging.WithStage(ctx, "fetch"), b.users, b.pubs, id)
	if err != nil {
		return nil, err
	}

	// The target replaces its stored record in place; everyone else is
	// carried over from the snapshot.
	target := user.Contributor()
	records := make([]contributors.Contributor, 0, previous.Len()+1)
	replaced := false
	for _, c := range previous.Records() {
		if c.ID == id {
			records = append(records, target)
			replaced = true
			continue
		}
		records = append(records, c)
	}
	if !replaced {
		records = append(records, target)
	}

	s := synthesized{fetched: fetched{records: records, pubs: raw.Publications, degraded: raw.Degraded()}}
	for _, c := range records {
		if c.IsAnonymous {
			s.placeholders++
		}
	}

	r, err := b.reconcile(ctx, s, previous, options.Reslug)
	if err != nil {
		return nil, err
	}
	m := b.match(ctx, r)

	return b.finish(ctx, m, id, options)
}

// finish renders every page in memory, then writes pages and finally the
// snapshot. Nothing is written on a dry run.
func (b *builder) finish(ctx context.Context, m matched, target string, options *build.Options) (*build.Result, error) {
	logger := logging.FromContext(ctx)

	pages, err := b.render(m, target)
	if err != nil {
		return nil, err
	}

	result := &build.Result{
		Changeset:     m.changeset,
		Redirects:     m.redirects,
		Slugs:         m.result.Stats,
		Contributors:  len(m.result.Records),
		Attached:      m.match.Attached,
		Orphaned:      m.match.Orphaned,
		PagesRendered: len(pages),
		Degraded:      m.degraded,
		DryRun:        options.DryRun,
		Target:        target,
		OutputDir:     b.config.outputDir,
		SnapshotPath:  b.config.snapshotPath,
	}
	for _, c := range m.result.Records {
		if c.IsAnonymous {
			result.Anonymous++
		}
	}

	if options.DryRun {
		logger.Info().Bool("dry_run", true).Msg("Dry run completed - nothing written")
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	writer, err := site.NewWriter(b.config.outputDir, site.WithWriterLogger(logger))
	if err != nil {
		return nil, err
	}
	result.PagesWritten, err = writer.Write(ctx, pages)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := snapshot.Save(b.config.snapshotPath, m.result.Snapshot); err != nil {
		return nil, err
	}
	logger.Info().
		Str("path", b.config.snapshotPath).
		Int("contributors", m.result.Snapshot.Len()).
		Msg("Snapshot saved")

	b.config.hooks.trigger(m.changeset, m.result.Snapshot.Get)
	return result, nil
}
