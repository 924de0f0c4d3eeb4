// Package differ compares two snapshots of the directory and derives the
// redirect artifacts that keep retired profile URLs working.
package differ

import (
	"sort"

	"github.com/agentstation/teammap/pkg/snapshot"
)

// Differ handles change detection between snapshots.
type Differ interface {
	// Snapshots compares the snapshot a build started from with the one it
	// produced. Both are only read.
	Snapshots(existing, updated *snapshot.Snapshot) *Changeset
}

// differ is the default implementation of Differ.
type differ struct {
	renames bool
}

// New creates a Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{renames: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Snapshots implements Differ.
func (d *differ) Snapshots(existing, updated *snapshot.Snapshot) *Changeset {
	changeset := &Changeset{
		Added:   []string{},
		Removed: []string{},
		Moved:   []Move{},
		Renamed: []Rename{},
	}

	for _, next := range updated.Records() {
		prev, ok := existing.Get(next.ID)
		if !ok {
			changeset.Added = append(changeset.Added, next.ID)
			continue
		}
		// A record with no old slug never had a public URL to retire.
		if prev.Slug != "" && prev.Slug != next.Slug {
			changeset.Moved = append(changeset.Moved, Move{ID: next.ID, FromSlug: prev.Slug, ToSlug: next.Slug})
		}
		if d.renames && prev.DisplayName != next.DisplayName {
			changeset.Renamed = append(changeset.Renamed, Rename{ID: next.ID, From: prev.DisplayName, To: next.DisplayName})
		}
	}

	for _, id := range existing.IDs() {
		if _, ok := updated.Get(id); !ok {
			changeset.Removed = append(changeset.Removed, id)
		}
	}

	sort.Strings(changeset.Added)
	sort.Strings(changeset.Removed)
	sort.Slice(changeset.Moved, func(i, j int) bool { return changeset.Moved[i].ID < changeset.Moved[j].ID })
	sort.Slice(changeset.Renamed, func(i, j int) bool { return changeset.Renamed[i].ID < changeset.Renamed[j].ID })

	changeset.Summary = Summary{
		Added:        len(changeset.Added),
		Removed:      len(changeset.Removed),
		Moved:        len(changeset.Moved),
		Renamed:      len(changeset.Renamed),
		TotalChanges: len(changeset.Added) + len(changeset.Removed) + len(changeset.Moved) + len(changeset.Renamed),
	}
	return changeset
}
