package differ

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/teammap/pkg/contributors"
)

// Move is an id whose slug changed between snapshots.
type Move struct {
	ID       string `json:"id" yaml:"id"`
	FromSlug string `json:"from" yaml:"from"`
	ToSlug   string `json:"to" yaml:"to"`
}

// Rename is an id whose display name changed.
type Rename struct {
	ID   string `json:"id" yaml:"id"`
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Redirect sends readers of a retired slug to its replacement, in one locale.
type Redirect struct {
	FromSlug string              `json:"from" yaml:"from"`
	ToSlug   string              `json:"to" yaml:"to"`
	Locale   contributors.Locale `json:"locale" yaml:"locale"`
}

// Changeset lists what changed between two snapshots. Every list is sorted
// by id.
type Changeset struct {
	Added   []string `json:"added" yaml:"added"`
	Removed []string `json:"removed" yaml:"removed"`
	Moved   []Move   `json:"moved" yaml:"moved"`
	Renamed []Rename `json:"renamed" yaml:"renamed"`
	Summary Summary  `json:"summary" yaml:"summary"`
}

// Summary counts the entries of a Changeset.
type Summary struct {
	Added        int `json:"added" yaml:"added"`
	Removed      int `json:"removed" yaml:"removed"`
	Moved        int `json:"moved" yaml:"moved"`
	Renamed      int `json:"renamed" yaml:"renamed"`
	TotalChanges int `json:"total" yaml:"total"`
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return c != nil && c.Summary.TotalChanges > 0
}

// Redirects returns one redirect per moved slug and locale, ordered by id
// then locale. With no locales given, every supported locale is used.
// Unmoved records yield nothing, so emitting twice for the same pair of
// snapshots produces the same artifacts.
func (c *Changeset) Redirects(locales ...contributors.Locale) []Redirect {
	if c == nil {
		return nil
	}
	if len(locales) == 0 {
		locales = contributors.Locales()
	}
	out := make([]Redirect, 0, len(c.Moved)*len(locales))
	for _, m := range c.Moved {
		for _, l := range locales {
			out = append(out, Redirect{FromSlug: m.FromSlug, ToSlug: m.ToSlug, Locale: l})
		}
	}
	return out
}

// String returns a one-line summary of the changeset.
func (c *Changeset) String() string {
	if !c.HasChanges() {
		return "No changes detected"
	}

	var parts []string
	if n := c.Summary.Added; n > 0 {
		parts = append(parts, fmt.Sprintf("%d added", n))
	}
	if n := c.Summary.Removed; n > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", n))
	}
	if n := c.Summary.Moved; n > 0 {
		parts = append(parts, fmt.Sprintf("%d moved", n))
	}
	if n := c.Summary.Renamed; n > 0 {
		parts = append(parts, fmt.Sprintf("%d renamed", n))
	}
	return fmt.Sprintf("Changeset: %s (Total: %d changes)", strings.Join(parts, ", "), c.Summary.TotalChanges)
}

// Print writes a detailed, human-readable view of the changeset to w.
func (c *Changeset) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, c.String())
	if !c.HasChanges() {
		return
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, id := range c.Added {
		_, _ = fmt.Fprintf(w, "  + %s\n", id)
	}
	for _, id := range c.Removed {
		_, _ = fmt.Fprintf(w, "  - %s\n", id)
	}
	for _, m := range c.Moved {
		_, _ = fmt.Fprintf(w, "  ~ %s: %s → %s\n", m.ID, m.FromSlug, m.ToSlug)
	}
	for _, r := range c.Renamed {
		_, _ = fmt.Fprintf(w, "  * %s: %q → %q\n", r.ID, r.From, r.To)
	}
}
