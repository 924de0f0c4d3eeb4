package build

import (
	"fmt"
	"strings"

	"github.com/agentstation/teammap/pkg/differ"
	"github.com/agentstation/teammap/pkg/reconcile"
)

// Result is the outcome of a build or update run.
type Result struct {
	// Changeset compares the previous snapshot with the new one
	Changeset *differ.Changeset `json:"changeset" yaml:"changeset"`

	// Redirects are the stubs emitted for moved slugs
	Redirects []differ.Redirect `json:"redirects" yaml:"redirects"`

	// Slugs counts reconciliation decisions
	Slugs reconcile.Stats `json:"slugs" yaml:"slugs"`

	Contributors int `json:"contributors" yaml:"contributors"` // Profiles in the new snapshot
	Anonymous    int `json:"anonymous" yaml:"anonymous"`       // Placeholders among them
	Attached     int `json:"attached" yaml:"attached"`         // Publication references attached

	// Orphaned lists listed publications that reached no profile
	Orphaned []string `json:"orphaned,omitempty" yaml:"orphaned,omitempty"`

	PagesRendered int `json:"pagesRendered" yaml:"pagesRendered"`
	PagesWritten  int `json:"pagesWritten" yaml:"pagesWritten"`

	// Degraded is set when publications could not be read
	Degraded bool `json:"degraded" yaml:"degraded"`
	DryRun   bool `json:"dryRun" yaml:"dryRun"`

	// Target is the id of a single-identity update
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	OutputDir    string `json:"outputDir" yaml:"outputDir"`
	SnapshotPath string `json:"snapshotPath" yaml:"snapshotPath"`
}

// HasChanges returns true if the run changed the snapshot.
func (r *Result) HasChanges() bool {
	return r != nil && r.Changeset.HasChanges()
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	var parts []string
	if r.DryRun {
		parts = append(parts, "(Dry run)")
	}
	if r.Degraded {
		parts = append(parts, "(No publications)")
	}

	summary := fmt.Sprintf("%d contributors, %d redirects, %d pages", r.Contributors, len(r.Redirects), r.PagesRendered)
	if r.HasChanges() {
		summary += fmt.Sprintf(", %d changes", r.Changeset.Summary.TotalChanges)
	} else {
		summary += ", no changes"
	}
	if len(parts) > 0 {
		summary += " " + strings.Join(parts, " ")
	}
	return summary
}

// ClaimResult is the outcome of checking a claim token.
type ClaimResult struct {
	ID     string `json:"id" yaml:"id"`
	Valid  bool   `json:"valid" yaml:"valid"`
	Reason string `json:"reason" yaml:"reason"`
}
