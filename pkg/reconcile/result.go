package reconcile

import (
	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/snapshot"
)

// DecisionKind says how a record's slug was chosen.
type DecisionKind string

// Decision kinds.
const (
	// Kept means the slug stored for the id was reused
	Kept DecisionKind = "kept"
	// Assigned means the name-derived slug was free
	Assigned DecisionKind = "assigned"
	// Suffixed means a numeric variant was needed to avoid another id
	Suffixed DecisionKind = "suffixed"
)

// Decision records the slug chosen for one id.
type Decision struct {
	ID   string
	Slug string
	Kind DecisionKind
	// From is the slug given up by a forced change, if any.
	From string
}

// Stats counts decisions by kind.
type Stats struct {
	Kept      int `json:"kept" yaml:"kept"`
	Assigned  int `json:"assigned" yaml:"assigned"`
	Suffixed  int `json:"suffixed" yaml:"suffixed"`
	Reslugged int `json:"reslugged" yaml:"reslugged"`
}

func (s *Stats) count(kind DecisionKind) {
	switch kind {
	case Kept:
		s.Kept++
	case Assigned:
		s.Assigned++
	case Suffixed:
		s.Suffixed++
	}
}

// Result is the outcome of one reconciliation.
type Result struct {
	// Records carry their assigned slugs, in input order
	Records []contributors.Contributor

	// Snapshot replaces the snapshot passed in
	Snapshot *snapshot.Snapshot

	// Decisions lists one entry per record, in input order
	Decisions []Decision

	Stats Stats
}
