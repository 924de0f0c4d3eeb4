// Package snapshot holds the identity store: the set of contributor records
// persisted by the previous build and a reverse index from every slug they
// have held to the id that holds it.
//
// A Snapshot is an immutable value. It is loaded once per build, consulted
// read-only, and replaced by the value the reconciler returns.
package snapshot

import (
	"fmt"

	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/errors"
)

// Snapshot is the persisted state of the directory.
type Snapshot struct {
	records []contributors.Contributor
	byID    map[string]int
	bySlug  map[string]string
}

// Empty returns a snapshot with no records.
func Empty() *Snapshot {
	return &Snapshot{
		byID:   map[string]int{},
		bySlug: map[string]string{},
	}
}

// New builds a snapshot from records, in order. It fails when two records
// share an id, or when one slug (current or previous) is claimed by two ids.
func New(records []contributors.Contributor) (*Snapshot, error) {
	s := &Snapshot{
		records: make([]contributors.Contributor, 0, len(records)),
		byID:    make(map[string]int, len(records)),
		bySlug:  make(map[string]string, len(records)),
	}
	for i, r := range records {
		if r.ID == "" {
			return nil, errors.NewValidationError("uid", r.DisplayName, fmt.Sprintf("record %d has no id", i))
		}
		if _, dup := s.byID[r.ID]; dup {
			return nil, errors.NewValidationError("uid", r.ID, "duplicate id")
		}
		if err := s.claim(r.Slug, r.ID); err != nil {
			return nil, err
		}
		for _, prev := range r.PreviousSlugs {
			if err := s.claim(prev, r.ID); err != nil {
				return nil, err
			}
		}
		s.byID[r.ID] = len(s.records)
		s.records = append(s.records, r.Clone())
	}
	return s, nil
}

func (s *Snapshot) claim(slug, id string) error {
	if slug == "" {
		return nil
	}
	if owner, ok := s.bySlug[slug]; ok && owner != id {
		return errors.NewValidationError("slug", slug, fmt.Sprintf("claimed by both %s and %s", owner, id))
	}
	s.bySlug[slug] = id
	return nil
}

// Len returns the number of records.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns a copy of the records in stored order.
func (s *Snapshot) Records() []contributors.Contributor {
	if s == nil {
		return nil
	}
	out := make([]contributors.Contributor, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Get returns the record stored for id.
func (s *Snapshot) Get(id string) (contributors.Contributor, bool) {
	if s == nil {
		return contributors.Contributor{}, false
	}
	i, ok := s.byID[id]
	if !ok {
		return contributors.Contributor{}, false
	}
	return s.records[i].Clone(), true
}

// Owner returns the id holding slug, current or previous.
func (s *Snapshot) Owner(slug string) (string, bool) {
	if s == nil {
		return "", false
	}
	id, ok := s.bySlug[slug]
	return id, ok
}

// SlugIndex returns a copy of the slug to id index.
func (s *Snapshot) SlugIndex() map[string]string {
	out := make(map[string]string, s.Len())
	if s == nil {
		return out
	}
	for k, v := range s.bySlug {
		out[k] = v
	}
	return out
}

// IDs returns the stored ids in order.
func (s *Snapshot) IDs() []string {
	if s == nil {
		return nil
	}
	return contributors.IDs(s.records)
}
