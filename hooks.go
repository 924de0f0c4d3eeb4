package teammap

import (
	"sync"

	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/differ"
)

// Hook function types for directory changes
type (
	// ContributorAddedHook is called when a profile is published for the first time
	ContributorAddedHook func(c contributors.Contributor)

	// SlugMovedHook is called when a profile moves to a new slug
	SlugMovedHook func(m differ.Move)

	// ContributorRemovedHook is called when a profile is no longer published
	ContributorRemovedHook func(id string)
)

// Hooks holds callbacks run after a run has been persisted. Dry runs
// trigger nothing.
type Hooks struct {
	mu                   sync.RWMutex
	onContributorAdded   []ContributorAddedHook
	onSlugMoved          []SlugMovedHook
	onContributorRemoved []ContributorRemovedHook
}

// NewHooks returns an empty hook set.
func NewHooks() *Hooks {
	return &Hooks{}
}

// OnContributorAdded registers a callback for new profiles.
func (h *Hooks) OnContributorAdded(fn ContributorAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onContributorAdded = append(h.onContributorAdded, fn)
}

// OnSlugMoved registers a callback for moved profiles.
func (h *Hooks) OnSlugMoved(fn SlugMovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSlugMoved = append(h.onSlugMoved, fn)
}

// OnContributorRemoved registers a callback for removed profiles.
func (h *Hooks) OnContributorRemoved(fn ContributorRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onContributorRemoved = append(h.onContributorRemoved, fn)
}

// trigger runs the callbacks for cs. lookup resolves added ids to records.
func (h *Hooks) trigger(cs *differ.Changeset, lookup func(id string) (contributors.Contributor, bool)) {
	if h == nil || cs == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, id := range cs.Added {
		c, ok := lookup(id)
		if !ok {
			continue
		}
		for _, hook := range h.onContributorAdded {
			hook(c)
		}
	}
	for _, m := range cs.Moved {
		for _, hook := range h.onSlugMoved {
			hook(m)
		}
	}
	for _, id := range cs.Removed {
		for _, hook := range h.onContributorRemoved {
			hook(id)
		}
	}
}
