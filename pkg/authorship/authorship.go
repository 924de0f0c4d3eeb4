// Package authorship attaches publications to the contributors who wrote
// them: registered authors by account id, placeholders by normalized name.
package authorship

import (
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/logging"
)

// Matcher joins publications to contributors.
type Matcher struct {
	logger *zerolog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger sets the matcher's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New returns a Matcher.
func New(opts ...Option) *Matcher {
	m := &Matcher{logger: logging.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Result is the outcome of a match.
type Result struct {
	// Contributors are copies of the input with Publications replaced
	Contributors []contributors.Contributor

	// Attached counts publication references attached across all profiles
	Attached int

	// Orphaned lists listed publications that reached no profile, by
	// submission id, in input order
	Orphaned []string
}

// Match returns copies of people whose Publications hold every published or
// accepted publication they authored, newest first. Registered contributors
// match on account id. Anonymous contributors also match author entries
// without an account whose normalized name equals their display name. A
// publication counted twice for one profile appears once. Inputs are not
// modified.
func (m *Matcher) Match(people []contributors.Contributor, pubs []contributors.Publication) *Result {
	listed := contributors.Listed(pubs)

	byAccount := map[string][]int{}
	byName := map[string][]int{}
	for i, pub := range listed {
		for _, author := range pub.Authors {
			if author.Registered() {
				byAccount[author.AccountID] = append(byAccount[author.AccountID], i)
				continue
			}
			if key := contributors.NameKey(author.FullName()); key != "" {
				byName[key] = append(byName[key], i)
			}
		}
	}

	used := make([]bool, len(listed))
	result := &Result{Contributors: make([]contributors.Contributor, 0, len(people))}
	for _, person := range people {
		out := person.Clone()

		candidates := byAccount[person.ID]
		if person.IsAnonymous {
			candidates = append(append([]int(nil), candidates...), byName[contributors.NameKey(person.DisplayName)]...)
		}

		seen := map[string]bool{}
		attached := make([]contributors.Publication, 0, len(candidates))
		for _, i := range candidates {
			used[i] = true
			key := dedupeKey(listed[i], i)
			if seen[key] {
				continue
			}
			seen[key] = true
			attached = append(attached, listed[i].Clone())
		}
		sortNewestFirst(attached)

		out.Publications = attached
		result.Attached += len(attached)
		result.Contributors = append(result.Contributors, out)
	}

	for i, pub := range listed {
		if !used[i] {
			result.Orphaned = append(result.Orphaned, pub.SubmissionID)
		}
	}

	m.logger.Info().
		Int("contributors", len(result.Contributors)).
		Int("publications", len(listed)).
		Int("attached", result.Attached).
		Int("orphaned", len(result.Orphaned)).
		Msg("Matched authorship")
	return result
}

// dedupeKey identifies a publication for de-duplication. Publications
// without a submission id are keyed by position so they never merge.
func dedupeKey(p contributors.Publication, pos int) string {
	if p.SubmissionID != "" {
		return "id:" + p.SubmissionID
	}
	return "#" + strconv.Itoa(pos)
}

// sortNewestFirst orders by ISO date descending, then submission id.
func sortNewestFirst(pubs []contributors.Publication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		if pubs[i].Date != pubs[j].Date {
			return pubs[i].Date > pubs[j].Date
		}
		return pubs[i].SubmissionID < pubs[j].SubmissionID
	})
}
