package differ

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/snapshot"
)

func snap(t *testing.T, records ...contributors.Contributor) *snapshot.Snapshot {
	t.Helper()
	s, err := snapshot.New(records)
	require.NoError(t, err)
	return s
}

func TestSnapshots(t *testing.T) {
	old := snap(t,
		contributors.Contributor{ID: "u2", DisplayName: "Ana Pérez", Slug: "ana-perez"},
		contributors.Contributor{ID: "u1", DisplayName: "Luis Gil", Slug: "luis-gil"},
		contributors.Contributor{ID: "u3", DisplayName: "Gone", Slug: "gone"},
		contributors.Contributor{ID: "u4", DisplayName: "No Slug"},
	)
	updated := snap(t,
		contributors.Contributor{ID: "u1", DisplayName: "Luis Gil", Slug: "luis-gil"},
		contributors.Contributor{ID: "u2", DisplayName: "Ana Ruiz", Slug: "ana-ruiz", PreviousSlugs: []string{"ana-perez"}},
		contributors.Contributor{ID: "u4", DisplayName: "No Slug", Slug: "no-slug"},
		contributors.Contributor{ID: "u5", DisplayName: "New", Slug: "new"},
	)

	cs := New().Snapshots(old, updated)
	assert.Equal(t, []string{"u5"}, cs.Added)
	assert.Equal(t, []string{"u3"}, cs.Removed)
	assert.Equal(t, []Move{{ID: "u2", FromSlug: "ana-perez", ToSlug: "ana-ruiz"}}, cs.Moved)
	assert.Equal(t, []Rename{{ID: "u2", From: "Ana Pérez", To: "Ana Ruiz"}}, cs.Renamed)
	assert.Equal(t, 4, cs.Summary.TotalChanges)
	assert.True(t, cs.HasChanges())

	t.Run("renames can be ignored", func(t *testing.T) {
		cs := New(WithRenames(false)).Snapshots(old, updated)
		assert.Empty(t, cs.Renamed)
		assert.Equal(t, 3, cs.Summary.TotalChanges)
	})
}

func TestRedirects(t *testing.T) {
	old := snap(t, contributors.Contributor{ID: "u1", Slug: "ana-perez"}, contributors.Contributor{ID: "u2", Slug: "luis"})
	updated := snap(t, contributors.Contributor{ID: "u1", Slug: "ana-ruiz"}, contributors.Contributor{ID: "u2", Slug: "luis"})

	got := New().Snapshots(old, updated).Redirects()
	assert.Equal(t, []Redirect{
		{FromSlug: "ana-perez", ToSlug: "ana-ruiz", Locale: contributors.LocaleES},
		{FromSlug: "ana-perez", ToSlug: "ana-ruiz", Locale: contributors.LocaleEN},
	}, got)

	only := New().Snapshots(old, updated).Redirects(contributors.LocaleEN)
	assert.Len(t, only, 1)

	t.Run("re-running yields no redirects", func(t *testing.T) {
		assert.Empty(t, New().Snapshots(updated, updated).Redirects())
	})
}

func TestEmptyChangeset(t *testing.T) {
	cs := New().Snapshots(snapshot.Empty(), snapshot.Empty())
	assert.False(t, cs.HasChanges())
	assert.Equal(t, "No changes detected", cs.String())
	assert.Empty(t, cs.Redirects())

	var nilCS *Changeset
	assert.False(t, nilCS.HasChanges())
	assert.Nil(t, nilCS.Redirects())
}

func TestPrint(t *testing.T) {
	old := snap(t, contributors.Contributor{ID: "u1", Slug: "a"})
	updated := snap(t, contributors.Contributor{ID: "u1", Slug: "b"}, contributors.Contributor{ID: "u2", Slug: "c"})

	var buf bytes.Buffer
	New().Snapshots(old, updated).Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "1 added, 1 moved")
	assert.Contains(t, out, "+ u2")
	assert.Contains(t, out, "~ u1: a → b")
}
