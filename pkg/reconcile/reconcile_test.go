package reconcile

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
	"github.com/agentstation/teammap/pkg/snapshot"
)

func person(id, name string) contributors.Contributor {
	return contributors.Contributor{ID: id, DisplayName: name, Roles: []string{}}
}

func slugsOf(records []contributors.Contributor) map[string]string {
	out := make(map[string]string, len(records))
	for _, r := range records {
		out[r.ID] = r.Slug
	}
	return out
}

func run(t *testing.T, records []contributors.Contributor, snap *snapshot.Snapshot, opts ...Option) *Result {
	t.Helper()
	opts = append([]Option{WithLogger(logging.NewNopLogger())}, opts...)
	r, err := New(opts...)
	require.NoError(t, err)
	res, err := r.Reconcile(context.Background(), records, snap)
	require.NoError(t, err)
	return res
}

func TestReconcileFreshAssignment(t *testing.T) {
	tests := []struct {
		name    string
		records []contributors.Contributor
		want    map[string]string
	}{
		{
			name:    "distinct names",
			records: []contributors.Contributor{person("u1", "José Pérez"), person("u2", "Begoña Núñez")},
			want:    map[string]string{"u1": "jose-perez", "u2": "begona-nunez"},
		},
		{
			name:    "collision gets numeric suffix in input order",
			records: []contributors.Contributor{person("u1", "Ana Pérez"), person("u2", "Ana Perez"), person("u3", "ANA PÉREZ")},
			want:    map[string]string{"u1": "ana-perez", "u2": "ana-perez1", "u3": "ana-perez2"},
		},
		{
			name: "first and last name when no display name",
			records: []contributors.Contributor{
				{ID: "u1", FirstName: "Luis", LastName: "Gil"},
			},
			want: map[string]string{"u1": "luis-gil"},
		},
		{
			name:    "empty name falls back to id",
			records: []contributors.Contributor{person("User_42", "¿?")},
			want:    map[string]string{"User_42": "user-42"},
		},
		{
			name:    "nothing usable falls back to profile",
			records: []contributors.Contributor{person("李", ""), person("雷", "")},
			want:    map[string]string{"李": "profile", "雷": "profile1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.records, snapshot.Empty())
			if diff := cmp.Diff(tt.want, slugsOf(res.Records)); diff != "" {
				t.Errorf("slugs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	records := []contributors.Contributor{person("u1", "Ana Pérez"), person("u2", "Ana Pérez"), person("u3", "Luis Gil")}

	first := run(t, records, snapshot.Empty())
	second := run(t, records, first.Snapshot)

	if diff := cmp.Diff(first.Records, second.Records, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("second run changed records (-first +second):\n%s", diff)
	}
	assert.Equal(t, 3, second.Stats.Kept)
	assert.Equal(t, first.Snapshot.SlugIndex(), second.Snapshot.SlugIndex())
}

func TestReconcileStableUnderRename(t *testing.T) {
	first := run(t, []contributors.Contributor{person("u1", "Ana Pérez")}, snapshot.Empty())

	renamed := run(t, []contributors.Contributor{person("u1", "Ana María Pérez")}, first.Snapshot)
	assert.Equal(t, "ana-perez", renamed.Records[0].Slug)
	assert.Equal(t, Kept, renamed.Decisions[0].Kind)
}

func TestReconcileCollisionIsOrderIndependentForKnownIDs(t *testing.T) {
	first := run(t, []contributors.Contributor{person("u1", "Ana Pérez"), person("u2", "Ana Pérez")}, snapshot.Empty())

	reversed := run(t, []contributors.Contributor{person("u2", "Ana Pérez"), person("u1", "Ana Pérez")}, first.Snapshot)
	assert.Equal(t, map[string]string{"u1": "ana-perez", "u2": "ana-perez1"}, slugsOf(reversed.Records))
}

func TestReconcileReservesSlugsOfAbsentIDs(t *testing.T) {
	prev, err := snapshot.New([]contributors.Contributor{{ID: "gone", DisplayName: "Ana Pérez", Slug: "ana-perez"}})
	require.NoError(t, err)

	res := run(t, []contributors.Contributor{person("u9", "Ana Pérez")}, prev)
	assert.Equal(t, "ana-perez1", res.Records[0].Slug)
	assert.Equal(t, Suffixed, res.Decisions[0].Kind)

	_, present := res.Snapshot.Get("gone")
	assert.False(t, present, "the new snapshot only holds this run's records")
}

func TestReconcileSuffixScanSkipsTakenVariants(t *testing.T) {
	prev, err := snapshot.New([]contributors.Contributor{
		{ID: "a", Slug: "ana"},
		{ID: "b", Slug: "ana1"},
		{ID: "c", Slug: "ana3"},
	})
	require.NoError(t, err)

	res := run(t, []contributors.Contributor{person("a", "Ana"), person("b", "Ana"), person("c", "Ana"), person("d", "Ana"), person("e", "Ana")}, prev)
	assert.Equal(t, map[string]string{"a": "ana", "b": "ana1", "c": "ana3", "d": "ana2", "e": "ana4"}, slugsOf(res.Records))
}

func TestReconcileForcedReslug(t *testing.T) {
	first := run(t, []contributors.Contributor{person("u1", "Ana Pérez"), person("u2", "Luis Gil")}, snapshot.Empty())

	res := run(t, []contributors.Contributor{person("u1", "Ana Ruiz"), person("u2", "Luis Gil")}, first.Snapshot, WithReslug("u1"))
	ana := res.Records[0]
	assert.Equal(t, "ana-ruiz", ana.Slug)
	assert.Equal(t, []string{"ana-perez"}, ana.PreviousSlugs)
	assert.Equal(t, "ana-perez", res.Decisions[0].From)
	assert.Equal(t, 1, res.Stats.Reslugged)

	owner, ok := res.Snapshot.Owner("ana-perez")
	require.True(t, ok)
	assert.Equal(t, "u1", owner, "retired slug stays with its holder")

	t.Run("newcomer cannot take a retired slug", func(t *testing.T) {
		next := run(t, []contributors.Contributor{person("u1", "Ana Ruiz"), person("u3", "Ana Pérez")}, res.Snapshot)
		assert.Equal(t, "ana-perez1", next.Records[1].Slug)
		assert.Equal(t, []string{"ana-perez"}, next.Records[0].PreviousSlugs)
	})

	t.Run("reclaiming a previous slug drops it from the history", func(t *testing.T) {
		back := run(t, []contributors.Contributor{person("u1", "Ana Pérez")}, res.Snapshot, WithReslug("u1"))
		assert.Equal(t, "ana-perez", back.Records[0].Slug)
		assert.Equal(t, []string{"ana-ruiz"}, back.Records[0].PreviousSlugs)
	})

	t.Run("reslug with unchanged name keeps the slug", func(t *testing.T) {
		same := run(t, []contributors.Contributor{person("u2", "Luis Gil")}, first.Snapshot, WithReslug("u2"))
		assert.Equal(t, "luis-gil", same.Records[0].Slug)
		assert.Empty(t, same.Records[0].PreviousSlugs)
		assert.Equal(t, 0, same.Stats.Reslugged)
	})
}

func TestReconcileSlugsAreUnique(t *testing.T) {
	names := []string{"Ana", "ana", "Ána", "Ana 1", "Ana1", "ANA", "Ana-1"}
	records := make([]contributors.Contributor, len(names))
	for i, n := range names {
		records[i] = person(string(rune('a'+i)), n)
	}
	res := run(t, records, snapshot.Empty())

	seen := map[string]bool{}
	for _, r := range res.Records {
		assert.False(t, seen[r.Slug], "duplicate slug %q", r.Slug)
		seen[r.Slug] = true
	}
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	records := []contributors.Contributor{person("u1", "Ana")}
	prev, err := snapshot.New([]contributors.Contributor{{ID: "u1", Slug: "old"}})
	require.NoError(t, err)

	run(t, records, prev, WithReslug("u1"))
	assert.Empty(t, records[0].Slug)
	rec, _ := prev.Get("u1")
	assert.Equal(t, "old", rec.Slug)
	assert.Empty(t, rec.PreviousSlugs)
}

func TestReconcileKeepsPublications(t *testing.T) {
	c := person("anon-1", "Ana")
	c.IsAnonymous = true
	c.Publications = []contributors.Publication{{SubmissionID: "s1"}}

	res := run(t, []contributors.Contributor{c}, nil)
	assert.Len(t, res.Records[0].Publications, 1)
	stored, _ := res.Snapshot.Get("anon-1")
	assert.Empty(t, stored.Publications)
}

func TestReconcileRejectsBadInput(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	_, err = r.Reconcile(context.Background(), []contributors.Contributor{person("", "Ana")}, nil)
	assert.True(t, errors.IsValidationError(err))

	_, err = r.Reconcile(context.Background(), []contributors.Contributor{person("u1", "Ana"), person("u1", "Ana")}, nil)
	assert.True(t, errors.IsValidationError(err))

	_, err = New(WithReslug(""))
	assert.Error(t, err)
}
