package sources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeUsers struct {
	users []contributors.User
	err   error
	panic bool
}

func (f *fakeUsers) ListUsers(context.Context) ([]contributors.User, error) {
	if f.panic {
		panic("registry exploded")
	}
	return f.users, f.err
}

func (f *fakeUsers) GetUser(_ context.Context, id string) (contributors.User, error) {
	if f.err != nil {
		return contributors.User{}, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return contributors.User{}, errors.NewNotFoundError("user", id)
}

type fakePubs struct {
	pubs     []contributors.Publication
	err      error
	statuses []contributors.Status
}

func (f *fakePubs) ListPublications(_ context.Context, statuses ...contributors.Status) ([]contributors.Publication, error) {
	f.statuses = statuses
	return f.pubs, f.err
}

func TestFetchAll(t *testing.T) {
	users := &fakeUsers{users: []contributors.User{{ID: "u1"}}}
	pubs := &fakePubs{pubs: []contributors.Publication{{SubmissionID: "s1"}}}

	got, err := FetchAll(context.Background(), users, pubs)
	require.NoError(t, err)
	assert.Len(t, got.Users, 1)
	assert.Len(t, got.Publications, 1)
	assert.False(t, got.Degraded())
	assert.Equal(t, contributors.ListedStatuses(), pubs.statuses)
}

func TestFetchAllUserFailureIsFatal(t *testing.T) {
	users := &fakeUsers{err: errors.NewAPIError("users", 503, "down")}
	_, err := FetchAll(context.Background(), users, &fakePubs{})

	var re *errors.RegistryError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, UsersRegistry, re.Registry)
	assert.Equal(t, errors.ExitConfig, errors.ExitCode(err))
}

func TestFetchAllPublicationFailureDegrades(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	got, err := FetchAll(ctx, &fakeUsers{users: []contributors.User{{ID: "u1"}}}, &fakePubs{err: errors.New("timeout")})
	require.NoError(t, err)
	assert.True(t, got.Degraded())
	assert.NotNil(t, got.Publications)
	assert.Empty(t, got.Publications)
	assert.True(t, tl.Contains(`"level":"warn"`))
}

func TestFetchAllRecoversPanics(t *testing.T) {
	_, err := FetchAll(context.Background(), &fakeUsers{panic: true}, &fakePubs{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registry exploded")
}

func TestFetchUser(t *testing.T) {
	users := &fakeUsers{users: []contributors.User{{ID: "u1", DisplayName: "Ana"}}}

	u, fetched, err := FetchUser(context.Background(), users, &fakePubs{}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.DisplayName)
	assert.Len(t, fetched.Users, 1)

	_, _, err = FetchUser(context.Background(), users, &fakePubs{}, "u9")
	var nf *errors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, errors.ExitNotFound, errors.ExitCode(err))
}
