// Package sources defines the registries a build reads from and fetches
// both of them concurrently.
//
// The user registry is authoritative: if it cannot be read the build stops.
// The publication registry is not: a failure there degrades the build to
// profiles without publications.
package sources

import (
	"context"

	"github.com/sourcegraph/conc"

	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
)

// Registry names used in errors and logs.
const (
	UsersRegistry        = "users"
	PublicationsRegistry = "publications"
)

// UserRegistry reads registered accounts.
type UserRegistry interface {
	// ListUsers returns every account that has a public profile.
	ListUsers(ctx context.Context) ([]contributors.User, error)

	// GetUser returns one account, or an errors.NotFoundError.
	GetUser(ctx context.Context, id string) (contributors.User, error)
}

// PublicationRegistry reads submissions and their author lists.
type PublicationRegistry interface {
	// ListPublications returns publications in any of statuses, or all
	// publications when none are given.
	ListPublications(ctx context.Context, statuses ...contributors.Status) ([]contributors.Publication, error)
}

// Fetched is the raw input of a build.
type Fetched struct {
	Users        []contributors.User
	Publications []contributors.Publication

	// PublicationsErr is set when the publication registry failed and
	// Publications was replaced by an empty set.
	PublicationsErr error
}

// Degraded reports whether publications are missing because of a failure.
func (f *Fetched) Degraded() bool {
	return f.PublicationsErr != nil
}

// FetchAll reads both registries concurrently and waits for both.
func FetchAll(ctx context.Context, users UserRegistry, pubs PublicationRegistry) (*Fetched, error) {
	logger := logging.FromContext(ctx)

	var (
		fetched  Fetched
		usersErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		fetched.Users, usersErr = users.ListUsers(logging.WithRegistry(ctx, UsersRegistry))
	})
	wg.Go(func() {
		fetched.Publications, fetched.PublicationsErr = pubs.ListPublications(
			logging.WithRegistry(ctx, PublicationsRegistry), contributors.ListedStatuses()...)
	})
	if recovered := wg.WaitAndRecover(); recovered != nil {
		return nil, errors.NewRegistryError(UsersRegistry, recovered.AsError())
	}

	if usersErr != nil {
		return nil, errors.NewRegistryError(UsersRegistry, usersErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	degrade(ctx, &fetched)

	logger.Info().
		Int("users", len(fetched.Users)).
		Int("publications", len(fetched.Publications)).
		Bool("degraded", fetched.Degraded()).
		Msg("Fetched registries")
	return &fetched, nil
}

// FetchUser reads one account and the publication list concurrently. A
// missing account is returned as an errors.NotFoundError.
func FetchUser(ctx context.Context, users UserRegistry, pubs PublicationRegistry, id string) (contributors.User, *Fetched, error) {
	var (
		user    contributors.User
		userErr error
		fetched Fetched
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		user, userErr = users.GetUser(logging.WithRegistry(ctx, UsersRegistry), id)
	})
	wg.Go(func() {
		fetched.Publications, fetched.PublicationsErr = pubs.ListPublications(
			logging.WithRegistry(ctx, PublicationsRegistry), contributors.ListedStatuses()...)
	})
	if recovered := wg.WaitAndRecover(); recovered != nil {
		return contributors.User{}, nil, errors.NewRegistryError(UsersRegistry, recovered.AsError())
	}

	if userErr != nil {
		if errors.IsNotFound(userErr) {
			return contributors.User{}, nil, errors.NewNotFoundError("user", id)
		}
		return contributors.User{}, nil, errors.NewRegistryError(UsersRegistry, userErr)
	}
	if err := ctx.Err(); err != nil {
		return contributors.User{}, nil, err
	}
	degrade(ctx, &fetched)
	fetched.Users = []contributors.User{user}
	return user, &fetched, nil
}

// degrade replaces a failed publication read with an empty set.
func degrade(ctx context.Context, f *Fetched) {
	if f.PublicationsErr == nil {
		if f.Publications == nil {
			f.Publications = []contributors.Publication{}
		}
		return
	}
	f.PublicationsErr = errors.NewRegistryError(PublicationsRegistry, f.PublicationsErr)
	logging.FromContext(ctx).Warn().
		Err(f.PublicationsErr).
		Str("registry", PublicationsRegistry).
		Msg("Publication registry unavailable, building profiles without publications")
	f.Publications = []contributors.Publication{}
}
