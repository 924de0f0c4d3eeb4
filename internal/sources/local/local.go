// Package local reads registry exports from files on disk: a users file and
// a publications file, each a JSON or YAML list.
package local

import (
	"context"
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/agentstation/teammap/internal/codec"
	"github.com/agentstation/teammap/internal/sources"
	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/errors"
)

var (
	_ sources.UserRegistry        = (*Source)(nil)
	_ sources.PublicationRegistry = (*Source)(nil)
)

// Source serves both registries from export files.
type Source struct {
	usersPath        string
	publicationsPath string
}

// Option configures a local source.
type Option func(*Source)

// WithUsersFile sets the users export path.
func WithUsersFile(path string) Option {
	return func(s *Source) {
		s.usersPath = path
	}
}

// WithPublicationsFile sets the publications export path. Without one the
// source reports no publications.
func WithPublicationsFile(path string) Option {
	return func(s *Source) {
		s.publicationsPath = path
	}
}

// New creates a new local source.
func New(opts ...Option) (*Source, error) {
	s := &Source{}
	for _, opt := range opts {
		opt(s)
	}
	if s.usersPath == "" {
		return nil, errors.NewConfigError("registry", "registry.users_file is not set", nil)
	}
	return s, nil
}

// ListUsers implements sources.UserRegistry.
func (s *Source) ListUsers(ctx context.Context) ([]contributors.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var users []contributors.User
	if err := read(s.usersPath, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser implements sources.UserRegistry.
func (s *Source) GetUser(ctx context.Context, id string) (contributors.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return contributors.User{}, err
	}
	for _, u := range users {
		if strings.TrimSpace(u.ID) == id {
			return u, nil
		}
	}
	return contributors.User{}, errors.NewNotFoundError("user", id)
}

// ListPublications implements sources.PublicationRegistry.
func (s *Source) ListPublications(ctx context.Context, statuses ...contributors.Status) ([]contributors.Publication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.publicationsPath == "" {
		return []contributors.Publication{}, nil
	}

	var pubs []contributors.Publication
	if err := read(s.publicationsPath, &pubs); err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return pubs, nil
	}

	want := make(map[contributors.Status]bool, len(statuses))
	for _, st := range statuses {
		want[st] = true
	}
	out := pubs[:0]
	for _, p := range pubs {
		if want[p.Normalize().Status] {
			out = append(out, p)
		}
	}
	return out, nil
}

func read(path string, v any) error {
	err := codec.ReadFile(path, v)
	if err == nil {
		return nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.NewConfigError("registry", "export file "+path+" does not exist", err)
	}
	var pe *errors.ParseError
	if stderrors.As(err, &pe) {
		return err
	}
	return errors.WrapIO("read", path, err)
}
