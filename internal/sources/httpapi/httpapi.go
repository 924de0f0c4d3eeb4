// Package httpapi reads the user and publication registries from their REST
// JSON endpoints.
//
// The users endpoint returns an array of users and serves one user at
// <users_url>/<id>. The publications endpoint returns an array of
// publications and accepts a repeated status query parameter.
package httpapi

import (
	"context"
	"net/url"
	"strings"

	"github.com/agentstation/teammap/internal/sources"
	"github.com/agentstation/teammap/internal/transport"
	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
)

var (
	_ sources.UserRegistry        = (*Users)(nil)
	_ sources.PublicationRegistry = (*Publications)(nil)
)

// Users reads the user registry.
type Users struct {
	client  *transport.Client
	baseURL string
}

// NewUsers returns a user registry client for baseURL.
func NewUsers(client *transport.Client, baseURL string) (*Users, error) {
	if err := checkURL("registry.users_url", baseURL); err != nil {
		return nil, err
	}
	return &Users{client: client, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// ListUsers implements sources.UserRegistry.
func (u *Users) ListUsers(ctx context.Context) ([]contributors.User, error) {
	var users []contributors.User
	if err := u.client.GetJSON(ctx, u.baseURL, &users); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Int("users", len(users)).Str("url", u.baseURL).Msg("Listed users")
	return users, nil
}

// GetUser implements sources.UserRegistry.
func (u *Users) GetUser(ctx context.Context, id string) (contributors.User, error) {
	var user contributors.User
	endpoint := u.baseURL + "/" + url.PathEscape(id)
	if err := u.client.GetJSON(ctx, endpoint, &user); err != nil {
		if errors.IsNotFound(err) {
			return contributors.User{}, errors.NewNotFoundError("user", id)
		}
		return contributors.User{}, err
	}
	if user.ID == "" {
		user.ID = id
	}
	return user, nil
}

// Publications reads the publication registry.
type Publications struct {
	client  *transport.Client
	baseURL string
}

// NewPublications returns a publication registry client for baseURL.
func NewPublications(client *transport.Client, baseURL string) (*Publications, error) {
	if err := checkURL("registry.publications_url", baseURL); err != nil {
		return nil, err
	}
	return &Publications{client: client, baseURL: baseURL}, nil
}

// ListPublications implements sources.PublicationRegistry.
func (p *Publications) ListPublications(ctx context.Context, statuses ...contributors.Status) ([]contributors.Publication, error) {
	endpoint, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, errors.NewConfigError("registry", "invalid publications url", err)
	}
	if len(statuses) > 0 {
		q := endpoint.Query()
		for _, s := range statuses {
			q.Add("status", string(s))
		}
		endpoint.RawQuery = q.Encode()
	}

	var pubs []contributors.Publication
	if err := p.client.GetJSON(ctx, endpoint.String(), &pubs); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Int("publications", len(pubs)).Msg("Listed publications")
	return pubs, nil
}

func checkURL(key, raw string) error {
	if raw == "" {
		return errors.NewConfigError("registry", key+" is not set", nil)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.NewConfigError("registry", key+" is not an absolute URL", err)
	}
	return nil
}
