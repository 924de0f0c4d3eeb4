package app

import (
	"github.com/agentstation/teammap/internal/config"
	"github.com/agentstation/teammap/internal/sources"
	"github.com/agentstation/teammap/internal/sources/httpapi"
	"github.com/agentstation/teammap/internal/sources/local"
	"github.com/agentstation/teammap/internal/transport"
	"github.com/agentstation/teammap/pkg/errors"
)

// registries builds the configured user and publication registries.
func (a *App) registries() (sources.UserRegistry, sources.PublicationRegistry, error) {
	rc := a.config.Registry

	switch rc.Mode {
	case RegistryLocal:
		src, err := local.New(
			local.WithUsersFile(rc.UsersFile),
			local.WithPublicationsFile(rc.PublicationsFile),
		)
		if err != nil {
			return nil, nil, err
		}
		return src, src, nil

	case RegistryHTTP, "":
		token, err := config.RequireString("registry.token")
		if err != nil {
			return nil, nil, err
		}

		var auth transport.Authenticator = &transport.BearerAuth{}
		if rc.AuthHeader != "" {
			auth = &transport.HeaderAuth{Header: rc.AuthHeader}
		}
		opts := []transport.Option{
			transport.WithTimeout(rc.Timeout),
			transport.WithRetries(rc.Retries),
			transport.WithLogger(a.logger),
		}

		users, err := httpapi.NewUsers(transport.New(sources.UsersRegistry, auth, token, opts...), rc.UsersURL)
		if err != nil {
			return nil, nil, err
		}
		pubs, err := httpapi.NewPublications(transport.New(sources.PublicationsRegistry, auth, token, opts...), rc.PublicationsURL)
		if err != nil {
			return nil, nil, err
		}
		return users, pubs, nil

	default:
		return nil, nil, errors.NewConfigError("registry", "unknown registry.mode "+rc.Mode+" (want http or local)", nil)
	}
}
