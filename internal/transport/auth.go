package transport

import "net/http"

// Authenticator applies credentials to outgoing registry requests.
type Authenticator interface {
	Apply(req *http.Request, token string)
	// Method names the scheme in error reports.
	Method() string
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {}

// Method implements the Authenticator interface for NoAuth.
func (a *NoAuth) Method() string { return "none" }

// BearerAuth implements Bearer token authentication.
type BearerAuth struct{}

// Apply implements the Authenticator interface for BearerAuth.
func (a *BearerAuth) Apply(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// Method implements the Authenticator interface for BearerAuth.
func (a *BearerAuth) Method() string { return "bearer" }

// HeaderAuth sends the token verbatim in a custom header.
type HeaderAuth struct {
	Header string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request, token string) {
	req.Header.Set(a.Header, token)
}

// Method implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Method() string { return "header" }
