package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/teammap/pkg/errors"
)

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{Resource: "user", ID: "u1"}
		assert.Equal(t, "user with ID u1 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("update: %w", pkgerrors.NewNotFoundError("user", "u1"))
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("uid", "", "cannot be empty")
		assert.Equal(t, "validation failed for field uid: cannot be empty", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "duplicate slug"}
		assert.Equal(t, "validation failed: duplicate slug", err.Error())
	})
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		status int
		target error
	}{
		{404, pkgerrors.ErrNotFound},
		{401, pkgerrors.ErrUnauthorized},
		{403, pkgerrors.ErrUnauthorized},
		{429, pkgerrors.ErrUnavailable},
		{503, pkgerrors.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := pkgerrors.NewAPIError("users", tt.status, "boom")
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), "users")
		})
	}

	base := errors.New("connection reset")
	err := &pkgerrors.APIError{Registry: "publications", Message: "request failed", Err: base}
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, pkgerrors.ErrUnavailable)
}

func TestRegistryError(t *testing.T) {
	inner := pkgerrors.NewAPIError("users", 500, "down")
	err := pkgerrors.NewRegistryError("users", inner)
	assert.Equal(t, "users registry: API error from users (status 500): down", err.Error())
	assert.ErrorIs(t, err, pkgerrors.ErrUnavailable)

	var api *pkgerrors.APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, 500, api.StatusCode)
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("write", "x", nil))
	assert.NoError(t, pkgerrors.WrapResource("render", "page", "a", nil))
	assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
	assert.NoError(t, pkgerrors.WrapValidation("x", nil))

	base := errors.New("disk full")
	err := pkgerrors.WrapIO("write", "Team.json", base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "IO error during write of Team.json: disk full", err.Error())

	err = pkgerrors.WrapResource("render", "page", "ana", base)
	assert.Equal(t, "failed to render page ana: disk full", err.Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, pkgerrors.ExitOK},
		{"generic", errors.New("x"), pkgerrors.ExitFailure},
		{"config", pkgerrors.NewConfigError("registry", "missing token", nil), pkgerrors.ExitConfig},
		{"auth", pkgerrors.NewAuthenticationError("users", "bearer", "rejected", nil), pkgerrors.ExitConfig},
		{"users unreachable", pkgerrors.NewRegistryError("users", errors.New("dial")), pkgerrors.ExitConfig},
		{"users 401", pkgerrors.NewRegistryError("users", pkgerrors.NewAPIError("users", 401, "no")), pkgerrors.ExitConfig},
		{"users 404", pkgerrors.NewRegistryError("users", pkgerrors.NewAPIError("users", 404, "no such endpoint")), pkgerrors.ExitConfig},
		{"users wrapped not found", pkgerrors.NewRegistryError("users", pkgerrors.NewNotFoundError("user", "u9")), pkgerrors.ExitConfig},
		{"not found", pkgerrors.NewNotFoundError("contributor", "u9"), pkgerrors.ExitNotFound},
		{"claim", &pkgerrors.ClaimError{ID: "anon-1", Reason: "mismatch"}, pkgerrors.ExitClaimInvalid},
		{"canceled", fmt.Errorf("fetch: %w", context.Canceled), pkgerrors.ExitCanceled},
		{"io", pkgerrors.WrapIO("write", "x", errors.New("y")), pkgerrors.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgerrors.ExitCode(tt.err))
		})
	}
}
