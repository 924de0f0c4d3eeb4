// Package errors provides the typed errors of the teammap system.
// Callers match them with errors.Is against the sentinels below or with
// errors.As against the concrete types, and the CLI maps them to exit
// statuses with ExitCode.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Sentinel errors.
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfig indicates missing or unusable configuration
	ErrConfig = errors.New("configuration error")

	// ErrUnauthorized indicates that a registry rejected our credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable indicates that a registry could not be read
	ErrUnavailable = errors.New("registry unavailable")

	// ErrClaimRejected indicates that a claim token did not verify
	ErrClaimRejected = errors.New("claim rejected")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// Process exit statuses returned by ExitCode.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitConfig       = 2
	ExitNotFound     = 3
	ExitClaimInvalid = 4
	ExitCanceled     = 130
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// APIError represents a non-success response from a registry endpoint
type APIError struct {
	Registry   string
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Registry, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Registry, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode == 401 || e.StatusCode == 403:
		return target == ErrUnauthorized
	case e.StatusCode == 429 || e.StatusCode >= 500 || e.StatusCode == 0:
		return target == ErrUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(registry string, statusCode int, message string) *APIError {
	return &APIError{
		Registry:   registry,
		StatusCode: statusCode,
		Message:    message,
	}
}

// RegistryError reports that reading one registry failed as a whole.
type RegistryError struct {
	Registry string // "users", "publications"
	Err      error
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	return fmt.Sprintf("%s registry: %v", e.Registry, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *RegistryError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RegistryError) Is(target error) bool {
	return target == ErrUnavailable
}

// NewRegistryError creates a new RegistryError
func NewRegistryError(registry string, err error) *RegistryError {
	return &RegistryError{Registry: registry, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents a filesystem failure
type IOError struct {
	Operation string // "read", "write", "create", "move"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents a failed operation on one record or artifact
type ResourceError struct {
	Operation string // "fetch", "render", "write", "reconcile"
	Resource  string // "contributor", "page", "snapshot"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// AuthenticationError represents a credential failure against a registry
type AuthenticationError struct {
	Registry string
	Method   string // "bearer", "header"
	Message  string
	Err      error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.Registry != "" {
		return fmt.Sprintf("authentication error for %s (%s): %s", e.Registry, e.Method, e.Message)
	}
	return fmt.Sprintf("authentication error (%s): %s", e.Method, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(registry, method, message string, err error) *AuthenticationError {
	return &AuthenticationError{
		Registry: registry,
		Method:   method,
		Message:  message,
		Err:      err,
	}
}

// ClaimError reports a claim token that did not verify.
type ClaimError struct {
	ID     string
	Reason string
}

// Error implements the error interface
func (e *ClaimError) Error() string {
	return fmt.Sprintf("claim for %s rejected: %s", e.ID, e.Reason)
}

// Is implements errors.Is support
func (e *ClaimError) Is(target error) bool {
	return target == ErrClaimRejected
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnauthorized checks if an error is a credential failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsUnavailable checks if an error means a registry could not be read
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled) || errors.Is(err, context.Canceled)
}

// ExitCode maps err to the process exit status. Credential, configuration
// and user-registry failures share one status because all of them stop a
// run before anything is reconciled.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsCanceled(err):
		return ExitCanceled
	case errors.Is(err, ErrClaimRejected):
		return ExitClaimInvalid
	case errors.Is(err, ErrConfig), IsUnauthorized(err):
		return ExitConfig
	}
	var re *RegistryError
	if errors.As(err, &re) && re.Registry == "users" {
		return ExitConfig
	}
	if IsNotFound(err) {
		return ExitNotFound
	}
	return ExitFailure
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
