package alfacrm

import (
	"errors"
	"fmt"
	"strings"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrHostnameRequired    = errors.New("hostname is required")
	ErrCredentialsRequired = errors.New("email and api key are required")
	ErrUnknownResource     = errors.New("unknown resource")
)

// AuthenticationError indicates rejected credentials, a login response without a
// token, or a request that still received 401 after a forced re-authentication.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}

	return e.Message
}

// AccessDeniedError maps HTTP 403.
type AccessDeniedError struct {
	Message string
}

func (e *AccessDeniedError) Error() string {
	if e.Message == "" {
		return "access denied"
	}

	return e.Message
}

// NotFoundError maps HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "resource not found"
	}

	return e.Message
}

// RateLimitError maps HTTP 429. The client never retries on it; backoff policy
// belongs to the caller.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Message == "" {
		return "rate limit exceeded"
	}

	return e.Message
}

// APIError is any other non-2xx response. It carries the status code and the
// parsed response body for caller inspection.
type APIError struct {
	StatusCode int
	Message    string
	Body       map[string]interface{}
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = UnknownErrorMessage
	}

	return fmt.Sprintf("API request failed (%d): %s", e.StatusCode, msg)
}

// ConnectionError is a transport-level failure: no HTTP status was received.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// MissingBranchError is raised before any network access when a branch-scoped
// resource is used without an active branch.
type MissingBranchError struct {
	Resource string
}

func (e *MissingBranchError) Error() string {
	if e.Resource == "" {
		return "branch ID is required for this operation"
	}

	return fmt.Sprintf("branch ID is required for resource %q", e.Resource)
}

// FieldViolation describes a single invalid input field.
type FieldViolation struct {
	Field   string
	Message string
}

func (v FieldViolation) String() string {
	return v.Field + ": " + v.Message
}

// ValidationError is raised locally, before any network call, when input does
// not satisfy a resource schema.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation error"
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}

	return "validation error: " + strings.Join(parts, "; ")
}

// UnknownErrorMessage is the fallback used when a failure response carries no
// usable message.
const UnknownErrorMessage = "Unknown error"

// TranslateStatus maps a received non-2xx HTTP status and its parsed body to the
// error taxonomy. body may be nil when the response could not be parsed; the
// message then falls back to "Unknown error".
func TranslateStatus(statusCode int, body map[string]interface{}) error {
	message := UnknownErrorMessage
	if m, ok := body["message"].(string); ok && m != "" {
		message = m
	}

	switch statusCode {
	case 401:
		return &AuthenticationError{Message: "invalid or expired token"}
	case 403:
		return &AccessDeniedError{Message: "access denied"}
	case 404:
		return &NotFoundError{Message: message}
	case 429:
		return &RateLimitError{Message: message}
	default:
		return &APIError{StatusCode: statusCode, Message: message, Body: body}
	}
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	target := &NotFoundError{}

	return errors.As(err, &target)
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	target := &AuthenticationError{}

	return errors.As(err, &target)
}

// IsAccessDenied checks if the error is an access denied error.
func IsAccessDenied(err error) bool {
	target := &AccessDeniedError{}

	return errors.As(err, &target)
}

// IsRateLimit checks if the error is a rate limit error.
func IsRateLimit(err error) bool {
	target := &RateLimitError{}

	return errors.As(err, &target)
}

// IsValidation checks if the error is a local validation error.
func IsValidation(err error) bool {
	target := &ValidationError{}

	return errors.As(err, &target)
}

// IsMissingBranch checks if the error is a missing branch error.
func IsMissingBranch(err error) bool {
	target := &MissingBranchError{}

	return errors.As(err, &target)
}

// IsConnection checks if the error is a transport-level connection error.
func IsConnection(err error) bool {
	target := &ConnectionError{}

	return errors.As(err, &target)
}
