package llm

import "errors"

// ErrorType represents the category of a provider failure.
type ErrorType string

const (
	// ErrorTypeConfig means a required setting (credential, model) is missing.
	// Config errors are raised before any network call is attempted.
	ErrorTypeConfig ErrorType = "config"

	// ErrorTypeNetwork means the backend endpoint could not be reached or
	// returned an empty body.
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeProtocol means the response envelope did not contain the
	// expected text payload.
	ErrorTypeProtocol ErrorType = "protocol"

	// ErrorTypeProvider means the backend reported an error of its own. The
	// backend's original message travels as the cause so callers can
	// pattern-match known failure signatures.
	ErrorTypeProvider ErrorType = "provider"
)

// Error is a provider-neutral LLM error.
type Error struct {
	Type     ErrorType
	Provider string
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewConfigError creates an error for a missing setting.
func NewConfigError(provider, message string) *Error {
	return &Error{Type: ErrorTypeConfig, Provider: provider, Message: message}
}

// NewNetworkError creates an error for an unreachable endpoint or empty body.
func NewNetworkError(provider, message string, cause error) *Error {
	return &Error{Type: ErrorTypeNetwork, Provider: provider, Message: message, Cause: cause}
}

// NewProtocolError creates an error for a response envelope missing the
// expected text payload.
func NewProtocolError(provider, message string) *Error {
	return &Error{Type: ErrorTypeProtocol, Provider: provider, Message: message}
}

// NewProviderError creates an error for a backend-reported failure. The
// message is a short static description; the backend's own text is the cause.
func NewProviderError(provider, message string, cause error) *Error {
	return &Error{Type: ErrorTypeProvider, Provider: provider, Message: message, Cause: cause}
}

// IsConfigError checks whether err is a missing-setting error.
func IsConfigError(err error) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Type == ErrorTypeConfig
	}
	return false
}

// IsNetworkError checks whether err is an unreachable-endpoint error.
func IsNetworkError(err error) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Type == ErrorTypeNetwork
	}
	return false
}
