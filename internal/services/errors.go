package services

// Custom errors, mapped to HTTP statuses in one place by the handlers.

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

type ForbiddenError struct{ Message string }

func (e *ForbiddenError) Error() string { return e.Message }

type RateLimitError struct{ Message string }

func (e *RateLimitError) Error() string { return e.Message }

// ConfigError means a required credential is absent. It is raised before any
// external call is attempted.
type ConfigError struct{ Message string }

func (e *ConfigError) Error() string { return e.Message }

// ProviderError wraps a failure from the model or a Google API call. The
// underlying message is preserved for observability; nothing retries at
// this layer.
type ProviderError struct{ Message string }

func (e *ProviderError) Error() string { return e.Message }
