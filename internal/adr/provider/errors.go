package provider

import (
	"errors"
	"fmt"
)

// ErrNotConfigured marks a missing credential for the selected backend.
// Wrap it with the provider-specific detail so callers can classify the
// failure as operator misconfiguration rather than a bad request.
var ErrNotConfigured = errors.New("provider not configured")

// HTTPError is a non-2xx response from a provider API. The upstream body
// is kept verbatim for diagnosability.
type HTTPError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "provider http error"
	}
	if e.Body == "" {
		return fmt.Sprintf("%s error: status=%d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s error (%d): %s", e.Provider, e.StatusCode, e.Body)
}
