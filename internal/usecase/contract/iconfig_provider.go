package usecasecontract

import (
	"time"
)

// IConfigProvider exposes the configuration values usecases and handlers
// need, injected at construction time instead of re-read from the
// environment ad hoc.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetFrontendURL() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	// GetCookieSecure reports whether session cookies carry the Secure and
	// cross-site attributes (production deployments).
	GetCookieSecure() bool
	GetGeoServiceURL() string
	GetCORSOrigins() []string
}
