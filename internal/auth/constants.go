package auth

import "time"

// Header handling
const (
	HeaderAuthorization = "Authorization"
	BearerScheme        = "Bearer"
)

// JWKS fetching
const (
	DefaultJWKSCacheTTL       = 10 * time.Minute
	DefaultMinRefreshInterval = 30 * time.Second
	DefaultJWKSFetchTimeout   = 5 * time.Second
	MaxJWKSResponseBytes      = 1 << 20

	// Breaker opens after this many consecutive failed fetches
	BreakerConsecutiveFailures = 3
	BreakerOpenTimeout         = 30 * time.Second
	BreakerName                = "jwks-fetch"
)

// DefaultLeeway tolerates clock skew between this service and the identity provider
const DefaultLeeway = 30 * time.Second

// Response bodies
const (
	UnauthorizedBody = `{"error":"Unauthorized"}`
)

// Log messages
const (
	LogMsgTokenRejected      = "Bearer token rejected"
	LogMsgJWKSRefreshed      = "JWKS keys refreshed"
	LogMsgJWKSRefreshFailed  = "JWKS refresh failed, serving cached key"
	LogMsgBreakerStateChange = "JWKS circuit breaker state changed"
)

// Error messages
const (
	ErrMsgMissingToken      = "missing bearer token"
	ErrMsgUnknownKey        = "signing key not found"
	ErrMsgMissingKid        = "token missing kid header"
	ErrMsgNoSecret          = "HS256 tokens are not accepted"
	ErrMsgNoJWKS            = "asymmetric tokens are not accepted"
	ErrMsgMissingSubject    = "token missing subject"
	ErrMsgNoVerificationKey = "no verification key configured"
)
