package auth

import (
	"context"

	"github.com/osse101/SceneIt_Go/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity returns a context carrying the verified caller
func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the verified caller, or nil for anonymous requests
func IdentityFromContext(ctx context.Context) *domain.Identity {
	if id, ok := ctx.Value(identityKey).(*domain.Identity); ok {
		return id
	}
	return nil
}
