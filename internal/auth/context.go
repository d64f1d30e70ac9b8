// Package auth verifies identity tokens and carries the signed-in user
// through request contexts.
//
// Middleware and handler packages both import it, so it must not import
// either of them.
package auth

import (
	"context"
	"net/http"

	"github.com/DukeRupert/jobboard/internal/domain"
)

type contextKey string

const (
	userContextKey     contextKey = "user"
	identityContextKey contextKey = "identity"
)

// GetUser returns the signed-in user stored by the auth middleware, or nil.
func GetUser(ctx context.Context) *domain.User {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// GetUserFromRequest is GetUser on the request's context.
func GetUserFromRequest(r *http.Request) *domain.User {
	return GetUser(r.Context())
}

// SetUser stores the signed-in user in the context.
func SetUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetIdentity returns the verified token claims for the request, if any.
func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(domain.Identity)
	return id, ok
}

// SetIdentity stores verified token claims in the context.
func SetIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}
