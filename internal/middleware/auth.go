// Package middleware contains HTTP middleware for the job board API.
//
// Middleware functions follow the standard Go pattern of wrapping http.Handler.
// They are designed to be composed using a middleware stack approach.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DukeRupert/jobboard/internal/auth"
	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/handler"
)

// TokenVerifier turns a bearer token into a verified identity.
type TokenVerifier interface {
	Verify(raw string) (domain.Identity, error)
}

// UserLoader loads the stored account for a verified identity.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// AuthMiddleware provides authentication middleware functionality.
//
// Create one instance and use its methods as middleware.
type AuthMiddleware struct {
	verifier TokenVerifier
	users    UserLoader
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(verifier TokenVerifier, users UserLoader, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

// =============================================================================
// WithUser Middleware
// =============================================================================

// WithUser resolves the caller from the Authorization header.
//
// Flow:
//
//	Request -> WithUser -> Handler
//	           |
//	           +-> No bearer token: continue anonymously
//	           +-> Invalid token: continue anonymously
//	           +-> Valid token: store identity, load stored user if any
//	           +-> Banned user: 403, stop
//
// A verified identity without a stored account is authenticated but has no
// role; it can only register via the sign-in endpoint.
func (m *AuthMiddleware) WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := auth.BearerToken(r.Header.Get("Authorization"))
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := m.verifier.Verify(raw)
		if err != nil {
			m.logger.Info("identity token rejected",
				"error", err,
				"path", r.URL.Path,
			)
			next.ServeHTTP(w, r)
			return
		}

		ctx := auth.SetIdentity(r.Context(), identity)

		user, err := m.users.GetByID(ctx, identity.Subject)
		switch {
		case err == nil:
			if user.IsBanned {
				handler.ErrorResponse(w, r, m.logger, domain.Forbidden("auth.user", "This account has been banned"))
				return
			}
			ctx = auth.SetUser(ctx, user)
		case domain.ErrorCode(err) == domain.ENOTFOUND:
			// First visit; the account is created on sign-in.
		default:
			handler.ErrorResponse(w, r, m.logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// =============================================================================
// Require* Middleware
// =============================================================================

// RequireIdentity requires a verified token, whether or not the account has
// been stored yet. Must run after WithUser.
func (m *AuthMiddleware) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.GetIdentity(r.Context()); !ok {
			handler.UnauthorizedResponse(w, r, m.logger)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser requires a stored, non-banned account. Must run after WithUser.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.GetIdentity(r.Context()); !ok {
			handler.UnauthorizedResponse(w, r, m.logger)
			return
		}
		if auth.GetUser(r.Context()) == nil {
			handler.ErrorResponse(w, r, m.logger, domain.Forbidden("auth.user", "Sign in to create your account first"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires the admin or super admin role. Use after RequireUser.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.requireRole("admin", (*domain.User).IsAdmin, next)
}

// RequireSuperAdmin requires the super admin role. Use after RequireUser.
func (m *AuthMiddleware) RequireSuperAdmin(next http.Handler) http.Handler {
	return m.requireRole("super admin", (*domain.User).IsSuperAdmin, next)
}

// RequireEmployer requires the employer role. Use after RequireUser.
func (m *AuthMiddleware) RequireEmployer(next http.Handler) http.Handler {
	return m.requireRole("employer", (*domain.User).IsEmployer, next)
}

// RequireCandidate requires the candidate role. Use after RequireUser.
func (m *AuthMiddleware) RequireCandidate(next http.Handler) http.Handler {
	return m.requireRole("candidate", (*domain.User).IsCandidate, next)
}

func (m *AuthMiddleware) requireRole(name string, allowed func(*domain.User) bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := auth.GetUser(r.Context())
		if user == nil {
			m.logger.Error("role check without user in context", "role", name)
			handler.UnauthorizedResponse(w, r, m.logger)
			return
		}
		if !allowed(user) {
			handler.ErrorResponse(w, r, m.logger, domain.Forbidden("auth.role", "Requires "+name+" access"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Middleware Stack Helpers
// =============================================================================

// Stack composes multiple middleware functions into a single middleware.
//
// The first middleware in the list is the outermost (runs first on request,
// last on response).
//
//	adminStack := Stack(authMw.WithUser, authMw.RequireUser, authMw.RequireAdmin)
//	mux.Handle("GET /api/admin/jobs/pending", adminStack(h))
func Stack(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// Ensure middleware functions have correct signature
var (
	_ func(http.Handler) http.Handler = (&AuthMiddleware{}).WithUser
	_ func(http.Handler) http.Handler = (&AuthMiddleware{}).RequireIdentity
	_ func(http.Handler) http.Handler = (&AuthMiddleware{}).RequireUser
	_ func(http.Handler) http.Handler = (&AuthMiddleware{}).RequireAdmin
)
