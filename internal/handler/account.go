package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DukeRupert/jobboard/internal/auth"
	"github.com/DukeRupert/jobboard/internal/service"
)

// AccountHandler handles sign-in and the caller's own account.
type AccountHandler struct {
	users  service.UserService
	logger *slog.Logger
	now    func() time.Time
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(users service.UserService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

// RegisterRoutes registers account routes.
func (h *AccountHandler) RegisterRoutes(mux *http.ServeMux, g Guards) {
	g = g.withDefaults()

	mux.Handle("POST /api/auth/session", g.Identity(http.HandlerFunc(h.SignIn)))
	mux.Handle("GET /api/me", g.User(http.HandlerFunc(h.Me)))
	mux.Handle("POST /api/me/role", g.User(http.HandlerFunc(h.ChooseRole)))
}

// SignIn records the verified identity and returns the stored account.
// The first sign-in creates the account.
func (h *AccountHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.GetIdentity(r.Context())
	if !ok {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	user, err := h.users.SyncIdentity(r.Context(), identity, h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	if user.IsBanned {
		ForbiddenResponse(w, r, h.logger, "This account has been banned")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Me returns the caller's account.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// ChooseRole lets a new account pick employer or candidate once.
func (h *AccountHandler) ChooseRole(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	var req chooseRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	role, err := req.role()
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	updated, err := h.users.ChooseRole(r.Context(), user.ID, role)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}
