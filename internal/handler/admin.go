package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/service"
)

// AdminHandler handles the back office: moderation and account management.
type AdminHandler struct {
	moderation   service.ModerationService
	users        service.UserService
	entitlements service.EntitlementService
	logger       *slog.Logger
	now          func() time.Time
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	moderation service.ModerationService,
	users service.UserService,
	entitlements service.EntitlementService,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		moderation:   moderation,
		users:        users,
		entitlements: entitlements,
		logger:       logger,
		now:          time.Now,
	}
}

// RegisterRoutes registers admin routes.
func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux, g Guards) {
	g = g.withDefaults()

	// Moderation
	mux.Handle("GET /api/admin/jobs/pending", g.Admin(http.HandlerFunc(h.ListPending)))
	mux.Handle("GET /api/admin/jobs/active", g.Admin(http.HandlerFunc(h.ListActive)))
	mux.Handle("GET /api/admin/jobs/{id}", g.Admin(http.HandlerFunc(h.JobDetail)))
	mux.Handle("PATCH /api/admin/jobs/{id}/approve", g.Admin(http.HandlerFunc(h.Approve)))
	mux.Handle("PATCH /api/admin/jobs/{id}/reject", g.Admin(http.HandlerFunc(h.Reject)))

	// Accounts
	mux.Handle("GET /api/admin/candidates", g.Admin(http.HandlerFunc(h.ListCandidates)))
	mux.Handle("GET /api/admin/employers", g.Admin(http.HandlerFunc(h.ListEmployers)))
	mux.Handle("GET /api/admin/unassigned-users", g.Admin(http.HandlerFunc(h.ListWithoutRole)))
	mux.Handle("GET /api/admin/users/{uid}/subscriptions", g.Admin(http.HandlerFunc(h.Subscriptions)))
	mux.Handle("PUT /api/admin/users/{uid}/ban", g.Admin(http.HandlerFunc(h.SetBanned)))
	mux.Handle("DELETE /api/admin/users/{uid}", g.Admin(http.HandlerFunc(h.DeleteUser)))

	// System admins
	mux.Handle("GET /api/admin/system-admins", g.SuperAdmin(http.HandlerFunc(h.ListSystemAdmins)))
	mux.Handle("POST /api/admin/system-admins", g.SuperAdmin(http.HandlerFunc(h.CreateSystemAdmin)))
}

// =============================================================================
// Moderation
// =============================================================================

// ListPending lists listings awaiting review.
func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	h.listJobs(w, r, h.moderation.ListPending)
}

// ListActive lists approved listings.
func (h *AdminHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	h.listJobs(w, r, h.moderation.ListActive)
}

func (h *AdminHandler) listJobs(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, page domain.Page) ([]domain.Job, error)) {
	page, err := pageFromQuery(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	page = page.Normalize()

	jobs, err := list(r.Context(), page)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[jobResponse]{
		Data:   toJobResponses(jobs),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// JobDetail returns any listing regardless of status.
func (h *AdminHandler) JobDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	job, err := h.moderation.GetDetail(r.Context(), id)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toJobResponse(job))
}

// Approve publishes a pending listing.
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if err := h.moderation.Approve(r.Context(), id, h.now()); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Job approved"})
}

// Reject turns down a pending listing.
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if err := h.moderation.Reject(r.Context(), id); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Job rejected"})
}

// =============================================================================
// Accounts
// =============================================================================

// ListCandidates lists candidate accounts with profile and current VIP plan.
func (h *AdminHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	page = page.Normalize()

	rows, err := h.users.ListCandidates(r.Context(), page, h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	out := make([]candidateSummaryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, candidateSummaryResponse{
			userResponse: toUserResponse(&rows[i].User),
			Profile:      toCandidateProfileResponse(rows[i].Profile),
			CurrentVIP:   toEntitlementResponse(rows[i].CurrentVIP),
		})
	}
	writeJSON(w, http.StatusOK, listResponse[candidateSummaryResponse]{Data: out, Limit: page.Limit, Offset: page.Offset})
}

// ListEmployers lists employer accounts with company and current VIP plan.
func (h *AdminHandler) ListEmployers(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	page = page.Normalize()

	rows, err := h.users.ListEmployers(r.Context(), page, h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	out := make([]employerSummaryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, employerSummaryResponse{
			userResponse: toUserResponse(&rows[i].User),
			Company:      toCompanyResponse(rows[i].Company),
			CurrentVIP:   toEntitlementResponse(rows[i].CurrentVIP),
		})
	}
	writeJSON(w, http.StatusOK, listResponse[employerSummaryResponse]{Data: out, Limit: page.Limit, Offset: page.Offset})
}

// ListWithoutRole lists accounts that never picked a role.
func (h *AdminHandler) ListWithoutRole(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	page = page.Normalize()

	users, err := h.users.ListWithoutRole(r.Context(), page)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[userResponse]{Data: toUserResponses(users), Limit: page.Limit, Offset: page.Offset})
}

// Subscriptions lists every subscription a user ever held.
func (h *AdminHandler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	history, err := h.entitlements.History(r.Context(), uid)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	out := make([]entitlementResponse, 0, len(history))
	for i := range history {
		out = append(out, *toEntitlementResponse(&history[i]))
	}
	writeJSON(w, http.StatusOK, listResponse[entitlementResponse]{Data: out})
}

// SetBanned bans or unbans an account. Body: {"banned": true}.
func (h *AdminHandler) SetBanned(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	var req banRequest
	if err := decodeJSON(w, r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	if req.Banned == nil {
		ErrorResponse(w, r, h.logger, domain.NewValidationError("handler.ban", "banned", "Banned is required"))
		return
	}

	if err := h.users.SetBanned(r.Context(), uid, *req.Banned); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	h.logger.Info("user ban updated", "user_id", uid, "banned", *req.Banned)
	writeJSON(w, http.StatusOK, map[string]any{"id": uid, "banned": *req.Banned})
}

// DeleteUser removes an account and its subscriptions.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	if err := h.users.Delete(r.Context(), uid, h.now()); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	h.logger.Info("user deleted", "user_id", uid)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// System admins
// =============================================================================

// ListSystemAdmins lists admin and super admin accounts.
func (h *AdminHandler) ListSystemAdmins(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListSystemAdmins(r.Context())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[userResponse]{Data: toUserResponses(users)})
}

// CreateSystemAdmin records an identity-provider account as an admin.
func (h *AdminHandler) CreateSystemAdmin(w http.ResponseWriter, r *http.Request) {
	var req createAdminRequest
	if err := decodeJSON(w, r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	user, err := h.users.CreateSystemAdmin(r.Context(), domain.CreateAdminParams{
		Subject:     strings.TrimSpace(req.UID),
		Email:       strings.TrimSpace(req.Email),
		DisplayName: strings.TrimSpace(req.DisplayName),
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}
