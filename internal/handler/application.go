package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DukeRupert/jobboard/internal/auth"
	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/service"
)

// ApplicationHandler handles applying, bookmarks and CVs for candidates and
// the applicant list for employers.
type ApplicationHandler struct {
	applications service.ApplicationService
	logger       *slog.Logger
	now          func() time.Time
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applications service.ApplicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		logger:       logger,
		now:          time.Now,
	}
}

// RegisterRoutes registers application routes.
func (h *ApplicationHandler) RegisterRoutes(mux *http.ServeMux, g Guards) {
	g = g.withDefaults()

	// Candidate
	mux.Handle("POST /api/jobs/{id}/apply", g.Candidate(http.HandlerFunc(h.Apply)))
	mux.Handle("GET /api/me/applications", g.Candidate(http.HandlerFunc(h.ListApplied)))
	mux.Handle("GET /api/me/saved-jobs", g.Candidate(http.HandlerFunc(h.ListSaved)))
	mux.Handle("PUT /api/me/saved-jobs/{id}", g.Candidate(http.HandlerFunc(h.Save)))
	mux.Handle("DELETE /api/me/saved-jobs/{id}", g.Candidate(http.HandlerFunc(h.Unsave)))
	mux.Handle("GET /api/me/cvs", g.Candidate(http.HandlerFunc(h.ListCVs)))
	mux.Handle("POST /api/me/cvs", g.Candidate(http.HandlerFunc(h.AddCV)))

	// Employer
	mux.Handle("GET /api/me/jobs/{id}/applicants", g.Employer(http.HandlerFunc(h.ListApplicants)))
	mux.Handle("PATCH /api/me/applicants/{id}/status", g.Employer(http.HandlerFunc(h.Review)))
}

// Apply records the caller's application to a listing with one of their CVs.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	jobID, err := pathUUID(r, "id")
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	var req applyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	cvID, err := req.cvID()
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	app, err := h.applications.Apply(r.Context(), user.ID, jobID, cvID, h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// ListApplied lists the caller's applications.
func (h *ApplicationHandler) ListApplied(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	items, err := h.applications.ListApplied(r.Context(), user.ID)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[appliedJobResponse]{Data: toAppliedJobResponses(items)})
}

// ListSaved lists the caller's bookmarked listings.
func (h *ApplicationHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	items, err := h.applications.ListSaved(r.Context(), user.ID)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[savedJobResponse]{Data: toSavedJobResponses(items)})
}

// Save bookmarks a listing.
func (h *ApplicationHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	jobID, err := pathUUID(r, "id")
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if err := h.applications.Save(r.Context(), user.ID, jobID, h.now()); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Unsave removes a bookmark.
func (h *ApplicationHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	jobID, err := pathUUID(r, "id")
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if err := h.applications.Unsave(r.Context(), user.ID, jobID); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCVs lists the caller's CVs.
func (h *ApplicationHandler) ListCVs(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	cvs, err := h.applications.ListCVs(r.Context(), user.ID)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	out := make([]cvResponse, 0, len(cvs))
	for i := range cvs {
		out = append(out, toCVResponse(&cvs[i]))
	}
	writeJSON(w, http.StatusOK, listResponse[cvResponse]{Data: out})
}

// AddCV registers a CV by URL.
func (h *ApplicationHandler) AddCV(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	var req createCVRequest
	if err := decodeJSON(w, r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	cv, err := h.applications.AddCV(r.Context(), req.params(user.ID))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCVResponse(cv))
}

// ListApplicants lists who applied to one of the caller's listings.
func (h *ApplicationHandler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	jobID, err := pathUUID(r, "id")
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	applicants, err := h.applications.ListApplicants(r.Context(), user.ID, jobID, h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicantsResponse(applicants))
}

// Review records a suitable/unsuitable verdict on an application.
func (h *ApplicationHandler) Review(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	appID, err := pathUUID(r, "id")
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	status, err := domain.ParseReviewDecision(req.Status)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if err := h.applications.Review(r.Context(), user.ID, appID, status, h.now()); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
