package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DukeRupert/jobboard/internal/auth"
	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/service"
)

// JobHandler handles the public board and the employer's own listings.
type JobHandler struct {
	jobs       service.JobService
	promotions service.PromotionService
	logger     *slog.Logger
	now        func() time.Time
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs service.JobService, promotions service.PromotionService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		jobs:       jobs,
		promotions: promotions,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterRoutes registers job routes.
func (h *JobHandler) RegisterRoutes(mux *http.ServeMux, g Guards) {
	g = g.withDefaults()

	// Public board
	mux.Handle("GET /api/jobs", g.Public(http.HandlerFunc(h.ListPublic)))
	mux.Handle("GET /api/jobs/{id}", g.Public(http.HandlerFunc(h.GetPublic)))

	// Employer
	mux.Handle("POST /api/jobs", g.Employer(http.HandlerFunc(h.Create)))
	mux.Handle("POST /api/jobs/{id}/push-top", g.Employer(g.PushLimit(http.HandlerFunc(h.PushToTop))))
	mux.Handle("GET /api/me/jobs", g.Employer(http.HandlerFunc(h.ListMine)))
	mux.Handle("GET /api/me/promotion", g.Employer(http.HandlerFunc(h.PromotionStatus)))
	mux.Handle("GET /api/me/company", g.Employer(http.HandlerFunc(h.GetCompany)))
	mux.Handle("PUT /api/me/company", g.Employer(http.HandlerFunc(h.SaveCompany)))
}

// ListPublic lists active, unexpired listings in board order.
//
// Query parameters: category, location, q, limit, offset.
func (h *JobHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := pageFromQuery(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	filter := domain.PublicJobFilter{
		Location: strings.TrimSpace(q.Get("location")),
		Keyword:  strings.TrimSpace(q.Get("q")),
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
	if q.Get("category") != "" {
		id, err := queryInt32(r, "category")
		if err != nil {
			ErrorResponse(w, r, h.logger, err)
			return
		}
		filter.CategoryID = &id
	}
	filter = filter.Normalize()

	jobs, err := h.jobs.ListPublic(r.Context(), filter, h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[jobResponse]{
		Data:   toJobResponses(jobs),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetPublic returns one listing if candidates may see it.
func (h *JobHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	job, err := h.jobs.GetPublic(r.Context(), id, h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toJobResponse(job))
}

// Create submits a new listing for review.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	var req createJobRequest
	if err := decodeJSON(w, r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	job, err := h.jobs.Create(r.Context(), req.params(user.ID), h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	w.Header().Set("Location", "/api/jobs/"+job.ID.String())
	writeJSON(w, http.StatusCreated, toJobResponse(job))
}

// PushToTop moves one of the caller's listings to the top of the board.
func (h *JobHandler) PushToTop(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	result, err := h.promotions.PushJobToTop(r.Context(), id, user.ID, h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	h.logger.Info("job pushed to top",
		"job_id", result.JobID,
		"user_id", user.ID,
		"tier", result.Tier,
	)
	writeJSON(w, http.StatusOK, toPromotionResultResponse(result))
}

// ListMine lists the caller's listings in every status.
func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	jobs, err := h.jobs.ListMine(r.Context(), user.ID)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[jobResponse]{Data: toJobResponses(jobs)})
}

// PromotionStatus previews the caller's push allowance.
func (h *JobHandler) PromotionStatus(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	status, err := h.promotions.Status(r.Context(), user.ID, h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toPromotionStatusResponse(status))
}

// GetCompany returns the caller's company profile.
func (h *JobHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	company, err := h.jobs.GetCompany(r.Context(), user.ID)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toCompanyResponse(company))
}

// SaveCompany creates or replaces the caller's company profile.
func (h *JobHandler) SaveCompany(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromRequest(r)
	if user == nil {
		UnauthorizedResponse(w, r, h.logger)
		return
	}

	var req companyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	company, err := h.jobs.SaveCompany(r.Context(), user.ID, req.profile())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toCompanyResponse(company))
}
