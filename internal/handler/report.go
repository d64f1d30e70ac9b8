package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/service"
)

// ReportHandler serves the admin dashboard reports.
type ReportHandler struct {
	reports service.ReportService
	logger  *slog.Logger
	now     func() time.Time
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		logger:  logger,
		now:     time.Now,
	}
}

// RegisterRoutes registers report routes.
func (h *ReportHandler) RegisterRoutes(mux *http.ServeMux, g Guards) {
	g = g.withDefaults()

	mux.Handle("GET /api/admin/reports/new-posts", g.Admin(http.HandlerFunc(h.NewPosts)))
}

// NewPosts counts listings created in a window.
//
// Query parameters: range (7d, 1m, 3m, 6m, 1y, year; default 7d) and year,
// required when range=year.
func (h *ReportHandler) NewPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rng := domain.ReportRange(strings.TrimSpace(q.Get("range")))
	if rng == "" {
		rng = domain.ReportRange7Days
	}

	var year int
	if raw := strings.TrimSpace(q.Get("year")); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			ErrorResponse(w, r, h.logger, domain.NewValidationError("handler.report", "year", "Year must be a number"))
			return
		}
		year = y
	} else if rng == domain.ReportRangeYear {
		ErrorResponse(w, r, h.logger, domain.NewValidationError("handler.report", "year", "Year is required"))
		return
	}

	report, err := h.reports.NewPosts(r.Context(), rng, year, h.now())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
