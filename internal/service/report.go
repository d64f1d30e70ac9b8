package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/metrics"
	"github.com/DukeRupert/jobboard/internal/repository"
)

// ReportService builds read-only aggregates for the admin dashboard.
type ReportService interface {
	// NewPosts counts listings created in the window selected by rng.
	// year is only read for domain.ReportRangeYear.
	NewPosts(ctx context.Context, rng domain.ReportRange, year int, now time.Time) (*domain.NewPostsReport, error)
}

// reportService implements ReportService.
type reportService struct {
	queries *repository.Queries
	logger  *slog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(queries *repository.Queries, logger *slog.Logger) ReportService {
	return &reportService{
		queries: queries,
		logger:  logger,
	}
}

func (s *reportService) NewPosts(ctx context.Context, rng domain.ReportRange, year int, now time.Time) (*domain.NewPostsReport, error) {
	const op = "ReportService.NewPosts"

	window, err := domain.WindowFor(rng, year, now)
	if err != nil {
		return nil, err
	}

	days, err := s.queries.CountJobsByDay(ctx, repository.CountJobsByDayParams{
		CreatedAt:   window.Start,
		CreatedAt_2: window.End,
	})
	if err != nil {
		s.logger.Error("failed to count jobs by day", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to build report")
	}

	categories, err := s.queries.CountJobsByCategory(ctx, repository.CountJobsByCategoryParams{
		CreatedAt:   window.Start,
		CreatedAt_2: window.End,
	})
	if err != nil {
		s.logger.Error("failed to count jobs by category", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to build report")
	}

	specializations, err := s.queries.CountJobsBySpecialization(ctx, repository.CountJobsBySpecializationParams{
		CreatedAt:   window.Start,
		CreatedAt_2: window.End,
	})
	if err != nil {
		s.logger.Error("failed to count jobs by specialization", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to build report")
	}

	// Day rows come back as calendar dates already shifted to UTC+7;
	// month buckets are summed from them.
	counts := make(map[string]int64)
	var total int64
	for _, d := range days {
		counts[window.Label(d.Day)] += d.Total
		total += d.Total
	}

	labels := window.Labels()
	bar := make([]domain.CountBucket, 0, len(labels))
	for _, label := range labels {
		bar = append(bar, domain.CountBucket{Label: label, Count: counts[label]})
	}

	report := &domain.NewPostsReport{
		Range:              rng,
		Granularity:        window.Granularity,
		StartDate:          window.Start,
		EndDate:            window.End.AddDate(0, 0, -1),
		Total:              total,
		Bar:                bar,
		PieCategories:      make([]domain.CategorySlice, 0, len(categories)),
		PieSpecializations: make([]domain.CategorySlice, 0, len(specializations)),
	}
	// A Caser is stateful, so each report gets its own.
	title := cases.Title(language.Und)
	for _, c := range categories {
		report.PieCategories = append(report.PieCategories, domain.CategorySlice{
			Name:  reportLabel(title, c.Name, "Uncategorized"),
			Value: c.Total,
		})
	}
	for _, sp := range specializations {
		report.PieSpecializations = append(report.PieSpecializations, domain.CategorySlice{
			Name:  reportLabel(title, sp.Name, "Unspecified"),
			Value: sp.Total,
		})
	}

	metrics.ReportsGenerated.WithLabelValues(string(rng)).Inc()
	return report, nil
}

func reportLabel(title cases.Caser, name, fallback string) string {
	if name == "" {
		return fallback
	}
	return title.String(name)
}
