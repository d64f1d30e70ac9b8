package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/metrics"
	"github.com/DukeRupert/jobboard/internal/repository"
)

// JobService handles employer-owned listings and the public job board.
type JobService interface {
	// Create submits a new listing for review under the owner's company.
	Create(ctx context.Context, params domain.CreateJobParams, now time.Time) (*domain.Job, error)

	// ListMine lists the owner's listings, most recently pushed first.
	ListMine(ctx context.Context, ownerID string) ([]domain.Job, error)

	// ListPublic lists active, unexpired listings in board order.
	ListPublic(ctx context.Context, filter domain.PublicJobFilter, now time.Time) ([]domain.Job, error)

	// GetPublic retrieves a listing only if candidates may see it at now.
	GetPublic(ctx context.Context, jobID uuid.UUID, now time.Time) (*domain.Job, error)

	// GetCompany retrieves the owner's company profile.
	GetCompany(ctx context.Context, ownerID string) (*domain.CompanyProfile, error)

	// SaveCompany creates or updates the owner's company profile.
	SaveCompany(ctx context.Context, ownerID string, profile domain.CompanyProfile) (*domain.CompanyProfile, error)
}

// jobService implements JobService.
type jobService struct {
	queries *repository.Queries
	logger  *slog.Logger
}

// NewJobService creates a new JobService.
func NewJobService(queries *repository.Queries, logger *slog.Logger) JobService {
	return &jobService{
		queries: queries,
		logger:  logger,
	}
}

func (s *jobService) Create(ctx context.Context, params domain.CreateJobParams, now time.Time) (*domain.Job, error) {
	const op = "JobService.Create"

	params.Title = strings.TrimSpace(params.Title)
	params.Description = strings.TrimSpace(params.Description)
	if err := params.Validate(now); err != nil {
		return nil, err
	}

	company, err := s.queries.GetCompanyByOwner(ctx, params.OwnerUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Forbidden(op, "A company profile is required before posting jobs")
		}
		s.logger.Error("failed to load company", "error", err, "op", op, "owner_id", params.OwnerUserID)
		return nil, domain.Internal(err, op, "Failed to load company")
	}

	repoJob, err := s.queries.CreateJob(ctx, repository.CreateJobParams{
		CompanyID:        company.ID,
		CategoryID:       domain.ToNullInt32(params.CategoryID),
		SpecializationID: domain.ToNullInt32(params.SpecializationID),
		Title:            params.Title,
		Description:      params.Description,
		Requirements:     toNullString(params.Requirements),
		SalaryMin:        domain.ToNullInt64(params.SalaryMin),
		SalaryMax:        domain.ToNullInt64(params.SalaryMax),
		Location:         toNullString(params.Location),
		JobType:          toNullString(params.JobType),
		Experience:       toNullString(params.Experience),
		ExpiresAt:        params.ExpiresAt,
	})
	if err != nil {
		s.logger.Error("failed to create job", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to create job")
	}

	job := repoJobToDomain(repoJob)
	job.CompanyName = company.CompanyName
	metrics.JobsCreated.Inc()
	s.logger.Info("job submitted", "job_id", job.ID, "company_id", company.ID, "owner_id", params.OwnerUserID)

	return &job, nil
}

func (s *jobService) ListMine(ctx context.Context, ownerID string) ([]domain.Job, error) {
	const op = "JobService.ListMine"

	rows, err := s.queries.ListJobsByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list jobs", "error", err, "op", op, "owner_id", ownerID)
		return nil, domain.Internal(err, op, "Failed to list jobs")
	}

	jobs := make([]domain.Job, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, repoJobListingToDomain(repository.GetJobDetailRow(r)))
	}
	return jobs, nil
}

func (s *jobService) ListPublic(ctx context.Context, filter domain.PublicJobFilter, now time.Time) ([]domain.Job, error) {
	const op = "JobService.ListPublic"

	filter = filter.Normalize()
	rows, err := s.queries.ListPublicJobs(ctx, repository.ListPublicJobsParams{
		Now:        now,
		CategoryID: domain.ToNullInt32(filter.CategoryID),
		Location:   toNullString(filter.Location),
		Keyword:    toNullString(filter.Keyword),
		RowLimit:   filter.Limit,
		RowOffset:  filter.Offset,
	})
	if err != nil {
		s.logger.Error("failed to list public jobs", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to list jobs")
	}

	jobs := make([]domain.Job, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, repoJobListingToDomain(repository.GetJobDetailRow(r)))
	}
	return jobs, nil
}

func (s *jobService) GetPublic(ctx context.Context, jobID uuid.UUID, now time.Time) (*domain.Job, error) {
	const op = "JobService.GetPublic"

	row, err := s.queries.GetJobDetail(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "job", jobID.String())
		}
		s.logger.Error("failed to get job", "error", err, "op", op, "job_id", jobID)
		return nil, domain.Internal(err, op, "Failed to get job")
	}

	job := repoJobListingToDomain(row)
	if !job.IsPublic(now) {
		return nil, domain.NotFound(op, "job", jobID.String())
	}
	return &job, nil
}

func (s *jobService) GetCompany(ctx context.Context, ownerID string) (*domain.CompanyProfile, error) {
	const op = "JobService.GetCompany"

	company, err := s.queries.GetCompanyByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "company", ownerID)
		}
		s.logger.Error("failed to load company", "error", err, "op", op, "owner_id", ownerID)
		return nil, domain.Internal(err, op, "Failed to load company")
	}
	return repoCompanyToDomain(company), nil
}

func (s *jobService) SaveCompany(ctx context.Context, ownerID string, profile domain.CompanyProfile) (*domain.CompanyProfile, error) {
	const op = "JobService.SaveCompany"

	profile.Name = strings.TrimSpace(profile.Name)
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.queries.GetCompanyByOwner(ctx, ownerID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created, err := s.queries.CreateCompany(ctx, repository.CreateCompanyParams{
			OwnerUserID:        ownerID,
			CompanyName:        profile.Name,
			CompanyEmail:       toNullString(profile.Email),
			CompanyPhone:       toNullString(profile.Phone),
			WebsiteUrl:         toNullString(profile.WebsiteURL),
			LogoUrl:            toNullString(profile.LogoURL),
			Address:            toNullString(profile.Address),
			City:               toNullString(profile.City),
			Country:            toNullString(profile.Country),
			CompanyDescription: toNullString(profile.Description),
		})
		if err != nil {
			s.logger.Error("failed to create company", "error", err, "op", op, "owner_id", ownerID)
			return nil, domain.Internal(err, op, "Failed to save company")
		}
		s.logger.Info("company created", "company_id", created.ID, "owner_id", ownerID)
		return repoCompanyToDomain(created), nil
	case err != nil:
		s.logger.Error("failed to load company", "error", err, "op", op, "owner_id", ownerID)
		return nil, domain.Internal(err, op, "Failed to load company")
	}

	updated, err := s.queries.UpdateCompanyProfile(ctx, repository.UpdateCompanyProfileParams{
		ID:                 existing.ID,
		CompanyName:        profile.Name,
		CompanyEmail:       toNullString(profile.Email),
		CompanyPhone:       toNullString(profile.Phone),
		WebsiteUrl:         toNullString(profile.WebsiteURL),
		LogoUrl:            toNullString(profile.LogoURL),
		Address:            toNullString(profile.Address),
		City:               toNullString(profile.City),
		Country:            toNullString(profile.Country),
		CompanyDescription: toNullString(profile.Description),
	})
	if err != nil {
		s.logger.Error("failed to update company", "error", err, "op", op, "company_id", existing.ID)
		return nil, domain.Internal(err, op, "Failed to save company")
	}
	return repoCompanyToDomain(updated), nil
}
