package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/metrics"
	"github.com/DukeRupert/jobboard/internal/repository"
)

// ModerationService drives the admin review of job listings.
type ModerationService interface {
	// Approve moves a pending listing to active and stamps the approval time.
	// Returns Conflict if the listing is no longer pending.
	Approve(ctx context.Context, jobID uuid.UUID, now time.Time) error

	// Reject moves a pending listing to rejected and clears the approval time.
	// Returns Conflict if the listing is no longer pending.
	Reject(ctx context.Context, jobID uuid.UUID) error

	// ListPending lists listings awaiting review, soonest expiry first.
	ListPending(ctx context.Context, page domain.Page) ([]domain.Job, error)

	// ListActive lists approved listings, including expired ones.
	ListActive(ctx context.Context, page domain.Page) ([]domain.Job, error)

	// GetDetail retrieves any listing regardless of status.
	GetDetail(ctx context.Context, jobID uuid.UUID) (*domain.Job, error)
}

// moderationService implements ModerationService.
type moderationService struct {
	queries *repository.Queries
	logger  *slog.Logger
}

// NewModerationService creates a new ModerationService.
func NewModerationService(queries *repository.Queries, logger *slog.Logger) ModerationService {
	return &moderationService{
		queries: queries,
		logger:  logger,
	}
}

func (s *moderationService) Approve(ctx context.Context, jobID uuid.UUID, now time.Time) error {
	const op = "ModerationService.Approve"

	n, err := s.queries.ApproveJob(ctx, repository.ApproveJobParams{
		ID:         jobID,
		ApprovedAt: sql.NullTime{Time: now, Valid: true},
	})
	return s.finish(ctx, op, domain.ModerationApprove, jobID, n, err)
}

func (s *moderationService) Reject(ctx context.Context, jobID uuid.UUID) error {
	const op = "ModerationService.Reject"

	n, err := s.queries.RejectJob(ctx, jobID)
	return s.finish(ctx, op, domain.ModerationReject, jobID, n, err)
}

// finish interprets the result of a guarded status update. Zero affected rows
// means the guard failed; a follow-up read tells a missing job apart from one
// that was already moderated.
func (s *moderationService) finish(ctx context.Context, op string, action domain.ModerationAction, jobID uuid.UUID, n int64, err error) error {
	if err != nil {
		metrics.ModerationRecorded(string(action), metrics.OutcomeError)
		s.logger.Error("failed to moderate job", "error", err, "op", op, "job_id", jobID)
		return domain.Internal(err, op, "Failed to update job")
	}

	if n == 0 {
		status, err := s.queries.GetJobStatus(ctx, jobID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				metrics.ModerationRecorded(string(action), metrics.OutcomeNotFound)
				return domain.NotFound(op, "job", jobID.String())
			}
			metrics.ModerationRecorded(string(action), metrics.OutcomeError)
			s.logger.Error("failed to read job status", "error", err, "op", op, "job_id", jobID)
			return domain.Internal(err, op, "Failed to update job")
		}
		metrics.ModerationRecorded(string(action), metrics.OutcomeConflict)
		s.logger.Info("moderation conflict", "job_id", jobID, "action", action, "status", domain.JobStatus(status))
		return domain.Conflict(op, "Job has already been processed")
	}

	metrics.ModerationRecorded(string(action), metrics.OutcomeSuccess)
	s.logger.Info("job moderated", "job_id", jobID, "action", action, "status", action.TargetStatus())
	return nil
}

func (s *moderationService) ListPending(ctx context.Context, page domain.Page) ([]domain.Job, error) {
	return s.listByStatus(ctx, "ModerationService.ListPending", domain.JobStatusPendingReview, page)
}

func (s *moderationService) ListActive(ctx context.Context, page domain.Page) ([]domain.Job, error) {
	return s.listByStatus(ctx, "ModerationService.ListActive", domain.JobStatusActive, page)
}

func (s *moderationService) listByStatus(ctx context.Context, op string, status domain.JobStatus, page domain.Page) ([]domain.Job, error) {
	page = page.Normalize()

	rows, err := s.queries.ListJobsByStatus(ctx, repository.ListJobsByStatusParams{
		Status: int16(status),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		s.logger.Error("failed to list jobs", "error", err, "op", op, "status", status)
		return nil, domain.Internal(err, op, "Failed to list jobs")
	}

	jobs := make([]domain.Job, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, repoJobListingToDomain(repository.GetJobDetailRow(r)))
	}
	return jobs, nil
}

func (s *moderationService) GetDetail(ctx context.Context, jobID uuid.UUID) (*domain.Job, error) {
	const op = "ModerationService.GetDetail"

	row, err := s.queries.GetJobDetail(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "job", jobID.String())
		}
		s.logger.Error("failed to get job", "error", err, "op", op, "job_id", jobID)
		return nil, domain.Internal(err, op, "Failed to get job")
	}

	job := repoJobListingToDomain(row)
	return &job, nil
}
