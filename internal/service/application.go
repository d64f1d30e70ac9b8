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

// ApplicationService handles the candidate side of the board: applying,
// bookmarking and CVs, plus the owner's view of who applied.
type ApplicationService interface {
	// Apply records the candidate's application to a visible listing.
	// Applying twice to the same listing is a Conflict.
	Apply(ctx context.Context, candidateID string, jobID, cvID uuid.UUID, now time.Time) (*domain.Application, error)

	// ListApplied lists the candidate's applications, newest first.
	ListApplied(ctx context.Context, candidateID string) ([]domain.AppliedJob, error)

	// Save bookmarks a visible listing. Saving twice is a no-op.
	Save(ctx context.Context, userID string, jobID uuid.UUID, now time.Time) error

	// Unsave removes a bookmark. Removing a missing bookmark is a no-op.
	Unsave(ctx context.Context, userID string, jobID uuid.UUID) error

	// ListSaved lists the user's bookmarks, newest first.
	ListSaved(ctx context.Context, userID string) ([]domain.SavedJob, error)

	// ListApplicants lists applications to one of the owner's listings and
	// marks unread ones as viewed.
	ListApplicants(ctx context.Context, ownerID string, jobID uuid.UUID, now time.Time) ([]domain.Applicant, error)

	// Review records the owner's verdict on an application.
	Review(ctx context.Context, ownerID string, applicationID uuid.UUID, status domain.ApplicationStatus, now time.Time) error

	// ListCVs lists the user's CVs, default first.
	ListCVs(ctx context.Context, userID string) ([]domain.CV, error)

	// AddCV registers a CV. A new default replaces the previous one.
	AddCV(ctx context.Context, params domain.CreateCVParams) (*domain.CV, error)
}

// applicationService implements ApplicationService.
type applicationService struct {
	db      *sql.DB
	queries *repository.Queries
	logger  *slog.Logger
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(db *sql.DB, queries *repository.Queries, logger *slog.Logger) ApplicationService {
	return &applicationService{
		db:      db,
		queries: queries,
		logger:  logger,
	}
}

// visibleJob loads a listing and refuses it unless candidates may see it.
func (s *applicationService) visibleJob(ctx context.Context, op string, jobID uuid.UUID, now time.Time) error {
	row, err := s.queries.GetJobVisibility(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound(op, "job", jobID.String())
		}
		s.logger.Error("failed to load job", "error", err, "op", op, "job_id", jobID)
		return domain.Internal(err, op, "Failed to load job")
	}
	job := domain.Job{Status: domain.JobStatus(row.Status), ExpiresAt: row.ExpiresAt}
	if !job.IsPublic(now) {
		return domain.NotFound(op, "job", jobID.String())
	}
	return nil
}

func (s *applicationService) Apply(ctx context.Context, candidateID string, jobID, cvID uuid.UUID, now time.Time) (*domain.Application, error) {
	const op = "ApplicationService.Apply"

	if err := s.visibleJob(ctx, op, jobID, now); err != nil {
		metrics.ApplicationRecorded(outcomeFor(err))
		return nil, err
	}

	if _, err := s.queries.GetCVForUser(ctx, repository.GetCVForUserParams{ID: cvID, UserID: candidateID}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewValidationError(op, "cv_id", "Choose one of your CVs")
		}
		s.logger.Error("failed to load cv", "error", err, "op", op, "cv_id", cvID)
		return nil, domain.Internal(err, op, "Failed to load CV")
	}

	row, err := s.queries.CreateApplication(ctx, repository.CreateApplicationParams{
		JobID:       jobID,
		CandidateID: candidateID,
		CvID:        uuid.NullUUID{UUID: cvID, Valid: true},
		AppliedAt:   now,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.ApplicationRecorded(metrics.OutcomeConflict)
			return nil, domain.Conflict(op, "You have already applied to this job")
		}
		metrics.ApplicationRecorded(metrics.OutcomeError)
		s.logger.Error("failed to create application", "error", err, "op", op, "job_id", jobID)
		return nil, domain.Internal(err, op, "Failed to apply")
	}

	metrics.ApplicationRecorded(metrics.OutcomeSuccess)
	s.logger.Info("application submitted", "application_id", row.ID, "job_id", jobID, "candidate_id", candidateID)

	return &domain.Application{
		ID:          row.ID,
		JobID:       row.JobID,
		CandidateID: row.CandidateID,
		CVID:        fromNullUUID(row.CvID),
		Status:      domain.ApplicationStatus(row.Status),
		AppliedAt:   row.AppliedAt,
	}, nil
}

// outcomeFor maps a refusal to its metrics label.
func outcomeFor(err error) string {
	if domain.ErrorCode(err) == domain.ENOTFOUND {
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeError
}

func (s *applicationService) ListApplied(ctx context.Context, candidateID string) ([]domain.AppliedJob, error) {
	const op = "ApplicationService.ListApplied"

	rows, err := s.queries.ListApplicationsByCandidate(ctx, candidateID)
	if err != nil {
		s.logger.Error("failed to list applications", "error", err, "op", op, "candidate_id", candidateID)
		return nil, domain.Internal(err, op, "Failed to list applications")
	}

	out := make([]domain.AppliedJob, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.AppliedJob{
			ApplicationID:      r.ID,
			JobID:              r.JobID,
			Status:             domain.ApplicationStatus(r.Status),
			AppliedAt:          r.AppliedAt,
			JobTitle:           r.JobTitle,
			CompanyName:        r.CompanyName,
			SalaryMin:          domain.NullInt64Value(r.SalaryMin),
			SalaryMax:          domain.NullInt64Value(r.SalaryMax),
			Location:           fromNullString(r.Location),
			SpecializationName: fromNullString(r.SpecializationName),
			ExpiresAt:          r.ExpiresAt,
		})
	}
	return out, nil
}

func (s *applicationService) Save(ctx context.Context, userID string, jobID uuid.UUID, now time.Time) error {
	const op = "ApplicationService.Save"

	if err := s.visibleJob(ctx, op, jobID, now); err != nil {
		return err
	}
	if err := s.queries.SaveJob(ctx, repository.SaveJobParams{UserID: userID, JobID: jobID, SavedAt: now}); err != nil {
		s.logger.Error("failed to save job", "error", err, "op", op, "job_id", jobID)
		return domain.Internal(err, op, "Failed to save job")
	}
	return nil
}

func (s *applicationService) Unsave(ctx context.Context, userID string, jobID uuid.UUID) error {
	const op = "ApplicationService.Unsave"

	if _, err := s.queries.UnsaveJob(ctx, repository.UnsaveJobParams{UserID: userID, JobID: jobID}); err != nil {
		s.logger.Error("failed to unsave job", "error", err, "op", op, "job_id", jobID)
		return domain.Internal(err, op, "Failed to remove saved job")
	}
	return nil
}

func (s *applicationService) ListSaved(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	const op = "ApplicationService.ListSaved"

	rows, err := s.queries.ListSavedJobs(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list saved jobs", "error", err, "op", op, "user_id", userID)
		return nil, domain.Internal(err, op, "Failed to list saved jobs")
	}

	out := make([]domain.SavedJob, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SavedJob{
			Job: repoJobListingToDomain(repository.GetJobDetailRow{
				ID:                 r.ID,
				CompanyID:          r.CompanyID,
				CategoryID:         r.CategoryID,
				SpecializationID:   r.SpecializationID,
				Title:              r.Title,
				Description:        r.Description,
				Requirements:       r.Requirements,
				SalaryMin:          r.SalaryMin,
				SalaryMax:          r.SalaryMax,
				Location:           r.Location,
				JobType:            r.JobType,
				Experience:         r.Experience,
				Status:             r.Status,
				CreatedAt:          r.CreatedAt,
				ExpiresAt:          r.ExpiresAt,
				ApprovedAt:         r.ApprovedAt,
				LastPushedAt:       r.LastPushedAt,
				CompanyName:        r.CompanyName,
				OwnerUserID:        r.OwnerUserID,
				CategoryName:       r.CategoryName,
				SpecializationName: r.SpecializationName,
				OwnerEmail:         r.OwnerEmail,
				OwnerDisplayName:   r.OwnerDisplayName,
			}),
			SavedAt: r.SavedAt,
		})
	}
	return out, nil
}

func (s *applicationService) ListApplicants(ctx context.Context, ownerID string, jobID uuid.UUID, now time.Time) ([]domain.Applicant, error) {
	const op = "ApplicationService.ListApplicants"

	// Someone else's listing reads as missing.
	job, err := s.queries.GetJobVisibility(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "job", jobID.String())
		}
		s.logger.Error("failed to load job", "error", err, "op", op, "job_id", jobID)
		return nil, domain.Internal(err, op, "Failed to load job")
	}
	if job.OwnerUserID != ownerID {
		return nil, domain.NotFound(op, "job", jobID.String())
	}

	if _, err := s.queries.MarkApplicationsViewed(ctx, repository.MarkApplicationsViewedParams{JobID: jobID, UpdatedAt: now}); err != nil {
		s.logger.Error("failed to mark applications viewed", "error", err, "op", op, "job_id", jobID)
		return nil, domain.Internal(err, op, "Failed to list applicants")
	}

	ent, err := resolveCurrentEntitlement(ctx, s.queries, ownerID, now)
	if err != nil {
		s.logger.Error("failed to resolve entitlement", "error", err, "op", op, "owner_id", ownerID)
		return nil, domain.Internal(err, op, "Failed to load subscriptions")
	}
	reveal := domain.CanRevealPhones(ent)

	rows, err := s.queries.ListApplicantsByJob(ctx, jobID)
	if err != nil {
		s.logger.Error("failed to list applicants", "error", err, "op", op, "job_id", jobID)
		return nil, domain.Internal(err, op, "Failed to list applicants")
	}

	out := make([]domain.Applicant, 0, len(rows))
	for _, r := range rows {
		a := domain.Applicant{
			ApplicationID: r.ID,
			CandidateID:   r.CandidateID,
			FullName:      fromNullString(r.FullName),
			Email:         r.CandidateEmail,
			Phone:         fromNullString(r.PhoneNumber),
			Status:        domain.ApplicationStatus(r.Status),
			AppliedAt:     r.AppliedAt,
		}
		if a.FullName == "" {
			a.FullName = fromNullString(r.DisplayName)
		}
		if !reveal && a.Phone != "" {
			a.Phone = domain.MaskPhone(a.Phone)
			a.PhoneMasked = true
		}
		if r.CvID.Valid {
			a.CV = &domain.CV{
				ID:   r.CvID.UUID,
				Name: fromNullString(r.CvName),
				URL:  fromNullString(r.FileUrl),
			}
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *applicationService) Review(ctx context.Context, ownerID string, applicationID uuid.UUID, status domain.ApplicationStatus, now time.Time) error {
	const op = "ApplicationService.Review"

	if status != domain.ApplicationStatusSuitable && status != domain.ApplicationStatusUnsuitable {
		return domain.NewValidationError(op, "status", "Status must be suitable or unsuitable")
	}

	n, err := s.queries.SetApplicationStatus(ctx, repository.SetApplicationStatusParams{
		ID:          applicationID,
		OwnerUserID: ownerID,
		Status:      int16(status),
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error("failed to review application", "error", err, "op", op, "application_id", applicationID)
		return domain.Internal(err, op, "Failed to update application")
	}
	if n == 0 {
		return domain.NotFound(op, "application", applicationID.String())
	}

	s.logger.Info("application reviewed", "application_id", applicationID, "status", status.String())
	return nil
}

func (s *applicationService) ListCVs(ctx context.Context, userID string) ([]domain.CV, error) {
	const op = "ApplicationService.ListCVs"

	rows, err := s.queries.ListCVsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list cvs", "error", err, "op", op, "user_id", userID)
		return nil, domain.Internal(err, op, "Failed to list CVs")
	}

	out := make([]domain.CV, 0, len(rows))
	for _, r := range rows {
		out = append(out, repoCVToDomain(r))
	}
	return out, nil
}

func (s *applicationService) AddCV(ctx context.Context, params domain.CreateCVParams) (*domain.CV, error) {
	const op = "ApplicationService.AddCV"

	params.Name = strings.TrimSpace(params.Name)
	params.URL = strings.TrimSpace(params.URL)
	if err := params.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to save CV")
	}
	defer func() { _ = tx.Rollback() }()
	qtx := s.queries.WithTx(tx)

	if params.IsDefault {
		if err := qtx.ClearDefaultCV(ctx, params.UserID); err != nil {
			s.logger.Error("failed to clear default cv", "error", err, "op", op, "user_id", params.UserID)
			return nil, domain.Internal(err, op, "Failed to save CV")
		}
	}

	row, err := qtx.CreateCV(ctx, repository.CreateCVParams{
		UserID:    params.UserID,
		CvName:    params.Name,
		FileUrl:   params.URL,
		IsDefault: params.IsDefault,
	})
	if err != nil {
		s.logger.Error("failed to create cv", "error", err, "op", op, "user_id", params.UserID)
		return nil, domain.Internal(err, op, "Failed to save CV")
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit cv", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to save CV")
	}

	cv := repoCVToDomain(row)
	return &cv, nil
}

// repoCVToDomain converts a repository.Cv to domain.CV.
func repoCVToDomain(c repository.Cv) domain.CV {
	return domain.CV{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.CvName,
		URL:       c.FileUrl,
		IsDefault: c.IsDefault,
		CreatedAt: c.CreatedAt,
	}
}
