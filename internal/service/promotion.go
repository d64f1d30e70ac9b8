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

// PromotionService moves job listings to the top of the default ordering.
type PromotionService interface {
	// PushJobToTop records a push for a job owned by ownerID.
	//
	// Returns NotFound when the job does not exist or belongs to someone else,
	// *domain.QuotaExceededError or *domain.CooldownError when the push is
	// refused, and Conflict when a concurrent push changed the counter first.
	PushJobToTop(ctx context.Context, jobID uuid.UUID, ownerID string, now time.Time) (*domain.PromotionResult, error)

	// Status previews the owner's push allowance without changing it.
	Status(ctx context.Context, ownerID string, now time.Time) (*domain.PromotionStatus, error)
}

// promotionService implements PromotionService.
type promotionService struct {
	db      *sql.DB
	queries *repository.Queries
	logger  *slog.Logger
}

// NewPromotionService creates a new PromotionService.
//
// db is used to open the transaction that covers the counter and the job
// timestamp; queries must be built on the same database.
func NewPromotionService(db *sql.DB, queries *repository.Queries, logger *slog.Logger) PromotionService {
	return &promotionService{
		db:      db,
		queries: queries,
		logger:  logger,
	}
}

// PushJobToTop implements the push decision inside one transaction.
//
// Flow:
// 1. Lock the job and its company (FOR UPDATE), scoped to the owner
// 2. Resolve the owner's current entitlement
// 3. Decide paid or free tier and check the quota or weekly cooldown
// 4. Paid: store the new counter, guarded by the values read in step 1
// 5. Stamp the job's last-pushed time and commit
//
// Any refusal rolls the transaction back without writes.
func (s *promotionService) PushJobToTop(ctx context.Context, jobID uuid.UUID, ownerID string, now time.Time) (*domain.PromotionResult, error) {
	const op = "PromotionService.PushJobToTop"
	start := time.Now()

	tier := "unknown"
	result, err := s.push(ctx, op, jobID, ownerID, now, &tier)
	metrics.PushRecorded(tier, pushOutcome(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	s.logger.Info("push recorded",
		"job_id", jobID,
		"owner_id", ownerID,
		"tier", result.Tier,
		"used", result.Used,
		"limit", result.Limit,
	)
	return result, nil
}

func (s *promotionService) push(ctx context.Context, op string, jobID uuid.UUID, ownerID string, now time.Time, tier *string) (*domain.PromotionResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to start push")
	}
	defer func() { _ = tx.Rollback() }()

	qtx := s.queries.WithTx(tx)

	row, err := qtx.GetJobForPush(ctx, repository.GetJobForPushParams{
		ID:          jobID,
		OwnerUserID: ownerID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "job", jobID.String())
		}
		s.logger.Error("failed to load job for push", "error", err, "op", op, "job_id", jobID)
		return nil, domain.Internal(err, op, "Failed to load job")
	}

	ent, err := resolveCurrentEntitlement(ctx, qtx, ownerID, now)
	if err != nil {
		s.logger.Error("failed to resolve entitlement", "error", err, "op", op, "owner_id", ownerID)
		return nil, domain.Internal(err, op, "Failed to load subscriptions")
	}

	candidate := domain.PushCandidate{
		JobID:        row.ID,
		LastPushedAt: domain.NullTimeValue(row.LastPushedAt),
		Organization: domain.Organization{
			ID:              row.CompanyID,
			OwnerUserID:     row.OwnerUserID,
			Name:            row.CompanyName,
			PushTopCount:    int(row.PushTopCount),
			LastPushResetAt: domain.NullTimeValue(row.LastPushResetAt),
		},
	}

	decision, err := domain.DecidePush(candidate, ent, now)
	if err != nil {
		*tier = string(refusalTier(err))
		return nil, err
	}
	*tier = string(decision.Tier)

	if decision.Tier == domain.PromotionTierPaid {
		n, err := qtx.IncrementCompanyPushCount(ctx, repository.IncrementCompanyPushCountParams{
			NewCount:        int32(decision.NewCount),
			ResetAt:         sql.NullTime{Time: decision.PushedAt, Valid: true},
			ID:              row.CompanyID,
			ExpectedCount:   int32(decision.ExpectedCount),
			ExpectedResetAt: domain.ToNullTime(decision.ExpectedResetAt),
		})
		if err != nil {
			s.logger.Error("failed to update push counter", "error", err, "op", op, "company_id", row.CompanyID)
			return nil, domain.Internal(err, op, "Failed to record push")
		}
		if n == 0 {
			return nil, domain.Conflict(op, "Push counter changed concurrently; please retry")
		}
	}

	n, err := qtx.SetJobLastPushed(ctx, repository.SetJobLastPushedParams{
		ID:           row.ID,
		LastPushedAt: sql.NullTime{Time: decision.PushedAt, Valid: true},
	})
	if err != nil {
		s.logger.Error("failed to stamp job", "error", err, "op", op, "job_id", jobID)
		return nil, domain.Internal(err, op, "Failed to record push")
	}
	if n == 0 {
		return nil, domain.NotFound(op, "job", jobID.String())
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit push", "error", err, "op", op, "job_id", jobID)
		return nil, domain.Internal(err, op, "Failed to record push")
	}

	result := decision.Result(row.ID)
	return &result, nil
}

// Status previews the owner's push allowance without changing it.
func (s *promotionService) Status(ctx context.Context, ownerID string, now time.Time) (*domain.PromotionStatus, error) {
	const op = "PromotionService.Status"

	company, err := s.queries.GetCompanyByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "company", ownerID)
		}
		s.logger.Error("failed to load company", "error", err, "op", op, "owner_id", ownerID)
		return nil, domain.Internal(err, op, "Failed to load company")
	}

	ent, err := resolveCurrentEntitlement(ctx, s.queries, ownerID, now)
	if err != nil {
		s.logger.Error("failed to resolve entitlement", "error", err, "op", op, "owner_id", ownerID)
		return nil, domain.Internal(err, op, "Failed to load subscriptions")
	}

	org := domain.Organization{
		ID:              company.ID,
		OwnerUserID:     company.OwnerUserID,
		Name:            company.CompanyName,
		PushTopCount:    int(company.PushTopCount),
		LastPushResetAt: domain.NullTimeValue(company.LastPushResetAt),
	}
	status := domain.StatusFor(org, ent, now)
	return &status, nil
}

func refusalTier(err error) domain.PromotionTier {
	var qe *domain.QuotaExceededError
	if errors.As(err, &qe) {
		return domain.PromotionTierPaid
	}
	return domain.PromotionTierFree
}

func pushOutcome(err error) string {
	switch domain.ErrorCode(err) {
	case "":
		return metrics.OutcomeSuccess
	case domain.EQUOTA:
		return metrics.OutcomeQuota
	case domain.ECOOLDOWN:
		return metrics.OutcomeCooldown
	case domain.ENOTFOUND:
		return metrics.OutcomeNotFound
	case domain.ECONFLICT:
		return metrics.OutcomeConflict
	}
	return metrics.OutcomeError
}
