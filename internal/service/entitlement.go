package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/repository"
)

// EntitlementService resolves which subscription governs an owner's limits.
type EntitlementService interface {
	// ResolveCurrent returns the owner's current entitlement, or nil when the
	// owner is on the free tier.
	ResolveCurrent(ctx context.Context, ownerID string, now time.Time) (*domain.Entitlement, error)

	// CurrentForUsers resolves the current entitlement for each user in one query.
	// Users on the free tier are absent from the result.
	CurrentForUsers(ctx context.Context, userIDs []string, now time.Time) (map[string]*domain.Entitlement, error)

	// History lists every subscription the user ever held, newest first.
	History(ctx context.Context, userID string) ([]domain.Entitlement, error)
}

// entitlementService implements EntitlementService.
type entitlementService struct {
	queries *repository.Queries
	logger  *slog.Logger
}

// NewEntitlementService creates a new EntitlementService.
func NewEntitlementService(queries *repository.Queries, logger *slog.Logger) EntitlementService {
	return &entitlementService{
		queries: queries,
		logger:  logger,
	}
}

func (s *entitlementService) ResolveCurrent(ctx context.Context, ownerID string, now time.Time) (*domain.Entitlement, error) {
	const op = "EntitlementService.ResolveCurrent"

	ent, err := resolveCurrentEntitlement(ctx, s.queries, ownerID, now)
	if err != nil {
		s.logger.Error("failed to resolve entitlement", "error", err, "op", op, "owner_id", ownerID)
		return nil, domain.Internal(err, op, "Failed to load subscriptions")
	}
	return ent, nil
}

func (s *entitlementService) CurrentForUsers(ctx context.Context, userIDs []string, now time.Time) (map[string]*domain.Entitlement, error) {
	const op = "EntitlementService.CurrentForUsers"

	out := make(map[string]*domain.Entitlement, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := s.queries.ListActiveSubscriptionsByUsers(ctx, repository.ListActiveSubscriptionsByUsersParams{
		UserIds: userIDs,
		Now:     now,
	})
	if err != nil {
		s.logger.Error("failed to list subscriptions", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to load subscriptions")
	}

	byUser := make(map[string][]domain.Entitlement)
	for _, r := range rows {
		byUser[r.UserID] = append(byUser[r.UserID], repoSubscriptionToDomain(repository.ListSubscriptionsByUserRow(r)))
	}
	for userID, ents := range byUser {
		if current := domain.SelectCurrentEntitlement(ents, now); current != nil {
			out[userID] = current
		}
	}
	return out, nil
}

func (s *entitlementService) History(ctx context.Context, userID string) ([]domain.Entitlement, error) {
	const op = "EntitlementService.History"

	rows, err := s.queries.ListSubscriptionsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list subscription history", "error", err, "op", op, "user_id", userID)
		return nil, domain.Internal(err, op, "Failed to load subscriptions")
	}

	ents := make([]domain.Entitlement, 0, len(rows))
	for _, r := range rows {
		ents = append(ents, repoSubscriptionToDomain(r))
	}
	return ents, nil
}

// resolveCurrentEntitlement loads the owner's active subscriptions through q
// and picks the governing one. q may be bound to a transaction.
func resolveCurrentEntitlement(ctx context.Context, q *repository.Queries, ownerID string, now time.Time) (*domain.Entitlement, error) {
	rows, err := q.ListActiveSubscriptionsByUser(ctx, repository.ListActiveSubscriptionsByUserParams{
		UserID:  ownerID,
		EndDate: now,
	})
	if err != nil {
		return nil, err
	}

	ents := make([]domain.Entitlement, 0, len(rows))
	for _, r := range rows {
		ents = append(ents, repoSubscriptionToDomain(repository.ListSubscriptionsByUserRow(r)))
	}
	return domain.SelectCurrentEntitlement(ents, now), nil
}

// repoSubscriptionToDomain converts a subscription row with its joined plan
// into a domain.Entitlement carrying both the snapshot and catalog terms.
func repoSubscriptionToDomain(r repository.ListSubscriptionsByUserRow) domain.Entitlement {
	return domain.Entitlement{
		ID:                   r.ID,
		OwnerID:              r.UserID,
		PlanID:               fromNullUUID(r.PlanID),
		Status:               domain.SubscriptionStatus(r.Status),
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		PaymentTransactionID: fromNullString(r.PaymentTransactionID),
		Snapshot: domain.PlanTerms{
			PlanName:             nullStringPtr(r.SnapshotPlanName),
			PlanType:             nullPlanType(r.SnapshotPlanType),
			Price:                domain.NullInt64Value(r.SnapshotPrice),
			Features:             rawJSON(r.SnapshotFeatures.RawMessage, r.SnapshotFeatures.Valid),
			JobPostDaily:         domain.NullInt32Int(r.SnapshotJobPostDaily),
			PushTopDaily:         domain.NullInt32Int(r.SnapshotPushTopDaily),
			CVStorage:            domain.NullInt32Int(r.SnapshotCvStorage),
			ViewApplicantCount:   domain.NullInt32Int(r.SnapshotViewApplicantCount),
			RevealCandidatePhone: domain.NullInt32Int(r.SnapshotRevealCandidatePhone),
		},
		Catalog: domain.PlanTerms{
			PlanName:             nullStringPtr(r.PlanName),
			PlanType:             nullPlanType(r.PlanType),
			Price:                domain.NullInt64Value(r.PlanPrice),
			Features:             rawJSON(r.PlanFeatures.RawMessage, r.PlanFeatures.Valid),
			JobPostDaily:         domain.NullInt32Int(r.LimitJobPostDaily),
			PushTopDaily:         domain.NullInt32Int(r.LimitPushTopDaily),
			CVStorage:            domain.NullInt32Int(r.LimitCvStorage),
			ViewApplicantCount:   domain.NullInt32Int(r.LimitViewApplicantCount),
			RevealCandidatePhone: domain.NullInt32Int(r.LimitRevealCandidatePhone),
		},
	}
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullPlanType(ns sql.NullString) *domain.PlanType {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t := domain.PlanType(ns.String)
	return &t
}

func rawJSON(msg json.RawMessage, valid bool) json.RawMessage {
	if !valid || len(msg) == 0 {
		return nil
	}
	return msg
}
