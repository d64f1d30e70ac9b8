package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/metrics"
	"github.com/DukeRupert/jobboard/internal/repository"
)

// UserService defines the interface for user-related operations.
//
// Credentials live at the identity provider; this service mirrors the
// provider's users into the local store and manages roles and bans.
type UserService interface {
	// SyncIdentity records a verified identity on sign-in and returns the
	// stored user. Subjects configured as super admins are promoted.
	SyncIdentity(ctx context.Context, identity domain.Identity, now time.Time) (*domain.User, error)

	// GetByID retrieves a user by identity-provider subject.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// ChooseRole sets the role of a user who has none yet. Only the employer
	// and candidate roles can be self-selected.
	ChooseRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)

	// ListCandidates lists candidate accounts with their current VIP plan.
	ListCandidates(ctx context.Context, page domain.Page, now time.Time) ([]domain.CandidateSummary, error)

	// ListEmployers lists employer accounts with their company and current VIP plan.
	ListEmployers(ctx context.Context, page domain.Page, now time.Time) ([]domain.EmployerSummary, error)

	// ListWithoutRole lists accounts that have not picked a role.
	ListWithoutRole(ctx context.Context, page domain.Page) ([]domain.User, error)

	// SetBanned bans or unbans a non-admin account.
	SetBanned(ctx context.Context, id string, banned bool) error

	// Delete removes a non-admin account and its subscriptions. Returns
	// Conflict while the user holds an active recurring subscription.
	Delete(ctx context.Context, id string, now time.Time) error

	// ListSystemAdmins lists admin and super admin accounts.
	ListSystemAdmins(ctx context.Context) ([]domain.User, error)

	// CreateSystemAdmin records a provider account as an admin.
	CreateSystemAdmin(ctx context.Context, params domain.CreateAdminParams) (*domain.User, error)
}

// UserServiceConfig holds configuration for the user service.
type UserServiceConfig struct {
	// SuperAdminIDs are identity subjects granted super admin on sign-in.
	SuperAdminIDs []string
}

// userService is the concrete implementation of UserService.
type userService struct {
	db           *sql.DB
	queries      *repository.Queries
	entitlements EntitlementService
	logger       *slog.Logger
	superAdmins  map[string]struct{}
}

// NewUserService creates a new UserService instance.
//
// Dependencies:
// - db: opens the transaction used by Delete
// - queries: sqlc-generated database queries
// - entitlements: resolves current VIP plans for the admin listings
// - logger: structured logger for operation logging
func NewUserService(db *sql.DB, queries *repository.Queries, entitlements EntitlementService, logger *slog.Logger, cfg UserServiceConfig) UserService {
	superAdmins := make(map[string]struct{}, len(cfg.SuperAdminIDs))
	for _, id := range cfg.SuperAdminIDs {
		if id = strings.TrimSpace(id); id != "" {
			superAdmins[id] = struct{}{}
		}
	}

	return &userService{
		db:           db,
		queries:      queries,
		entitlements: entitlements,
		logger:       logger,
		superAdmins:  superAdmins,
	}
}

func (s *userService) SyncIdentity(ctx context.Context, identity domain.Identity, now time.Time) (*domain.User, error) {
	const op = "UserService.SyncIdentity"

	if strings.TrimSpace(identity.Subject) == "" {
		return nil, domain.Unauthorized(op, "Identity has no subject")
	}

	repoUser, err := s.queries.UpsertUser(ctx, repository.UpsertUserParams{
		ID:          identity.Subject,
		Email:       strings.ToLower(strings.TrimSpace(identity.Email)),
		DisplayName: toNullString(identity.DisplayName),
		PhotoUrl:    toNullString(identity.PhotoURL),
		IsVerified:  identity.Verified,
		LastLoginAt: sql.NullTime{Time: now, Valid: true},
	})
	if err != nil {
		s.logger.Error("failed to upsert user", "error", err, "op", op, "user_id", identity.Subject)
		return nil, domain.Internal(err, op, "Failed to record sign-in")
	}

	user := repoUserToDomain(repoUser)

	if _, ok := s.superAdmins[user.ID]; ok && user.Role != domain.RoleSuperAdmin {
		if err := s.queries.SetUserRole(ctx, repository.SetUserRoleParams{
			ID:     user.ID,
			RoleID: roleToNull(domain.RoleSuperAdmin),
		}); err != nil {
			s.logger.Error("failed to promote super admin", "error", err, "op", op, "user_id", user.ID)
			return nil, domain.Internal(err, op, "Failed to record sign-in")
		}
		user.Role = domain.RoleSuperAdmin
		s.logger.Info("super admin promoted", "user_id", user.ID)
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const op = "UserService.GetByID"

	repoUser, err := s.queries.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "user", id)
		}
		s.logger.Error("failed to get user", "error", err, "op", op, "user_id", id)
		return nil, domain.Internal(err, op, "Failed to retrieve user")
	}
	return repoUserToDomain(repoUser), nil
}

func (s *userService) ChooseRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	const op = "UserService.ChooseRole"

	if role != domain.RoleEmployer && role != domain.RoleCandidate {
		return nil, domain.Invalid(op, "Role must be employer or candidate")
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleNone {
		return nil, domain.Conflict(op, "Role has already been chosen")
	}

	if err := s.queries.SetUserRole(ctx, repository.SetUserRoleParams{
		ID:     id,
		RoleID: roleToNull(role),
	}); err != nil {
		s.logger.Error("failed to set role", "error", err, "op", op, "user_id", id)
		return nil, domain.Internal(err, op, "Failed to set role")
	}

	user.Role = role
	s.logger.Info("role chosen", "user_id", id, "role", role)
	return user, nil
}

func (s *userService) ListCandidates(ctx context.Context, page domain.Page, now time.Time) ([]domain.CandidateSummary, error) {
	const op = "UserService.ListCandidates"

	users, err := s.listByRole(ctx, op, domain.RoleCandidate, page)
	if err != nil {
		return nil, err
	}
	ids := userIDs(users)

	profiles, err := s.queries.ListCandidateProfilesByUsers(ctx, ids)
	if err != nil {
		s.logger.Error("failed to list candidate profiles", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to list candidates")
	}
	byUser := make(map[string]*domain.CandidateProfile, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = &domain.CandidateProfile{
			FullName:       fromNullString(p.FullName),
			PhoneNumber:    fromNullString(p.PhoneNumber),
			Address:        fromNullString(p.Address),
			ProfileSummary: fromNullString(p.ProfileSummary),
			City:           fromNullString(p.City),
			Country:        fromNullString(p.Country),
			Birthday:       domain.NullTimeValue(p.Birthday),
		}
	}

	vip, err := s.entitlements.CurrentForUsers(ctx, ids, now)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CandidateSummary, 0, len(users))
	for _, u := range users {
		out = append(out, domain.CandidateSummary{
			User:       *u,
			Profile:    byUser[u.ID],
			CurrentVIP: vip[u.ID],
		})
	}
	return out, nil
}

func (s *userService) ListEmployers(ctx context.Context, page domain.Page, now time.Time) ([]domain.EmployerSummary, error) {
	const op = "UserService.ListEmployers"

	users, err := s.listByRole(ctx, op, domain.RoleEmployer, page)
	if err != nil {
		return nil, err
	}
	ids := userIDs(users)

	companies, err := s.queries.ListCompaniesByOwners(ctx, ids)
	if err != nil {
		s.logger.Error("failed to list companies", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to list employers")
	}
	// Rows are oldest first; keep each owner's first company.
	byOwner := make(map[string]*domain.CompanyProfile, len(companies))
	for _, c := range companies {
		if _, ok := byOwner[c.OwnerUserID]; !ok {
			byOwner[c.OwnerUserID] = repoCompanyToDomain(c)
		}
	}

	vip, err := s.entitlements.CurrentForUsers(ctx, ids, now)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EmployerSummary, 0, len(users))
	for _, u := range users {
		out = append(out, domain.EmployerSummary{
			User:       *u,
			Company:    byOwner[u.ID],
			CurrentVIP: vip[u.ID],
		})
	}
	return out, nil
}

func (s *userService) listByRole(ctx context.Context, op string, role domain.Role, page domain.Page) ([]*domain.User, error) {
	page = page.Normalize()

	rows, err := s.queries.ListUsersByRole(ctx, repository.ListUsersByRoleParams{
		RoleID: roleToNull(role),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		s.logger.Error("failed to list users", "error", err, "op", op, "role", role)
		return nil, domain.Internal(err, op, "Failed to list users")
	}

	users := make([]*domain.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, repoUserToDomain(r))
	}
	return users, nil
}

func (s *userService) ListWithoutRole(ctx context.Context, page domain.Page) ([]domain.User, error) {
	const op = "UserService.ListWithoutRole"
	page = page.Normalize()

	rows, err := s.queries.ListUsersWithoutRole(ctx, repository.ListUsersWithoutRoleParams{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		s.logger.Error("failed to list users", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to list users")
	}

	users := make([]domain.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, *repoUserToDomain(r))
	}
	return users, nil
}

func (s *userService) SetBanned(ctx context.Context, id string, banned bool) error {
	const op = "UserService.SetBanned"

	target, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.IsAdmin() {
		return domain.Forbidden(op, "Admin accounts cannot be banned")
	}

	n, err := s.queries.SetUserBanned(ctx, repository.SetUserBannedParams{
		ID:       id,
		IsBanned: banned,
	})
	if err != nil {
		s.logger.Error("failed to update ban", "error", err, "op", op, "user_id", id)
		return domain.Internal(err, op, "Failed to update user")
	}
	if n == 0 {
		return domain.NotFound(op, "user", id)
	}

	s.logger.Info("user ban updated", "user_id", id, "banned", banned)
	return nil
}

// Delete removes a user inside one transaction.
//
// Flow:
// 1. Load the user (NotFound, or Forbidden for admins)
// 2. Refuse while an active recurring subscription exists
// 3. Delete the user's subscriptions, then the user
func (s *userService) Delete(ctx context.Context, id string, now time.Time) error {
	const op = "UserService.Delete"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", "error", err, "op", op)
		return domain.Internal(err, op, "Failed to delete user")
	}
	defer func() { _ = tx.Rollback() }()

	qtx := s.queries.WithTx(tx)

	repoUser, err := qtx.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound(op, "user", id)
		}
		s.logger.Error("failed to get user", "error", err, "op", op, "user_id", id)
		return domain.Internal(err, op, "Failed to delete user")
	}
	if repoUserToDomain(repoUser).IsAdmin() {
		return domain.Forbidden(op, "Admin accounts cannot be deleted here")
	}

	current, err := resolveCurrentEntitlement(ctx, qtx, id, now)
	if err != nil {
		s.logger.Error("failed to resolve entitlement", "error", err, "op", op, "user_id", id)
		return domain.Internal(err, op, "Failed to delete user")
	}
	if current != nil {
		return domain.Conflict(op, "User has an active subscription and cannot be deleted")
	}

	if err := qtx.DeleteSubscriptionsByUser(ctx, id); err != nil {
		s.logger.Error("failed to delete subscriptions", "error", err, "op", op, "user_id", id)
		return domain.Internal(err, op, "Failed to delete user")
	}
	n, err := qtx.DeleteUser(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete user", "error", err, "op", op, "user_id", id)
		return domain.Internal(err, op, "Failed to delete user")
	}
	if n == 0 {
		return domain.NotFound(op, "user", id)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit delete", "error", err, "op", op, "user_id", id)
		return domain.Internal(err, op, "Failed to delete user")
	}

	metrics.UsersDeleted.Inc()
	s.logger.Info("user deleted", "user_id", id)
	return nil
}

func (s *userService) ListSystemAdmins(ctx context.Context) ([]domain.User, error) {
	const op = "UserService.ListSystemAdmins"

	rows, err := s.queries.ListSystemAdmins(ctx)
	if err != nil {
		s.logger.Error("failed to list admins", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to list admins")
	}

	users := make([]domain.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, *repoUserToDomain(r))
	}
	return users, nil
}

func (s *userService) CreateSystemAdmin(ctx context.Context, params domain.CreateAdminParams) (*domain.User, error) {
	const op = "UserService.CreateSystemAdmin"

	params.Subject = strings.TrimSpace(params.Subject)
	params.Email = strings.ToLower(strings.TrimSpace(params.Email))

	if params.Subject == "" {
		return nil, domain.NewValidationError(op, "uid", "Identity provider id is required")
	}
	if _, err := mail.ParseAddress(params.Email); err != nil {
		return nil, domain.NewValidationError(op, "email", "Invalid email address")
	}

	repoUser, err := s.queries.CreateAdminUser(ctx, repository.CreateAdminUserParams{
		ID:          params.Subject,
		Email:       params.Email,
		DisplayName: toNullString(params.DisplayName),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Conflict(op, "Account already exists")
		}
		s.logger.Error("failed to create admin", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to create admin")
	}

	user := repoUserToDomain(repoUser)
	s.logger.Info("system admin created", "user_id", user.ID)
	return user, nil
}

func userIDs(users []*domain.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
