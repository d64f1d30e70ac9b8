package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DukeRupert/jobboard/internal/auth"
	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/service"
)

var (
	_ service.UserService        = (*mockUserService)(nil)
	_ service.JobService         = (*mockJobService)(nil)
	_ service.PromotionService   = (*mockPromotionService)(nil)
	_ service.ModerationService  = (*mockModerationService)(nil)
	_ service.EntitlementService = (*mockEntitlementService)(nil)
	_ service.ReportService      = (*mockReportService)(nil)
	_ service.ApplicationService = (*mockApplicationService)(nil)
)

// =============================================================================
// Mock UserService Implementation
// =============================================================================

// mockUserService implements the service.UserService interface for testing.
type mockUserService struct {
	SyncIdentityFunc      func(ctx context.Context, identity domain.Identity, now time.Time) (*domain.User, error)
	GetByIDFunc           func(ctx context.Context, id string) (*domain.User, error)
	ChooseRoleFunc        func(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	ListCandidatesFunc    func(ctx context.Context, page domain.Page, now time.Time) ([]domain.CandidateSummary, error)
	ListEmployersFunc     func(ctx context.Context, page domain.Page, now time.Time) ([]domain.EmployerSummary, error)
	ListWithoutRoleFunc   func(ctx context.Context, page domain.Page) ([]domain.User, error)
	SetBannedFunc         func(ctx context.Context, id string, banned bool) error
	DeleteFunc            func(ctx context.Context, id string, now time.Time) error
	ListSystemAdminsFunc  func(ctx context.Context) ([]domain.User, error)
	CreateSystemAdminFunc func(ctx context.Context, params domain.CreateAdminParams) (*domain.User, error)
}

func (m *mockUserService) SyncIdentity(ctx context.Context, identity domain.Identity, now time.Time) (*domain.User, error) {
	if m.SyncIdentityFunc != nil {
		return m.SyncIdentityFunc(ctx, identity, now)
	}
	return nil, errors.New("SyncIdentityFunc not implemented")
}

func (m *mockUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented")
}

func (m *mockUserService) ChooseRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if m.ChooseRoleFunc != nil {
		return m.ChooseRoleFunc(ctx, id, role)
	}
	return nil, errors.New("ChooseRoleFunc not implemented")
}

func (m *mockUserService) ListCandidates(ctx context.Context, page domain.Page, now time.Time) ([]domain.CandidateSummary, error) {
	if m.ListCandidatesFunc != nil {
		return m.ListCandidatesFunc(ctx, page, now)
	}
	return nil, errors.New("ListCandidatesFunc not implemented")
}

func (m *mockUserService) ListEmployers(ctx context.Context, page domain.Page, now time.Time) ([]domain.EmployerSummary, error) {
	if m.ListEmployersFunc != nil {
		return m.ListEmployersFunc(ctx, page, now)
	}
	return nil, errors.New("ListEmployersFunc not implemented")
}

func (m *mockUserService) ListWithoutRole(ctx context.Context, page domain.Page) ([]domain.User, error) {
	if m.ListWithoutRoleFunc != nil {
		return m.ListWithoutRoleFunc(ctx, page)
	}
	return nil, errors.New("ListWithoutRoleFunc not implemented")
}

func (m *mockUserService) SetBanned(ctx context.Context, id string, banned bool) error {
	if m.SetBannedFunc != nil {
		return m.SetBannedFunc(ctx, id, banned)
	}
	return errors.New("SetBannedFunc not implemented")
}

func (m *mockUserService) Delete(ctx context.Context, id string, now time.Time) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, now)
	}
	return errors.New("DeleteFunc not implemented")
}

func (m *mockUserService) ListSystemAdmins(ctx context.Context) ([]domain.User, error) {
	if m.ListSystemAdminsFunc != nil {
		return m.ListSystemAdminsFunc(ctx)
	}
	return nil, errors.New("ListSystemAdminsFunc not implemented")
}

func (m *mockUserService) CreateSystemAdmin(ctx context.Context, params domain.CreateAdminParams) (*domain.User, error) {
	if m.CreateSystemAdminFunc != nil {
		return m.CreateSystemAdminFunc(ctx, params)
	}
	return nil, errors.New("CreateSystemAdminFunc not implemented")
}

// =============================================================================
// Mock JobService Implementation
// =============================================================================

type mockJobService struct {
	CreateFunc      func(ctx context.Context, params domain.CreateJobParams, now time.Time) (*domain.Job, error)
	ListMineFunc    func(ctx context.Context, ownerID string) ([]domain.Job, error)
	ListPublicFunc  func(ctx context.Context, filter domain.PublicJobFilter, now time.Time) ([]domain.Job, error)
	GetPublicFunc   func(ctx context.Context, jobID uuid.UUID, now time.Time) (*domain.Job, error)
	GetCompanyFunc  func(ctx context.Context, ownerID string) (*domain.CompanyProfile, error)
	SaveCompanyFunc func(ctx context.Context, ownerID string, profile domain.CompanyProfile) (*domain.CompanyProfile, error)
}

func (m *mockJobService) Create(ctx context.Context, params domain.CreateJobParams, now time.Time) (*domain.Job, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params, now)
	}
	return nil, errors.New("CreateFunc not implemented")
}

func (m *mockJobService) ListMine(ctx context.Context, ownerID string) ([]domain.Job, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, ownerID)
	}
	return nil, errors.New("ListMineFunc not implemented")
}

func (m *mockJobService) ListPublic(ctx context.Context, filter domain.PublicJobFilter, now time.Time) ([]domain.Job, error) {
	if m.ListPublicFunc != nil {
		return m.ListPublicFunc(ctx, filter, now)
	}
	return nil, errors.New("ListPublicFunc not implemented")
}

func (m *mockJobService) GetPublic(ctx context.Context, jobID uuid.UUID, now time.Time) (*domain.Job, error) {
	if m.GetPublicFunc != nil {
		return m.GetPublicFunc(ctx, jobID, now)
	}
	return nil, errors.New("GetPublicFunc not implemented")
}

func (m *mockJobService) GetCompany(ctx context.Context, ownerID string) (*domain.CompanyProfile, error) {
	if m.GetCompanyFunc != nil {
		return m.GetCompanyFunc(ctx, ownerID)
	}
	return nil, errors.New("GetCompanyFunc not implemented")
}

func (m *mockJobService) SaveCompany(ctx context.Context, ownerID string, profile domain.CompanyProfile) (*domain.CompanyProfile, error) {
	if m.SaveCompanyFunc != nil {
		return m.SaveCompanyFunc(ctx, ownerID, profile)
	}
	return nil, errors.New("SaveCompanyFunc not implemented")
}

// =============================================================================
// Mock PromotionService Implementation
// =============================================================================

type mockPromotionService struct {
	PushJobToTopFunc func(ctx context.Context, jobID uuid.UUID, ownerID string, now time.Time) (*domain.PromotionResult, error)
	StatusFunc       func(ctx context.Context, ownerID string, now time.Time) (*domain.PromotionStatus, error)
}

func (m *mockPromotionService) PushJobToTop(ctx context.Context, jobID uuid.UUID, ownerID string, now time.Time) (*domain.PromotionResult, error) {
	if m.PushJobToTopFunc != nil {
		return m.PushJobToTopFunc(ctx, jobID, ownerID, now)
	}
	return nil, errors.New("PushJobToTopFunc not implemented")
}

func (m *mockPromotionService) Status(ctx context.Context, ownerID string, now time.Time) (*domain.PromotionStatus, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx, ownerID, now)
	}
	return nil, errors.New("StatusFunc not implemented")
}

// =============================================================================
// Mock ModerationService Implementation
// =============================================================================

type mockModerationService struct {
	ApproveFunc     func(ctx context.Context, jobID uuid.UUID, now time.Time) error
	RejectFunc      func(ctx context.Context, jobID uuid.UUID) error
	ListPendingFunc func(ctx context.Context, page domain.Page) ([]domain.Job, error)
	ListActiveFunc  func(ctx context.Context, page domain.Page) ([]domain.Job, error)
	GetDetailFunc   func(ctx context.Context, jobID uuid.UUID) (*domain.Job, error)
}

func (m *mockModerationService) Approve(ctx context.Context, jobID uuid.UUID, now time.Time) error {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, jobID, now)
	}
	return errors.New("ApproveFunc not implemented")
}

func (m *mockModerationService) Reject(ctx context.Context, jobID uuid.UUID) error {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, jobID)
	}
	return errors.New("RejectFunc not implemented")
}

func (m *mockModerationService) ListPending(ctx context.Context, page domain.Page) ([]domain.Job, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx, page)
	}
	return nil, errors.New("ListPendingFunc not implemented")
}

func (m *mockModerationService) ListActive(ctx context.Context, page domain.Page) ([]domain.Job, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, page)
	}
	return nil, errors.New("ListActiveFunc not implemented")
}

func (m *mockModerationService) GetDetail(ctx context.Context, jobID uuid.UUID) (*domain.Job, error) {
	if m.GetDetailFunc != nil {
		return m.GetDetailFunc(ctx, jobID)
	}
	return nil, errors.New("GetDetailFunc not implemented")
}

// =============================================================================
// Mock EntitlementService / ReportService Implementations
// =============================================================================

type mockEntitlementService struct {
	ResolveCurrentFunc  func(ctx context.Context, ownerID string, now time.Time) (*domain.Entitlement, error)
	CurrentForUsersFunc func(ctx context.Context, userIDs []string, now time.Time) (map[string]*domain.Entitlement, error)
	HistoryFunc         func(ctx context.Context, userID string) ([]domain.Entitlement, error)
}

func (m *mockEntitlementService) ResolveCurrent(ctx context.Context, ownerID string, now time.Time) (*domain.Entitlement, error) {
	if m.ResolveCurrentFunc != nil {
		return m.ResolveCurrentFunc(ctx, ownerID, now)
	}
	return nil, errors.New("ResolveCurrentFunc not implemented")
}

func (m *mockEntitlementService) CurrentForUsers(ctx context.Context, userIDs []string, now time.Time) (map[string]*domain.Entitlement, error) {
	if m.CurrentForUsersFunc != nil {
		return m.CurrentForUsersFunc(ctx, userIDs, now)
	}
	return nil, errors.New("CurrentForUsersFunc not implemented")
}

func (m *mockEntitlementService) History(ctx context.Context, userID string) ([]domain.Entitlement, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, userID)
	}
	return nil, errors.New("HistoryFunc not implemented")
}

type mockReportService struct {
	NewPostsFunc func(ctx context.Context, rng domain.ReportRange, year int, now time.Time) (*domain.NewPostsReport, error)
}

func (m *mockReportService) NewPosts(ctx context.Context, rng domain.ReportRange, year int, now time.Time) (*domain.NewPostsReport, error) {
	if m.NewPostsFunc != nil {
		return m.NewPostsFunc(ctx, rng, year, now)
	}
	return nil, errors.New("NewPostsFunc not implemented")
}

// =============================================================================
// Mock ApplicationService Implementation
// =============================================================================

// mockApplicationService implements the service.ApplicationService interface for testing.
type mockApplicationService struct {
	ApplyFunc          func(ctx context.Context, candidateID string, jobID, cvID uuid.UUID, now time.Time) (*domain.Application, error)
	ListAppliedFunc    func(ctx context.Context, candidateID string) ([]domain.AppliedJob, error)
	SaveFunc           func(ctx context.Context, userID string, jobID uuid.UUID, now time.Time) error
	UnsaveFunc         func(ctx context.Context, userID string, jobID uuid.UUID) error
	ListSavedFunc      func(ctx context.Context, userID string) ([]domain.SavedJob, error)
	ListApplicantsFunc func(ctx context.Context, ownerID string, jobID uuid.UUID, now time.Time) ([]domain.Applicant, error)
	ReviewFunc         func(ctx context.Context, ownerID string, applicationID uuid.UUID, status domain.ApplicationStatus, now time.Time) error
	ListCVsFunc        func(ctx context.Context, userID string) ([]domain.CV, error)
	AddCVFunc          func(ctx context.Context, params domain.CreateCVParams) (*domain.CV, error)
}

func (m *mockApplicationService) Apply(ctx context.Context, candidateID string, jobID, cvID uuid.UUID, now time.Time) (*domain.Application, error) {
	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, candidateID, jobID, cvID, now)
	}
	return nil, errors.New("ApplyFunc not implemented")
}

func (m *mockApplicationService) ListApplied(ctx context.Context, candidateID string) ([]domain.AppliedJob, error) {
	if m.ListAppliedFunc != nil {
		return m.ListAppliedFunc(ctx, candidateID)
	}
	return nil, errors.New("ListAppliedFunc not implemented")
}

func (m *mockApplicationService) Save(ctx context.Context, userID string, jobID uuid.UUID, now time.Time) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, userID, jobID, now)
	}
	return errors.New("SaveFunc not implemented")
}

func (m *mockApplicationService) Unsave(ctx context.Context, userID string, jobID uuid.UUID) error {
	if m.UnsaveFunc != nil {
		return m.UnsaveFunc(ctx, userID, jobID)
	}
	return errors.New("UnsaveFunc not implemented")
}

func (m *mockApplicationService) ListSaved(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	if m.ListSavedFunc != nil {
		return m.ListSavedFunc(ctx, userID)
	}
	return nil, errors.New("ListSavedFunc not implemented")
}

func (m *mockApplicationService) ListApplicants(ctx context.Context, ownerID string, jobID uuid.UUID, now time.Time) ([]domain.Applicant, error) {
	if m.ListApplicantsFunc != nil {
		return m.ListApplicantsFunc(ctx, ownerID, jobID, now)
	}
	return nil, errors.New("ListApplicantsFunc not implemented")
}

func (m *mockApplicationService) Review(ctx context.Context, ownerID string, applicationID uuid.UUID, status domain.ApplicationStatus, now time.Time) error {
	if m.ReviewFunc != nil {
		return m.ReviewFunc(ctx, ownerID, applicationID, status, now)
	}
	return errors.New("ReviewFunc not implemented")
}

func (m *mockApplicationService) ListCVs(ctx context.Context, userID string) ([]domain.CV, error) {
	if m.ListCVsFunc != nil {
		return m.ListCVsFunc(ctx, userID)
	}
	return nil, errors.New("ListCVsFunc not implemented")
}

func (m *mockApplicationService) AddCV(ctx context.Context, params domain.CreateCVParams) (*domain.CV, error) {
	if m.AddCVFunc != nil {
		return m.AddCVFunc(ctx, params)
	}
	return nil, errors.New("AddCVFunc not implemented")
}

// =============================================================================
// Request helpers
// =============================================================================

// fixedNow is a Thursday afternoon in the regional zone.
var fixedNow = time.Date(2024, time.June, 13, 15, 0, 0, 0, domain.RegionZone)

func clock() time.Time { return fixedNow }

func testUser(role domain.Role) *domain.User {
	return &domain.User{
		ID:        "uid-1",
		Email:     "owner@example.com",
		Role:      role,
		CreatedAt: fixedNow.AddDate(0, -1, 0),
	}
}

// withCaller attaches an authenticated caller the way the auth middleware does.
func withCaller(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.SetIdentity(r.Context(), domain.Identity{Subject: user.ID, Email: user.Email})
			ctx = auth.SetUser(ctx, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func serve(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}
