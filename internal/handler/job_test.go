package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/jobboard/internal/domain"
)

func newJobMux(jobs *mockJobService, promotions *mockPromotionService, caller *domain.User) *http.ServeMux {
	h := NewJobHandler(jobs, promotions, newTestLogger())
	h.now = clock

	g := Guards{}
	if caller != nil {
		g.Employer = withCaller(caller)
	}
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, g)
	return mux
}

func sampleJob() domain.Job {
	return domain.Job{
		ID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		CompanyID:   uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		CompanyName: "Acme",
		Title:       "Backend Engineer",
		Description: "Build services",
		Status:      domain.JobStatusActive,
		CreatedAt:   fixedNow.AddDate(0, 0, -2),
		ExpiresAt:   fixedNow.AddDate(0, 1, 0),
	}
}

func TestJobHandler_ListPublic(t *testing.T) {
	var got domain.PublicJobFilter
	jobs := &mockJobService{
		ListPublicFunc: func(ctx context.Context, filter domain.PublicJobFilter, now time.Time) ([]domain.Job, error) {
			got = filter
			assert.Equal(t, fixedNow, now)
			return []domain.Job{sampleJob()}, nil
		},
	}
	mux := newJobMux(jobs, &mockPromotionService{}, nil)

	rec := serve(t, mux, http.MethodGet, "/api/jobs?category=7&location=Hanoi&q=go&limit=500", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, got.CategoryID)
	assert.EqualValues(t, 7, *got.CategoryID)
	assert.Equal(t, "Hanoi", got.Location)
	assert.Equal(t, "go", got.Keyword)
	assert.EqualValues(t, 20, got.Limit, "oversized limit falls back to the default")

	var body struct {
		Data []jobResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "active", body.Data[0].Status)
	assert.Equal(t, "Acme", body.Data[0].CompanyName)
}

func TestJobHandler_ListPublic_BadCategory(t *testing.T) {
	mux := newJobMux(&mockJobService{}, &mockPromotionService{}, nil)

	rec := serve(t, mux, http.MethodGet, "/api/jobs?category=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Fields, "category")
}

func TestJobHandler_GetPublic(t *testing.T) {
	job := sampleJob()

	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{name: "visible", path: "/api/jobs/" + job.ID.String(), wantStatus: http.StatusOK},
		{name: "hidden", path: "/api/jobs/" + job.ID.String(), err: domain.NotFound("op", "job", job.ID.String()), wantStatus: http.StatusNotFound},
		{name: "malformed id", path: "/api/jobs/not-a-uuid", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := &mockJobService{
				GetPublicFunc: func(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Job, error) {
					assert.Equal(t, job.ID, id)
					if tt.err != nil {
						return nil, tt.err
					}
					return &job, nil
				},
			}
			mux := newJobMux(jobs, &mockPromotionService{}, nil)

			rec := serve(t, mux, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestJobHandler_Create(t *testing.T) {
	caller := testUser(domain.RoleEmployer)
	var got domain.CreateJobParams
	jobs := &mockJobService{
		CreateFunc: func(ctx context.Context, params domain.CreateJobParams, now time.Time) (*domain.Job, error) {
			got = params
			job := sampleJob()
			job.Status = domain.JobStatusPendingReview
			job.Title = params.Title
			return &job, nil
		},
	}
	mux := newJobMux(jobs, &mockPromotionService{}, caller)

	rec := serve(t, mux, http.MethodPost, "/api/jobs",
		`{"title":"  Backend Engineer ","description":"Build services","salaryMin":1000,"salaryMax":2000,"expiresAt":"2024-07-13T00:00:00+07:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "uid-1", got.OwnerUserID)
	assert.Equal(t, "Backend Engineer", got.Title)
	require.NotNil(t, got.SalaryMax)
	assert.EqualValues(t, 2000, *got.SalaryMax)
	assert.Equal(t, "/api/jobs/11111111-1111-1111-1111-111111111111", rec.Header().Get("Location"))

	var body jobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pending_review", body.Status)
}

func TestJobHandler_Create_RejectsUnknownFields(t *testing.T) {
	jobs := &mockJobService{
		CreateFunc: func(ctx context.Context, params domain.CreateJobParams, now time.Time) (*domain.Job, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	mux := newJobMux(jobs, &mockPromotionService{}, testUser(domain.RoleEmployer))

	rec := serve(t, mux, http.MethodPost, "/api/jobs", `{"title":"x","status":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Fields, "status")
}

func TestJobHandler_PushToTop(t *testing.T) {
	job := sampleJob()
	resets := domain.NextDayStart(fixedNow)

	tests := []struct {
		name       string
		result     *domain.PromotionResult
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name: "paid push",
			result: &domain.PromotionResult{
				JobID: job.ID, Tier: domain.PromotionTierPaid, PushedAt: fixedNow,
				Used: 2, Limit: 3, NextResetAt: resets,
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "quota used up",
			err:        domain.QuotaExceeded("promotion.decide", 3, 3, resets),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   domain.EQUOTA,
		},
		{
			name:       "weekly cooldown",
			err:        domain.CooldownActive("promotion.decide", domain.NextWeekStart(fixedNow)),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   domain.ECOOLDOWN,
		},
		{
			name:       "someone else's job",
			err:        domain.NotFound("PromotionService.PushJobToTop", "job", job.ID.String()),
			wantStatus: http.StatusNotFound,
			wantCode:   domain.ENOTFOUND,
		},
		{
			name:       "concurrent push",
			err:        domain.Conflict("PromotionService.PushJobToTop", "Push counter changed, please retry"),
			wantStatus: http.StatusConflict,
			wantCode:   domain.ECONFLICT,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promotions := &mockPromotionService{
				PushJobToTopFunc: func(ctx context.Context, jobID uuid.UUID, ownerID string, now time.Time) (*domain.PromotionResult, error) {
					assert.Equal(t, job.ID, jobID)
					assert.Equal(t, "uid-1", ownerID)
					assert.Equal(t, fixedNow, now)
					return tt.result, tt.err
				},
			}
			mux := newJobMux(&mockJobService{}, promotions, testUser(domain.RoleEmployer))

			rec := serve(t, mux, http.MethodPost, "/api/jobs/"+job.ID.String()+"/push-top", "")

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
				return
			}
			var body promotionResultResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "paid", body.Tier)
			assert.Equal(t, 2, body.Used)
			assert.Equal(t, 3, body.Limit)
		})
	}
}

func TestJobHandler_PushToTop_RateLimited(t *testing.T) {
	h := NewJobHandler(&mockJobService{}, &mockPromotionService{
		PushJobToTopFunc: func(ctx context.Context, jobID uuid.UUID, ownerID string, now time.Time) (*domain.PromotionResult, error) {
			t.Fatal("limited request must not reach the service")
			return nil, nil
		},
	}, newTestLogger())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, Guards{
		Employer: withCaller(testUser(domain.RoleEmployer)),
		PushLimit: func(http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ErrorResponse(w, r, newTestLogger(), domain.RateLimit("ratelimit.limit"))
			})
		},
	})

	rec := serve(t, mux, http.MethodPost, "/api/jobs/"+uuid.NewString()+"/push-top", "")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, domain.ERATELIMIT, decodeError(t, rec).Error.Code)
}

func TestJobHandler_PromotionStatus(t *testing.T) {
	ends := fixedNow.AddDate(0, 0, 10)
	promotions := &mockPromotionService{
		StatusFunc: func(ctx context.Context, ownerID string, now time.Time) (*domain.PromotionStatus, error) {
			return &domain.PromotionStatus{
				Tier: domain.PromotionTierPaid, Used: 1, Limit: 3,
				NextResetAt: domain.NextDayStart(now), PlanName: "Gold", PlanEndsAt: &ends,
			}, nil
		},
	}
	mux := newJobMux(&mockJobService{}, promotions, testUser(domain.RoleEmployer))

	rec := serve(t, mux, http.MethodGet, "/api/me/promotion", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body promotionStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Gold", body.PlanName)
	assert.Equal(t, 1, body.Used)
	assert.True(t, body.NextResetAt.Equal(domain.NextDayStart(fixedNow)))
}

func TestJobHandler_ListMine(t *testing.T) {
	jobs := &mockJobService{
		ListMineFunc: func(ctx context.Context, ownerID string) ([]domain.Job, error) {
			assert.Equal(t, "uid-1", ownerID)
			return nil, nil
		},
	}
	mux := newJobMux(jobs, &mockPromotionService{}, testUser(domain.RoleEmployer))

	rec := serve(t, mux, http.MethodGet, "/api/me/jobs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestJobHandler_SaveCompany(t *testing.T) {
	var got domain.CompanyProfile
	jobs := &mockJobService{
		SaveCompanyFunc: func(ctx context.Context, ownerID string, profile domain.CompanyProfile) (*domain.CompanyProfile, error) {
			got = profile
			profile.ID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
			return &profile, nil
		},
	}
	mux := newJobMux(jobs, &mockPromotionService{}, testUser(domain.RoleEmployer))

	rec := serve(t, mux, http.MethodPut, "/api/me/company", `{"name":" Acme ","city":"Hanoi"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "Hanoi", got.City)
}
