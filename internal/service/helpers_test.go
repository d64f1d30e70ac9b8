package service

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/repository"
)

// =============================================================================
// Test Helpers
// =============================================================================

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMockDB returns a sqlmock-backed database and queries bound to it.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *repository.Queries) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock, repository.New(db)
}

// at builds a wall-clock time in the UTC+7 reference zone.
func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, domain.RegionZone)
}

var pushColumns = []string{
	"id", "last_pushed_at", "company_id", "owner_user_id", "company_name",
	"push_top_count", "last_push_reset_at",
}

func pushRows(jobID, companyID uuid.UUID, owner string, lastPushed *time.Time, count int, resetAt *time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(pushColumns).AddRow(
		jobID.String(), nullableTime(lastPushed), companyID.String(), owner, "Acme", int64(count), nullableTime(resetAt),
	)
}

var subscriptionColumns = []string{
	"id", "user_id", "plan_id", "status", "start_date", "end_date", "payment_transaction_id",
	"snapshot_plan_name", "snapshot_price", "snapshot_plan_type", "snapshot_features",
	"snapshot_job_post_daily", "snapshot_push_top_daily", "snapshot_cv_storage",
	"snapshot_view_applicant_count", "snapshot_reveal_candidate_phone", "created_at",
	"plan_name", "plan_price", "plan_type", "plan_features",
	"limit_job_post_daily", "limit_push_top_daily", "limit_cv_storage",
	"limit_view_applicant_count", "limit_reveal_candidate_phone",
}

// subscription describes one row of the subscription listing queries.
// Snapshot fields left nil are NULL so the catalog columns apply.
type subscription struct {
	userID       string
	planType     any
	pushQuota    any
	catalogType  any
	catalogQuota any
	revealPhone  any
	start        time.Time
	end          time.Time
}

func subscriptionRows(subs ...subscription) *sqlmock.Rows {
	rows := sqlmock.NewRows(subscriptionColumns)
	for _, s := range subs {
		rows.AddRow(
			uuid.NewString(), s.userID, nil, int64(1), s.start, s.end, nil,
			"Gold", nil, s.planType, nil,
			nil, s.pushQuota, nil,
			nil, s.revealPhone, s.start,
			nil, nil, s.catalogType, nil,
			nil, s.catalogQuota, nil,
			nil, nil,
		)
	}
	return rows
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

var userColumns = []string{
	"id", "email", "display_name", "photo_url", "role_id", "is_verified", "is_banned",
	"created_at", "updated_at", "last_login_at",
}

func userRows(id string, role any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns).AddRow(
		id, id+"@example.com", "Test User", nil, role, true, false, now, now, nil,
	)
}

var jobDetailColumns = []string{
	"id", "company_id", "category_id", "specialization_id", "title", "description", "requirements",
	"salary_min", "salary_max", "location", "job_type", "experience", "status", "created_at",
	"expires_at", "approved_at", "last_pushed_at", "company_name", "owner_user_id",
	"category_name", "specialization_name", "owner_email", "owner_display_name",
}

func jobDetailRows(id uuid.UUID, status domain.JobStatus, expiresAt time.Time) *sqlmock.Rows {
	created := expiresAt.AddDate(0, -1, 0)
	return sqlmock.NewRows(jobDetailColumns).AddRow(
		id.String(), uuid.NewString(), int64(1), nil, "Backend Engineer", "Build things", nil,
		int64(1000), int64(2000), "Hanoi", "full_time", nil, int64(status), created,
		expiresAt, nil, nil, "Acme", "owner-1",
		"engineering", nil, "owner-1@example.com", nil,
	)
}

var companyColumns = []string{
	"id", "owner_user_id", "company_name", "company_email", "company_phone", "website_url", "logo_url",
	"address", "city", "country", "company_description", "push_top_count", "last_push_reset_at", "created_at",
}

func companyRows(id uuid.UUID, owner string) *sqlmock.Rows {
	return sqlmock.NewRows(companyColumns).AddRow(
		id.String(), owner, "Acme", "hr@acme.test", nil, nil, nil,
		nil, "Hanoi", "VN", nil, int64(0), nil, time.Now(),
	)
}
