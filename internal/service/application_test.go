package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/jobboard/internal/domain"
)

const (
	queryJobVisibility = "name: GetJobVisibility :one"
	queryCVForUser     = "name: GetCVForUser :one"
	queryCreateApp     = "name: CreateApplication :one"
	queryApplicants    = "name: ListApplicantsByJob :many"
	execMarkViewed     = "name: MarkApplicationsViewed :execrows"
	execReview         = "name: SetApplicationStatus :execrows"
	execSaveJob        = "name: SaveJob :exec"
	execUnsaveJob      = "name: UnsaveJob :execrows"
)

var (
	visibilityColumns  = []string{"id", "status", "expires_at", "owner_user_id"}
	applicationColumns = []string{"id", "job_id", "candidate_id", "cv_id", "status", "applied_at", "updated_at"}
	cvColumns          = []string{"id", "user_id", "cv_name", "file_url", "is_default", "created_at"}
	applicantColumns   = []string{
		"id", "candidate_id", "status", "applied_at", "candidate_email", "display_name",
		"full_name", "phone_number", "cv_id", "cv_name", "file_url",
	}
)

func visibilityRows(id uuid.UUID, status domain.JobStatus, expiresAt time.Time, owner string) *sqlmock.Rows {
	return sqlmock.NewRows(visibilityColumns).AddRow(id.String(), int64(status), expiresAt, owner)
}

func cvRows(id uuid.UUID, user string) *sqlmock.Rows {
	return sqlmock.NewRows(cvColumns).AddRow(id.String(), user, "Main CV", "https://files.example.com/cv.pdf", true, time.Now())
}

func TestApplicationService_Apply(t *testing.T) {
	now := at(2024, 6, 12, 9, 0)
	jobID, cvID := uuid.New(), uuid.New()

	t.Run("visible listing accepts the application", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		appID := uuid.New()
		mock.ExpectQuery(queryJobVisibility).WithArgs(jobID).
			WillReturnRows(visibilityRows(jobID, domain.JobStatusActive, now.AddDate(0, 0, 7), "owner-1"))
		mock.ExpectQuery(queryCVForUser).WithArgs(cvID, "cand-1").WillReturnRows(cvRows(cvID, "cand-1"))
		mock.ExpectQuery(queryCreateApp).WithArgs(jobID, "cand-1", cvID, now).
			WillReturnRows(sqlmock.NewRows(applicationColumns).AddRow(
				appID.String(), jobID.String(), "cand-1", cvID.String(), int64(0), now, now,
			))

		app, err := svc.Apply(context.Background(), "cand-1", jobID, cvID, now)
		require.NoError(t, err)
		assert.Equal(t, appID, app.ID)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		require.NotNil(t, app.CVID)
		assert.Equal(t, cvID, *app.CVID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second application is a conflict", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectQuery(queryJobVisibility).
			WillReturnRows(visibilityRows(jobID, domain.JobStatusActive, now.AddDate(0, 0, 7), "owner-1"))
		mock.ExpectQuery(queryCVForUser).WillReturnRows(cvRows(cvID, "cand-1"))
		mock.ExpectQuery(queryCreateApp).WillReturnRows(sqlmock.NewRows(applicationColumns))

		_, err := svc.Apply(context.Background(), "cand-1", jobID, cvID, now)
		assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	hidden := []struct {
		name    string
		status  domain.JobStatus
		expires time.Time
	}{
		{"pending listing", domain.JobStatusPendingReview, now.AddDate(0, 0, 7)},
		{"rejected listing", domain.JobStatusRejected, now.AddDate(0, 0, 7)},
		{"expired listing", domain.JobStatusActive, now},
	}
	for _, tt := range hidden {
		t.Run(tt.name+" is not found", func(t *testing.T) {
			db, mock, queries := newMockDB(t)
			svc := NewApplicationService(db, queries, newTestLogger())

			mock.ExpectQuery(queryJobVisibility).
				WillReturnRows(visibilityRows(jobID, tt.status, tt.expires, "owner-1"))

			_, err := svc.Apply(context.Background(), "cand-1", jobID, cvID, now)
			assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("missing listing is not found", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectQuery(queryJobVisibility).WillReturnRows(sqlmock.NewRows(visibilityColumns))

		_, err := svc.Apply(context.Background(), "cand-1", jobID, cvID, now)
		assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("someone else's cv is a validation error", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectQuery(queryJobVisibility).
			WillReturnRows(visibilityRows(jobID, domain.JobStatusActive, now.AddDate(0, 0, 7), "owner-1"))
		mock.ExpectQuery(queryCVForUser).WithArgs(cvID, "cand-1").WillReturnRows(sqlmock.NewRows(cvColumns))

		_, err := svc.Apply(context.Background(), "cand-1", jobID, cvID, now)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "cv_id")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectQuery(queryJobVisibility).WillReturnError(errors.New("connection reset"))

		_, err := svc.Apply(context.Background(), "cand-1", jobID, cvID, now)
		assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApplicationService_SaveAndUnsave(t *testing.T) {
	now := at(2024, 6, 12, 9, 0)
	jobID := uuid.New()

	t.Run("save checks visibility then bookmarks", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectQuery(queryJobVisibility).
			WillReturnRows(visibilityRows(jobID, domain.JobStatusActive, now.AddDate(0, 0, 7), "owner-1"))
		mock.ExpectExec(execSaveJob).WithArgs("cand-1", jobID, now).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, svc.Save(context.Background(), "cand-1", jobID, now))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pending listing cannot be saved", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectQuery(queryJobVisibility).
			WillReturnRows(visibilityRows(jobID, domain.JobStatusPendingReview, now.AddDate(0, 0, 7), "owner-1"))

		err := svc.Save(context.Background(), "cand-1", jobID, now)
		assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unsave of a missing bookmark succeeds", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectExec(execUnsaveJob).WithArgs("cand-1", jobID).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, svc.Unsave(context.Background(), "cand-1", jobID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApplicationService_ListApplicants(t *testing.T) {
	now := at(2024, 6, 12, 9, 0)
	jobID := uuid.New()

	applicants := func() *sqlmock.Rows {
		return sqlmock.NewRows(applicantColumns).
			AddRow(uuid.NewString(), "cand-1", int64(1), now, "cand-1@example.com", "Cand", "Nguyen Van A", "0912345678",
				uuid.NewString(), "Main CV", "https://files.example.com/a.pdf").
			AddRow(uuid.NewString(), "cand-2", int64(2), now.Add(-time.Hour), "cand-2@example.com", "Cand Two", nil, nil,
				nil, nil, nil)
	}

	t.Run("free tier sees masked phones", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectQuery(queryJobVisibility).WithArgs(jobID).
			WillReturnRows(visibilityRows(jobID, domain.JobStatusActive, now.AddDate(0, 0, 7), "owner-1"))
		mock.ExpectExec(execMarkViewed).WithArgs(jobID, now).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(queryActiveSubs).WillReturnRows(subscriptionRows())
		mock.ExpectQuery(queryApplicants).WithArgs(jobID).WillReturnRows(applicants())

		list, err := svc.ListApplicants(context.Background(), "owner-1", jobID, now)
		require.NoError(t, err)
		require.Len(t, list, 2)

		assert.Equal(t, "Nguyen Van A", list[0].FullName)
		assert.Equal(t, "*******678", list[0].Phone)
		assert.True(t, list[0].PhoneMasked)
		assert.Equal(t, domain.ApplicationStatusViewed, list[0].Status)
		require.NotNil(t, list[0].CV)
		assert.Equal(t, "Main CV", list[0].CV.Name)

		assert.Equal(t, "Cand Two", list[1].FullName, "display name fills a missing profile")
		assert.Nil(t, list[1].CV)
		assert.False(t, list[1].PhoneMasked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("plan with phone reveal sees full numbers", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectQuery(queryJobVisibility).
			WillReturnRows(visibilityRows(jobID, domain.JobStatusActive, now.AddDate(0, 0, 7), "owner-1"))
		mock.ExpectExec(execMarkViewed).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(queryActiveSubs).WillReturnRows(subscriptionRows(subscription{
			userID: "owner-1", planType: "SUBSCRIPTION", revealPhone: int64(1),
			start: now.AddDate(0, -1, 0), end: now.AddDate(0, 1, 0),
		}))
		mock.ExpectQuery(queryApplicants).WillReturnRows(applicants())

		list, err := svc.ListApplicants(context.Background(), "owner-1", jobID, now)
		require.NoError(t, err)
		assert.Equal(t, "0912345678", list[0].Phone)
		assert.False(t, list[0].PhoneMasked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign listing reads as missing", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectQuery(queryJobVisibility).
			WillReturnRows(visibilityRows(jobID, domain.JobStatusActive, now.AddDate(0, 0, 7), "owner-2"))

		_, err := svc.ListApplicants(context.Background(), "owner-1", jobID, now)
		assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApplicationService_Review(t *testing.T) {
	now := at(2024, 6, 12, 9, 0)
	appID := uuid.New()

	t.Run("owner records a verdict", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectExec(execReview).
			WithArgs(appID, "owner-1", int16(domain.ApplicationStatusSuitable), now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, svc.Review(context.Background(), "owner-1", appID, domain.ApplicationStatusSuitable, now))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("application on a foreign listing is not found", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		mock.ExpectExec(execReview).WillReturnResult(sqlmock.NewResult(0, 0))

		err := svc.Review(context.Background(), "owner-1", appID, domain.ApplicationStatusUnsuitable, now)
		assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("system statuses are refused", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		err := svc.Review(context.Background(), "owner-1", appID, domain.ApplicationStatusViewed, now)
		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApplicationService_AddCV(t *testing.T) {
	t.Run("new default replaces the previous one", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		id := uuid.New()
		mock.ExpectBegin()
		mock.ExpectExec("name: ClearDefaultCV :exec").WithArgs("cand-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("name: CreateCV :one").
			WithArgs("cand-1", "Main CV", "https://files.example.com/cv.pdf", true).
			WillReturnRows(cvRows(id, "cand-1"))
		mock.ExpectCommit()

		cv, err := svc.AddCV(context.Background(), domain.CreateCVParams{
			UserID: "cand-1", Name: " Main CV ", URL: "https://files.example.com/cv.pdf", IsDefault: true,
		})
		require.NoError(t, err)
		assert.Equal(t, id, cv.ID)
		assert.True(t, cv.IsDefault)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid url never reaches storage", func(t *testing.T) {
		db, mock, queries := newMockDB(t)
		svc := NewApplicationService(db, queries, newTestLogger())

		_, err := svc.AddCV(context.Background(), domain.CreateCVParams{UserID: "cand-1", Name: "CV", URL: "cv.pdf"})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "file_url")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
