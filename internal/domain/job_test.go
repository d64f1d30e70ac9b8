package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from JobStatus
		to   JobStatus
		want bool
	}{
		{"pending to active", JobStatusPendingReview, JobStatusActive, true},
		{"pending to rejected", JobStatusPendingReview, JobStatusRejected, true},
		{"pending to pending", JobStatusPendingReview, JobStatusPendingReview, false},
		{"active to rejected", JobStatusActive, JobStatusRejected, false},
		{"active to pending", JobStatusActive, JobStatusPendingReview, false},
		{"rejected to active", JobStatusRejected, JobStatusActive, false},
		{"rejected to pending", JobStatusRejected, JobStatusPendingReview, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestJobStatus_String(t *testing.T) {
	assert.Equal(t, "pending_review", JobStatusPendingReview.String())
	assert.Equal(t, "active", JobStatusActive.String())
	assert.Equal(t, "rejected", JobStatusRejected.String())
	assert.Equal(t, "unknown", JobStatus(2).String())
	assert.False(t, JobStatus(3).IsValid())
}

func TestModerationAction_TargetStatus(t *testing.T) {
	assert.Equal(t, JobStatusActive, ModerationApprove.TargetStatus())
	assert.Equal(t, JobStatusRejected, ModerationReject.TargetStatus())
}

func TestJob_IsPublic(t *testing.T) {
	now := regional(2024, 5, 10, 12, 0)

	tests := []struct {
		name string
		job  Job
		want bool
	}{
		{"active and unexpired", Job{Status: JobStatusActive, ExpiresAt: now.Add(time.Hour)}, true},
		{"active but expired", Job{Status: JobStatusActive, ExpiresAt: now.Add(-time.Hour)}, false},
		{"expires exactly now", Job{Status: JobStatusActive, ExpiresAt: now}, false},
		{"pending", Job{Status: JobStatusPendingReview, ExpiresAt: now.Add(time.Hour)}, false},
		{"rejected", Job{Status: JobStatusRejected, ExpiresAt: now.Add(time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.job.IsPublic(now))
		})
	}
}

func TestCreateJobParams_Validate(t *testing.T) {
	now := regional(2024, 5, 10, 12, 0)
	i64 := func(v int64) *int64 { return &v }

	valid := CreateJobParams{
		OwnerUserID: "owner-1",
		Title:       "Backend Engineer",
		Description: "Build APIs",
		ExpiresAt:   now.AddDate(0, 1, 0),
	}

	tests := []struct {
		name      string
		mutate    func(p *CreateJobParams)
		wantField string
	}{
		{"valid", func(p *CreateJobParams) {}, ""},
		{"missing title", func(p *CreateJobParams) { p.Title = "" }, "title"},
		{"missing description", func(p *CreateJobParams) { p.Description = "" }, "description"},
		{"missing expiry", func(p *CreateJobParams) { p.ExpiresAt = time.Time{} }, "expires_at"},
		{"expiry in past", func(p *CreateJobParams) { p.ExpiresAt = now.Add(-time.Minute) }, "expires_at"},
		{"negative salary", func(p *CreateJobParams) { p.SalaryMin = i64(-1) }, "salary_min"},
		{"min above max", func(p *CreateJobParams) { p.SalaryMin = i64(2000); p.SalaryMax = i64(1000) }, "salary_max"},
		{"min equals max", func(p *CreateJobParams) { p.SalaryMin = i64(1000); p.SalaryMax = i64(1000) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate(now)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			if assert.True(t, errors.As(err, &ve)) {
				assert.Contains(t, ve.Fields, tt.wantField)
			}
		})
	}
}

func TestPublicJobFilter_Normalize(t *testing.T) {
	assert.Equal(t, int32(20), PublicJobFilter{}.Normalize().Limit)
	assert.Equal(t, int32(20), PublicJobFilter{Limit: 500}.Normalize().Limit)
	assert.Equal(t, int32(50), PublicJobFilter{Limit: 50}.Normalize().Limit)
	assert.Equal(t, int32(0), PublicJobFilter{Offset: -5}.Normalize().Offset)
}
