// Package domain contains core business types and interfaces.
//
// This file defines the Job listing type and its moderation lifecycle.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Job Status
// =============================================================================

// JobStatus is the moderation state stored on a job listing.
//
// The numeric values match the stored column so that existing rows and
// reporting queries keep their meaning.
type JobStatus int16

const (
	// JobStatusPendingReview is the initial state of every new listing.
	JobStatusPendingReview JobStatus = 0

	// JobStatusActive means an admin approved the listing. It stays Active
	// after its expiry date; visibility is decided by comparing ExpiresAt.
	JobStatusActive JobStatus = 1

	// JobStatusRejected is terminal.
	JobStatusRejected JobStatus = 4
)

// String returns the API representation of the status.
func (s JobStatus) String() string {
	switch s {
	case JobStatusPendingReview:
		return "pending_review"
	case JobStatusActive:
		return "active"
	case JobStatusRejected:
		return "rejected"
	}
	return "unknown"
}

// IsValid returns true if the status is a recognized value.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPendingReview, JobStatusActive, JobStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo checks if a listing in this status can move to target.
//
// Valid transitions:
// - pending_review -> active (approve)
// - pending_review -> rejected (reject)
//
// Nothing leaves active or rejected. Expiry is not a transition.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	if s != JobStatusPendingReview {
		return false
	}
	return target == JobStatusActive || target == JobStatusRejected
}

// ModerationAction names an admin decision on a pending listing.
type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
)

// TargetStatus returns the status the action moves a pending listing to.
func (a ModerationAction) TargetStatus() JobStatus {
	if a == ModerationApprove {
		return JobStatusActive
	}
	return JobStatusRejected
}

// =============================================================================
// Job Domain Type
// =============================================================================

// Job is a listing owned by exactly one company.
type Job struct {
	ID               uuid.UUID
	CompanyID        uuid.UUID
	CategoryID       *int32
	SpecializationID *int32
	Title            string
	Description      string
	Requirements     string
	SalaryMin        *int64
	SalaryMax        *int64
	Location         string
	JobType          string
	Experience       string
	Status           JobStatus
	CreatedAt        time.Time
	ExpiresAt        time.Time
	ApprovedAt       *time.Time
	LastPushedAt     *time.Time

	// Joined fields, populated by listing queries
	CompanyName        string
	CategoryName       string
	SpecializationName string
	OwnerEmail         string
	OwnerDisplayName   string
}

// IsExpired returns true once the listing's expiry time has passed.
func (j *Job) IsExpired(now time.Time) bool {
	return !j.ExpiresAt.After(now)
}

// IsPublic returns true if candidates may see the listing at now.
func (j *Job) IsPublic(now time.Time) bool {
	return j.Status == JobStatusActive && !j.IsExpired(now)
}

// CreateJobParams contains the parameters an employer submits for a new listing.
type CreateJobParams struct {
	OwnerUserID      string
	CategoryID       *int32
	SpecializationID *int32
	Title            string
	Description      string
	Requirements     string
	SalaryMin        *int64
	SalaryMax        *int64
	Location         string
	JobType          string
	Experience       string
	ExpiresAt        time.Time
}

// Validate checks the required fields at the given instant.
func (p CreateJobParams) Validate(now time.Time) error {
	const op = "job.validate"

	if p.Title == "" {
		return NewValidationError(op, "title", "Title is required")
	}
	if p.Description == "" {
		return NewValidationError(op, "description", "Description is required")
	}
	if p.ExpiresAt.IsZero() {
		return NewValidationError(op, "expires_at", "Expiry date is required")
	}
	if p.ExpiresAt.Before(now) {
		return NewValidationError(op, "expires_at", "Expiry date cannot be in the past")
	}
	if p.SalaryMin != nil && *p.SalaryMin < 0 {
		return NewValidationError(op, "salary_min", "Salary cannot be negative")
	}
	if p.SalaryMin != nil && p.SalaryMax != nil && *p.SalaryMin > *p.SalaryMax {
		return NewValidationError(op, "salary_max", "Maximum salary must not be below minimum salary")
	}
	return nil
}

// PublicJobFilter narrows the candidate-facing listing.
type PublicJobFilter struct {
	CategoryID *int32
	Location   string
	Keyword    string
	Limit      int32
	Offset     int32
}

// Normalize clamps paging to sane bounds.
func (f PublicJobFilter) Normalize() PublicJobFilter {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
