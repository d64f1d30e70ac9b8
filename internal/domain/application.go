// Package domain contains core business types and interfaces.
//
// This file defines candidate applications, saved listings and CVs.
package domain

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus tracks an application through the employer's review.
type ApplicationStatus int16

const (
	ApplicationStatusApplied    ApplicationStatus = 0
	ApplicationStatusViewed     ApplicationStatus = 1
	ApplicationStatusSuitable   ApplicationStatus = 2
	ApplicationStatusUnsuitable ApplicationStatus = 3
)

// String returns the API representation of the status.
func (s ApplicationStatus) String() string {
	switch s {
	case ApplicationStatusApplied:
		return "applied"
	case ApplicationStatusViewed:
		return "viewed"
	case ApplicationStatusSuitable:
		return "suitable"
	case ApplicationStatusUnsuitable:
		return "unsuitable"
	}
	return "unknown"
}

// ParseReviewDecision parses the verdict an employer may record. Applied and
// viewed are set by the system and are not accepted.
func ParseReviewDecision(s string) (ApplicationStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "suitable":
		return ApplicationStatusSuitable, nil
	case "unsuitable":
		return ApplicationStatusUnsuitable, nil
	}
	return 0, NewValidationError("application.status", "status", "Status must be suitable or unsuitable")
}

// Application is one candidate's application to one listing. A candidate
// applies to a listing at most once.
type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID string
	CVID        *uuid.UUID
	Status      ApplicationStatus
	AppliedAt   time.Time
}

// AppliedJob is an application as the candidate sees it.
type AppliedJob struct {
	ApplicationID      uuid.UUID
	JobID              uuid.UUID
	Status             ApplicationStatus
	AppliedAt          time.Time
	JobTitle           string
	CompanyName        string
	SalaryMin          *int64
	SalaryMax          *int64
	Location           string
	SpecializationName string
	ExpiresAt          time.Time
}

// Applicant is an application as the listing's owner sees it.
type Applicant struct {
	ApplicationID uuid.UUID
	CandidateID   string
	FullName      string
	Email         string
	// Phone is masked unless the owner's plan reveals candidate phones.
	Phone       string
	PhoneMasked bool
	Status      ApplicationStatus
	AppliedAt   time.Time
	CV          *CV
}

// MaskPhone keeps the last three digits of a phone number.
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	r := []rune(phone)
	keep := 3
	if len(r) <= keep {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-keep) + string(r[len(r)-keep:])
}

// CanRevealPhones reports whether an entitlement lets its holder see
// applicants' phone numbers. Nil is the free tier.
func CanRevealPhones(ent *Entitlement) bool {
	if ent == nil {
		return false
	}
	n := ent.Terms().RevealCandidatePhone
	return n != nil && *n > 0
}

// SavedJob is a listing a candidate bookmarked.
type SavedJob struct {
	Job     Job
	SavedAt time.Time
}

// CV is a stored résumé a candidate attaches to applications. The file
// itself lives elsewhere; only its URL is recorded.
type CV struct {
	ID        uuid.UUID
	UserID    string
	Name      string
	URL       string
	IsDefault bool
	CreatedAt time.Time
}

// CreateCVParams contains the parameters for registering a CV.
type CreateCVParams struct {
	UserID    string
	Name      string
	URL       string
	IsDefault bool
}

// Validate checks a CV registration.
func (p CreateCVParams) Validate() error {
	const op = "cv.validate"

	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError(op, "cv_name", "CV name is required")
	}
	u, err := url.Parse(p.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewValidationError(op, "file_url", "File URL must be an http or https URL")
	}
	return nil
}
