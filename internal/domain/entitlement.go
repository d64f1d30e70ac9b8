// Package domain contains core business types and interfaces.
//
// This file defines subscription entitlements and the plan terms they carry.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PlanType distinguishes one-off purchases from recurring plans.
type PlanType string

const (
	PlanTypeOneTime      PlanType = "ONE_TIME"
	PlanTypeSubscription PlanType = "SUBSCRIPTION"
)

// SubscriptionStatus is the stored active flag of an entitlement.
type SubscriptionStatus int16

const (
	SubscriptionStatusInactive SubscriptionStatus = 0
	SubscriptionStatusActive   SubscriptionStatus = 1
)

// PlanTerms are the limits and pricing of a plan. A nil field means the
// term is not set at this layer.
//
// An entitlement carries two copies: the snapshot frozen at purchase and the
// live catalog entry. Snapshot values always win; the catalog only fills
// fields missing from legacy rows.
type PlanTerms struct {
	PlanName             *string
	PlanType             *PlanType
	Price                *int64
	Features             json.RawMessage
	JobPostDaily         *int
	PushTopDaily         *int
	CVStorage            *int
	ViewApplicantCount   *int
	RevealCandidatePhone *int
}

// Or returns t with every unset field taken from fallback.
func (t PlanTerms) Or(fallback PlanTerms) PlanTerms {
	out := t
	if out.PlanName == nil {
		out.PlanName = fallback.PlanName
	}
	if out.PlanType == nil {
		out.PlanType = fallback.PlanType
	}
	if out.Price == nil {
		out.Price = fallback.Price
	}
	if len(out.Features) == 0 {
		out.Features = fallback.Features
	}
	if out.JobPostDaily == nil {
		out.JobPostDaily = fallback.JobPostDaily
	}
	if out.PushTopDaily == nil {
		out.PushTopDaily = fallback.PushTopDaily
	}
	if out.CVStorage == nil {
		out.CVStorage = fallback.CVStorage
	}
	if out.ViewApplicantCount == nil {
		out.ViewApplicantCount = fallback.ViewApplicantCount
	}
	if out.RevealCandidatePhone == nil {
		out.RevealCandidatePhone = fallback.RevealCandidatePhone
	}
	return out
}

// Entitlement is a time-bounded subscription grant held by a user.
// It is read-only from the promotion engine's point of view.
type Entitlement struct {
	ID                   uuid.UUID
	OwnerID              string
	PlanID               *uuid.UUID
	Status               SubscriptionStatus
	StartDate            time.Time
	EndDate              time.Time
	PaymentTransactionID string

	Snapshot PlanTerms
	Catalog  PlanTerms
}

// Terms returns the effective plan terms.
func (e *Entitlement) Terms() PlanTerms {
	return e.Snapshot.Or(e.Catalog)
}

// PlanType returns the effective plan type, or "" when neither layer sets it.
func (e *Entitlement) PlanType() PlanType {
	if t := e.Terms().PlanType; t != nil {
		return *t
	}
	return ""
}

// PushQuota returns the daily push allowance. Zero means no paid benefit.
func (e *Entitlement) PushQuota() int {
	if q := e.Terms().PushTopDaily; q != nil && *q > 0 {
		return *q
	}
	return 0
}

// IsRecurring returns true for any plan type other than one-time.
func (e *Entitlement) IsRecurring() bool {
	t := e.PlanType()
	return t != "" && t != PlanTypeOneTime
}

// IsCurrentAt returns true if the entitlement is active, unexpired and
// recurring at now.
func (e *Entitlement) IsCurrentAt(now time.Time) bool {
	return e.Status == SubscriptionStatusActive && e.EndDate.After(now) && e.IsRecurring()
}

// DurationDays returns the length of a recurring plan in whole days.
// One-time purchases have no duration.
func (e *Entitlement) DurationDays() *int {
	if !e.IsRecurring() {
		return nil
	}
	days := int(e.EndDate.Sub(e.StartDate).Hours() / 24)
	return &days
}

// SelectCurrentEntitlement picks the entitlement that governs promotion for
// an owner: among those current at now, the one with the latest end date.
// Returns nil when no entitlement qualifies (free tier).
func SelectCurrentEntitlement(ents []Entitlement, now time.Time) *Entitlement {
	var current *Entitlement
	for i := range ents {
		e := &ents[i]
		if !e.IsCurrentAt(now) {
			continue
		}
		if current == nil || e.EndDate.After(current.EndDate) {
			current = e
		}
	}
	return current
}
