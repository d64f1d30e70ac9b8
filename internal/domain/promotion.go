// Package domain contains core business types and interfaces.
//
// This file implements the push-to-top decision: a daily quota for owners on
// a paid plan and a once-per-week cooldown for everyone else.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PromotionTier identifies which rule set governed a push decision.
type PromotionTier string

const (
	PromotionTierPaid PromotionTier = "paid"
	PromotionTierFree PromotionTier = "free"
)

// Organization is the employer company that owns jobs. Its push counter is
// shared by all of the company's jobs and is only meaningful together with a
// current paid entitlement.
type Organization struct {
	ID              uuid.UUID
	OwnerUserID     string
	Name            string
	PushTopCount    int
	LastPushResetAt *time.Time
}

// CountOn returns the number of pushes that count against the quota on the
// regional day containing now. A counter stamped on an earlier day is stale
// and reads as zero regardless of its stored value.
func (o *Organization) CountOn(now time.Time) int {
	if o.LastPushResetAt == nil || !SameDay(*o.LastPushResetAt, now) {
		return 0
	}
	return o.PushTopCount
}

// PushCandidate is the state loaded for a single push request.
type PushCandidate struct {
	JobID        uuid.UUID
	LastPushedAt *time.Time
	Organization Organization
}

// PushDecision is the outcome of a successful evaluation. It describes the
// writes the caller must apply.
type PushDecision struct {
	Tier     PromotionTier
	PushedAt time.Time

	// Paid tier: counter value to store and the quota it counts against.
	// ExpectedCount/ExpectedResetAt are the stored values the decision was
	// based on, used to guard the counter update.
	NewCount        int
	Limit           int
	ExpectedCount   int
	ExpectedResetAt *time.Time

	// Next window boundary: start of the next regional day (paid) or the
	// next Monday (free).
	NextResetAt time.Time
}

// DecidePush evaluates a push request at now.
//
// ent is the owner's current entitlement or nil. Returns *QuotaExceededError
// or *CooldownError when the push is refused; neither implies any mutation.
func DecidePush(c PushCandidate, ent *Entitlement, now time.Time) (PushDecision, error) {
	const op = "promotion.decide"

	if ent != nil {
		if limit := ent.PushQuota(); limit > 0 {
			current := c.Organization.CountOn(now)
			if current >= limit {
				return PushDecision{}, QuotaExceeded(op, current, limit, NextDayStart(now))
			}
			return PushDecision{
				Tier:            PromotionTierPaid,
				PushedAt:        now,
				NewCount:        current + 1,
				Limit:           limit,
				ExpectedCount:   c.Organization.PushTopCount,
				ExpectedResetAt: c.Organization.LastPushResetAt,
				NextResetAt:     NextDayStart(now),
			}, nil
		}
	}

	if c.LastPushedAt != nil && SameWeek(*c.LastPushedAt, now) {
		return PushDecision{}, CooldownActive(op, NextWeekStart(now))
	}
	return PushDecision{
		Tier:        PromotionTierFree,
		PushedAt:    now,
		NextResetAt: NextWeekStart(now),
	}, nil
}

// PromotionResult is returned to the caller after a successful push.
type PromotionResult struct {
	JobID    uuid.UUID
	Tier     PromotionTier
	PushedAt time.Time

	// Paid tier only
	Used  int
	Limit int

	// Paid tier: when the daily counter resets.
	// Free tier: the Monday from which the next push is allowed.
	NextResetAt time.Time
}

// Result converts a decision into the caller-facing result.
func (d PushDecision) Result(jobID uuid.UUID) PromotionResult {
	return PromotionResult{
		JobID:       jobID,
		Tier:        d.Tier,
		PushedAt:    d.PushedAt,
		Used:        d.NewCount,
		Limit:       d.Limit,
		NextResetAt: d.NextResetAt,
	}
}

// PromotionStatus is a read-only preview of an owner's push allowance.
type PromotionStatus struct {
	Tier        PromotionTier
	Used        int
	Limit       int
	NextResetAt time.Time
	PlanName    string
	PlanEndsAt  *time.Time
}

// StatusFor builds the preview for an organization at now.
func StatusFor(org Organization, ent *Entitlement, now time.Time) PromotionStatus {
	if ent != nil && ent.PushQuota() > 0 {
		st := PromotionStatus{
			Tier:        PromotionTierPaid,
			Used:        org.CountOn(now),
			Limit:       ent.PushQuota(),
			NextResetAt: NextDayStart(now),
			PlanEndsAt:  &ent.EndDate,
		}
		if name := ent.Terms().PlanName; name != nil {
			st.PlanName = *name
		}
		return st
	}
	return PromotionStatus{
		Tier:        PromotionTierFree,
		NextResetAt: NextWeekStart(now),
	}
}
