package metrics

import "time"

// Outcome labels shared by the moderation and push counters.
const (
	OutcomeSuccess  = "success"
	OutcomeConflict = "conflict"
	OutcomeNotFound = "not_found"
	OutcomeQuota    = "quota_exceeded"
	OutcomeCooldown = "cooldown"
	OutcomeError    = "error"
)

// ModerationRecorded records the outcome of an approve or reject attempt
func ModerationRecorded(action, outcome string) {
	ModerationTotal.WithLabelValues(action, outcome).Inc()
}

// PushRecorded records the outcome of a push-to-top attempt.
// tier is "paid", "free" or "unknown" when the request failed before a tier was chosen.
func PushRecorded(tier, outcome string, duration time.Duration) {
	PushTotal.WithLabelValues(tier, outcome).Inc()
	PushDuration.Observe(duration.Seconds())
}

// ApplicationRecorded records the outcome of an apply attempt.
func ApplicationRecorded(outcome string) {
	ApplicationsTotal.WithLabelValues(outcome).Inc()
}
