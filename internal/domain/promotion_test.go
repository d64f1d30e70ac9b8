package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyPush mimics the writes a successful decision asks for.
func applyPush(c *PushCandidate, d PushDecision) {
	if d.Tier == PromotionTierPaid {
		c.Organization.PushTopCount = d.NewCount
		at := d.PushedAt
		c.Organization.LastPushResetAt = &at
	}
	at := d.PushedAt
	c.LastPushedAt = &at
}

func TestDecidePush_PaidQuota(t *testing.T) {
	ent := recurring(regional(2024, 7, 1, 0, 0), 3)
	c := &PushCandidate{JobID: uuid.New()}
	day := regional(2024, 6, 12, 8, 0)

	for i := 1; i <= 3; i++ {
		d, err := DecidePush(*c, &ent, day.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, PromotionTierPaid, d.Tier)
		assert.Equal(t, i, d.NewCount)
		assert.Equal(t, 3, d.Limit)
		assert.True(t, regional(2024, 6, 13, 0, 0).Equal(d.NextResetAt))
		applyPush(c, d)
	}

	_, err := DecidePush(*c, &ent, day.Add(time.Hour))
	var qe *QuotaExceededError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, 3, qe.Used)
	assert.Equal(t, 3, qe.Limit)
	assert.True(t, regional(2024, 6, 13, 0, 0).Equal(qe.ResetsAt))
	assert.Equal(t, EQUOTA, ErrorCode(err))
	assert.Equal(t, 3, c.Organization.PushTopCount, "refused push leaves state untouched")
}

func TestDecidePush_PaidCounterResetsOnNewDay(t *testing.T) {
	ent := recurring(regional(2024, 7, 1, 0, 0), 3)
	yesterday := regional(2024, 6, 11, 22, 0)
	c := PushCandidate{
		JobID: uuid.New(),
		Organization: Organization{
			PushTopCount:    3,
			LastPushResetAt: &yesterday,
		},
	}

	now := regional(2024, 6, 12, 0, 5)
	d, err := DecidePush(c, &ent, now)
	require.NoError(t, err)
	assert.Equal(t, 1, d.NewCount)
	assert.Equal(t, 3, d.ExpectedCount, "guard uses stored counter")
	require.NotNil(t, d.ExpectedResetAt)
	assert.True(t, yesterday.Equal(*d.ExpectedResetAt))
}

func TestDecidePush_PaidIgnoresWeeklyCooldown(t *testing.T) {
	ent := recurring(regional(2024, 7, 1, 0, 0), 2)
	earlier := regional(2024, 6, 12, 7, 0)
	c := PushCandidate{JobID: uuid.New(), LastPushedAt: &earlier}

	d, err := DecidePush(c, &ent, regional(2024, 6, 12, 9, 0))
	require.NoError(t, err)
	assert.Equal(t, PromotionTierPaid, d.Tier)
}

func TestDecidePush_FreeWeeklyCooldown(t *testing.T) {
	c := &PushCandidate{JobID: uuid.New()}

	monday := regional(2024, 1, 1, 10, 0)
	d, err := DecidePush(*c, nil, monday)
	require.NoError(t, err)
	assert.Equal(t, PromotionTierFree, d.Tier)
	assert.Zero(t, d.NewCount)
	applyPush(c, d)

	thursday := regional(2024, 1, 4, 10, 0)
	_, err = DecidePush(*c, nil, thursday)
	var ce *CooldownError
	require.True(t, errors.As(err, &ce))
	assert.True(t, regional(2024, 1, 8, 0, 0).Equal(ce.NextEligible))
	assert.Equal(t, ECOOLDOWN, ErrorCode(err))

	nextMonday := regional(2024, 1, 8, 0, 0)
	d, err = DecidePush(*c, nil, nextMonday)
	require.NoError(t, err)
	assert.Equal(t, PromotionTierFree, d.Tier)
	assert.True(t, regional(2024, 1, 15, 0, 0).Equal(d.NextResetAt))
}

func TestDecidePush_ZeroQuotaFallsBackToFree(t *testing.T) {
	ent := recurring(regional(2024, 7, 1, 0, 0), 0)
	c := PushCandidate{JobID: uuid.New()}

	d, err := DecidePush(c, &ent, regional(2024, 6, 12, 9, 0))
	require.NoError(t, err)
	assert.Equal(t, PromotionTierFree, d.Tier)
}

func TestPushDecision_Result(t *testing.T) {
	id := uuid.New()
	now := regional(2024, 6, 12, 9, 0)
	d := PushDecision{Tier: PromotionTierPaid, PushedAt: now, NewCount: 2, Limit: 5, NextResetAt: NextDayStart(now)}

	r := d.Result(id)
	assert.Equal(t, id, r.JobID)
	assert.Equal(t, 2, r.Used)
	assert.Equal(t, 5, r.Limit)
}

func TestStatusFor(t *testing.T) {
	now := regional(2024, 6, 12, 9, 0)
	stamp := regional(2024, 6, 12, 8, 0)
	org := Organization{PushTopCount: 2, LastPushResetAt: &stamp}

	ent := recurring(regional(2024, 7, 1, 0, 0), 5)
	ent.Snapshot.PlanName = strPtr("Gold")

	st := StatusFor(org, &ent, now)
	assert.Equal(t, PromotionTierPaid, st.Tier)
	assert.Equal(t, 2, st.Used)
	assert.Equal(t, 5, st.Limit)
	assert.Equal(t, "Gold", st.PlanName)

	free := StatusFor(org, nil, now)
	assert.Equal(t, PromotionTierFree, free.Tier)
	assert.True(t, regional(2024, 6, 17, 0, 0).Equal(free.NextResetAt))
}
