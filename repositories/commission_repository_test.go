package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
)

// fakePolicyRows replays installPolicy's writes against an in-memory slice.
type fakePolicyRows struct {
	rows     []models.CommissionPolicy
	closeErr error
}

func (f *fakePolicyRows) closeActive(_ context.Context, at time.Time) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	for i := range f.rows {
		if f.rows[i].IsActive {
			f.rows[i].IsActive = false
			to := at
			f.rows[i].EffectiveTo = &to
		}
	}
	return nil
}

func (f *fakePolicyRows) insert(_ context.Context, policy *models.CommissionPolicy) error {
	f.rows = append(f.rows, *policy)
	return nil
}

func (f *fakePolicyRows) activeCount() int {
	count := 0
	for i := range f.rows {
		if f.rows[i].IsActive {
			count++
		}
	}
	return count
}

func TestInstallPolicyKeepsSingleActive(t *testing.T) {
	ctx := context.Background()
	store := &fakePolicyRows{}

	first := &models.CommissionPolicy{Kind: "percentage", Rate: 10}
	firstAt := time.Now().Add(-time.Hour)
	stampNewPolicy(first, firstAt)
	require.NoError(t, installPolicy(ctx, store, first, firstAt))

	require.Len(t, store.rows, 1)
	assert.Equal(t, 1, store.activeCount())

	second := &models.CommissionPolicy{Kind: "fixed", FixedAmount: 35}
	secondAt := time.Now()
	stampNewPolicy(second, secondAt)
	require.NoError(t, installPolicy(ctx, store, second, secondAt))

	require.Len(t, store.rows, 2)
	assert.Equal(t, 1, store.activeCount())

	// The first row is closed with its effective window ended at the
	// moment of replacement; the second is the surviving active row.
	closed := store.rows[0]
	assert.False(t, closed.IsActive)
	require.NotNil(t, closed.EffectiveTo)
	assert.True(t, closed.EffectiveTo.Equal(secondAt))

	active := store.rows[1]
	assert.True(t, active.IsActive)
	assert.Equal(t, second.ID, active.ID)
	assert.Nil(t, active.EffectiveTo)
}

func TestInstallPolicyCloseFailureSkipsInsert(t *testing.T) {
	ctx := context.Background()
	store := &fakePolicyRows{}

	existing := &models.CommissionPolicy{Kind: "percentage", Rate: 5}
	at := time.Now().Add(-time.Hour)
	stampNewPolicy(existing, at)
	require.NoError(t, installPolicy(ctx, store, existing, at))

	store.closeErr = errors.New("write conflict")

	replacement := &models.CommissionPolicy{Kind: "fixed", FixedAmount: 50}
	now := time.Now()
	stampNewPolicy(replacement, now)
	err := installPolicy(ctx, store, replacement, now)

	require.Error(t, err)
	require.Len(t, store.rows, 1)
	assert.Equal(t, existing.ID, store.rows[0].ID)
	assert.True(t, store.rows[0].IsActive)
}

func TestStampNewPolicy(t *testing.T) {
	now := time.Now()
	policy := &models.CommissionPolicy{Kind: "percentage", Rate: 12.5}
	stampNewPolicy(policy, now)

	assert.False(t, policy.ID.IsZero())
	assert.True(t, policy.IsActive)
	assert.True(t, policy.EffectiveFrom.Equal(now))
	assert.Nil(t, policy.EffectiveTo)
	assert.True(t, policy.CreatedAt.Equal(now))
}
