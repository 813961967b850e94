package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
)

func TestComputeCommissionDefault(t *testing.T) {
	// No policy configured: the documented default of fixed 20 applies.
	breakdown := ComputeCommission(decimal.NewFromInt(100), nil)

	assert.True(t, breakdown.CommissionAmount.Equal(decimal.NewFromInt(20)),
		"expected default commission 20, got %s", breakdown.CommissionAmount)
	assert.True(t, breakdown.FinalPrice.Equal(decimal.NewFromInt(120)),
		"expected final price 120, got %s", breakdown.FinalPrice)
	assert.Equal(t, models.CommissionKindFixed, breakdown.CommissionKind)
}

func TestComputeCommissionFixed(t *testing.T) {
	policy := &models.CommissionPolicy{
		Kind:        models.CommissionKindFixed,
		FixedAmount: 25,
	}

	// Fixed commission is independent of the base price.
	for _, basePrice := range []float64{0, 1, 99.99, 450, 100000} {
		breakdown := ComputeCommission(decimal.NewFromFloat(basePrice), policy)
		assert.True(t, breakdown.CommissionAmount.Equal(decimal.NewFromInt(25)),
			"base %v: expected commission 25, got %s", basePrice, breakdown.CommissionAmount)
		expected := decimal.NewFromFloat(basePrice).Add(decimal.NewFromInt(25))
		assert.True(t, breakdown.FinalPrice.Equal(expected),
			"base %v: expected final %s, got %s", basePrice, expected, breakdown.FinalPrice)
	}
}

func TestComputeCommissionPercentage(t *testing.T) {
	tests := []struct {
		name       string
		rate       float64
		basePrice  float64
		commission string
		finalPrice string
	}{
		{"five percent of 450", 5, 450, "22.5", "472.5"},
		{"rounding to minor units", 12.5, 99.99, "12.5", "112.49"},
		{"full rate", 100, 80, "80", "160"},
		{"zero base", 10, 0, "0", "0"},
		{"fractional rounding", 3, 10.10, "0.3", "10.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := &models.CommissionPolicy{
				Kind: models.CommissionKindPercentage,
				Rate: tt.rate,
			}
			breakdown := ComputeCommission(decimal.NewFromFloat(tt.basePrice), policy)

			expectedCommission, err := decimal.NewFromString(tt.commission)
			require.NoError(t, err)
			expectedFinal, err := decimal.NewFromString(tt.finalPrice)
			require.NoError(t, err)

			assert.True(t, breakdown.CommissionAmount.Equal(expectedCommission),
				"expected commission %s, got %s", expectedCommission, breakdown.CommissionAmount)
			assert.True(t, breakdown.FinalPrice.Equal(expectedFinal),
				"expected final %s, got %s", expectedFinal, breakdown.FinalPrice)
			assert.Equal(t, models.CommissionKindPercentage, breakdown.CommissionKind)
		})
	}
}

func TestComputeCommissionNoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 style inputs must not pick up binary floating point noise.
	policy := &models.CommissionPolicy{
		Kind: models.CommissionKindPercentage,
		Rate: 10,
	}
	breakdown := ComputeCommission(decimal.NewFromFloat(0.3), policy)
	assert.Equal(t, "0.03", breakdown.CommissionAmount.String())
	assert.Equal(t, "0.33", breakdown.FinalPrice.String())
}

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()
	require.NotNil(t, policy)
	assert.Equal(t, models.CommissionKindFixed, policy.Kind)
	assert.Equal(t, 20.0, policy.FixedAmount)
}
