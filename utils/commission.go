package utils

import (
	"github.com/shopspring/decimal"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
)

// DefaultFixedCommission is applied when no commission policy has ever been
// configured. Keeping it in one place avoids the fallback drifting between
// call sites.
var DefaultFixedCommission = decimal.NewFromInt(20)

// DefaultPolicy returns the documented fallback policy: a fixed commission
// of 20 currency units.
func DefaultPolicy() *models.CommissionPolicy {
	amount, _ := DefaultFixedCommission.Float64()
	return &models.CommissionPolicy{
		Kind:        models.CommissionKindFixed,
		FixedAmount: amount,
		Description: "default commission (no policy configured)",
	}
}

// ComputeCommission applies the given policy to a base price and returns the
// resulting price snapshot. A nil policy falls back to DefaultPolicy, so the
// function is total for any basePrice >= 0; negative base prices must be
// rejected at the request boundary.
//
// The commission amount is rounded to 2 decimal places before summing.
func ComputeCommission(basePrice decimal.Decimal, policy *models.CommissionPolicy) models.CommissionBreakdown {
	if policy == nil {
		policy = DefaultPolicy()
	}

	var amount decimal.Decimal
	switch policy.Kind {
	case models.CommissionKindPercentage:
		rate := decimal.NewFromFloat(policy.Rate)
		amount = basePrice.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
	default:
		amount = decimal.NewFromFloat(policy.FixedAmount).Round(2)
	}

	return models.CommissionBreakdown{
		BasePrice:        basePrice,
		CommissionAmount: amount,
		FinalPrice:       basePrice.Add(amount),
		CommissionKind:   policy.Kind,
	}
}
