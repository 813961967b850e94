package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommissionPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		policy  CommissionPolicy
		wantErr bool
	}{
		{"valid fixed", CommissionPolicy{Kind: CommissionKindFixed, FixedAmount: 25}, false},
		{"valid percentage", CommissionPolicy{Kind: CommissionKindPercentage, Rate: 5}, false},
		{"full percentage", CommissionPolicy{Kind: CommissionKindPercentage, Rate: 100}, false},
		{"zero rate", CommissionPolicy{Kind: CommissionKindPercentage, Rate: 0}, true},
		{"rate over 100", CommissionPolicy{Kind: CommissionKindPercentage, Rate: 100.5}, true},
		{"negative rate", CommissionPolicy{Kind: CommissionKindPercentage, Rate: -3}, true},
		{"zero fixed amount", CommissionPolicy{Kind: CommissionKindFixed, FixedAmount: 0}, true},
		{"negative fixed amount", CommissionPolicy{Kind: CommissionKindFixed, FixedAmount: -10}, true},
		{"unknown kind", CommissionPolicy{Kind: "tiered", Rate: 5}, true},
		{"empty kind", CommissionPolicy{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
