package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Commission kinds
const (
	CommissionKindFixed      = "fixed"
	CommissionKindPercentage = "percentage"
)

// CommissionPolicy is one row of the commission configuration history.
// At most one row has IsActive=true at any time; older rows are closed
// with EffectiveTo set and kept forever.
type CommissionPolicy struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind          string             `bson:"kind" json:"type"`
	Rate          float64            `bson:"rate,omitempty" json:"rate,omitempty"`
	FixedAmount   float64            `bson:"fixedAmount,omitempty" json:"fixedAmount,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	EffectiveFrom time.Time          `bson:"effectiveFrom" json:"effectiveFrom"`
	EffectiveTo   *time.Time         `bson:"effectiveTo,omitempty" json:"effectiveTo,omitempty"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedBy     primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// Validate checks the kind/rate/fixedAmount domains before the policy is stored.
func (p *CommissionPolicy) Validate() error {
	switch p.Kind {
	case CommissionKindPercentage:
		if p.Rate <= 0 || p.Rate > 100 {
			return fmt.Errorf("percentage rate must be in (0,100], got %v", p.Rate)
		}
	case CommissionKindFixed:
		if p.FixedAmount <= 0 {
			return fmt.Errorf("fixed amount must be positive, got %v", p.FixedAmount)
		}
	default:
		return fmt.Errorf("invalid commission type %q, must be 'fixed' or 'percentage'", p.Kind)
	}
	return nil
}

// CommissionBreakdown is the price snapshot produced for a single base price.
type CommissionBreakdown struct {
	BasePrice        decimal.Decimal
	CommissionAmount decimal.Decimal
	FinalPrice       decimal.Decimal
	CommissionKind   string
}

// CommissionConfigRequest is the body of PUT /api/admin/commission/config.
type CommissionConfigRequest struct {
	Type        string  `json:"type" validate:"required,oneof=fixed percentage"`
	Rate        float64 `json:"rate,omitempty"`
	FixedAmount float64 `json:"fixedAmount,omitempty"`
	Description string  `json:"description,omitempty"`
}

// CommissionConfigResponse wraps the active policy for the admin dashboard.
type CommissionConfigResponse struct {
	Success bool              `json:"success"`
	Config  *CommissionPolicy `json:"config"`
}

// CommissionUpdateResponse is returned after replacing the active policy.
type CommissionUpdateResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Commission *CommissionPolicy `json:"commission"`
}

// CommissionHistoryResponse lists past policies, newest first.
type CommissionHistoryResponse struct {
	Success bool               `json:"success"`
	History []CommissionPolicy `json:"history"`
}
