package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
	"github.com/Shreyasj1508/BuildBasket-sub003/utils"
)

// ProductStore is the persistence surface propagation needs.
type ProductStore interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAllIDs(ctx context.Context) ([]string, error)
	UpdateCommission(ctx context.Context, product *models.Product) error
}

// PolicyProvider yields the currently active commission policy, or nil when
// none has been configured.
type PolicyProvider interface {
	GetActivePolicy(ctx context.Context) (*models.CommissionPolicy, error)
}

// PropagationService reapplies the active commission policy to stored
// product snapshots. It is invoked explicitly by an admin after a policy
// change; nothing triggers it automatically.
type PropagationService struct {
	products ProductStore
	policies PolicyProvider
}

// NewPropagationService creates a propagation service.
func NewPropagationService(products ProductStore, policies PolicyProvider) *PropagationService {
	return &PropagationService{products: products, policies: policies}
}

// RecomputeOne refreshes the commission snapshot of a single product. When
// basePrice is non-nil it also replaces the product's base price.
func (ps *PropagationService) RecomputeOne(ctx context.Context, productID string, basePrice *float64) (*models.Product, error) {
	product, err := ps.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &NotFoundError{Entity: "product", ID: productID}
	}

	if basePrice != nil {
		if *basePrice <= 0 {
			return nil, &ValidationError{Field: "basePrice", Message: "must be positive"}
		}
		product.BasePrice = *basePrice
	}

	policy, err := ps.policies.GetActivePolicy(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := utils.ComputeCommission(decimal.NewFromFloat(product.BasePrice), policy)
	product.CommissionAmount, _ = breakdown.CommissionAmount.Float64()
	product.FinalPrice, _ = breakdown.FinalPrice.Float64()
	product.CommissionKind = breakdown.CommissionKind

	if err := ps.products.UpdateCommission(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// RecomputeAll walks every product and refreshes its commission snapshot.
// Individual failures are collected, never fatal to the batch.
func (ps *PropagationService) RecomputeAll(ctx context.Context) (int, []models.RecomputeFailure, error) {
	ids, err := ps.products.FindAllIDs(ctx)
	if err != nil {
		return 0, nil, err
	}

	updated := 0
	failures := make([]models.RecomputeFailure, 0)
	for _, id := range ids {
		if _, err := ps.RecomputeOne(ctx, id, nil); err != nil {
			failures = append(failures, models.RecomputeFailure{ProductID: id, Error: err.Error()})
			continue
		}
		updated++
	}
	return updated, failures, nil
}
