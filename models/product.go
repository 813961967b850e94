package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a seller listing. The commission fields are a denormalized
// snapshot taken when the product was created or last recomputed; they are
// not kept in sync with policy changes automatically.
type Product struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID         primitive.ObjectID `bson:"sellerId" json:"sellerId"`
	Name             string             `bson:"name" json:"name"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	Stock            int                `bson:"stock" json:"stock"`
	BasePrice        float64            `bson:"basePrice" json:"basePrice"`
	CommissionAmount float64            `bson:"commissionAmount" json:"commissionAmount"`
	FinalPrice       float64            `bson:"finalPrice" json:"finalPrice"`
	CommissionKind   string             `bson:"commissionKind" json:"commissionKind"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductCreateRequest is the body of POST /api/seller/products.
type ProductCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"stock" validate:"gte=0"`
	BasePrice   float64 `json:"basePrice" validate:"required,gt=0"`
}

// ProductPriceUpdateRequest is the body of PUT /api/seller/products/:id/price.
type ProductPriceUpdateRequest struct {
	BasePrice float64 `json:"basePrice" validate:"required,gt=0"`
}

// RecomputeOneRequest is the body of POST /api/admin/commission/products/recompute-one.
type RecomputeOneRequest struct {
	ProductID string   `json:"productId" validate:"required"`
	BasePrice *float64 `json:"basePrice,omitempty"`
}

// RecomputeFailure records one product that could not be recomputed.
type RecomputeFailure struct {
	ProductID string `json:"productId"`
	Error     string `json:"error"`
}

// RecomputeAllResponse summarises a bulk propagation run.
type RecomputeAllResponse struct {
	Success      bool               `json:"success"`
	UpdatedCount int                `json:"updatedCount"`
	Failures     []RecomputeFailure `json:"failures"`
}

// ProductResponse wraps one product.
type ProductResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Product *Product `json:"product"`
}

// ProductListResponse is one page of products.
type ProductListResponse struct {
	Success    bool       `json:"success"`
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}
