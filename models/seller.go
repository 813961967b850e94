package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seller statuses
const (
	SellerStatusPending  = "pending"
	SellerStatusActive   = "active"
	SellerStatusRejected = "rejected"
)

// Seller is a merchant account. It is created at self-registration with
// status=pending and moves to active or rejected exactly once, by an admin
// decision. Both outcomes are terminal for this workflow.
type Seller struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email              string             `bson:"email" json:"email"`
	Password           string             `bson:"password" json:"-"`
	BusinessName       string             `bson:"businessName" json:"businessName"`
	Phone              string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Category           string             `bson:"category,omitempty" json:"category,omitempty"`
	Status             string             `bson:"status" json:"status"`
	VerificationReason string             `bson:"verificationReason,omitempty" json:"verificationReason,omitempty"`
	VerifiedAt         *time.Time         `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	VerifiedBy         primitive.ObjectID `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CanTransitionTo reports whether the seller may move to the given status.
// Only pending sellers can be verified; active and rejected never change.
func (s *Seller) CanTransitionTo(status string) bool {
	if status != SellerStatusActive && status != SellerStatusRejected {
		return false
	}
	return s.Status == SellerStatusPending
}

// SellerRegistrationRequest is the body of POST /api/sellers/register.
type SellerRegistrationRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	BusinessName string `json:"businessName" validate:"required"`
	Phone        string `json:"phone,omitempty"`
	Category     string `json:"category,omitempty"`
}

// SellerVerificationRequest is the body of PUT /api/admin/sellers/:id/verify.
type SellerVerificationRequest struct {
	Status string `json:"status" validate:"required,oneof=active rejected"`
	Reason string `json:"reason,omitempty"`
}

// BulkVerificationRequest is the body of PUT /api/admin/sellers/bulk-verify.
type BulkVerificationRequest struct {
	SellerIDs []string `json:"sellerIds" validate:"required,min=1"`
	Status    string   `json:"status" validate:"required,oneof=active rejected"`
	Reason    string   `json:"reason,omitempty"`
}

// BulkVerificationDetail records the outcome for one seller in a bulk request.
type BulkVerificationDetail struct {
	SellerID string `json:"sellerId"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
}

// BulkVerificationResult summarises a bulk verification run.
type BulkVerificationResult struct {
	BatchID      string                   `json:"batchId"`
	SuccessCount int                      `json:"success"`
	FailureCount int                      `json:"failed"`
	Details      []BulkVerificationDetail `json:"details"`
}

// VerificationStats holds per-status seller counts.
type VerificationStats struct {
	Pending  int64 `json:"pending"`
	Active   int64 `json:"active"`
	Rejected int64 `json:"rejected"`
	Total    int64 `json:"total"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// PendingSellersResponse lists sellers awaiting review.
type PendingSellersResponse struct {
	Success bool     `json:"success"`
	Sellers []Seller `json:"sellers"`
	Count   int      `json:"count"`
}

// SellerVerificationResponse is returned after a single verification decision.
type SellerVerificationResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Seller  *Seller `json:"seller"`
}

// BulkVerificationResponse is returned after a bulk verification run.
type BulkVerificationResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Results *BulkVerificationResult `json:"results"`
}

// VerificationStatsResponse wraps the per-status counts.
type VerificationStatsResponse struct {
	Success bool               `json:"success"`
	Stats   *VerificationStats `json:"stats"`
}

// VerificationHistoryResponse is one page of the full seller history.
type VerificationHistoryResponse struct {
	Success    bool       `json:"success"`
	Sellers    []Seller   `json:"sellers"`
	Pagination Pagination `json:"pagination"`
}
