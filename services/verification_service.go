package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
)

// SellerStore is the persistence surface the verification service needs.
// The Mongo implementation lives in repositories; tests use an in-memory fake.
type SellerStore interface {
	FindByID(ctx context.Context, id string) (*models.Seller, error)
	UpdateVerification(ctx context.Context, seller *models.Seller) error
	FindPending(ctx context.Context, page, limit int) ([]models.Seller, int64, error)
	CountByStatus(ctx context.Context) (*models.VerificationStats, error)
	FindAll(ctx context.Context, status string, page, limit int) ([]models.Seller, int64, error)
}

// NotificationSaver records an in-app notification, best-effort.
type NotificationSaver interface {
	Save(ctx context.Context, n models.Notification) error
}

// VerificationService owns the seller status state machine. All status
// writes go through Verify; the side effects (email, in-app notification)
// never affect the outcome of the transition itself.
type VerificationService struct {
	sellers       SellerStore
	notifications NotificationSaver
	mailer        Mailer
}

// NewVerificationService creates a verification service.
func NewVerificationService(sellers SellerStore, notifications NotificationSaver, mailer Mailer) *VerificationService {
	return &VerificationService{
		sellers:       sellers,
		notifications: notifications,
		mailer:        mailer,
	}
}

// Verify transitions one pending seller to active or rejected.
func (vs *VerificationService) Verify(ctx context.Context, sellerID, decision, reason string, adminID primitive.ObjectID) (*models.Seller, error) {
	if decision != models.SellerStatusActive && decision != models.SellerStatusRejected {
		return nil, &ValidationError{Field: "status", Message: "must be 'active' or 'rejected'"}
	}

	seller, err := vs.sellers.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, &NotFoundError{Entity: "seller", ID: sellerID}
	}
	if !seller.CanTransitionTo(decision) {
		return nil, &InvalidStateError{SellerID: sellerID, Status: seller.Status}
	}

	now := time.Now()
	seller.Status = decision
	seller.VerificationReason = reason
	seller.VerifiedAt = &now
	seller.VerifiedBy = adminID
	seller.UpdatedAt = now

	if err := vs.sellers.UpdateVerification(ctx, seller); err != nil {
		return nil, err
	}

	vs.notify(ctx, seller, reason)
	return seller, nil
}

// BulkVerify applies the same decision to each seller in input order. Items
// fail independently; one bad id never aborts the rest of the batch.
func (vs *VerificationService) BulkVerify(ctx context.Context, sellerIDs []string, decision, reason string, adminID primitive.ObjectID) *models.BulkVerificationResult {
	result := &models.BulkVerificationResult{
		BatchID: uuid.New().String(),
		Details: make([]models.BulkVerificationDetail, 0, len(sellerIDs)),
	}

	for _, id := range sellerIDs {
		_, err := vs.Verify(ctx, id, decision, reason, adminID)
		if err != nil {
			result.FailureCount++
			result.Details = append(result.Details, models.BulkVerificationDetail{
				SellerID: id,
				Success:  false,
				Message:  err.Error(),
			})
			continue
		}
		result.SuccessCount++
		result.Details = append(result.Details, models.BulkVerificationDetail{
			SellerID: id,
			Success:  true,
			Message:  fmt.Sprintf("seller %s", decision),
		})
	}

	return result
}

// ListPending returns one page of sellers awaiting review, newest first.
func (vs *VerificationService) ListPending(ctx context.Context, page, limit int) ([]models.Seller, int64, error) {
	return vs.sellers.FindPending(ctx, page, limit)
}

// Stats returns per-status seller counts.
func (vs *VerificationService) Stats(ctx context.Context) (*models.VerificationStats, error) {
	return vs.sellers.CountByStatus(ctx)
}

// History returns one page of sellers across all statuses, newest first.
// An empty status means no filter.
func (vs *VerificationService) History(ctx context.Context, status string, page, limit int) ([]models.Seller, int64, error) {
	return vs.sellers.FindAll(ctx, status, page, limit)
}

// notify delivers the email and in-app notification for a completed
// transition. Failures are logged and swallowed.
func (vs *VerificationService) notify(ctx context.Context, seller *models.Seller, reason string) {
	if vs.mailer != nil {
		if err := vs.mailer.SendVerificationResult(seller.Email, seller.BusinessName, seller.Status, reason); err != nil {
			log.Printf("Failed to send verification email to %s: %v", seller.Email, err)
		}
	}

	if vs.notifications != nil {
		title := "Seller account approved"
		message := "Your seller account has been approved. You can now list products."
		if seller.Status == models.SellerStatusRejected {
			title = "Seller account rejected"
			message = "Your seller account application was rejected."
			if reason != "" {
				message += " Reason: " + reason
			}
		}
		err := vs.notifications.Save(ctx, models.Notification{
			UserID:    seller.ID,
			Title:     title,
			Message:   message,
			Type:      "seller_verification",
			IsRead:    false,
			CreatedAt: time.Now(),
		})
		if err != nil {
			log.Printf("Failed to save verification notification for seller %s: %v", seller.ID.Hex(), err)
		}
	}
}
