package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
)

type fakeSellerStore struct {
	sellers map[string]*models.Seller
	updates int
}

func newFakeSellerStore(sellers ...*models.Seller) *fakeSellerStore {
	store := &fakeSellerStore{sellers: make(map[string]*models.Seller)}
	for _, s := range sellers {
		store.sellers[s.ID.Hex()] = s
	}
	return store
}

func (f *fakeSellerStore) FindByID(ctx context.Context, id string) (*models.Seller, error) {
	seller, ok := f.sellers[id]
	if !ok {
		return nil, nil
	}
	copied := *seller
	return &copied, nil
}

func (f *fakeSellerStore) UpdateVerification(ctx context.Context, seller *models.Seller) error {
	f.updates++
	copied := *seller
	f.sellers[seller.ID.Hex()] = &copied
	return nil
}

func (f *fakeSellerStore) FindPending(ctx context.Context, page, limit int) ([]models.Seller, int64, error) {
	var pending []models.Seller
	for _, s := range f.sellers {
		if s.Status == models.SellerStatusPending {
			pending = append(pending, *s)
		}
	}
	return pending, int64(len(pending)), nil
}

func (f *fakeSellerStore) CountByStatus(ctx context.Context) (*models.VerificationStats, error) {
	stats := &models.VerificationStats{}
	for _, s := range f.sellers {
		switch s.Status {
		case models.SellerStatusPending:
			stats.Pending++
		case models.SellerStatusActive:
			stats.Active++
		case models.SellerStatusRejected:
			stats.Rejected++
		}
		stats.Total++
	}
	return stats, nil
}

func (f *fakeSellerStore) FindAll(ctx context.Context, status string, page, limit int) ([]models.Seller, int64, error) {
	var all []models.Seller
	for _, s := range f.sellers {
		if status == "" || s.Status == status {
			all = append(all, *s)
		}
	}
	return all, int64(len(all)), nil
}

type fakeNotificationStore struct {
	saved []models.Notification
	err   error
}

func (f *fakeNotificationStore) Save(ctx context.Context, n models.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, n)
	return nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendVerificationResult(to, businessName, status, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func pendingSeller(email string) *models.Seller {
	return &models.Seller{
		ID:           primitive.NewObjectID(),
		Email:        email,
		BusinessName: "Shop " + email,
		Status:       models.SellerStatusPending,
		CreatedAt:    time.Now(),
	}
}

func TestVerifyApprovesPendingSeller(t *testing.T) {
	seller := pendingSeller("a@example.com")
	store := newFakeSellerStore(seller)
	notifications := &fakeNotificationStore{}
	mailer := &fakeMailer{}
	adminID := primitive.NewObjectID()

	vs := NewVerificationService(store, notifications, mailer)
	updated, err := vs.Verify(context.Background(), seller.ID.Hex(), models.SellerStatusActive, "looks good", adminID)

	require.NoError(t, err)
	assert.Equal(t, models.SellerStatusActive, updated.Status)
	assert.Equal(t, "looks good", updated.VerificationReason)
	assert.Equal(t, adminID, updated.VerifiedBy)
	require.NotNil(t, updated.VerifiedAt)

	assert.Equal(t, []string{"a@example.com"}, mailer.sent)
	require.Len(t, notifications.saved, 1)
	assert.Equal(t, "seller_verification", notifications.saved[0].Type)
}

func TestVerifyRejectsWithReason(t *testing.T) {
	seller := pendingSeller("b@example.com")
	store := newFakeSellerStore(seller)
	vs := NewVerificationService(store, &fakeNotificationStore{}, &fakeMailer{})

	updated, err := vs.Verify(context.Background(), seller.ID.Hex(), models.SellerStatusRejected, "incomplete documents", primitive.NewObjectID())

	require.NoError(t, err)
	assert.Equal(t, models.SellerStatusRejected, updated.Status)
	assert.Equal(t, "incomplete documents", updated.VerificationReason)
}

func TestVerifyUnknownSeller(t *testing.T) {
	vs := NewVerificationService(newFakeSellerStore(), &fakeNotificationStore{}, &fakeMailer{})

	_, err := vs.Verify(context.Background(), primitive.NewObjectID().Hex(), models.SellerStatusActive, "", primitive.NewObjectID())

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestVerifyTwiceFailsAndKeepsFirstDecision(t *testing.T) {
	seller := pendingSeller("c@example.com")
	store := newFakeSellerStore(seller)
	vs := NewVerificationService(store, &fakeNotificationStore{}, &fakeMailer{})
	id := seller.ID.Hex()

	_, err := vs.Verify(context.Background(), id, models.SellerStatusActive, "", primitive.NewObjectID())
	require.NoError(t, err)

	_, err = vs.Verify(context.Background(), id, models.SellerStatusRejected, "", primitive.NewObjectID())
	var invalidState *InvalidStateError
	require.True(t, errors.As(err, &invalidState))
	assert.Equal(t, models.SellerStatusActive, invalidState.Status)

	// The second call must not have touched the stored seller.
	final, _ := store.FindByID(context.Background(), id)
	assert.Equal(t, models.SellerStatusActive, final.Status)
	assert.Equal(t, 1, store.updates)
}

func TestVerifyInvalidDecision(t *testing.T) {
	seller := pendingSeller("d@example.com")
	vs := NewVerificationService(newFakeSellerStore(seller), &fakeNotificationStore{}, &fakeMailer{})

	_, err := vs.Verify(context.Background(), seller.ID.Hex(), "pending", "", primitive.NewObjectID())

	var validation *ValidationError
	require.True(t, errors.As(err, &validation))
}

func TestVerifySurvivesNotificationFailures(t *testing.T) {
	seller := pendingSeller("e@example.com")
	store := newFakeSellerStore(seller)
	notifications := &fakeNotificationStore{err: errors.New("collection unavailable")}
	mailer := &fakeMailer{err: errors.New("smtp down")}

	vs := NewVerificationService(store, notifications, mailer)
	updated, err := vs.Verify(context.Background(), seller.ID.Hex(), models.SellerStatusActive, "", primitive.NewObjectID())

	// Side effect failures are best-effort; the transition stands.
	require.NoError(t, err)
	assert.Equal(t, models.SellerStatusActive, updated.Status)
	final, _ := store.FindByID(context.Background(), seller.ID.Hex())
	assert.Equal(t, models.SellerStatusActive, final.Status)
}

func TestBulkVerifyPartialFailure(t *testing.T) {
	pending := pendingSeller("pending@example.com")
	alreadyActive := pendingSeller("active@example.com")
	alreadyActive.Status = models.SellerStatusActive

	store := newFakeSellerStore(pending, alreadyActive)
	vs := NewVerificationService(store, &fakeNotificationStore{}, &fakeMailer{})

	missing := primitive.NewObjectID().Hex()
	ids := []string{pending.ID.Hex(), alreadyActive.ID.Hex(), missing}
	result := vs.BulkVerify(context.Background(), ids, models.SellerStatusActive, "", primitive.NewObjectID())

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 2, result.FailureCount)
	assert.NotEmpty(t, result.BatchID)
	require.Len(t, result.Details, 3)

	// Details follow input order.
	assert.Equal(t, pending.ID.Hex(), result.Details[0].SellerID)
	assert.True(t, result.Details[0].Success)
	assert.False(t, result.Details[1].Success)
	assert.False(t, result.Details[2].Success)

	updated, _ := store.FindByID(context.Background(), pending.ID.Hex())
	assert.Equal(t, models.SellerStatusActive, updated.Status)
}

func TestStatsCountsByStatus(t *testing.T) {
	a := pendingSeller("a@x.com")
	b := pendingSeller("b@x.com")
	b.Status = models.SellerStatusActive
	c := pendingSeller("c@x.com")
	c.Status = models.SellerStatusRejected
	d := pendingSeller("d@x.com")

	vs := NewVerificationService(newFakeSellerStore(a, b, c, d), &fakeNotificationStore{}, &fakeMailer{})
	stats, err := vs.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(1), stats.Active)
	assert.Equal(t, int64(1), stats.Rejected)
	assert.Equal(t, int64(4), stats.Total)
}
