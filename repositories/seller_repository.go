package repositories

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
	"github.com/Shreyasj1508/BuildBasket-sub003/services"
)

// SellerRepository is the Mongo-backed SellerStore.
type SellerRepository struct {
	collection *mongo.Collection
}

func NewSellerRepository(db *mongo.Database) *SellerRepository {
	return &SellerRepository{collection: db.Collection("sellers")}
}

// Create inserts a new pending seller.
func (r *SellerRepository) Create(ctx context.Context, seller *models.Seller) (*models.Seller, error) {
	now := time.Now()
	seller.ID = primitive.NewObjectID()
	seller.Status = models.SellerStatusPending
	seller.CreatedAt = now
	seller.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, seller)
	if mongo.IsDuplicateKeyError(err) {
		return nil, &services.ValidationError{Field: "email", Message: "already registered"}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create seller")
	}
	return seller, nil
}

// FindByEmail returns the seller with the given email, or nil.
func (r *SellerRepository) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&seller)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch seller by email")
	}
	return &seller, nil
}

// FindByID returns the seller with the given hex id, or nil when the id is
// well-formed but matches nothing. A malformed id is reported as nil too;
// the caller treats both as not-found.
func (r *SellerRepository) FindByID(ctx context.Context, id string) (*models.Seller, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var seller models.Seller
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&seller)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch seller")
	}
	return &seller, nil
}

// UpdateVerification persists the verification fields of a transitioned seller.
func (r *SellerRepository) UpdateVerification(ctx context.Context, seller *models.Seller) error {
	update := bson.M{
		"$set": bson.M{
			"status":             seller.Status,
			"verificationReason": seller.VerificationReason,
			"verifiedAt":         seller.VerifiedAt,
			"verifiedBy":         seller.VerifiedBy,
			"updatedAt":          seller.UpdatedAt,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": seller.ID}, update)
	return errors.Wrap(err, "failed to update seller verification")
}

// FindPending returns one page of pending sellers, newest registrations first.
func (r *SellerRepository) FindPending(ctx context.Context, page, limit int) ([]models.Seller, int64, error) {
	return r.findPage(ctx, bson.M{"status": models.SellerStatusPending}, page, limit)
}

// FindAll returns one page of sellers across all statuses, newest first.
// An empty status means no filter.
func (r *SellerRepository) FindAll(ctx context.Context, status string, page, limit int) ([]models.Seller, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.findPage(ctx, filter, page, limit)
}

// FindActiveIDs returns the ids of all active sellers, for storefront reads.
func (r *SellerRepository) FindActiveIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"status": models.SellerStatusActive}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active sellers")
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode active seller ids")
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// CountByStatus groups all sellers by status.
func (r *SellerRepository) CountByStatus(ctx context.Context) (*models.VerificationStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate seller stats")
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode seller stats")
	}

	stats := &models.VerificationStats{}
	for _, row := range rows {
		switch row.Status {
		case models.SellerStatusPending:
			stats.Pending = row.Count
		case models.SellerStatusActive:
			stats.Active = row.Count
		case models.SellerStatusRejected:
			stats.Rejected = row.Count
		}
		stats.Total += row.Count
	}
	return stats, nil
}

func (r *SellerRepository) findPage(ctx context.Context, filter bson.M, page, limit int) ([]models.Seller, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count sellers")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to fetch sellers")
	}
	defer cursor.Close(ctx)

	sellers := make([]models.Seller, 0, limit)
	if err := cursor.All(ctx, &sellers); err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode sellers")
	}
	return sellers, total, nil
}
