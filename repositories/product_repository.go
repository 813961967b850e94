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
)

// ProductRepository is the Mongo-backed ProductStore.
type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

// Create inserts a new product with its commission snapshot already set.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	now := time.Now()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	return product, nil
}

// FindByID returns the product with the given hex id, or nil when absent.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch product")
	}
	return &product, nil
}

// FindAllIDs returns the ids of every product, for bulk recomputation.
func (r *ProductRepository) FindAllIDs(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product ids")
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode product ids")
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID.Hex())
	}
	return ids, nil
}

// UpdateCommission writes the recomputed commission snapshot back.
func (r *ProductRepository) UpdateCommission(ctx context.Context, product *models.Product) error {
	update := bson.M{
		"$set": bson.M{
			"basePrice":        product.BasePrice,
			"commissionAmount": product.CommissionAmount,
			"finalPrice":       product.FinalPrice,
			"commissionKind":   product.CommissionKind,
			"updatedAt":        time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	return errors.Wrap(err, "failed to update product commission")
}

// FindBySeller returns one page of a seller's own products, newest first.
func (r *ProductRepository) FindBySeller(ctx context.Context, sellerID primitive.ObjectID, page, limit int) ([]models.Product, int64, error) {
	return r.findPage(ctx, bson.M{"sellerId": sellerID}, page, limit)
}

// FindStorefront returns one page of products belonging to the given active
// sellers, optionally filtered by category.
func (r *ProductRepository) FindStorefront(ctx context.Context, sellerIDs []primitive.ObjectID, category string, page, limit int) ([]models.Product, int64, error) {
	filter := bson.M{"sellerId": bson.M{"$in": sellerIDs}}
	if category != "" {
		filter["category"] = category
	}
	return r.findPage(ctx, filter, page, limit)
}

func (r *ProductRepository) findPage(ctx context.Context, filter bson.M, page, limit int) ([]models.Product, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to fetch products")
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0, limit)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode products")
	}
	return products, total, nil
}
