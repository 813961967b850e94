package repositories

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
	"github.com/Shreyasj1508/BuildBasket-sub003/services"
)

const activePolicyCacheKey = "commission:active_policy"
const activePolicyCacheTTL = 60 * time.Second

// CommissionRepository stores the versioned commission policy history. The
// history is append-only: replacing the policy closes the previous active
// row and inserts a new one, in a single Mongo transaction so the
// "at most one active" invariant survives crashes and concurrent updates.
type CommissionRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	redis      *redis.Client
}

// NewCommissionRepository creates a commission repository. The redis client
// may be nil; caching is then skipped entirely.
func NewCommissionRepository(client *mongo.Client, db *mongo.Database, redisClient *redis.Client) *CommissionRepository {
	return &CommissionRepository{
		client:     client,
		collection: db.Collection("commissions"),
		redis:      redisClient,
	}
}

// GetActivePolicy returns the single active policy whose effective window
// contains now, or nil when none has been configured. The result is cached
// in Redis briefly; SetPolicy drops the cache.
func (r *CommissionRepository) GetActivePolicy(ctx context.Context) (*models.CommissionPolicy, error) {
	if cached := r.readCache(ctx); cached != nil {
		return cached, nil
	}

	now := time.Now()
	filter := bson.M{
		"isActive":      true,
		"effectiveFrom": bson.M{"$lte": now},
		"$or": []bson.M{
			{"effectiveTo": bson.M{"$exists": false}},
			{"effectiveTo": nil},
			{"effectiveTo": bson.M{"$gte": now}},
		},
	}

	var policy models.CommissionPolicy
	err := r.collection.FindOne(ctx, filter).Decode(&policy)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch active commission policy")
	}

	r.writeCache(ctx, &policy)
	return &policy, nil
}

// policyInstaller is the minimal write surface installPolicy needs. The
// Mongo implementation runs both calls inside one transaction.
type policyInstaller interface {
	closeActive(ctx context.Context, at time.Time) error
	insert(ctx context.Context, policy *models.CommissionPolicy) error
}

// stampNewPolicy marks a validated policy as the incoming active row.
func stampNewPolicy(policy *models.CommissionPolicy, now time.Time) {
	policy.ID = primitive.NewObjectID()
	policy.IsActive = true
	policy.EffectiveFrom = now
	policy.EffectiveTo = nil
	policy.CreatedAt = now
}

// installPolicy closes every active row before inserting the replacement,
// so at no point do two rows claim to be active.
func installPolicy(ctx context.Context, w policyInstaller, policy *models.CommissionPolicy, now time.Time) error {
	if err := w.closeActive(ctx, now); err != nil {
		return err
	}
	return w.insert(ctx, policy)
}

// mongoPolicyTxn applies installPolicy's writes against the commissions
// collection. Both calls receive the same session context.
type mongoPolicyTxn struct {
	collection *mongo.Collection
}

func (t *mongoPolicyTxn) closeActive(ctx context.Context, at time.Time) error {
	_, err := t.collection.UpdateMany(ctx,
		bson.M{"isActive": true},
		bson.M{"$set": bson.M{"isActive": false, "effectiveTo": at}},
	)
	return err
}

func (t *mongoPolicyTxn) insert(ctx context.Context, policy *models.CommissionPolicy) error {
	_, err := t.collection.InsertOne(ctx, policy)
	return err
}

// SetPolicy validates and installs a new active policy. All currently
// active rows are closed and the new row inserted inside one transaction.
func (r *CommissionRepository) SetPolicy(ctx context.Context, policy *models.CommissionPolicy) (*models.CommissionPolicy, error) {
	if err := policy.Validate(); err != nil {
		return nil, &services.ValidationError{Field: "commission", Message: err.Error()}
	}

	now := time.Now()
	stampNewPolicy(policy, now)

	session, err := r.client.StartSession()
	if err != nil {
		return nil, errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	txn := &mongoPolicyTxn{collection: r.collection}
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, installPolicy(sc, txn, policy, now)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace commission policy")
	}

	r.dropCache(ctx)
	return policy, nil
}

// GetHistory returns up to limit policies, newest first.
func (r *CommissionRepository) GetHistory(ctx context.Context, limit int64) ([]models.CommissionPolicy, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch commission history")
	}
	defer cursor.Close(ctx)

	history := make([]models.CommissionPolicy, 0, limit)
	if err := cursor.All(ctx, &history); err != nil {
		return nil, errors.Wrap(err, "failed to decode commission history")
	}
	return history, nil
}

func (r *CommissionRepository) readCache(ctx context.Context) *models.CommissionPolicy {
	if r.redis == nil {
		return nil
	}
	data, err := r.redis.Get(ctx, activePolicyCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var policy models.CommissionPolicy
	if err := json.Unmarshal(data, &policy); err != nil {
		return nil
	}
	return &policy
}

func (r *CommissionRepository) writeCache(ctx context.Context, policy *models.CommissionPolicy) {
	if r.redis == nil {
		return
	}
	data, err := json.Marshal(policy)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, activePolicyCacheKey, data, activePolicyCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache active commission policy: %v", err)
	}
}

func (r *CommissionRepository) dropCache(ctx context.Context) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(ctx, activePolicyCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate commission policy cache: %v", err)
	}
}
