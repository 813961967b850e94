package repositories

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
)

// NotificationRepository stores in-app notification records.
type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection("notifications")}
}

// Save inserts one notification.
func (r *NotificationRepository) Save(ctx context.Context, n models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, n)
	return errors.Wrap(err, "failed to save notification")
}
