package repository

import (
	"context"
	"time"

	models "green-saas/app/models/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const auditCollection = "delivery_audit"

type AuditRepository interface {
	InsertOne(ctx context.Context, a models.DeliveryAudit) error
	FindLatest(ctx context.Context, limit int64, fallbackOnly bool) ([]models.DeliveryAudit, error)
}

type auditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) AuditRepository {
	return &auditRepository{collection: db.Collection(auditCollection)}
}

func (r *auditRepository) InsertOne(ctx context.Context, a models.DeliveryAudit) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, a)
	return err
}

func (r *auditRepository) FindLatest(ctx context.Context, limit int64, fallbackOnly bool) ([]models.DeliveryAudit, error) {
	filter := bson.M{}
	if fallbackOnly {
		filter["fallback"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []models.DeliveryAudit{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
