package ordersRepo

import (
	"context"
	"time"

	"brewflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new order record and returns its ID.
func (r *mongoOrderRepo) Create(ctx context.Context, record models.OrderRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByID returns an order record by its ID.
func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.OrderRecord, error) {
	var record models.OrderRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetBySessionID fetches all confirmed orders placed in a given session,
// newest first.
func (r *mongoOrderRepo) GetBySessionID(ctx context.Context, sessionID string) ([]models.OrderRecord, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.OrderRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
