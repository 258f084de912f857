package ordersRepo

import (
	"context"

	"brewflow/database"
	"brewflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRecordRepository stores the trace of confirmed orders.
type OrderRecordRepository interface {
	Create(ctx context.Context, record models.OrderRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.OrderRecord, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.OrderRecord, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns a new OrderRecordRepository instance using MongoDB.
func NewMongoOrderRepo() OrderRecordRepository {
	db := database.MongoClient.Database("brewflow")
	return &mongoOrderRepo{
		coll: db.Collection("order_records"),
	}
}
