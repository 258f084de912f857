package models

import "time"

// OrderRecord is the persisted trace of a confirmed order.
type OrderRecord struct {
	ID        string     `bson:"id" json:"id"`
	SessionID string     `bson:"sessionId" json:"sessionId"`
	OrderID   string     `bson:"orderId" json:"orderId"` // id assigned by the order backend
	Lines     []LineItem `bson:"lines" json:"lines"`
	Total     int64      `bson:"total" json:"total"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
}
