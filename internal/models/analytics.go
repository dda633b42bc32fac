package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsEvent is a single client-side tracking event. EventData is
// stored as-is; the backend never interprets it.
type AnalyticsEvent struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	EventType string                 `bson:"event_type" json:"event_type"`
	EventData map[string]interface{} `bson:"event_data,omitempty" json:"event_data,omitempty"`
	SessionID string                 `bson:"session_id" json:"session_id"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
}

// CollectionName returns the MongoDB collection name
func (AnalyticsEvent) CollectionName() string {
	return "analytics_events"
}

// BeforeCreate sets default values before creating an event
func (e *AnalyticsEvent) BeforeCreate() {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
}
