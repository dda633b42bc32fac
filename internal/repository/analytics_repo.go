package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/designladder/designladder_backend/internal/models"
)

// MongoAnalyticsRepository implements AnalyticsRepository for MongoDB
// #ORM_INTEGRATION: MongoDB driver-based repository implementation
type MongoAnalyticsRepository struct {
	collection *mongo.Collection
}

// NewMongoAnalyticsRepository creates a new MongoDB analytics repository
func NewMongoAnalyticsRepository(db *mongo.Database) *MongoAnalyticsRepository {
	return &MongoAnalyticsRepository{
		collection: db.Collection(models.AnalyticsEvent{}.CollectionName()),
	}
}

// Create creates a new analytics event
func (r *MongoAnalyticsRepository) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	event.BeforeCreate()
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// ListBySession lists events for a browser session
func (r *MongoAnalyticsRepository) ListBySession(ctx context.Context, sessionID string, opts PaginationOptions) (*PaginatedResult[models.AnalyticsEvent], error) {
	filter := bson.M{"session_id": sessionID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	skip := int64((opts.Page - 1) * opts.Limit)
	findOpts := options.Find().
		SetSkip(skip).
		SetLimit(int64(opts.Limit)).
		SetSort(bson.D{{Key: opts.SortBy, Value: opts.SortDir}})

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.AnalyticsEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	totalPages := int(total) / opts.Limit
	if int(total)%opts.Limit > 0 {
		totalPages++
	}

	return &PaginatedResult[models.AnalyticsEvent]{
		Items:      events,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: totalPages,
	}, nil
}

// CountByType counts events of a given type
func (r *MongoAnalyticsRepository) CountByType(ctx context.Context, eventType string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"event_type": eventType})
}

// Ensure MongoAnalyticsRepository implements AnalyticsRepository
var _ AnalyticsRepository = (*MongoAnalyticsRepository)(nil)
