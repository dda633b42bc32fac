package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/designladder/designladder_backend/internal/models"
)

// MongoChallengeRepository implements ChallengeRepository for MongoDB
// #ORM_INTEGRATION: MongoDB driver-based repository implementation
type MongoChallengeRepository struct {
	collection *mongo.Collection
}

// NewMongoChallengeRepository creates a new MongoDB challenge repository
func NewMongoChallengeRepository(db *mongo.Database) *MongoChallengeRepository {
	return &MongoChallengeRepository{
		collection: db.Collection(models.ChallengeResponse{}.CollectionName()),
	}
}

// Create creates a new challenge response
func (r *MongoChallengeRepository) Create(ctx context.Context, response *models.ChallengeResponse) error {
	response.BeforeCreate()
	_, err := r.collection.InsertOne(ctx, response)
	return err
}

// GetByID finds a challenge response by ID
func (r *MongoChallengeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ChallengeResponse, error) {
	var response models.ChallengeResponse
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&response)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrChallengeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// List lists challenge responses with pagination
func (r *MongoChallengeRepository) List(ctx context.Context, opts PaginationOptions) (*PaginatedResult[models.ChallengeResponse], error) {
	filter := bson.M{}

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

	var responses []models.ChallengeResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}

	totalPages := int(total) / opts.Limit
	if int(total)%opts.Limit > 0 {
		totalPages++
	}

	return &PaginatedResult[models.ChallengeResponse]{
		Items:      responses,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: totalPages,
	}, nil
}

// ListAll returns every challenge response, newest first, for export
func (r *MongoChallengeRepository) ListAll(ctx context.Context) ([]models.ChallengeResponse, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []models.ChallengeResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// Count counts stored challenge responses
func (r *MongoChallengeRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Ensure MongoChallengeRepository implements ChallengeRepository
var _ ChallengeRepository = (*MongoChallengeRepository)(nil)
