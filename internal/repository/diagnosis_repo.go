package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/designladder/designladder_backend/internal/models"
)

// MongoDiagnosisRepository implements DiagnosisRepository for MongoDB
// #ORM_INTEGRATION: MongoDB driver-based repository implementation
type MongoDiagnosisRepository struct {
	collection *mongo.Collection
}

// NewMongoDiagnosisRepository creates a new MongoDB diagnosis repository
func NewMongoDiagnosisRepository(db *mongo.Database) *MongoDiagnosisRepository {
	return &MongoDiagnosisRepository{
		collection: db.Collection(models.MaturityDiagnosis{}.CollectionName()),
	}
}

// Create creates a new diagnosis
func (r *MongoDiagnosisRepository) Create(ctx context.Context, diagnosis *models.MaturityDiagnosis) error {
	diagnosis.BeforeCreate()
	_, err := r.collection.InsertOne(ctx, diagnosis)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrAlreadyExists
	}
	return err
}

// GetByToken finds a diagnosis by its public token.
// #IMPLEMENTATION_DECISION: Single $or query over both identifier columns;
// the _id branch is only added when the token parses as an ObjectID.
func (r *MongoDiagnosisRepository) GetByToken(ctx context.Context, token string) (*models.MaturityDiagnosis, models.ResultKey, error) {
	clauses := []bson.M{{"response_id": token}}
	if oid, err := primitive.ObjectIDFromHex(token); err == nil {
		clauses = append(clauses, bson.M{"_id": oid})
	}

	var diagnosis models.MaturityDiagnosis
	err := r.collection.FindOne(ctx, bson.M{"$or": clauses}).Decode(&diagnosis)
	if err == mongo.ErrNoDocuments {
		return nil, models.ResultKey{}, models.ErrDiagnosisNotFound
	}
	if err != nil {
		return nil, models.ResultKey{}, err
	}

	key := models.ResultKey{Column: models.ColumnResponseID, Value: token}
	if diagnosis.ResponseID != token {
		key = models.ResultKey{Column: models.ColumnID, Value: diagnosis.ID.Hex()}
	}
	return &diagnosis, key, nil
}

// UpdateFeedback sets the feedback value on the row identified by key.
// Last write wins; repeat updates with the same value are permitted.
func (r *MongoDiagnosisRepository) UpdateFeedback(ctx context.Context, key models.ResultKey, feedback models.Feedback) error {
	var filter bson.M
	switch key.Column {
	case models.ColumnID:
		oid, err := primitive.ObjectIDFromHex(key.Value)
		if err != nil {
			return models.ErrDiagnosisNotFound
		}
		filter = bson.M{"_id": oid}
	case models.ColumnResponseID:
		filter = bson.M{"response_id": key.Value}
	default:
		return models.ErrDiagnosisNotFound
	}

	update := bson.M{"$set": bson.M{"feedback": feedback}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrDiagnosisNotFound
	}
	return nil
}

// List lists diagnoses with pagination
func (r *MongoDiagnosisRepository) List(ctx context.Context, opts PaginationOptions) (*PaginatedResult[models.MaturityDiagnosis], error) {
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

	var diagnoses []models.MaturityDiagnosis
	if err := cursor.All(ctx, &diagnoses); err != nil {
		return nil, err
	}

	totalPages := int(total) / opts.Limit
	if int(total)%opts.Limit > 0 {
		totalPages++
	}

	return &PaginatedResult[models.MaturityDiagnosis]{
		Items:      diagnoses,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: totalPages,
	}, nil
}

// ListAll returns every diagnosis, newest first, for export
func (r *MongoDiagnosisRepository) ListAll(ctx context.Context) ([]models.MaturityDiagnosis, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var diagnoses []models.MaturityDiagnosis
	if err := cursor.All(ctx, &diagnoses); err != nil {
		return nil, err
	}
	return diagnoses, nil
}

// Count counts stored diagnoses
func (r *MongoDiagnosisRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Ensure MongoDiagnosisRepository implements DiagnosisRepository
var _ DiagnosisRepository = (*MongoDiagnosisRepository)(nil)
