package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/designladder/designladder_backend/internal/models"
)

// MongoUserRepository implements UserRepository for MongoDB
// #ORM_INTEGRATION: MongoDB driver-based repository implementation
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoDB user repository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		collection: db.Collection(models.AdminUser{}.CollectionName()),
	}
}

// Create creates a new admin user
func (r *MongoUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.BeforeCreate()
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrEmailAlreadyExists
	}
	return err
}

// GetByID finds an admin user by ID
func (r *MongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail finds an admin user by email
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates an admin user
func (r *MongoUserRepository) Update(ctx context.Context, user *models.AdminUser) error {
	user.BeforeUpdate()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": user})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin updates the last login timestamp
func (r *MongoUserRepository) UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{"last_login_at": now, "updated_at": now}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// Ensure MongoUserRepository implements UserRepository
var _ UserRepository = (*MongoUserRepository)(nil)
