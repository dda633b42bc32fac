// Package database provides MongoDB connection and initialization utilities
// #SCHEMA_IMPLEMENTATION: Using MongoDB with connection pooling and replica set support
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names as constants
// #INTEGRATION_POINT: All repositories use these collection names
const (
	CollectionMaturityDiagnosis  = "maturity_diagnosis"
	CollectionChallengeResponses = "challenge_responses"
	CollectionAnalyticsEvents    = "analytics_events"
	CollectionAdminUsers         = "admin_users"
)

// Config holds MongoDB connection configuration
// #DATA_ASSUMPTION: Production uses replica set for high availability
type Config struct {
	URI                    string
	Database               string
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

// DefaultConfig returns default MongoDB configuration
func DefaultConfig() Config {
	return Config{
		URI:                    "mongodb://localhost:27017",
		Database:               "designladder",
		MaxPoolSize:            100,
		MinPoolSize:            10,
		MaxConnIdleTime:        30 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 10 * time.Second,
	}
}

// Client wraps the MongoDB client with helper methods
type Client struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

// NewClient creates a new MongoDB client
func NewClient(cfg Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	// Configure client options
	// #IMPLEMENTATION_DECISION: Using connection pooling for performance
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	// Connect to MongoDB
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with ping
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
	}, nil
}

// Database returns the MongoDB database
func (c *Client) Database() *mongo.Database {
	return c.database
}

// Client returns the underlying MongoDB client
func (c *Client) Client() *mongo.Client {
	return c.client
}

// Collection returns a MongoDB collection
func (c *Client) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

// Ping verifies the MongoDB connection
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from MongoDB
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// HealthCheck performs a health check on the database connection
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	return nil
}

// DatabaseStats returns statistics about the database
func (c *Client) DatabaseStats(ctx context.Context) (map[string]interface{}, error) {
	var result map[string]interface{}
	err := c.database.RunCommand(ctx, map[string]interface{}{"dbStats": 1}).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("failed to get database stats: %w", err)
	}
	return result, nil
}

// CollectionNames returns all collection names in the database
func (c *Client) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := c.database.ListCollectionNames(ctx, map[string]interface{}{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// EnsureIndexes creates all required database indexes
// #IMPLEMENTATION_DECISION: Indexes created on application startup
// #COMPLETION_DRIVE: Assuming index creation is idempotent
func (c *Client) EnsureIndexes(ctx context.Context) error {
	indexes := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{
			collection: CollectionMaturityDiagnosis,
			models: []mongo.IndexModel{
				{
					// Sparse: rows created before the token column existed have no response_id.
					Keys:    bson.D{{Key: "response_id", Value: 1}},
					Options: options.Index().SetUnique(true).SetSparse(true),
				},
				{
					Keys: bson.D{{Key: "created_at", Value: -1}},
				},
				{
					Keys: bson.D{{Key: "email", Value: 1}},
				},
			},
		},
		{
			collection: CollectionChallengeResponses,
			models: []mongo.IndexModel{
				{
					Keys: bson.D{{Key: "created_at", Value: -1}},
				},
				{
					Keys: bson.D{{Key: "email", Value: 1}},
				},
			},
		},
		{
			collection: CollectionAnalyticsEvents,
			models: []mongo.IndexModel{
				{
					Keys: bson.D{{Key: "session_id", Value: 1}},
				},
				{
					Keys: bson.D{
						{Key: "event_type", Value: 1},
						{Key: "created_at", Value: -1},
					},
				},
			},
		},
		{
			collection: CollectionAdminUsers,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
			},
		},
	}

	for _, idx := range indexes {
		collection := c.Collection(idx.collection)
		_, err := collection.Indexes().CreateMany(ctx, idx.models)
		if err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", idx.collection, err)
		}
	}

	return nil
}
