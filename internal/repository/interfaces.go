// Package repository defines interfaces for data access and their MongoDB implementations
// #ORM_PATTERN: Repository pattern with interfaces for testability and abstraction
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/designladder/designladder_backend/internal/models"
)

// PaginationOptions contains pagination parameters
type PaginationOptions struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir int // 1 for ascending, -1 for descending
}

// DefaultPaginationOptions returns default pagination settings
// #DATA_ASSUMPTION: Pagination defaults to 20 items per page, newest first
func DefaultPaginationOptions() PaginationOptions {
	return PaginationOptions{
		Page:    1,
		Limit:   20,
		SortBy:  "created_at",
		SortDir: -1,
	}
}

// PaginatedResult contains paginated query results
type PaginatedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// DiagnosisRepository defines operations for maturity diagnoses
// #QUERY_INTERFACE: Diagnosis data access patterns
type DiagnosisRepository interface {
	// Create creates a new diagnosis
	Create(ctx context.Context, diagnosis *models.MaturityDiagnosis) error

	// GetByToken finds a diagnosis by its public token, matching either the
	// response token column or the raw ObjectID hex. The returned key names
	// the column that matched so later writes target the same row.
	GetByToken(ctx context.Context, token string) (*models.MaturityDiagnosis, models.ResultKey, error)

	// UpdateFeedback sets the feedback value on the row identified by key
	UpdateFeedback(ctx context.Context, key models.ResultKey, feedback models.Feedback) error

	// List lists diagnoses with pagination
	List(ctx context.Context, opts PaginationOptions) (*PaginatedResult[models.MaturityDiagnosis], error)

	// ListAll returns every diagnosis, newest first, for export
	ListAll(ctx context.Context) ([]models.MaturityDiagnosis, error)

	// Count counts stored diagnoses
	Count(ctx context.Context) (int64, error)
}

// ChallengeRepository defines operations for challenge form responses
// #QUERY_INTERFACE: Challenge response data access patterns
type ChallengeRepository interface {
	// Create creates a new challenge response
	Create(ctx context.Context, response *models.ChallengeResponse) error

	// GetByID finds a challenge response by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ChallengeResponse, error)

	// List lists challenge responses with pagination
	List(ctx context.Context, opts PaginationOptions) (*PaginatedResult[models.ChallengeResponse], error)

	// ListAll returns every challenge response, newest first, for export
	ListAll(ctx context.Context) ([]models.ChallengeResponse, error)

	// Count counts stored challenge responses
	Count(ctx context.Context) (int64, error)
}

// AnalyticsRepository defines operations for analytics events
// #QUERY_INTERFACE: Analytics event data access patterns
type AnalyticsRepository interface {
	// Create creates a new analytics event
	Create(ctx context.Context, event *models.AnalyticsEvent) error

	// ListBySession lists events for a browser session
	ListBySession(ctx context.Context, sessionID string, opts PaginationOptions) (*PaginatedResult[models.AnalyticsEvent], error)

	// CountByType counts events of a given type
	CountByType(ctx context.Context, eventType string) (int64, error)
}

// UserRepository defines operations for admin users
// #QUERY_INTERFACE: Admin user data access patterns
type UserRepository interface {
	// Create creates a new admin user
	Create(ctx context.Context, user *models.AdminUser) error

	// GetByID finds an admin user by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)

	// GetByEmail finds an admin user by email
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)

	// Update updates an admin user
	Update(ctx context.Context, user *models.AdminUser) error

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error
}
