// Package repository provides data access layer factories
// #IMPLEMENTATION_DECISION: Factory functions wrap raw MongoDB constructors for our database.Client
package repository

import (
	"github.com/designladder/designladder_backend/internal/database"
)

// NewDiagnosisRepository creates a new diagnosis repository using our database client
func NewDiagnosisRepository(client *database.Client) DiagnosisRepository {
	return NewMongoDiagnosisRepository(client.Database())
}

// NewChallengeRepository creates a new challenge repository using our database client
func NewChallengeRepository(client *database.Client) ChallengeRepository {
	return NewMongoChallengeRepository(client.Database())
}

// NewAnalyticsRepository creates a new analytics repository using our database client
func NewAnalyticsRepository(client *database.Client) AnalyticsRepository {
	return NewMongoAnalyticsRepository(client.Database())
}

// NewUserRepository creates a new admin user repository using our database client
func NewUserRepository(client *database.Client) UserRepository {
	return NewMongoUserRepository(client.Database())
}
