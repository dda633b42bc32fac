// auth_service.go implements admin authentication with password credentials
// and RS512 token pairs.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/designladder/designladder_backend/internal/auth"
	"github.com/designladder/designladder_backend/internal/models"
	"github.com/designladder/designladder_backend/internal/repository"
)

// Custom errors for auth service
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// AuthService handles admin authentication logic
// #INTEGRATION_POINT: Used by auth handler for login/refresh flows
type AuthService interface {
	// Login validates credentials and returns a token pair
	Login(ctx context.Context, email, password string) (*auth.TokenPair, *models.AdminUser, error)

	// RefreshAccessToken refreshes an access token using a refresh token
	RefreshAccessToken(ctx context.Context, refreshToken string) (*auth.TokenPair, error)

	// GetUser retrieves the admin user for token claims
	GetUser(ctx context.Context, userID primitive.ObjectID) (*models.AdminUser, error)
}

// authService implements AuthService
type authService struct {
	userRepo   repository.UserRepository
	jwtService auth.JWTService
}

// NewAuthService creates a new auth service instance
// #IMPLEMENTATION_DECISION: Constructor injection for testability
func NewAuthService(userRepo repository.UserRepository, jwtService auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login validates credentials and returns a token pair.
// #SECURITY_CONCERN: Unknown email and wrong password return the same error
// to prevent account enumeration.
func (s *authService) Login(ctx context.Context, email, password string) (*auth.TokenPair, *models.AdminUser, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if models.IsNotFoundError(err) {
			return nil, nil, models.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, models.ErrInvalidCredentials
	}

	if !user.CanLogin() {
		return nil, nil, models.ErrUserInactive
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the timestamp is advisory.
		log.Printf("[AUTH] Failed to update last login for %s: %v", user.ID.Hex(), err)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return tokenPair, user, nil
}

// RefreshAccessToken refreshes an access token
// #SECURITY_CONCERN: Refresh tokens should ideally be stored and tracked for rotation
func (s *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, models.ErrUserNotFound
	}

	if !user.CanLogin() {
		return nil, models.ErrUserInactive
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return tokenPair, nil
}

// GetUser retrieves the admin user for token claims
func (s *authService) GetUser(ctx context.Context, userID primitive.ObjectID) (*models.AdminUser, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// HashPassword hashes a plaintext password for storage.
// #IMPLEMENTATION_DECISION: bcrypt default cost; tune via env if login
// latency ever becomes a concern.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
