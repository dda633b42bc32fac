package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/designladder/designladder_backend/internal/auth"
	"github.com/designladder/designladder_backend/internal/models"
	"github.com/designladder/designladder_backend/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository for auth service tests.
type fakeUserRepo struct {
	users          map[string]*models.AdminUser
	lastLoginCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.AdminUser)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.AdminUser) error {
	if _, exists := f.users[user.Email]; exists {
		return models.ErrEmailAlreadyExists
	}
	user.BeforeCreate()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.AdminUser) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error {
	f.lastLoginCalls++
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeJWTService issues predictable tokens without key material.
type fakeJWTService struct {
	refreshClaims *auth.RefreshClaims
	refreshErr    error
}

func (f *fakeJWTService) GenerateAccessToken(userID, email string) (string, time.Time, error) {
	return "access-" + userID, time.Now().Add(time.Hour), nil
}

func (f *fakeJWTService) GenerateRefreshToken(userID string) (string, error) {
	return "refresh-" + userID, nil
}

func (f *fakeJWTService) GenerateTokenPair(userID, email string) (*auth.TokenPair, error) {
	return &auth.TokenPair{
		AccessToken:  "access-" + userID,
		RefreshToken: "refresh-" + userID,
		ExpiresAt:    time.Now().Add(time.Hour),
		ExpiresIn:    3600,
	}, nil
}

func (f *fakeJWTService) ValidateAccessToken(tokenString string) (*auth.Claims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeJWTService) ValidateRefreshToken(tokenString string) (*auth.RefreshClaims, error) {
	return f.refreshClaims, f.refreshErr
}

var _ auth.JWTService = (*fakeJWTService)(nil)

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *models.AdminUser {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	user := &models.AdminUser{Email: email, Name: "Admin", PasswordHash: hash}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return user
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "admin@example.com", "Tr!cky-Ladder-42x")
	svc := NewAuthService(repo, &fakeJWTService{})

	tokenPair, gotUser, err := svc.Login(context.Background(), "admin@example.com", "Tr!cky-Ladder-42x")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if tokenPair.AccessToken == "" || tokenPair.RefreshToken == "" {
		t.Error("Login() returned empty token pair")
	}
	if gotUser.ID != user.ID {
		t.Error("Login() returned wrong user")
	}
	if repo.lastLoginCalls != 1 {
		t.Errorf("last login updates = %d, want 1", repo.lastLoginCalls)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "Tr!cky-Ladder-42x")
	svc := NewAuthService(repo, &fakeJWTService{})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"Unknown email", "nobody@example.com", "Tr!cky-Ladder-42x"},
		{"Wrong password", "admin@example.com", "wrong-password-99!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.email, tt.password)
			// Both failure modes must be indistinguishable
			if !errors.Is(err, models.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "admin@example.com", "Tr!cky-Ladder-42x")
	user.IsActive = false
	svc := NewAuthService(repo, &fakeJWTService{})

	_, _, err := svc.Login(context.Background(), "admin@example.com", "Tr!cky-Ladder-42x")
	if !errors.Is(err, models.ErrUserInactive) {
		t.Errorf("Login() error = %v, want ErrUserInactive", err)
	}
}

func TestAuthService_RefreshAccessToken(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "admin@example.com", "Tr!cky-Ladder-42x")

	jwtSvc := &fakeJWTService{refreshClaims: &auth.RefreshClaims{UserID: user.ID.Hex()}}
	svc := NewAuthService(repo, jwtSvc)

	tokenPair, err := svc.RefreshAccessToken(context.Background(), "refresh-token")
	if err != nil {
		t.Fatalf("RefreshAccessToken() error = %v", err)
	}
	if tokenPair.AccessToken == "" {
		t.Error("RefreshAccessToken() returned empty access token")
	}
}

func TestAuthService_RefreshAccessToken_Invalid(t *testing.T) {
	repo := newFakeUserRepo()
	jwtSvc := &fakeJWTService{refreshErr: errors.New("token expired")}
	svc := NewAuthService(repo, jwtSvc)

	if _, err := svc.RefreshAccessToken(context.Background(), "bad"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("RefreshAccessToken() error = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestAuthService_RefreshAccessToken_UnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	jwtSvc := &fakeJWTService{refreshClaims: &auth.RefreshClaims{UserID: primitive.NewObjectID().Hex()}}
	svc := NewAuthService(repo, jwtSvc)

	if _, err := svc.RefreshAccessToken(context.Background(), "refresh-token"); !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("RefreshAccessToken() error = %v, want ErrUserNotFound", err)
	}
}

func TestHashPassword_VerifiableRoundTrip(t *testing.T) {
	hash, err := HashPassword("Tr!cky-Ladder-42x")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "Tr!cky-Ladder-42x" {
		t.Fatal("HashPassword() returned plaintext")
	}

	repo := newFakeUserRepo()
	user := &models.AdminUser{Email: "a@b.co", PasswordHash: hash}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	svc := NewAuthService(repo, &fakeJWTService{})
	if _, _, err := svc.Login(context.Background(), "a@b.co", "Tr!cky-Ladder-42x"); err != nil {
		t.Errorf("Login() with hashed password error = %v", err)
	}
}
