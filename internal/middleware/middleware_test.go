package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/designladder/designladder_backend/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	ValidToken   string
	ValidClaims  *auth.Claims
	ExpiredError bool
}

func (m *MockJWTService) GenerateAccessToken(userID, email string) (string, time.Time, error) {
	return m.ValidToken, time.Now().Add(time.Hour), nil
}

func (m *MockJWTService) GenerateRefreshToken(userID string) (string, error) {
	return "refresh-token", nil
}

func (m *MockJWTService) GenerateTokenPair(userID, email string) (*auth.TokenPair, error) {
	return &auth.TokenPair{
		AccessToken:  m.ValidToken,
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
		ExpiresIn:    3600,
	}, nil
}

func (m *MockJWTService) ValidateAccessToken(tokenString string) (*auth.Claims, error) {
	if m.ExpiredError {
		return nil, auth.ErrTokenExpired
	}
	// Empty token is always invalid
	if tokenString == "" {
		return nil, auth.ErrInvalidToken
	}
	if tokenString == m.ValidToken && m.ValidClaims != nil {
		return m.ValidClaims, nil
	}
	return nil, auth.ErrInvalidToken
}

func (m *MockJWTService) ValidateRefreshToken(tokenString string) (*auth.RefreshClaims, error) {
	return nil, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mockJWT := &MockJWTService{
		ValidToken: "valid-token",
		ValidClaims: &auth.Claims{
			UserID: primitive.NewObjectID().Hex(),
			Email:  "admin@example.com",
		},
	}

	router := gin.New()
	router.Use(AuthMiddleware(mockJWT))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockJWT := &MockJWTService{}

	router := gin.New()
	router.Use(AuthMiddleware(mockJWT))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_InvalidFormat(t *testing.T) {
	mockJWT := &MockJWTService{}

	router := gin.New()
	router.Use(AuthMiddleware(mockJWT))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"Missing Bearer prefix", "token-only"},
		{"Wrong prefix", "Basic token"},
		{"Empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockJWT := &MockJWTService{
		ValidToken: "valid-token",
	}

	router := gin.New()
	router.Use(AuthMiddleware(mockJWT))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	mockJWT := &MockJWTService{
		ExpiredError: true,
	}

	router := gin.New()
	router.Use(AuthMiddleware(mockJWT))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequestID_GeneratesNew(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())

	var capturedID string
	router.GET("/test", func(c *gin.Context) {
		capturedID = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if capturedID == "" {
		t.Error("Expected request ID to be generated")
	}

	// Check header is set
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header to be set")
	}
}

func TestRequestID_UsesExisting(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())

	existingID := "existing-request-id"
	var capturedID string
	router.GET("/test", func(c *gin.Context) {
		capturedID = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", existingID)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if capturedID != existingID {
		t.Errorf("Expected request ID %s, got %s", existingID, capturedID)
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("Expected CORS header to be set for allowed origin")
	}
}

func TestCORS_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"*"}))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status %d for OPTIONS, got %d", http.StatusNoContent, w.Code)
	}
}

func TestSecureHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecureHeaders())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"X-XSS-Protection":       "1; mode=block",
	}

	for header, expected := range expectedHeaders {
		if w.Header().Get(header) != expected {
			t.Errorf("Expected %s to be %s, got %s", header, expected, w.Header().Get(header))
		}
	}
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.Use(Recovery())
	router.GET("/test", func(c *gin.Context) {
		panic("test panic")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)

	router := gin.New()
	router.Use(limiter.RateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// First request - should pass
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("First request: expected %d, got %d", http.StatusOK, w.Code)
	}

	// Second request - should pass
	req = httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Second request: expected %d, got %d", http.StatusOK, w.Code)
	}

	// Third request - should be rate limited
	req = httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Third request: expected %d, got %d", http.StatusTooManyRequests, w.Code)
	}
}

// Run with -race: the limiter is shared across all request goroutines,
// so its map access must stay synchronized.
func TestRateLimiter_ConcurrentRequests(t *testing.T) {
	limiter := NewRateLimiter(5, time.Minute)

	router := gin.New()
	router.Use(limiter.RateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	const (
		clients     = 8
		perClient   = 10
		wantAllowed = clients * 5
	)

	var allowed, limited int64
	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		for j := 0; j < perClient; j++ {
			wg.Add(1)
			go func(client int) {
				defer wg.Done()
				req := httptest.NewRequest("GET", "/test", nil)
				req.RemoteAddr = fmt.Sprintf("10.0.0.%d:1234", client)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				switch w.Code {
				case http.StatusOK:
					atomic.AddInt64(&allowed, 1)
				case http.StatusTooManyRequests:
					atomic.AddInt64(&limited, 1)
				default:
					t.Errorf("unexpected status %d", w.Code)
				}
			}(i)
		}
	}
	wg.Wait()

	if allowed != wantAllowed {
		t.Errorf("allowed = %d, want %d", allowed, wantAllowed)
	}
	if limited != clients*perClient-wantAllowed {
		t.Errorf("limited = %d, want %d", limited, clients*perClient-wantAllowed)
	}
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(5, 10*time.Millisecond)

	router := gin.New()
	router.Use(limiter.RateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	router.ServeHTTP(httptest.NewRecorder(), req)

	// Wait out the window, then let a different client trigger the sweep
	time.Sleep(25 * time.Millisecond)

	req = httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.2:1234"
	router.ServeHTTP(httptest.NewRecorder(), req)

	limiter.mu.Lock()
	_, stale := limiter.requests["192.168.1.1"]
	limiter.mu.Unlock()
	if stale {
		t.Error("idle client entry was not evicted after the window elapsed")
	}
}

func TestGetUserID_Valid(t *testing.T) {
	expectedID := primitive.NewObjectID()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ContextKeyUserID, expectedID.Hex())
		c.Next()
	})

	var capturedID primitive.ObjectID
	var ok bool
	router.GET("/test", func(c *gin.Context) {
		capturedID, ok = GetUserID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if !ok {
		t.Error("Expected GetUserID to return true")
	}
	if capturedID != expectedID {
		t.Errorf("Expected user ID %s, got %s", expectedID.Hex(), capturedID.Hex())
	}
}

func TestGetUserID_NotSet(t *testing.T) {
	router := gin.New()

	var ok bool
	router.GET("/test", func(c *gin.Context) {
		_, ok = GetUserID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if ok {
		t.Error("Expected GetUserID to return false when not set")
	}
}

func TestLocale_QueryParameter(t *testing.T) {
	router := gin.New()
	router.Use(Locale([]string{"en", "pt"}, "en"))

	var captured string
	router.GET("/test", func(c *gin.Context) {
		captured = GetLang(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test?lang=pt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if captured != "pt" {
		t.Errorf("Expected lang pt, got %s", captured)
	}
}

func TestLocale_AcceptLanguageHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"Simple match", "pt", "pt"},
		{"Region subtag reduced", "pt-BR,pt;q=0.9", "pt"},
		{"Quality ordering", "de;q=0.9,pt;q=0.8,en;q=0.7", "pt"},
		{"Unsupported falls back", "de,fr;q=0.9", "en"},
		{"Empty header falls back", "", "en"},
		{"Zero quality skipped", "pt;q=0,en;q=0.5", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Locale([]string{"en", "pt"}, "en"))

			var captured string
			router.GET("/test", func(c *gin.Context) {
				captured = GetLang(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if captured != tt.expected {
				t.Errorf("Expected lang %s, got %s", tt.expected, captured)
			}
		})
	}
}

func TestLocale_QueryBeatsHeader(t *testing.T) {
	router := gin.New()
	router.Use(Locale([]string{"en", "pt"}, "en"))

	var captured string
	router.GET("/test", func(c *gin.Context) {
		captured = GetLang(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test?lang=en", nil)
	req.Header.Set("Accept-Language", "pt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if captured != "en" {
		t.Errorf("Expected lang en, got %s", captured)
	}
}

func TestBytesString(t *testing.T) {
	tests := []struct {
		size     int
		expected string
	}{
		{-1, "-"},
		{0, "0B"},
		{100, "100B"},
		{1024, "1KB"},
		{2048, "2KB"},
		{1048576, "1MB"},
	}

	for _, tt := range tests {
		result := bytesString(tt.size)
		if result != tt.expected {
			t.Errorf("bytesString(%d) = %s, want %s", tt.size, result, tt.expected)
		}
	}
}
