// Package middleware provides HTTP middleware for Gin framework.
// #IMPLEMENTATION_DECISION: Middleware chain for authentication, authorization, and logging
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/designladder/designladder_backend/internal/auth"
)

// Context keys for storing authenticated user data
// #INTEGRATION_POINT: Handlers extract user data using these keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
	ContextKeyClaims = "claims"
)

// Custom errors
var (
	ErrAuthHeaderMissing = errors.New("authorization header is required")
	ErrAuthHeaderFormat  = errors.New("authorization header format must be Bearer {token}")
	ErrInvalidToken      = errors.New("invalid or expired token")
)

// AuthMiddleware validates JWT tokens and extracts user claims
// #IMPLEMENTATION_DECISION: Bearer token authentication
func AuthMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": ErrAuthHeaderMissing.Error(),
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": ErrAuthHeaderFormat.Error(),
			})
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := jwtService.ValidateAccessToken(tokenString)
		if err != nil {
			message := ErrInvalidToken.Error()
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "token has expired"
			}

			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": message,
			})
			c.Abort()
			return
		}

		// Store claims in context for downstream handlers
		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)

		c.Next()
	}
}

// Helper functions for extracting values from context

// GetUserID extracts the authenticated admin user ID from context
func GetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDVal, exists := c.Get(ContextKeyUserID)
	if !exists {
		return primitive.NilObjectID, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, false
	}

	return userID, true
}

// GetEmail extracts the authenticated admin email from context
func GetEmail(c *gin.Context) (string, bool) {
	emailVal, exists := c.Get(ContextKeyEmail)
	if !exists {
		return "", false
	}

	email, ok := emailVal.(string)
	return email, ok
}

// GetClaims extracts the full JWT claims from context
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	claimsVal, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}

	claims, ok := claimsVal.(*auth.Claims)
	if !ok {
		return nil, false
	}

	return claims, true
}
