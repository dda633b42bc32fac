// Package middleware provides HTTP middleware for Gin framework.
package middleware

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the context key for request ID
const ContextKeyRequestID = "request_id"

// RequestID adds a unique request ID to each request
// #IMPLEMENTATION_DECISION: UUID v4 for traceability across logs
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// GetRequestID extracts the request ID from context
func GetRequestID(c *gin.Context) string {
	if requestIDVal, exists := c.Get(ContextKeyRequestID); exists {
		if requestID, ok := requestIDVal.(string); ok {
			return requestID
		}
	}
	return ""
}

// CORS configures Cross-Origin Resource Sharing
// #IMPLEMENTATION_DECISION: Configurable allowed origins for security
func CORS(allowedOrigins []string) gin.HandlerFunc {
	originsMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originsMap[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		// Check if origin is allowed
		if originsMap[origin] || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
			c.Header("Access-Control-Allow-Origin", origin)
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Accept-Language, Authorization, X-Request-ID")
		// Content-Disposition must be readable so the dashboard can name
		// the CSV export downloads
		c.Header("Access-Control-Expose-Headers", "Content-Length, Content-Disposition, X-Request-ID")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Logger logs one line per request through the standard logger, keeping the
// same [TAG] prefix convention the services use
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		requestID := GetRequestID(c)
		if len(requestID) > 8 {
			requestID = requestID[:8]
		}
		if requestID == "" {
			requestID = "-"
		}

		if raw != "" {
			path = path + "?" + raw
		}

		log.Printf("[HTTP] %s | %s | %s | %s | %s %s | %s",
			requestID,
			statusString(c.Writer.Status()),
			latency.String(),
			c.ClientIP(),
			c.Request.Method,
			path,
			bytesString(c.Writer.Size()),
		)
	}
}

// statusString returns the colored status code
func statusString(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "\033[32m" + strconv.Itoa(code) + "\033[0m"
	case code >= 300 && code < 400:
		return "\033[36m" + strconv.Itoa(code) + "\033[0m"
	case code >= 400 && code < 500:
		return "\033[33m" + strconv.Itoa(code) + "\033[0m"
	default:
		return "\033[31m" + strconv.Itoa(code) + "\033[0m"
	}
}

// bytesString formats bytes for display
func bytesString(size int) string {
	if size < 0 {
		return "-"
	}
	if size < 1024 {
		return strconv.Itoa(size) + "B"
	}
	if size < 1024*1024 {
		return strconv.Itoa(size/1024) + "KB"
	}
	return strconv.Itoa(size/(1024*1024)) + "MB"
}

// Recovery recovers from panics and returns a 500 error
// #IMPLEMENTATION_DECISION: Custom recovery with request ID for debugging
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		c.JSON(500, gin.H{
			"error":      "internal_server_error",
			"message":    "An unexpected error occurred",
			"request_id": requestID,
		})
	})
}

// SecureHeaders adds security-related headers
// #SECURITY_CONCERN: Helps prevent common web attacks
func SecureHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")

		c.Next()
	}
}

// RateLimiter provides basic per-IP rate limiting
// #IMPLEMENTATION_DECISION: Simple in-memory rate limiting, serves every
// gin worker goroutine so all state is mutex-guarded
// #TECHNICAL_DEBT: Should use Redis for distributed rate limiting
type RateLimiter struct {
	mu        sync.Mutex
	requests  map[string][]time.Time
	limit     int
	window    time.Duration
	lastSweep time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests:  make(map[string][]time.Time),
		limit:     limit,
		window:    window,
		lastSweep: time.Now(),
	}
}

// RateLimit middleware function
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		now := time.Now()
		windowStart := now.Add(-rl.window)

		rl.mu.Lock()

		// Drop idle IPs once per window so the map cannot grow unbounded
		if now.Sub(rl.lastSweep) > rl.window {
			rl.sweepLocked(windowStart)
			rl.lastSweep = now
		}

		// Clean old entries for this IP
		var validRequests []time.Time
		for _, t := range rl.requests[clientIP] {
			if t.After(windowStart) {
				validRequests = append(validRequests, t)
			}
		}

		// Check limit
		if len(validRequests) >= rl.limit {
			rl.requests[clientIP] = validRequests
			rl.mu.Unlock()
			c.JSON(429, gin.H{
				"error":   "too_many_requests",
				"message": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		// Add current request
		rl.requests[clientIP] = append(validRequests, now)
		rl.mu.Unlock()

		c.Next()
	}
}

// sweepLocked removes IPs with no requests in the current window.
// Callers must hold mu.
func (rl *RateLimiter) sweepLocked(windowStart time.Time) {
	for ip, times := range rl.requests {
		active := false
		for _, t := range times {
			if t.After(windowStart) {
				active = true
				break
			}
		}
		if !active {
			delete(rl.requests, ip)
		}
	}
}
