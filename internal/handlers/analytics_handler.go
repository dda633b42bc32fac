package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designladder/designladder_backend/internal/models"
	"github.com/designladder/designladder_backend/internal/services"
)

// AnalyticsHandler handles anonymous event ingestion
type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// TrackEventRequest represents an analytics event
// #DATA_ASSUMPTION: event_data is schemaless; the frontend decides its shape
type TrackEventRequest struct {
	EventType string                 `json:"event_type"`
	EventData map[string]interface{} `json:"event_data"`
	SessionID string                 `json:"session_id"`
}

// Track handles POST /api/v1/events
// @Summary Track an analytics event
// @Description Records an anonymous frontend event keyed by session
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body TrackEventRequest true "Event payload"
// @Success 202 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /events [post]
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body must be valid JSON",
		})
		return
	}

	err := h.analyticsService.Track(c.Request.Context(), req.EventType, req.EventData, req.SessionID)
	if err != nil {
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_event",
				Message: "event_type and session_id are required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to record the event",
		})
		return
	}

	// 202: the event is stored but nothing is computed from it inline
	c.JSON(http.StatusAccepted, gin.H{"message": "Event recorded"})
}

// RegisterRoutes registers the public analytics routes
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/events", h.Track)
}
