package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/designladder/designladder_backend/internal/models"
	"github.com/designladder/designladder_backend/internal/repository"
)

// AnalyticsService records client-side tracking events
// #INTEGRATION_POINT: Used by the public events handler
type AnalyticsService interface {
	// Track stores a single event. The session identifier is an explicit
	// parameter on every call; there is no ambient session state.
	Track(ctx context.Context, eventType string, eventData map[string]interface{}, sessionID string) error
}

// analyticsService implements AnalyticsService
type analyticsService struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

// Track stores a single event
func (s *analyticsService) Track(ctx context.Context, eventType string, eventData map[string]interface{}, sessionID string) error {
	if strings.TrimSpace(eventType) == "" {
		return models.ErrMissingEventType
	}
	if strings.TrimSpace(sessionID) == "" {
		return models.ErrMissingSessionID
	}

	event := &models.AnalyticsEvent{
		EventType: eventType,
		EventData: eventData,
		SessionID: sessionID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to store analytics event: %w", err)
	}
	return nil
}
