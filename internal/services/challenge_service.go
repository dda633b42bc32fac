package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/designladder/designladder_backend/internal/models"
	"github.com/designladder/designladder_backend/internal/repository"
)

// ChallengeSubmission is the validated input for a challenge form response.
type ChallengeSubmission struct {
	Problem        string
	DesiredOutcome string
	Frequency      string
	TeamSize       string
	Role           string
	CompanySize    string
	Budget         string
	Urgency        string
	EarlyTester    bool
	CompanyName    string
	Email          string
}

// ChallengeService handles research form submissions
// #INTEGRATION_POINT: Used by the public challenge handler
type ChallengeService interface {
	// Submit validates and stores a challenge response, then fires a
	// best-effort notification email
	Submit(ctx context.Context, submission ChallengeSubmission) (*models.ChallengeResponse, error)

	// List returns challenge responses for the admin dashboard
	List(ctx context.Context, opts repository.PaginationOptions) (*repository.PaginatedResult[models.ChallengeResponse], error)
}

// challengeService implements ChallengeService
type challengeService struct {
	repo     repository.ChallengeRepository
	notifier NotificationService
}

// NewChallengeService creates a new challenge service instance
func NewChallengeService(repo repository.ChallengeRepository, notifier NotificationService) ChallengeService {
	return &challengeService{repo: repo, notifier: notifier}
}

// Submit validates and stores a challenge response.
// #BUSINESS_RULE: Notification delivery failure never fails the submission;
// the stored row is the source of truth, the email is a convenience.
func (s *challengeService) Submit(ctx context.Context, submission ChallengeSubmission) (*models.ChallengeResponse, error) {
	if errs := validateChallenge(submission); len(errs) > 0 {
		return nil, errs
	}

	response := &models.ChallengeResponse{
		Problem:        strings.TrimSpace(submission.Problem),
		DesiredOutcome: strings.TrimSpace(submission.DesiredOutcome),
		Frequency:      submission.Frequency,
		TeamSize:       submission.TeamSize,
		Role:           submission.Role,
		CompanySize:    submission.CompanySize,
		Budget:         submission.Budget,
		Urgency:        submission.Urgency,
		EarlyTester:    submission.EarlyTester,
		CompanyName:    strings.TrimSpace(submission.CompanyName),
		Email:          strings.ToLower(strings.TrimSpace(submission.Email)),
	}

	if err := s.repo.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to store challenge response: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyChallengeResponse(ctx, response); err != nil {
			log.Printf("[CHALLENGE] Notification email failed for %s: %v", response.ID.Hex(), err)
		}
	}

	return response, nil
}

// List returns challenge responses for the admin dashboard
func (s *challengeService) List(ctx context.Context, opts repository.PaginationOptions) (*repository.PaginatedResult[models.ChallengeResponse], error) {
	return s.repo.List(ctx, opts)
}

// validateChallenge checks the mandatory form fields.
func validateChallenge(submission ChallengeSubmission) models.ValidationErrors {
	errs := models.ValidationErrors{}

	required := map[string]string{
		"problem":         submission.Problem,
		"desired_outcome": submission.DesiredOutcome,
		"frequency":       submission.Frequency,
		"team_size":       submission.TeamSize,
		"role":            submission.Role,
		"company_size":    submission.CompanySize,
		"budget":          submission.Budget,
		"urgency":         submission.Urgency,
		"company_name":    submission.CompanyName,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = field + " is required"
		}
	}

	if strings.TrimSpace(submission.Email) == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(strings.TrimSpace(submission.Email)) {
		errs["email"] = "email format is invalid"
	}

	return errs
}
