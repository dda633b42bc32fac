// Package services provides business logic implementations.
// #IMPLEMENTATION_DECISION: Services orchestrate repositories and external services
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/designladder/designladder_backend/internal/models"
	"github.com/designladder/designladder_backend/internal/repository"
	"github.com/designladder/designladder_backend/internal/scoring"
)

// emailPattern is a deliberately permissive local@domain.tld shape check.
// #BUSINESS_RULE: Lead capture favors acceptance over strictness; anything
// resembling an address passes.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DiagnosisSubmission is the validated input for a new diagnosis.
type DiagnosisSubmission struct {
	FullName string
	Email    string
	Company  string
	Role     models.Role
	Answers  scoring.Answers
}

// DiagnosisResult is a stored diagnosis resolved for display: the row, the
// identifier column it was found by, and the locale narrative.
type DiagnosisResult struct {
	Diagnosis *models.MaturityDiagnosis
	Key       models.ResultKey
	Narrative scoring.Narrative
}

// DiagnosisService handles the maturity survey lifecycle
// #INTEGRATION_POINT: Used by the public diagnosis handler
type DiagnosisService interface {
	// Submit validates, scores and stores a new diagnosis, returning the
	// stored row with its public token set
	Submit(ctx context.Context, submission DiagnosisSubmission) (*models.MaturityDiagnosis, error)

	// GetByToken resolves a diagnosis for display, recomputing the display
	// percentage and attaching the narrative for the requested language
	GetByToken(ctx context.Context, token, lang string) (*DiagnosisResult, error)

	// RecordFeedback stores the respondent's reaction to their result.
	// Last write wins; repeat calls are permitted.
	RecordFeedback(ctx context.Context, token string, feedback models.Feedback) error

	// List returns diagnoses for the admin dashboard, newest first
	List(ctx context.Context, opts repository.PaginationOptions) (*repository.PaginatedResult[models.MaturityDiagnosis], error)
}

// diagnosisService implements DiagnosisService
type diagnosisService struct {
	repo repository.DiagnosisRepository
}

// NewDiagnosisService creates a new diagnosis service instance
// #IMPLEMENTATION_DECISION: Constructor injection for testability
func NewDiagnosisService(repo repository.DiagnosisRepository) DiagnosisService {
	return &diagnosisService{repo: repo}
}

// Submit validates, scores and stores a new diagnosis.
// #BUSINESS_RULE: Validation failures never reach the store; the returned
// ValidationErrors map carries one message per invalid field. A store
// failure is surfaced as-is with no retry.
func (s *diagnosisService) Submit(ctx context.Context, submission DiagnosisSubmission) (*models.MaturityDiagnosis, error) {
	if errs := validateSubmission(submission); len(errs) > 0 {
		return nil, errs
	}

	result := scoring.Score(submission.Answers)
	a := submission.Answers

	diagnosis := &models.MaturityDiagnosis{
		ResponseID: uuid.New().String(),
		FullName:   strings.TrimSpace(submission.FullName),
		Email:      strings.ToLower(strings.TrimSpace(submission.Email)),
		Company:    strings.TrimSpace(submission.Company),
		Role:       submission.Role,
		Q1:         a[0], Q2: a[1], Q3: a[2], Q4: a[3], Q5: a[4],
		Q6: a[5], Q7: a[6], Q8: a[7], Q9: a[8], Q10: a[9], Q11: a[10],
		TotalScore:    result.TotalScore,
		Percentage:    result.Percentage,
		MaturityLevel: result.Level,
		Archetype:     result.Archetype,
	}

	if err := s.repo.Create(ctx, diagnosis); err != nil {
		return nil, fmt.Errorf("failed to store diagnosis: %w", err)
	}

	return diagnosis, nil
}

// GetByToken resolves a diagnosis for display.
// #BUSINESS_RULE: Display percentage is always recomputed from the stored
// total; the stored percentage column is never trusted at read time.
func (s *diagnosisService) GetByToken(ctx context.Context, token, lang string) (*DiagnosisResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, models.ErrDiagnosisNotFound
	}

	diagnosis, key, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	diagnosis.Percentage = scoring.DisplayPercentage(diagnosis.TotalScore)

	narrative, ok := scoring.NarrativeFor(diagnosis.MaturityLevel, lang)
	if !ok {
		// Out-of-range stored level; classify again from the total.
		level, archetype := scoring.Classify(diagnosis.TotalScore)
		diagnosis.MaturityLevel = level
		diagnosis.Archetype = archetype
		narrative, _ = scoring.NarrativeFor(level, lang)
	}

	return &DiagnosisResult{
		Diagnosis: diagnosis,
		Key:       key,
		Narrative: narrative,
	}, nil
}

// RecordFeedback stores the respondent's reaction to their result.
// #IMPLEMENTATION_DECISION: The update targets the same identifier column
// the lookup matched, so token and hex-ID callers update the same row.
func (s *diagnosisService) RecordFeedback(ctx context.Context, token string, feedback models.Feedback) error {
	if !feedback.IsValid() {
		return models.ErrInvalidFeedback
	}

	_, key, err := s.repo.GetByToken(ctx, strings.TrimSpace(token))
	if err != nil {
		return err
	}

	return s.repo.UpdateFeedback(ctx, key, feedback)
}

// List returns diagnoses for the admin dashboard
func (s *diagnosisService) List(ctx context.Context, opts repository.PaginationOptions) (*repository.PaginatedResult[models.MaturityDiagnosis], error) {
	return s.repo.List(ctx, opts)
}

// validateSubmission checks all mandatory fields and answers.
func validateSubmission(submission DiagnosisSubmission) models.ValidationErrors {
	errs := models.ValidationErrors{}

	if strings.TrimSpace(submission.FullName) == "" {
		errs["full_name"] = "full name is required"
	}
	if strings.TrimSpace(submission.Email) == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(strings.TrimSpace(submission.Email)) {
		errs["email"] = "email format is invalid"
	}
	if submission.Role == "" {
		errs["role"] = "role is required"
	} else if !submission.Role.IsValid() {
		errs["role"] = "role is not a recognized value"
	}

	for i, v := range submission.Answers {
		if v < 1 || v > scoring.MaxAnswer {
			errs[fmt.Sprintf("q%d", i+1)] = fmt.Sprintf("answer must be between 1 and %d", scoring.MaxAnswer)
		}
	}

	return errs
}
