package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designladder/designladder_backend/internal/middleware"
	"github.com/designladder/designladder_backend/internal/models"
	"github.com/designladder/designladder_backend/internal/scoring"
	"github.com/designladder/designladder_backend/internal/services"
)

// DiagnosisHandler handles the public maturity survey endpoints
// #INTEGRATION_POINT: Marketing site submits surveys and polls results here
type DiagnosisHandler struct {
	diagnosisService services.DiagnosisService
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(diagnosisService services.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisService: diagnosisService,
	}
}

// SubmitDiagnosisRequest represents a survey submission
// #DATA_ASSUMPTION: Answers arrive as individual q1..q11 fields, matching
// the form payload, not as an array
type SubmitDiagnosisRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Role     string `json:"role"`
	Q1       int    `json:"q1"`
	Q2       int    `json:"q2"`
	Q3       int    `json:"q3"`
	Q4       int    `json:"q4"`
	Q5       int    `json:"q5"`
	Q6       int    `json:"q6"`
	Q7       int    `json:"q7"`
	Q8       int    `json:"q8"`
	Q9       int    `json:"q9"`
	Q10      int    `json:"q10"`
	Q11      int    `json:"q11"`
}

// DiagnosisResponse represents a scored diagnosis in API responses
type DiagnosisResponse struct {
	ID            string             `json:"id"`
	ResponseID    string             `json:"response_id"`
	TotalScore    int                `json:"total_score"`
	Percentage    float64            `json:"percentage"`
	MaturityLevel int                `json:"maturity_level"`
	Archetype     string             `json:"archetype"`
	Feedback      string             `json:"feedback,omitempty"`
	CreatedAt     int64              `json:"created_at"`
	Narrative     *scoring.Narrative `json:"narrative,omitempty"`
}

// ToDiagnosisResponse converts a stored diagnosis to its API shape
func ToDiagnosisResponse(d *models.MaturityDiagnosis, narrative *scoring.Narrative) DiagnosisResponse {
	return DiagnosisResponse{
		ID:            d.ID.Hex(),
		ResponseID:    d.ResponseID,
		TotalScore:    d.TotalScore,
		Percentage:    d.Percentage,
		MaturityLevel: d.MaturityLevel,
		Archetype:     d.Archetype,
		Feedback:      string(d.Feedback),
		CreatedAt:     d.CreatedAt.Unix(),
		Narrative:     narrative,
	}
}

// Submit handles POST /api/v1/diagnoses
// @Summary Submit a maturity survey
// @Description Validates and scores an eleven-question design maturity survey
// @Tags Diagnoses
// @Accept json
// @Produce json
// @Param request body SubmitDiagnosisRequest true "Survey answers"
// @Success 201 {object} DiagnosisResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /diagnoses [post]
func (h *DiagnosisHandler) Submit(c *gin.Context) {
	var req SubmitDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body must be valid JSON",
		})
		return
	}

	submission := services.DiagnosisSubmission{
		FullName: req.FullName,
		Email:    req.Email,
		Company:  req.Company,
		Role:     models.Role(req.Role),
		Answers: scoring.Answers{
			req.Q1, req.Q2, req.Q3, req.Q4, req.Q5, req.Q6,
			req.Q7, req.Q8, req.Q9, req.Q10, req.Q11,
		},
	}

	diagnosis, err := h.diagnosisService.Submit(c.Request.Context(), submission)
	if err != nil {
		if verrs := asValidationErrors(err); verrs != nil {
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{
				Error:   "validation_failed",
				Message: "One or more fields are invalid",
				Fields:  verrs,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to store the diagnosis",
		})
		return
	}

	lang := middleware.GetLang(c)
	narrative, _ := scoring.NarrativeFor(diagnosis.MaturityLevel, lang)

	c.JSON(http.StatusCreated, ToDiagnosisResponse(diagnosis, &narrative))
}

// Get handles GET /api/v1/diagnoses/:token
// @Summary Get a diagnosis result
// @Description Returns a scored diagnosis by its shareable token with locale narrative
// @Tags Diagnoses
// @Produce json
// @Param token path string true "Response token"
// @Param lang query string false "Narrative language" Enums(en, pt)
// @Success 200 {object} DiagnosisResponse
// @Failure 404 {object} ErrorResponse
// @Router /diagnoses/{token} [get]
func (h *DiagnosisHandler) Get(c *gin.Context) {
	lang := middleware.GetLang(c)

	result, err := h.diagnosisService.GetByToken(c.Request.Context(), c.Param("token"), lang)
	if err != nil {
		if models.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "result_not_found",
				Message: "No diagnosis exists for this token",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to load the diagnosis",
		})
		return
	}

	c.JSON(http.StatusOK, ToDiagnosisResponse(result.Diagnosis, &result.Narrative))
}

// FeedbackRequest represents the respondent's reaction to their result
type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// Feedback handles POST /api/v1/diagnoses/:token/feedback
// @Summary Record result feedback
// @Description Stores whether the respondent felt the result matched their reality
// @Tags Diagnoses
// @Accept json
// @Produce json
// @Param token path string true "Response token"
// @Param request body FeedbackRequest true "Feedback value: yes, partially or no"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /diagnoses/{token}/feedback [post]
func (h *DiagnosisHandler) Feedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Feedback value is required",
		})
		return
	}

	err := h.diagnosisService.RecordFeedback(c.Request.Context(), c.Param("token"), models.Feedback(req.Feedback))
	if err != nil {
		if models.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "result_not_found",
				Message: "No diagnosis exists for this token",
			})
			return
		}
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_feedback",
				Message: "Feedback must be one of: yes, partially, no",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to record feedback",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback recorded"})
}

// RegisterRoutes registers the public diagnosis routes
func (h *DiagnosisHandler) RegisterRoutes(rg *gin.RouterGroup) {
	diagnoses := rg.Group("/diagnoses")
	{
		diagnoses.POST("", h.Submit)
		diagnoses.GET("/:token", h.Get)
		diagnoses.POST("/:token/feedback", h.Feedback)
	}
}

// asValidationErrors unwraps a ValidationErrors map from a service error, or
// returns nil when the error is of another kind.
func asValidationErrors(err error) map[string]string {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
