package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designladder/designladder_backend/internal/services"
)

// ChallengeHandler handles the challenge research form endpoint
type ChallengeHandler struct {
	challengeService services.ChallengeService
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(challengeService services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
	}
}

// SubmitChallengeRequest represents a challenge research form submission
type SubmitChallengeRequest struct {
	Problem        string `json:"problem"`
	DesiredOutcome string `json:"desired_outcome"`
	Frequency      string `json:"frequency"`
	TeamSize       string `json:"team_size"`
	Role           string `json:"role"`
	CompanySize    string `json:"company_size"`
	Budget         string `json:"budget"`
	Urgency        string `json:"urgency"`
	EarlyTester    bool   `json:"early_tester"`
	CompanyName    string `json:"company_name"`
	Email          string `json:"email"`
}

// SubmitChallengeResponse confirms a stored submission
type SubmitChallengeResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Submit handles POST /api/v1/challenges
// @Summary Submit a challenge research form
// @Description Stores the submission and notifies the research inbox
// @Tags Challenges
// @Accept json
// @Produce json
// @Param request body SubmitChallengeRequest true "Challenge form"
// @Success 201 {object} SubmitChallengeResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /challenges [post]
func (h *ChallengeHandler) Submit(c *gin.Context) {
	var req SubmitChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body must be valid JSON",
		})
		return
	}

	submission := services.ChallengeSubmission{
		Problem:        req.Problem,
		DesiredOutcome: req.DesiredOutcome,
		Frequency:      req.Frequency,
		TeamSize:       req.TeamSize,
		Role:           req.Role,
		CompanySize:    req.CompanySize,
		Budget:         req.Budget,
		Urgency:        req.Urgency,
		EarlyTester:    req.EarlyTester,
		CompanyName:    req.CompanyName,
		Email:          req.Email,
	}

	response, err := h.challengeService.Submit(c.Request.Context(), submission)
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
			Message: "Failed to store the submission",
		})
		return
	}

	c.JSON(http.StatusCreated, SubmitChallengeResponse{
		ID:      response.ID.Hex(),
		Message: "Submission received",
	})
}

// RegisterRoutes registers the public challenge routes
func (h *ChallengeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/challenges", h.Submit)
}
