package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/designladder/designladder_backend/internal/models"
	"github.com/designladder/designladder_backend/internal/repository"
	"github.com/designladder/designladder_backend/internal/services"
)

// AdminHandler handles the JWT-protected admin listing and export endpoints
// #INTEGRATION_POINT: Admin dashboard consumes these
type AdminHandler struct {
	diagnosisService services.DiagnosisService
	challengeService services.ChallengeService
	exportService    services.ExportService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	diagnosisService services.DiagnosisService,
	challengeService services.ChallengeService,
	exportService services.ExportService,
) *AdminHandler {
	return &AdminHandler{
		diagnosisService: diagnosisService,
		challengeService: challengeService,
		exportService:    exportService,
	}
}

// AdminDiagnosisResponse is the admin view of a diagnosis, including
// respondent contact details hidden from the public result endpoint.
type AdminDiagnosisResponse struct {
	ID            string  `json:"id"`
	ResponseID    string  `json:"response_id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Company       string  `json:"company,omitempty"`
	Role          string  `json:"role"`
	TotalScore    int     `json:"total_score"`
	Percentage    float64 `json:"percentage"`
	MaturityLevel int     `json:"maturity_level"`
	Archetype     string  `json:"archetype"`
	Feedback      string  `json:"feedback,omitempty"`
	CreatedAt     int64   `json:"created_at"`
}

// AdminChallengeResponse is the admin view of a challenge form submission
type AdminChallengeResponse struct {
	ID             string `json:"id"`
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
	CreatedAt      int64  `json:"created_at"`
}

// ListResponse wraps a page of items with pagination metadata
type ListResponse struct {
	Items      interface{} `json:"items"`
	TotalCount int64       `json:"total_count"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

// paginationFromQuery parses page/limit query params with bounds
func paginationFromQuery(c *gin.Context) repository.PaginationOptions {
	opts := repository.DefaultPaginationOptions()
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit <= 100 {
		opts.Limit = limit
	}
	return opts
}

// ListDiagnoses handles GET /api/v1/admin/diagnoses
// @Summary List diagnoses
// @Description Returns stored survey submissions, newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} ListResponse
// @Failure 401 {object} ErrorResponse
// @Router /admin/diagnoses [get]
func (h *AdminHandler) ListDiagnoses(c *gin.Context) {
	result, err := h.diagnosisService.List(c.Request.Context(), paginationFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to list diagnoses",
		})
		return
	}

	items := make([]AdminDiagnosisResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toAdminDiagnosisResponse(&result.Items[i]))
	}

	c.JSON(http.StatusOK, ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// ListChallenges handles GET /api/v1/admin/challenges
// @Summary List challenge submissions
// @Description Returns stored challenge research forms, newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} ListResponse
// @Failure 401 {object} ErrorResponse
// @Router /admin/challenges [get]
func (h *AdminHandler) ListChallenges(c *gin.Context) {
	result, err := h.challengeService.List(c.Request.Context(), paginationFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to list challenge submissions",
		})
		return
	}

	items := make([]AdminChallengeResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toAdminChallengeResponse(&result.Items[i]))
	}

	c.JSON(http.StatusOK, ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// ExportDiagnoses handles GET /api/v1/admin/diagnoses/export
// @Summary Export diagnoses as CSV
// @Description Streams every stored diagnosis as a CSV attachment
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponse
// @Router /admin/diagnoses/export [get]
func (h *AdminHandler) ExportDiagnoses(c *gin.Context) {
	filename := services.ExportFilename("maturity_diagnoses", time.Now().UTC())
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.WriteDiagnosesCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers may already be out; abort the stream
		c.Abort()
		return
	}
}

// ExportChallenges handles GET /api/v1/admin/challenges/export
// @Summary Export challenge submissions as CSV
// @Description Streams every stored challenge form as a CSV attachment
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponse
// @Router /admin/challenges/export [get]
func (h *AdminHandler) ExportChallenges(c *gin.Context) {
	filename := services.ExportFilename("challenge_responses", time.Now().UTC())
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.WriteChallengesCSV(c.Request.Context(), c.Writer); err != nil {
		c.Abort()
		return
	}
}

// RegisterRoutes registers admin routes behind the auth middleware
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	admin := rg.Group("/admin", authMiddleware)
	{
		admin.GET("/diagnoses", h.ListDiagnoses)
		admin.GET("/diagnoses/export", h.ExportDiagnoses)
		admin.GET("/challenges", h.ListChallenges)
		admin.GET("/challenges/export", h.ExportChallenges)
	}
}

func toAdminDiagnosisResponse(d *models.MaturityDiagnosis) AdminDiagnosisResponse {
	return AdminDiagnosisResponse{
		ID:            d.ID.Hex(),
		ResponseID:    d.ResponseID,
		FullName:      d.FullName,
		Email:         d.Email,
		Company:       d.Company,
		Role:          string(d.Role),
		TotalScore:    d.TotalScore,
		Percentage:    d.Percentage,
		MaturityLevel: d.MaturityLevel,
		Archetype:     d.Archetype,
		Feedback:      string(d.Feedback),
		CreatedAt:     d.CreatedAt.Unix(),
	}
}

func toAdminChallengeResponse(r *models.ChallengeResponse) AdminChallengeResponse {
	return AdminChallengeResponse{
		ID:             r.ID.Hex(),
		Problem:        r.Problem,
		DesiredOutcome: r.DesiredOutcome,
		Frequency:      r.Frequency,
		TeamSize:       r.TeamSize,
		Role:           r.Role,
		CompanySize:    r.CompanySize,
		Budget:         r.Budget,
		Urgency:        r.Urgency,
		EarlyTester:    r.EarlyTester,
		CompanyName:    r.CompanyName,
		Email:          r.Email,
		CreatedAt:      r.CreatedAt.Unix(),
	}
}
