// notification_service.go implements internal notification email delivery
// via the mailsend HTTP API.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/designladder/designladder_backend/internal/models"
)

// NotificationService notifies the team about new form submissions
// #INTEGRATION_POINT: External mail service integration
type NotificationService interface {
	NotifyChallengeResponse(ctx context.Context, response *models.ChallengeResponse) error
}

// TemplateEmailRequest represents a template-based email request to the mail API.
// #INTEGRATION_POINT: Maps to POST /email/template endpoint
type TemplateEmailRequest struct {
	Recipient  string                 `json:"recipient"`
	Subject    string                 `json:"subject"`
	Template   string                 `json:"template"`
	Variables  map[string]interface{} `json:"variables"`
	SenderName string                 `json:"sender_name,omitempty"`
}

// EmailResponse represents the API response after sending an email.
type EmailResponse struct {
	Message     string `json:"message"`
	ReceptionID string `json:"reception_id"`
}

// MailErrorResponse represents an error response from the mail API.
type MailErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NotificationConfig holds mail API settings for notifications.
type NotificationConfig struct {
	BaseURL    string
	APIKey     string
	SenderName string
	// NotifyEmail receives the internal new-submission notifications
	NotifyEmail string
}

// HTTPNotificationService implements NotificationService over the mail API.
type HTTPNotificationService struct {
	config NotificationConfig
	client *http.Client
}

// NewHTTPNotificationService creates a new HTTP notification service.
func NewHTTPNotificationService(cfg NotificationConfig) *HTTPNotificationService {
	return &HTTPNotificationService{
		config: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NotifyChallengeResponse sends the internal heads-up email for a new
// research form submission. The variables mirror the form fields so the
// template can render the full submission.
func (n *HTTPNotificationService) NotifyChallengeResponse(ctx context.Context, response *models.ChallengeResponse) error {
	subject := fmt.Sprintf("New challenge response from %s", response.CompanyName)

	variables := map[string]interface{}{
		"problem":         response.Problem,
		"desired_outcome": response.DesiredOutcome,
		"frequency":       response.Frequency,
		"team_size":       response.TeamSize,
		"role":            response.Role,
		"company_size":    response.CompanySize,
		"budget":          response.Budget,
		"urgency":         response.Urgency,
		"early_tester":    response.EarlyTester,
		"company_name":    response.CompanyName,
		"email":           response.Email,
		"submitted_at":    response.CreatedAt.Format(time.RFC3339),
	}

	return n.sendTemplateEmail(ctx, n.config.NotifyEmail, "challenge_response", subject, variables)
}

// sendTemplateEmail sends a template-based email to the mail API.
func (n *HTTPNotificationService) sendTemplateEmail(ctx context.Context, recipient, template, subject string, variables map[string]interface{}) error {
	req := TemplateEmailRequest{
		Recipient:  recipient,
		Subject:    subject,
		Template:   template,
		Variables:  variables,
		SenderName: n.config.SenderName,
	}

	url := n.config.BaseURL + "/email/template"

	reqBody, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", n.config.APIKey)

	log.Printf("[MAIL] Sending template email: recipient=%s, template=%s, subject=%s", recipient, template, subject)

	resp, err := n.client.Do(httpReq)
	if err != nil {
		log.Printf("[MAIL] HTTP request failed: %v", err)
		return fmt.Errorf("mail API request failed: %w", err)
	}
	defer resp.Body.Close()

	// The mail API returns 202 Accepted on success
	if resp.StatusCode != http.StatusAccepted {
		bodyBytes, _ := io.ReadAll(resp.Body)

		var errorResp MailErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			log.Printf("[MAIL] API error (status %d): %s - %s", resp.StatusCode, errorResp.Error, errorResp.Message)
			return fmt.Errorf("mail API error: %s - %s", errorResp.Error, errorResp.Message)
		}

		log.Printf("[MAIL] API error (status %d): %s", resp.StatusCode, string(bodyBytes))
		return fmt.Errorf("mail API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResp EmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&emailResp); err != nil {
		log.Printf("[MAIL] Failed to decode success response: %v", err)
		return fmt.Errorf("failed to decode mail API response: %w", err)
	}

	log.Printf("[MAIL] Email sent successfully: recipient=%s, reception_id=%s", recipient, emailResp.ReceptionID)
	return nil
}

// Ensure HTTPNotificationService implements NotificationService
var _ NotificationService = (*HTTPNotificationService)(nil)
