package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/models"
)

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Notifier emails staff when a contact submission arrives. Every send is
// best-effort: failures are logged and never surfaced to the caller, so a
// broken mail provider cannot fail the form.
type Notifier struct {
	apiKey     string
	from       string
	recipients []string
	client     *http.Client
	logger     zerolog.Logger
}

// NewNotifier builds a Notifier. With an empty API key or no recipients the
// notifier is disabled and every send becomes a no-op.
func NewNotifier(apiKey, from string, recipients []string) *Notifier {
	return &Notifier{
		apiKey:     apiKey,
		from:       from,
		recipients: recipients,
		client:     &http.Client{Timeout: 15 * time.Second},
		logger:     log.With().Str("service", "notifier").Logger(),
	}
}

func (n *Notifier) enabled() bool {
	return n.apiKey != "" && n.from != "" && len(n.recipients) > 0
}

// ContactSubmissionReceived sends the staff notification for one submission.
// Intended to run in its own goroutine; it never returns an error.
func (n *Notifier) ContactSubmissionReceived(sub models.ContactSubmission) {
	if !n.enabled() {
		n.logger.Debug().Msg("notifier disabled, skipping contact notification")
		return
	}

	body := fmt.Sprintf(
		"New contact submission\n\nName: %s\nEmail: %s\nService: %s\n\n%s\n",
		sub.Name, sub.Email, sub.Service, sub.Message,
	)
	if sub.Phone != nil && *sub.Phone != "" {
		body += fmt.Sprintf("\nPhone: %s", *sub.Phone)
	}
	if sub.Budget != nil && *sub.Budget != "" {
		body += fmt.Sprintf("\nBudget: %s", *sub.Budget)
	}

	if err := n.send(fmt.Sprintf("New inquiry from %s", sub.Name), body); err != nil {
		n.logger.Error().Err(err).Str("submissionID", sub.ID.String()).Msg("Failed to send contact notification")
	}
}

func (n *Notifier) send(subject, text string) error {
	payload := ResendEmailRequest{
		From:    n.from,
		To:      n.recipients,
		Subject: subject,
		Text:    text,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var resendErr ResendErrorResponse
		if json.Unmarshal(respBody, &resendErr) == nil && resendErr.Message != "" {
			return fmt.Errorf("resend API returned %d: %s", resp.StatusCode, resendErr.Message)
		}
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	return nil
}
