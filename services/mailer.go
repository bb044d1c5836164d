package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// Mailer relays contact-form messages to the site owner through the Resend
// API. Configuration is injected at construction; a Mailer with no API key
// is disabled and reports an error instead of sending.
type Mailer struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

func NewMailer(apiKey, fromEmail, toEmail string) *Mailer {
	return &Mailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether the mailer has credentials to send with.
func (m *Mailer) Enabled() bool {
	return m.apiKey != "" && m.fromEmail != "" && m.toEmail != ""
}

type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type resendErrorResponse struct {
	Message string `json:"message"`
}

// Send delivers one plain-text email to the owner. replyTo carries the
// visitor's address so the owner can answer directly.
func (m *Mailer) Send(subject, body, replyTo string) error {
	if !m.Enabled() {
		return fmt.Errorf("mailer is not configured")
	}

	payload, err := json.Marshal(resendEmailRequest{
		From:    m.fromEmail,
		To:      []string{m.toEmail},
		Subject: subject,
		Text:    body,
		ReplyTo: replyTo,
	})
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		var resendErr resendErrorResponse
		if json.Unmarshal(respBody, &resendErr) == nil && resendErr.Message != "" {
			return fmt.Errorf("resend returned %d: %s", resp.StatusCode, resendErr.Message)
		}
		return fmt.Errorf("resend returned %d", resp.StatusCode)
	}

	log.Info().Str("subject", subject).Msg("contact email sent")
	return nil
}
