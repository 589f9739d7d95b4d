package services

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// EmailNotifier sends notifications through the Resend API.
type EmailNotifier struct {
	client     *resty.Client
	from       string
	recipients []string
}

// NewEmailNotifier reads its settings from c.
//
// Required:
//   - RESEND_API_KEY: Resend API key
//   - RESEND_FROM_EMAIL: sender, e.g. "Portfolio <noreply@example.com>"
//   - CONTACT_RECIPIENT: comma-separated list of addresses that receive contact messages
//
// Optional:
//   - RESEND_BASE_URL: API root, defaults to https://api.resend.com
func NewEmailNotifier(c map[string]string) (*EmailNotifier, error) {
	apiKey := config.GetString(c, "RESEND_API_KEY", "")
	if apiKey == "" {
		return nil, errs.NewConfigMissingError("RESEND_API_KEY")
	}
	from := config.GetString(c, "RESEND_FROM_EMAIL", "")
	if from == "" {
		return nil, errs.NewConfigMissingError("RESEND_FROM_EMAIL")
	}
	recipients := config.GetList(c, "CONTACT_RECIPIENT")
	if len(recipients) == 0 {
		return nil, errs.NewConfigMissingError("CONTACT_RECIPIENT")
	}

	client := resty.New().
		SetBaseURL(config.GetString(c, "RESEND_BASE_URL", defaultResendBaseURL)).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &EmailNotifier{client: client, from: from, recipients: recipients}, nil
}

func (e *EmailNotifier) Name() string {
	return "email"
}

func (e *EmailNotifier) Send(ctx context.Context, n Notification) error {
	_, err := e.SendEmail(ctx, n.Subject, n.Body, n.ReplyTo, e.recipients)
	return err
}

// SendEmail posts a plain-text email and returns the Resend message id.
// Each call carries a fresh Idempotency-Key so a retried request is not delivered twice.
func (e *EmailNotifier) SendEmail(ctx context.Context, subject, body, replyTo string, recipients []string) (string, error) {
	if len(recipients) == 0 {
		return "", errs.NewMissingRequiredFieldError("recipients")
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetBody(ResendEmailRequest{
			From:    e.from,
			To:      recipients,
			Subject: subject,
			Text:    body,
			ReplyTo: replyTo,
		}).
		Post("/emails")
	if err != nil {
		return "", errs.NewServiceUnreachableError("resend", err)
	}

	if resp.IsError() {
		message := gjson.GetBytes(resp.Body(), "message").String()
		if message == "" {
			message = resp.String()
		}
		return "", errs.NewDeliveryError("email", resp.StatusCode(), message)
	}

	id := gjson.GetBytes(resp.Body(), "id").String()
	if id == "" {
		log.Warn().Msg("Resend accepted the email but returned no id")
	} else {
		log.Info().Str("emailId", id).Msg("Successfully sent email via Resend")
	}
	return id, nil
}
