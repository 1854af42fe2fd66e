package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fittrack-api/pkg/config"
	"fittrack-api/pkg/logger"
)

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=notification

const (
	BrevoEmailEndpoint = "https://api.brevo.com/v3/smtp/email"

	sendTimeout = 10 * time.Second
)

type Notifier interface {
	SendEmail(ctx context.Context, to, subject, html string) error
}

type brevoContact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoEmailPayload struct {
	Sender      brevoContact   `json:"sender"`
	To          []brevoContact `json:"to"`
	Subject     string         `json:"subject"`
	HtmlContent string         `json:"htmlContent"`
}

type brevoNotifier struct {
	endpoint string
	apiKey   string
	sender   brevoContact
}

// NewNotifier returns a Brevo backed notifier, or a notifier that only logs the
// email when no api key is configured.
func NewNotifier(mailConfig config.MailConfig) Notifier {
	if mailConfig.BrevoApiKey == "" {
		return &logNotifier{}
	}

	return NewBrevoNotifier(BrevoEmailEndpoint, mailConfig)
}

func NewBrevoNotifier(endpoint string, mailConfig config.MailConfig) Notifier {
	return &brevoNotifier{
		endpoint: endpoint,
		apiKey:   mailConfig.BrevoApiKey,
		sender: brevoContact{
			Email: mailConfig.SenderEmail,
			Name:  mailConfig.SenderName,
		},
	}
}

func (n *brevoNotifier) SendEmail(ctx context.Context, to, subject, html string) error {
	agent := fiber.Post(n.endpoint).
		JSONEncoder(json.Marshal).
		Set("api-key", n.apiKey).
		Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON).
		Timeout(sendTimeout).
		JSON(brevoEmailPayload{
			Sender:      n.sender,
			To:          []brevoContact{{Email: to}},
			Subject:     subject,
			HtmlContent: html,
		})

	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error occurred while send email: %w", errs[0])
	}

	if statusCode < fiber.StatusOK || statusCode >= fiber.StatusMultipleChoices {
		return fmt.Errorf("email provider responded with status %d: %s", statusCode, string(body))
	}

	logger.FromContext(ctx).Infow(
		"verification email sent",
		zap.String("to", to),
	)
	return nil
}

// logNotifier never logs the body since it carries one-time links.
type logNotifier struct{}

func (n *logNotifier) SendEmail(ctx context.Context, to, subject, html string) error {
	logger.FromContext(ctx).Infow(
		"email delivery is not configured, email is only logged",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("htmlLength", len(html)),
	)
	return nil
}
