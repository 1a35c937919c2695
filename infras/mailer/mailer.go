package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	otelAttrRecipient = "mail.recipient"
	otelAttrSubject   = "mail.subject"
)

type Mailer interface {
	Send(ctx context.Context, toName, toEmail, subject, plainBody, htmlBody string) error
}

type sendgridImpl struct {
	client *sendgrid.Client
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otl otel.Otel) Mailer {
	return &sendgridImpl{
		client: sendgrid.NewSendClient(config.External.SendGrid.APIKey),
		config: config,
		otel:   otl,
	}
}

func (m *sendgridImpl) Send(ctx context.Context, toName, toEmail, subject, plainBody, htmlBody string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: toEmail,
		otelAttrSubject:   subject,
	})

	if m.config.External.SendGrid.APIKey == "" {
		log.Warn().Str("to", toEmail).Msg("SendGrid API key not configured, skipping e-mail")

		return nil
	}

	from := mail.NewEmail(m.config.External.SendGrid.FromName, m.config.External.SendGrid.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainBody, htmlBody)

	response, err := m.client.Send(message)
	if err != nil {
		log.Error().Err(err).Str("to", toEmail).Msg("failed to send e-mail via SendGrid")

		return fmt.Errorf("failed to send e-mail: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		log.Error().Int("status", response.StatusCode).Str("to", toEmail).Msg("SendGrid returned non-success status")

		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	log.Info().Str("to", toEmail).Str("subject", subject).Msg("E-mail sent")

	return nil
}
