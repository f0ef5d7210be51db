package notify

import (
	"context"
	"fmt"

	"github.com/and161185/clubhouse/internal/model"
	"github.com/and161185/clubhouse/internal/receipt"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridSender delivers mail through the SendGrid v3 API.
type SendGridSender struct {
	client mailClient
	from   *mail.Email
	club   receipt.Club
	logger *zap.SugaredLogger
}

func NewSendGridSender(apiKey, fromEmail, fromName string, club receipt.Club, logger *zap.SugaredLogger) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromEmail),
		club:   club,
		logger: logger,
	}
}

func (s *SendGridSender) SendReceipt(ctx context.Context, r model.Receipt) error {
	msg, err := ReceiptMessage(NewReceiptParams(r, s.club))
	if err != nil {
		return err
	}
	return s.send(ctx, msg)
}

func (s *SendGridSender) SendPasswordReset(ctx context.Context, email, link string) error {
	msg, err := PasswordResetMessage(email, link, s.club.Name)
	if err != nil {
		return err
	}
	return s.send(ctx, msg)
}

func (s *SendGridSender) send(ctx context.Context, msg Message) error {
	to := mail.NewEmail(msg.ToName, msg.ToAddress)
	message := mail.NewSingleEmail(s.from, msg.Subject, to, msg.Text, msg.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", response.StatusCode, response.Body)
	}

	s.logger.Debugw("email sent", "subject", msg.Subject, "status", response.StatusCode)
	return nil
}

// LogSender stands in for a real transport when no API key is configured.
type LogSender struct {
	club   receipt.Club
	logger *zap.SugaredLogger
}

func NewLogSender(club receipt.Club, logger *zap.SugaredLogger) *LogSender {
	return &LogSender{club: club, logger: logger}
}

func (s *LogSender) SendReceipt(_ context.Context, r model.Receipt) error {
	msg, err := ReceiptMessage(NewReceiptParams(r, s.club))
	if err != nil {
		return err
	}
	s.logger.Infow("email not sent, no transport configured", "to", msg.ToAddress, "subject", msg.Subject)
	return nil
}

func (s *LogSender) SendPasswordReset(_ context.Context, email, link string) error {
	s.logger.Infow("email not sent, no transport configured", "to", email, "subject", "password reset", "link", link)
	return nil
}
