// Package mailer sends paperwork and reminder mail over SMTP.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"doctrack/internal/core/ports"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer implements ports.Mailer. Authentication is only attempted when
// a username is configured; TLS is used when the server offers it.
type SMTPMailer struct {
	from   string
	client *mail.Client
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.From == "" {
		return nil, errors.New("sender address is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []mail.Option{mail.WithTLSPolicy(mail.TLSOpportunistic)}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{from: cfg.From, client: client, logger: logger}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg ports.Message) error {
	message, err := buildMessage(m.from, msg)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send %q: %w", msg.Subject, err)
	}

	m.logger.Info("mail sent",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("attachments", len(msg.Attachments)))
	return nil
}

func buildMessage(from string, msg ports.Message) (*mail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, errors.New("mail needs at least one recipient")
	}

	message := mail.NewMsg()
	if err := message.From(from); err != nil {
		return nil, fmt.Errorf("sender %q: %w", from, err)
	}
	if err := message.To(msg.To...); err != nil {
		return nil, fmt.Errorf("recipients %v: %w", msg.To, err)
	}
	message.Subject(msg.Subject)
	message.SetBodyString(mail.TypeTextPlain, msg.Body)

	for _, a := range msg.Attachments {
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		message.AttachReadSeeker(a.Filename, bytes.NewReader(a.Data),
			mail.WithFileContentType(mail.ContentType(contentType)))
	}

	return message, nil
}
