package email

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"go-gin-event-booking/config"
	"go-gin-event-booking/pkg/logger"

	"github.com/domodwyer/mailyak/v3"
	"go.uber.org/zap"
)

type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

type SMTPSenderImpl struct {
	cfg config.EmailConfig
}

// NewSender returns an SMTP sender, or a sender that only logs when SMTP is not configured.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.Enabled() {
		return &LogSenderImpl{}
	}
	return &SMTPSenderImpl{cfg: cfg}
}

func (s *SMTPSenderImpl) build(msg *Message) *mailyak.MailYak {
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	}

	mail := mailyak.New(s.cfg.SMTPHost+":"+s.cfg.SMTPPort, auth)
	mail.To(msg.To)
	mail.From(s.cfg.FromAddress)
	if s.cfg.FromName != "" {
		mail.FromName(s.cfg.FromName)
	}
	mail.Subject(msg.Subject)
	mail.Plain().Set(msg.Text)
	if msg.HTML != "" {
		mail.HTML().Set(msg.HTML)
	}
	for _, a := range msg.Attachments {
		mail.AttachWithMimeType(a.Name, bytes.NewReader(a.Data), a.ContentType)
	}
	return mail
}

func (s *SMTPSenderImpl) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.build(msg).Send(); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

type LogSenderImpl struct{}

func (s *LogSenderImpl) Send(ctx context.Context, msg *Message) error {
	logger.WithComponent("email").Info("smtp not configured, mail logged only",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("attachments", len(msg.Attachments)))
	return nil
}
