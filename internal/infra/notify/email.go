package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/smtp"

	"salon-backend/internal/domain/notification"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/pkg/errs"
)

// EmailSender delivers email jobs over SMTP. Without SMTP_HOST it only logs.
type EmailSender struct {
	addr string
	from string
	auth smtp.Auth
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailSender(cfg config.SMTPConfig) *EmailSender {
	s := &EmailSender{from: cfg.From, send: smtp.SendMail}
	if cfg.Host != "" {
		s.addr = cfg.Host + ":" + cfg.Port
		if cfg.Username != "" {
			s.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
		}
	}
	return s
}

func (s *EmailSender) Kind() notification.Kind { return notification.KindEmail }

func (s *EmailSender) Send(ctx context.Context, job notification.Job) error {
	var p notification.EmailPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return errs.Wrap(err, "decode email payload")
	}
	if s.addr == "" {
		slog.InfoContext(ctx, "smtp not configured, email logged only", "job_id", job.ID, "to", p.To, "subject", p.Subject)
		return nil
	}
	if err := s.send(s.addr, s.auth, s.from, []string{p.To}, buildMessage(s.from, p)); err != nil {
		return errs.Wrap(err, "smtp send")
	}
	return nil
}

func buildMessage(from string, p notification.EmailPayload) []byte {
	return fmt.Appendf(nil,
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, p.To, p.Subject, p.Body,
	)
}
