package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"salon-backend/internal/domain/notification"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/pkg/errs"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSSender delivers sms jobs through Twilio. Without credentials it only logs.
type SMSSender struct {
	api  messageCreator
	from string
}

func NewSMSSender(cfg config.TwilioConfig) *SMSSender {
	s := &SMSSender{from: cfg.FromNumber}
	if cfg.AccountSID != "" && cfg.AuthToken != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
		s.api = client.Api
	}
	return s
}

func (s *SMSSender) Kind() notification.Kind { return notification.KindSMS }

func (s *SMSSender) Send(ctx context.Context, job notification.Job) error {
	var p notification.SMSPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return errs.Wrap(err, "decode sms payload")
	}
	if s.api == nil {
		slog.InfoContext(ctx, "twilio not configured, sms logged only", "job_id", job.ID, "to", p.To)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(p.To)
	params.SetFrom(s.from)
	params.SetBody(p.Body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return errs.Wrap(err, "twilio create message")
	}
	if resp.Sid != nil {
		slog.DebugContext(ctx, "sms sent", "job_id", job.ID, "sid", *resp.Sid)
	}
	return nil
}
