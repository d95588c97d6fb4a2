//go:build unit

package notify

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"salon-backend/internal/domain/notification"
	"salon-backend/internal/pkg/config"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestEmailSender(t *testing.T) {
	job, err := notification.NewEmail(notification.TopicAppointmentBooked, notification.EmailPayload{
		To:      "casey@salon.test",
		Subject: "Booked",
		Body:    "See you soon",
	}, now)
	require.NoError(t, err)

	t.Run("unconfigured host only logs", func(t *testing.T) {
		s := NewEmailSender(config.SMTPConfig{From: "no-reply@salon.test"})
		s.send = func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("smtp must not be called")
			return nil
		}
		assert.NoError(t, s.Send(context.Background(), job))
	})

	t.Run("sends an RFC 5322 message", func(t *testing.T) {
		s := NewEmailSender(config.SMTPConfig{Host: "mail", Port: "1025", From: "no-reply@salon.test"})
		var gotAddr string
		var gotTo []string
		var gotMsg string
		s.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
			gotAddr, gotTo, gotMsg = addr, to, string(msg)
			return nil
		}

		require.NoError(t, s.Send(context.Background(), job))
		assert.Equal(t, "mail:1025", gotAddr)
		assert.Equal(t, []string{"casey@salon.test"}, gotTo)
		assert.Contains(t, gotMsg, "Subject: Booked\r\n")
		assert.Contains(t, gotMsg, "\r\n\r\nSee you soon\r\n")
	})

	t.Run("smtp failure surfaces", func(t *testing.T) {
		s := NewEmailSender(config.SMTPConfig{Host: "mail", Port: "1025"})
		s.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("421 try later") }
		assert.ErrorContains(t, s.Send(context.Background(), job), "421 try later")
	})
}

type fakeTwilio struct {
	params *twilioApi.CreateMessageParams
}

func (f *fakeTwilio) CreateMessage(p *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = p
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestSMSSender(t *testing.T) {
	job, err := notification.NewSMS(notification.TopicAppointmentReminder, notification.SMSPayload{To: "+6591234567", Body: "Tomorrow 11:00"}, now)
	require.NoError(t, err)

	t.Run("unconfigured only logs", func(t *testing.T) {
		assert.NoError(t, NewSMSSender(config.TwilioConfig{}).Send(context.Background(), job))
	})

	t.Run("fills the message params", func(t *testing.T) {
		fake := &fakeTwilio{}
		s := &SMSSender{api: fake, from: "+6500000000"}
		require.NoError(t, s.Send(context.Background(), job))
		require.NotNil(t, fake.params)
		assert.Equal(t, "+6591234567", *fake.params.To)
		assert.Equal(t, "+6500000000", *fake.params.From)
		assert.Equal(t, "Tomorrow 11:00", *fake.params.Body)
	})
}

type fakeWriter struct {
	msgs []kafka.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestEventSender(t *testing.T) {
	job, err := notification.NewEvent(notification.TopicAppointmentConfirmed, "appt-1", map[string]any{"status": "confirmed"}, now)
	require.NoError(t, err)

	w := &fakeWriter{}
	s := &EventSender{writer: w}
	require.NoError(t, s.Send(context.Background(), job))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "appt-1", string(msg.Key))
	assert.JSONEq(t, string(job.Payload), string(msg.Value))
	assert.Equal(t, []kafka.Header{
		{Key: "event_id", Value: []byte(job.ID.String())},
		{Key: "event_type", Value: []byte(notification.TopicAppointmentConfirmed)},
	}, msg.Headers)

	assert.NoError(t, NewEventSender(config.KafkaConfig{Brokers: []string{""}}).Send(context.Background(), job))
}
