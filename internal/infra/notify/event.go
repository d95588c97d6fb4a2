package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"salon-backend/internal/domain/notification"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventSender publishes event jobs to Kafka, keyed by aggregate id so one
// appointment's events stay ordered. Without brokers it only logs.
type EventSender struct {
	writer messageWriter
}

func NewEventSender(cfg config.KafkaConfig) *EventSender {
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return &EventSender{}
	}
	return &EventSender{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}}
}

func (s *EventSender) Kind() notification.Kind { return notification.KindEvent }

func (s *EventSender) Send(ctx context.Context, job notification.Job) error {
	msg, err := toMessage(job)
	if err != nil {
		return err
	}
	if s.writer == nil {
		slog.InfoContext(ctx, "kafka not configured, event logged only", "job_id", job.ID, "type", job.Topic, "key", string(msg.Key))
		return nil
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "kafka write")
	}
	return nil
}

func (s *EventSender) Close() error {
	if s.writer == nil {
		return nil
	}
	return s.writer.Close()
}

func toMessage(job notification.Job) (kafka.Message, error) {
	var p notification.EventPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return kafka.Message{}, errs.Wrap(err, "decode event payload")
	}
	return kafka.Message{
		Key:   []byte(p.Key),
		Value: job.Payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(job.ID.String())},
			{Key: "event_type", Value: []byte(job.Topic)},
		},
	}, nil
}
