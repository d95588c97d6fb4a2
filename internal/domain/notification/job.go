package notification

import (
	"encoding/json"
	"math"
	"time"

	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type Kind string

const (
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
	KindEvent Kind = "event"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Topics name what happened; the dispatcher does not interpret them.
const (
	TopicAppointmentBooked    = "appointment.booked"
	TopicAppointmentConfirmed = "appointment.confirmed"
	TopicAppointmentCompleted = "appointment.completed"
	TopicAppointmentCancelled = "appointment.cancelled"
	TopicAppointmentReminder  = "appointment.reminder"
	TopicLeaveDecided         = "leave.decided"
)

const maxBackoff = 6 * time.Hour

// Job is one outbox row. It is written in the same transaction as the change it reports.
type Job struct {
	ID        uuid.UUID
	Kind      Kind
	Topic     string
	Payload   json.RawMessage
	RunAt     time.Time
	Status    Status
	Attempts  int
	LastError *string
	SentAt    *time.Time
	CreatedAt time.Time
}

type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SMSPayload struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

type EventPayload struct {
	Key  string         `json:"key"`
	Type string         `json:"type"`
	At   time.Time      `json:"at"`
	Data map[string]any `json:"data,omitempty"`
}

func NewJob(kind Kind, topic string, payload any, runAt time.Time) (Job, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Job{}, errs.Wrap(err, "marshal notification payload")
	}
	return Job{
		ID:        uuid.New(),
		Kind:      kind,
		Topic:     topic,
		Payload:   raw,
		RunAt:     runAt,
		Status:    StatusPending,
		CreatedAt: runAt,
	}, nil
}

func NewEmail(topic string, p EmailPayload, now time.Time) (Job, error) {
	return NewJob(KindEmail, topic, p, now)
}

func NewSMS(topic string, p SMSPayload, now time.Time) (Job, error) {
	return NewJob(KindSMS, topic, p, now)
}

func NewEvent(topic, key string, data map[string]any, now time.Time) (Job, error) {
	return NewJob(KindEvent, topic, EventPayload{Key: key, Type: topic, At: now, Data: data}, now)
}

// Lease pushes run_at past the send window so a concurrent dispatcher skips the job.
// A job whose outcome is never recorded becomes due again once the lease lapses.
func (j *Job) Lease(now time.Time, d time.Duration) {
	j.RunAt = now.Add(d)
}

func (j *Job) MarkSent(now time.Time) {
	j.Status = StatusSent
	j.Attempts++
	j.SentAt = &now
	j.LastError = nil
}

// MarkAttemptFailed reschedules the job, or fails it for good once maxAttempts is reached.
func (j *Job) MarkAttemptFailed(cause error, now time.Time, base time.Duration, maxAttempts int) {
	j.Attempts++
	msg := cause.Error()
	j.LastError = &msg
	if j.Attempts >= maxAttempts {
		j.Status = StatusFailed
		return
	}
	j.RunAt = now.Add(Backoff(base, j.Attempts))
}

// Backoff doubles per attempt starting at base and is capped.
func Backoff(base time.Duration, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := time.Duration(float64(base) * math.Pow(2, float64(attempts-1)))
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}
