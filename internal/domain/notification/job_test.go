//go:build unit

package notification_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"salon-backend/internal/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

func TestNewEmail(t *testing.T) {
	job, err := notification.NewEmail(notification.TopicAppointmentBooked, notification.EmailPayload{
		To: "amy@example.com", Subject: "Booked", Body: "See you",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, notification.KindEmail, job.Kind)
	assert.Equal(t, notification.StatusPending, job.Status)
	assert.Equal(t, now, job.RunAt)

	var p notification.EmailPayload
	require.NoError(t, json.Unmarshal(job.Payload, &p))
	assert.Equal(t, "amy@example.com", p.To)
}

func TestMarkAttemptFailed(t *testing.T) {
	job, err := notification.NewSMS("t", notification.SMSPayload{To: "+6590000000", Body: "hi"}, now)
	require.NoError(t, err)

	job.MarkAttemptFailed(errors.New("smtp down"), now, 30*time.Second, 3)
	assert.Equal(t, notification.StatusPending, job.Status)
	assert.Equal(t, 1, job.Attempts)
	assert.Equal(t, now.Add(30*time.Second), job.RunAt)
	require.NotNil(t, job.LastError)
	assert.Equal(t, "smtp down", *job.LastError)

	job.MarkAttemptFailed(errors.New("again"), now, 30*time.Second, 3)
	assert.Equal(t, now.Add(time.Minute), job.RunAt)

	job.MarkAttemptFailed(errors.New("last"), now, 30*time.Second, 3)
	assert.Equal(t, notification.StatusFailed, job.Status)
	assert.Equal(t, 3, job.Attempts)
}

func TestMarkSent(t *testing.T) {
	job, err := notification.NewEvent(notification.TopicAppointmentCompleted, "k", nil, now)
	require.NoError(t, err)
	job.MarkSent(now)
	assert.Equal(t, notification.StatusSent, job.Status)
	require.NotNil(t, job.SentAt)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, 10*time.Second, notification.Backoff(10*time.Second, 0))
	assert.Equal(t, 40*time.Second, notification.Backoff(10*time.Second, 3))
	assert.Equal(t, 6*time.Hour, notification.Backoff(time.Hour, 20))
}

func TestLease(t *testing.T) {
	job, err := notification.NewEmail("t", notification.EmailPayload{To: "amy@example.com"}, now)
	require.NoError(t, err)

	job.Lease(now, 2*time.Minute)
	assert.Equal(t, now.Add(2*time.Minute), job.RunAt)
	assert.Equal(t, notification.StatusPending, job.Status)
	assert.Zero(t, job.Attempts)
}
