//go:build unit

package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"salon-backend/internal/domain/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_Enqueue(t *testing.T) {
	now := time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC)

	t.Run("no jobs is a no-op", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		require.NoError(t, NewNotificationRepository(sqlDB).Enqueue(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("jobs are written in one statement", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		email, err := notification.NewEmail(notification.TopicAppointmentBooked,
			notification.EmailPayload{To: "jane@example.com", Subject: "Booked", Body: "See you"}, now)
		require.NoError(t, err)
		sms, err := notification.NewSMS(notification.TopicAppointmentBooked,
			notification.SMSPayload{To: "+6591234567", Body: "See you"}, now)
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notification_jobs") + ".*" +
			regexp.QuoteMeta("VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10),($11,")).
			WillReturnResult(sqlmock.NewResult(0, 2))

		require.NoError(t, NewNotificationRepository(sqlDB).Enqueue(context.Background(), email, sms))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	now := time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM notification_jobs WHERE status = $1 AND run_at <= $2 ORDER BY run_at, id LIMIT 20 FOR UPDATE SKIP LOCKED")).
		WithArgs("pending", now).
		WillReturnRows(sqlmock.NewRows(notificationColumns).AddRow(
			id.String(), "sms", notification.TopicAppointmentReminder, []byte(`{"to":"+6591234567","body":"hi"}`),
			now, "pending", 2, "timeout", nil, now,
		))

	jobs, err := NewNotificationRepository(sqlDB).ClaimDue(context.Background(), now, 20)
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, id, jobs[0].ID)
	assert.Equal(t, notification.KindSMS, jobs[0].Kind)
	assert.Equal(t, 2, jobs[0].Attempts)
	require.NotNil(t, jobs[0].LastError)
	assert.Equal(t, "timeout", *jobs[0].LastError)
	assert.Nil(t, jobs[0].SentAt)
	assert.JSONEq(t, `{"to":"+6591234567","body":"hi"}`, string(jobs[0].Payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}
