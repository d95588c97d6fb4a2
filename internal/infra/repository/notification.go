package repository

import (
	"context"
	"database/sql"
	"time"

	"salon-backend/internal/domain/notification"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"

	sq "github.com/Masterminds/squirrel"
)

var notificationColumns = []string{
	"id", "kind", "topic", "payload", "run_at", "status", "attempts", "last_error", "sent_at", "created_at",
}

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

// Enqueue writes all jobs in one statement.
func (r *NotificationRepository) Enqueue(ctx context.Context, jobs ...notification.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	q := psql.Insert("notification_jobs").Columns(notificationColumns...)
	for _, j := range jobs {
		q = q.Values(j.ID, string(j.Kind), j.Topic, string(j.Payload), j.RunAt, string(j.Status),
			j.Attempts, j.LastError, j.SentAt, j.CreatedAt)
	}
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to enqueue notifications", err)
	}
	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]notification.Job, error) {
	q := psql.Select(notificationColumns...).From("notification_jobs").
		Where(sq.Eq{"status": string(notification.StatusPending)}).
		Where(sq.LtOrEq{"run_at": now}).
		OrderBy("run_at", "id").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED")
	rows, err := queryRows(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notifications", err)
	}
	jobs, err := scanAll(rows, scanJob)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notifications", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) Update(ctx context.Context, j notification.Job) error {
	q := psql.Update("notification_jobs").SetMap(map[string]any{
		"status":     string(j.Status),
		"attempts":   j.Attempts,
		"last_error": j.LastError,
		"run_at":     j.RunAt,
		"sent_at":    j.SentAt,
	}).Where(sq.Eq{"id": j.ID})
	return execOne(ctx, r.db, q, "notification job", "failed to update notification job")
}

func scanJob(row rowScanner) (notification.Job, error) {
	var (
		j            notification.Job
		kind, status string
		payload      []byte
		lastError    sql.NullString
		sentAt       sql.NullTime
	)
	if err := row.Scan(&j.ID, &kind, &j.Topic, &payload, &j.RunAt, &status, &j.Attempts,
		&lastError, &sentAt, &j.CreatedAt); err != nil {
		return notification.Job{}, err
	}
	j.Kind = notification.Kind(kind)
	j.Status = notification.Status(status)
	j.Payload = payload
	j.LastError = ptr.StringFromNull(lastError)
	j.SentAt = ptr.TimeFromNull(sentAt)
	return j, nil
}
