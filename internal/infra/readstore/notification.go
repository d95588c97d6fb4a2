package readstore

import (
	"context"
	"database/sql"

	"salon-backend/internal/domain/notification"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"
	"salon-backend/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

func (r *NotificationReadStore) ListFailed(ctx context.Context, after *queries.Keyset, limit int) ([]*queries.NotificationJobView, error) {
	q := psql.Select(
		"n.id", "n.kind", "n.topic", "n.payload", "n.run_at", "n.attempts", "n.status",
		"n.last_error", "n.sent_at", "n.created_at",
	).
		From("notification_jobs n").
		Where(sq.Eq{"n.status": string(notification.StatusFailed)})

	views, err := queryAll(ctx, r.db, page(q, "n", after, limit), func(row rowScanner) (*queries.NotificationJobView, error) {
		var (
			v         queries.NotificationJobView
			payload   []byte
			lastError sql.NullString
			sentAt    sql.NullTime
		)
		if err := row.Scan(
			&v.ID, &v.Kind, &v.Topic, &payload, &v.RunAt, &v.Attempts, &v.Status,
			&lastError, &sentAt, &v.CreatedAt,
		); err != nil {
			return nil, err
		}
		v.Payload = payload
		v.LastError = ptr.StringFromNull(lastError)
		v.SentAt = ptr.TimeFromNull(sentAt)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list failed notifications", err)
	}
	return views, nil
}
