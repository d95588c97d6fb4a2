package queries

//go:generate mockgen -source=notification.go -destination=../../testutil/mock/queriesmock/notification.go -package=queriesmock

import (
	"context"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	ListFailed(ctx context.Context, after *Keyset, limit int) ([]*NotificationJobView, error)
}

type NotificationQueries interface {
	// ListFailed is the delivery failure log, newest first.
	ListFailed(ctx context.Context, p auth.Principal, cursor *Cursor, limit int) ([]*NotificationJobView, *Cursor, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListFailed(ctx context.Context, p auth.Principal, cursor *Cursor, limit int) ([]*NotificationJobView, *Cursor, error) {
	if err := p.Require(account.RoleAdmin); err != nil {
		return nil, nil, err
	}
	after, limit, err := pageStart(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListFailed(ctx, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	rows, next := pageEnd(rows, limit, func(v *NotificationJobView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}
