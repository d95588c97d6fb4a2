package queries

//go:generate mockgen -source=review.go -destination=../../testutil/mock/queriesmock/review.go -package=queriesmock

import (
	"context"
	"time"

	"salon-backend/internal/infra"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByStylist(ctx context.Context, stylistID uuid.UUID, after *Keyset, limit int) ([]*ReviewView, error)
	RatingSummary(ctx context.Context, stylistID uuid.UUID) (*RatingSummary, error)
}

// ReviewQueries are public reads.
type ReviewQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByStylist(ctx context.Context, stylistID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	StylistRating(ctx context.Context, stylistID uuid.UUID) (*RatingSummary, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *reviewQueriesImpl) ListByStylist(ctx context.Context, stylistID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	after, limit, err := pageStart(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByStylist(ctx, stylistID, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	rows, next := pageEnd(rows, limit, reviewKey)
	return rows, next, nil
}

// StylistRating reports a zero count and average for a stylist without reviews.
func (q *reviewQueriesImpl) StylistRating(ctx context.Context, stylistID uuid.UUID) (*RatingSummary, error) {
	return q.store.RatingSummary(ctx, stylistID)
}

func reviewKey(v *ReviewView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
