package readstore

import (
	"context"

	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func reviewSelect() sq.SelectBuilder {
	return psql.Select(
		"rv.id", "rv.appointment_id", "rv.customer_id", "c.name", "rv.stylist_id",
		"rv.rating", "rv.comment", "rv.created_at", "rv.updated_at",
	).
		From("reviews rv").
		Join("accounts c ON c.id = rv.customer_id")
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	return findOne(ctx, r.db, reviewSelect().Where(sq.Eq{"rv.id": id}), scanReviewView, "review")
}

func (r *ReviewReadStore) ListByStylist(ctx context.Context, stylistID uuid.UUID, after *queries.Keyset, limit int) ([]*queries.ReviewView, error) {
	q := reviewSelect().Where(sq.Eq{"rv.stylist_id": stylistID})
	views, err := queryAll(ctx, r.db, page(q, "rv", after, limit), scanReviewView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by stylist", err)
	}
	return views, nil
}

// RatingSummary is computed on read; a stylist without reviews gets zeros.
func (r *ReviewReadStore) RatingSummary(ctx context.Context, stylistID uuid.UUID) (*queries.RatingSummary, error) {
	q := psql.Select("COUNT(*)", "COALESCE(AVG(rating), 0)::float8").
		From("reviews").
		Where(sq.Eq{"stylist_id": stylistID})

	s := &queries.RatingSummary{StylistID: stylistID}
	row, err := queryRow(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build rating summary query", err)
	}
	if err := row.Scan(&s.Count, &s.Average); err != nil {
		return nil, infra.WrapRepoErr("failed to get rating summary", err)
	}
	return s, nil
}

func scanReviewView(row rowScanner) (*queries.ReviewView, error) {
	var v queries.ReviewView
	if err := row.Scan(
		&v.ID, &v.AppointmentID, &v.CustomerID, &v.CustomerName, &v.StylistID,
		&v.Rating, &v.Comment, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
