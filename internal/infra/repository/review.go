package repository

import (
	"context"
	"time"

	"salon-backend/internal/domain/review"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var reviewColumns = []string{"id", "customer_id", "stylist_id", "appointment_id", "rating", "comment", "created_at", "updated_at"}

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	q := psql.Insert("reviews").Columns(reviewColumns...).Values(
		rv.ID(), rv.CustomerID(), rv.StylistID(), rv.AppointmentID(),
		rv.Rating().Value(), rv.Comment().String(), rv.CreatedAt(), rv.UpdatedAt(),
	)
	if _, err := exec(ctx, r.db, q); err != nil {
		if db.Code(err) == db.CodeUniqueViolation {
			return review.ErrReviewAlreadyExists
		}
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	q := psql.Update("reviews").SetMap(map[string]any{
		"rating":     rv.Rating().Value(),
		"comment":    rv.Comment().String(),
		"updated_at": rv.UpdatedAt(),
	}).Where(sq.Eq{"id": rv.ID()})
	return execOne(ctx, r.db, q, "review", "failed to update review")
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, psql.Delete("reviews").Where(sq.Eq{"id": id}), "review", "failed to delete review")
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	row, err := queryRow(ctx, r.db, psql.Select(reviewColumns...).From("reviews").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	var (
		rid, customerID, stylistID, appointmentID uuid.UUID
		rating                                    int
		comment                                   string
		createdAt, updatedAt                      time.Time
	)
	if err := row.Scan(&rid, &customerID, &stylistID, &appointmentID, &rating, &comment, &createdAt, &updatedAt); err != nil {
		return nil, notFoundOr(err, "review", "failed to find review")
	}
	return review.ReconstructReview(rid, customerID, stylistID, appointmentID, rating, comment, createdAt, updatedAt), nil
}

func (r *ReviewRepository) ExistsForAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error) {
	q := psql.Select("1").From("reviews").
		Where(sq.Eq{"appointment_id": appointmentID}).
		Prefix("SELECT EXISTS(").Suffix(")")
	row, err := queryRow(ctx, r.db, q)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
