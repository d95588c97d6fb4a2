package readstore

import (
	"context"

	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"
	"salon-backend/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func appointmentSelect() sq.SelectBuilder {
	return psql.Select(
		"ap.id", "ap.customer_id", "c.name", "ap.stylist_id", "st.name", "ap.service_id", "s.name",
		"ap.branch_id", "b.name", "ap.start_at", "ap.end_at", "ap.status", "ap.price_cents",
		"ap.points_used", "ap.discount_id", "ap.note", "ap.created_at", "ap.updated_at",
	).
		From("appointments ap").
		Join("accounts c ON c.id = ap.customer_id").
		Join("accounts st ON st.id = ap.stylist_id").
		Join("services s ON s.id = ap.service_id").
		Join("branches b ON b.id = ap.branch_id")
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	return findOne(ctx, r.db, appointmentSelect().Where(sq.Eq{"ap.id": id}), scanAppointmentView, "appointment")
}

func (r *AppointmentReadStore) List(ctx context.Context, f queries.AppointmentFilter, after *queries.Keyset, limit int) ([]*queries.AppointmentView, error) {
	q := appointmentSelect()
	if f.CustomerID != nil {
		q = q.Where(sq.Eq{"ap.customer_id": *f.CustomerID})
	}
	if f.StylistID != nil {
		q = q.Where(sq.Eq{"ap.stylist_id": *f.StylistID})
	}
	if f.BranchID != nil {
		q = q.Where(sq.Eq{"ap.branch_id": *f.BranchID})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"ap.status": *f.Status})
	}
	if f.From != nil {
		q = q.Where(sq.GtOrEq{"ap.start_at": f.From.UTC()})
	}
	if f.To != nil {
		q = q.Where(sq.Lt{"ap.start_at": f.To.UTC()})
	}

	views, err := queryAll(ctx, r.db, page(q, "ap", after, limit), scanAppointmentView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	return views, nil
}

func scanAppointmentView(row rowScanner) (*queries.AppointmentView, error) {
	var (
		v          queries.AppointmentView
		discountID uuid.NullUUID
	)
	if err := row.Scan(
		&v.ID, &v.CustomerID, &v.CustomerName, &v.StylistID, &v.StylistName, &v.ServiceID, &v.ServiceName,
		&v.BranchID, &v.BranchName, &v.StartAt, &v.EndAt, &v.Status, &v.PriceCents,
		&v.PointsUsed, &discountID, &v.Note, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.DiscountID = ptr.UUIDFromNull(discountID)
	return &v, nil
}
