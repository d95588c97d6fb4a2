package repository

import (
	"context"
	"time"

	"salon-backend/internal/domain/appointment"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var appointmentColumns = []string{
	"id", "customer_id", "stylist_id", "service_id", "branch_id", "start_at", "end_at",
	"status", "price_cents", "points_used", "discount_id", "note", "created_at", "updated_at",
}

var blockingStatuses = []string{string(appointment.StatusPending), string(appointment.StatusConfirmed)}

type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(dbtx db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: dbtx}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	ts := a.TimeSlot()
	q := psql.Insert("appointments").Columns(appointmentColumns...).Values(
		a.ID(), a.CustomerID(), a.StylistID(), a.ServiceID(), a.BranchID(),
		ts.Start().UTC(), ts.End().UTC(), a.Status().String(), a.PriceCents(), a.PointsUsed(),
		a.DiscountID(), a.Note().String(), a.CreatedAt(), a.UpdatedAt(),
	)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, a *appointment.Appointment) error {
	q := psql.Update("appointments").
		Set("status", a.Status().String()).
		Set("updated_at", a.UpdatedAt()).
		Where(sq.Eq{"id": a.ID()})
	return execOne(ctx, r.db, q, "appointment", "failed to update appointment status")
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, psql.Delete("appointments").Where(sq.Eq{"id": id}), "appointment", "failed to delete appointment")
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	return r.findOne(ctx, psql.Select(appointmentColumns...).From("appointments").Where(sq.Eq{"id": id}))
}

func (r *AppointmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	return r.findOne(ctx, psql.Select(appointmentColumns...).From("appointments").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func (r *AppointmentRepository) ListBlocking(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]schedule.Interval, error) {
	q := psql.Select("start_at", "end_at").From("appointments").
		Where(sq.Eq{"stylist_id": stylistID, "status": blockingStatuses}).
		Where(sq.Lt{"start_at": to.UTC()}).
		Where(sq.Gt{"end_at": from.UTC()}).
		OrderBy("start_at")
	rows, err := queryRows(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stylist appointments", err)
	}
	busy, err := scanAll(rows, func(row rowScanner) (schedule.Interval, error) {
		var iv schedule.Interval
		err := row.Scan(&iv.Start, &iv.End)
		return iv, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stylist appointments", err)
	}
	return busy, nil
}

func (r *AppointmentRepository) ListByStatusBetween(ctx context.Context, status appointment.Status, from, to time.Time) ([]*appointment.Appointment, error) {
	q := psql.Select(appointmentColumns...).From("appointments").
		Where(sq.Eq{"status": status.String()}).
		Where(sq.GtOrEq{"start_at": from.UTC()}).
		Where(sq.Lt{"start_at": to.UTC()}).
		OrderBy("start_at", "id")
	rows, err := queryRows(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	out, err := scanAll(rows, scanAppointment)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	return out, nil
}

func (r *AppointmentRepository) findOne(ctx context.Context, q sq.SelectBuilder) (*appointment.Appointment, error) {
	row, err := queryRow(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	a, err := scanAppointment(row)
	if err != nil {
		return nil, notFoundOr(err, "appointment", "failed to find appointment")
	}
	return a, nil
}

func scanAppointment(row rowScanner) (*appointment.Appointment, error) {
	var (
		id, customerID, stylistID, serviceID, branchID uuid.UUID
		start, end, createdAt, updatedAt               time.Time
		status, note                                   string
		priceCents                                     int64
		pointsUsed                                     int
		discountID                                     uuid.NullUUID
	)
	if err := row.Scan(&id, &customerID, &stylistID, &serviceID, &branchID, &start, &end,
		&status, &priceCents, &pointsUsed, &discountID, &note, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return appointment.ReconstructAppointment(
		id, customerID, stylistID, serviceID, branchID, start, end,
		appointment.Status(status), priceCents, pointsUsed, ptr.UUIDFromNull(discountID), note,
		createdAt, updatedAt,
	), nil
}
