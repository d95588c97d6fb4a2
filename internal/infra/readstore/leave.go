package readstore

import (
	"context"
	"database/sql"
	"time"

	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"
	"salon-backend/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type LeaveReadStore struct {
	db db.DBTX
}

func NewLeaveReadStore(dbtx db.DBTX) *LeaveReadStore {
	return &LeaveReadStore{db: dbtx}
}

func leaveSelect() sq.SelectBuilder {
	return psql.Select(
		"l.id", "l.stylist_id", "st.name", "l.leave_type", "l.start_date", "l.end_date", "l.days",
		"l.status", "l.reason", "l.decided_by", "l.decided_at", "l.created_at", "l.updated_at",
	).
		From("leave_requests l").
		Join("accounts st ON st.id = l.stylist_id")
}

func (r *LeaveReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LeaveRequestView, error) {
	return findOne(ctx, r.db, leaveSelect().Where(sq.Eq{"l.id": id}), scanLeaveView, "leave request")
}

func (r *LeaveReadStore) List(ctx context.Context, f queries.LeaveFilter, after *queries.Keyset, limit int) ([]*queries.LeaveRequestView, error) {
	q := leaveSelect()
	if f.StylistID != nil {
		q = q.Where(sq.Eq{"l.stylist_id": *f.StylistID})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"l.status": *f.Status})
	}

	views, err := queryAll(ctx, r.db, page(q, "l", after, limit), scanLeaveView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leave requests", err)
	}
	return views, nil
}

func scanLeaveView(row rowScanner) (*queries.LeaveRequestView, error) {
	var (
		v          queries.LeaveRequestView
		start, end time.Time
		decidedBy  uuid.NullUUID
		decidedAt  sql.NullTime
	)
	if err := row.Scan(
		&v.ID, &v.StylistID, &v.StylistName, &v.LeaveType, &start, &end, &v.Days,
		&v.Status, &v.Reason, &decidedBy, &decidedAt, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.StartDate = dateString(start)
	v.EndDate = dateString(end)
	v.DecidedBy = ptr.UUIDFromNull(decidedBy)
	v.DecidedAt = ptr.TimeFromNull(decidedAt)
	return &v, nil
}
