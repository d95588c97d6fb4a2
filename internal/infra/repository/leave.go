package repository

import (
	"context"
	"database/sql"
	"time"

	"salon-backend/internal/domain/leave"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var (
	leaveRequestColumns = []string{
		"id", "stylist_id", "leave_type", "start_date", "end_date", "days", "status", "reason",
		"decided_by", "decided_at", "created_at", "updated_at",
	}
	leaveBalanceColumns = []string{"stylist_id", "year", "available_paid", "available_unpaid", "created_at", "updated_at"}
)

type LeaveRequestRepository struct {
	db db.DBTX
}

func NewLeaveRequestRepository(dbtx db.DBTX) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: dbtx}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req *leave.Request) error {
	p := req.Period()
	q := psql.Insert("leave_requests").Columns(leaveRequestColumns...).Values(
		req.ID(), req.StylistID(), string(req.Type()), dateArg(p.From), dateArg(p.To), req.Days(),
		string(req.Status()), req.Reason(), req.DecidedBy(), req.DecidedAt(), req.CreatedAt(), req.UpdatedAt(),
	)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create leave request", err)
	}
	return nil
}

// Update persists a decision; period and type never change after filing.
func (r *LeaveRequestRepository) Update(ctx context.Context, req *leave.Request) error {
	q := psql.Update("leave_requests").SetMap(map[string]any{
		"status":     string(req.Status()),
		"decided_by": req.DecidedBy(),
		"decided_at": req.DecidedAt(),
		"updated_at": req.UpdatedAt(),
	}).Where(sq.Eq{"id": req.ID()})
	return execOne(ctx, r.db, q, "leave request", "failed to update leave request")
}

func (r *LeaveRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, psql.Delete("leave_requests").Where(sq.Eq{"id": id}), "leave request", "failed to delete leave request")
}

func (r *LeaveRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*leave.Request, error) {
	return r.findOne(ctx, psql.Select(leaveRequestColumns...).From("leave_requests").Where(sq.Eq{"id": id}))
}

func (r *LeaveRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*leave.Request, error) {
	return r.findOne(ctx, psql.Select(leaveRequestColumns...).From("leave_requests").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func (r *LeaveRequestRepository) ListApproved(ctx context.Context, stylistID uuid.UUID, from, to schedule.Date) ([]schedule.DateRange, error) {
	q := psql.Select("start_date", "end_date").From("leave_requests").
		Where(sq.Eq{"stylist_id": stylistID, "status": string(leave.StatusApproved)}).
		Where(sq.LtOrEq{"start_date": dateArg(to)}).
		Where(sq.GtOrEq{"end_date": dateArg(from)}).
		OrderBy("start_date")
	rows, err := queryRows(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved leave", err)
	}
	ranges, err := scanAll(rows, func(row rowScanner) (schedule.DateRange, error) {
		var start, end time.Time
		if err := row.Scan(&start, &end); err != nil {
			return schedule.DateRange{}, err
		}
		return schedule.DateRange{From: dateOf(start), To: dateOf(end)}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved leave", err)
	}
	return ranges, nil
}

func (r *LeaveRequestRepository) findOne(ctx context.Context, q sq.SelectBuilder) (*leave.Request, error) {
	row, err := queryRow(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find leave request", err)
	}
	var (
		id, stylistID             uuid.UUID
		leaveType, status, reason string
		start, end                time.Time
		days                      int
		decidedBy                 uuid.NullUUID
		decidedAt                 sql.NullTime
		createdAt, updatedAt      time.Time
	)
	if err := row.Scan(&id, &stylistID, &leaveType, &start, &end, &days, &status, &reason,
		&decidedBy, &decidedAt, &createdAt, &updatedAt); err != nil {
		return nil, notFoundOr(err, "leave request", "failed to find leave request")
	}
	return leave.ReconstructRequest(
		id, stylistID, leave.Type(leaveType), dateOf(start), dateOf(end), days,
		leave.Status(status), reason, ptr.UUIDFromNull(decidedBy), ptr.TimeFromNull(decidedAt),
		createdAt, updatedAt,
	), nil
}

type LeaveBalanceRepository struct {
	db db.DBTX
}

func NewLeaveBalanceRepository(dbtx db.DBTX) *LeaveBalanceRepository {
	return &LeaveBalanceRepository{db: dbtx}
}

// GetOrCreate inserts the default allotment unless the row exists, then reads it back.
// Concurrent first calls race on the primary key and only one insert wins.
func (r *LeaveBalanceRepository) GetOrCreate(ctx context.Context, stylistID uuid.UUID, year int, allotment leave.Allotment, now time.Time) (leave.GetOrCreateResult, error) {
	fresh := leave.NewBalance(stylistID, year, allotment, now)
	ins := psql.Insert("leave_balances").Columns(leaveBalanceColumns...).
		Values(fresh.StylistID, fresh.Year, fresh.AvailablePaid, fresh.AvailableUnpaid, fresh.CreatedAt, fresh.UpdatedAt).
		Suffix("ON CONFLICT (stylist_id, year) DO NOTHING")
	n, err := exec(ctx, r.db, ins)
	if err != nil {
		return leave.GetOrCreateResult{}, infra.WrapRepoErr("failed to create leave balance", err)
	}

	b, err := r.find(ctx, stylistID, year, false)
	if err != nil {
		return leave.GetOrCreateResult{}, err
	}
	return leave.GetOrCreateResult{Balance: b, Created: n == 1}, nil
}

func (r *LeaveBalanceRepository) FindForUpdate(ctx context.Context, stylistID uuid.UUID, year int) (leave.Balance, error) {
	return r.find(ctx, stylistID, year, true)
}

func (r *LeaveBalanceRepository) Update(ctx context.Context, b leave.Balance) error {
	q := psql.Update("leave_balances").SetMap(map[string]any{
		"available_paid":   b.AvailablePaid,
		"available_unpaid": b.AvailableUnpaid,
		"updated_at":       b.UpdatedAt,
	}).Where(sq.Eq{"stylist_id": b.StylistID, "year": b.Year})
	return execOne(ctx, r.db, q, "leave balance", "failed to update leave balance")
}

func (r *LeaveBalanceRepository) find(ctx context.Context, stylistID uuid.UUID, year int, lock bool) (leave.Balance, error) {
	q := psql.Select(leaveBalanceColumns...).From("leave_balances").
		Where(sq.Eq{"stylist_id": stylistID, "year": year})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	row, err := queryRow(ctx, r.db, q)
	if err != nil {
		return leave.Balance{}, infra.WrapRepoErr("failed to find leave balance", err)
	}
	var b leave.Balance
	if err := row.Scan(&b.StylistID, &b.Year, &b.AvailablePaid, &b.AvailableUnpaid, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return leave.Balance{}, notFoundOr(err, "leave balance", "failed to find leave balance")
	}
	return b, nil
}
