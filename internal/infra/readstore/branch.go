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

var branchViewColumns = []string{
	"id", "name", "address", "phone", "timezone", "slot_minutes",
	"weekday_open", "weekday_close", "weekend_open", "weekend_close", "holiday_open", "holiday_close",
	"created_at", "updated_at",
}

type BranchReadStore struct {
	db db.DBTX
}

func NewBranchReadStore(dbtx db.DBTX) *BranchReadStore {
	return &BranchReadStore{db: dbtx}
}

func (r *BranchReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BranchView, error) {
	q := psql.Select(branchViewColumns...).From("branches").Where(sq.Eq{"id": id})
	return findOne(ctx, r.db, q, scanBranchView, "branch")
}

func (r *BranchReadStore) List(ctx context.Context) ([]*queries.BranchView, error) {
	q := psql.Select(branchViewColumns...).From("branches").OrderBy("name", "id")
	views, err := queryAll(ctx, r.db, q, scanBranchView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list branches", err)
	}
	return views, nil
}

func scanBranchView(row rowScanner) (*queries.BranchView, error) {
	var (
		v                       queries.BranchView
		weekdayOpen, weekdayEnd sql.NullInt32
		weekendOpen, weekendEnd sql.NullInt32
		holidayOpen, holidayEnd sql.NullInt32
	)
	if err := row.Scan(
		&v.ID, &v.Name, &v.Address, &v.Phone, &v.TimeZone, &v.SlotMinutes,
		&weekdayOpen, &weekdayEnd, &weekendOpen, &weekendEnd, &holidayOpen, &holidayEnd,
		&v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.Weekday = windowView(weekdayOpen, weekdayEnd)
	v.Weekend = windowView(weekendOpen, weekendEnd)
	v.Holiday = windowView(holidayOpen, holidayEnd)
	return &v, nil
}

type HolidayReadStore struct {
	db db.DBTX
}

func NewHolidayReadStore(dbtx db.DBTX) *HolidayReadStore {
	return &HolidayReadStore{db: dbtx}
}

// List includes holidays that apply to every branch when filtering by branch.
func (r *HolidayReadStore) List(ctx context.Context, f queries.HolidayFilter) ([]*queries.HolidayView, error) {
	q := psql.Select("id", "branch_id", "date", "name").From("holidays")
	if f.BranchID != nil {
		q = q.Where(sq.Or{sq.Eq{"branch_id": *f.BranchID}, sq.Eq{"branch_id": nil}})
	}
	if f.From != nil {
		q = q.Where(sq.GtOrEq{"date": f.From.String()})
	}
	if f.To != nil {
		q = q.Where(sq.LtOrEq{"date": f.To.String()})
	}
	q = q.OrderBy("date", "id")

	views, err := queryAll(ctx, r.db, q, func(row rowScanner) (*queries.HolidayView, error) {
		var (
			v        queries.HolidayView
			branchID uuid.NullUUID
			date     time.Time
		)
		if err := row.Scan(&v.ID, &branchID, &date, &v.Name); err != nil {
			return nil, err
		}
		v.BranchID = ptr.UUIDFromNull(branchID)
		v.Date = dateString(date)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list holidays", err)
	}
	return views, nil
}
