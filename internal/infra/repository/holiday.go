package repository

import (
	"context"
	"time"

	"salon-backend/internal/domain/branch"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var holidayColumns = []string{"id", "branch_id", "date", "name"}

// holidayScope matches uq_holidays_scope_date: global holidays share the nil uuid scope.
const holidayScope = "ON CONFLICT ((COALESCE(branch_id, '00000000-0000-0000-0000-000000000000'::uuid)), date) DO UPDATE SET name = EXCLUDED.name"

type HolidayRepository struct {
	db db.DBTX
}

func NewHolidayRepository(dbtx db.DBTX) *HolidayRepository {
	return &HolidayRepository{db: dbtx}
}

func (r *HolidayRepository) Create(ctx context.Context, h branch.Holiday) error {
	q := psql.Insert("holidays").Columns(holidayColumns...).
		Values(h.ID, h.BranchID, dateArg(h.Date), h.Name)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create holiday", err)
	}
	return nil
}

func (r *HolidayRepository) Upsert(ctx context.Context, h branch.Holiday) error {
	q := psql.Insert("holidays").Columns(holidayColumns...).
		Values(h.ID, h.BranchID, dateArg(h.Date), h.Name).
		Suffix(holidayScope)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to upsert holiday", err)
	}
	return nil
}

func (r *HolidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, psql.Delete("holidays").Where(sq.Eq{"id": id}), "holiday", "failed to delete holiday")
}

func (r *HolidayRepository) ListFor(ctx context.Context, branchID uuid.UUID, from, to schedule.Date) ([]branch.Holiday, error) {
	q := psql.Select(holidayColumns...).From("holidays").
		Where(sq.Or{sq.Eq{"branch_id": branchID}, sq.Eq{"branch_id": nil}}).
		Where(sq.GtOrEq{"date": dateArg(from)}).
		Where(sq.LtOrEq{"date": dateArg(to)}).
		OrderBy("date")
	rows, err := queryRows(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list holidays", err)
	}
	hs, err := scanAll(rows, scanHoliday)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list holidays", err)
	}
	return hs, nil
}

func scanHoliday(row rowScanner) (branch.Holiday, error) {
	var (
		h        branch.Holiday
		branchID uuid.NullUUID
		date     time.Time
	)
	if err := row.Scan(&h.ID, &branchID, &date, &h.Name); err != nil {
		return branch.Holiday{}, err
	}
	h.BranchID = ptr.UUIDFromNull(branchID)
	h.Date = dateOf(date)
	return h, nil
}
