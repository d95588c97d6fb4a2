package repository

import (
	"context"
	"database/sql"

	"salon-backend/internal/domain/branch"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var branchColumns = []string{
	"id", "name", "address", "phone", "timezone", "slot_minutes",
	"weekday_open", "weekday_close", "weekend_open", "weekend_close", "holiday_open", "holiday_close",
	"created_at", "updated_at",
}

type BranchRepository struct {
	db db.DBTX
}

func NewBranchRepository(dbtx db.DBTX) *BranchRepository {
	return &BranchRepository{db: dbtx}
}

func (r *BranchRepository) Create(ctx context.Context, b branch.Branch) error {
	wdOpen, wdClose := windowArgs(b.Hours.Weekday)
	weOpen, weClose := windowArgs(b.Hours.Weekend)
	hoOpen, hoClose := windowArgs(b.Hours.Holiday)
	q := psql.Insert("branches").Columns(branchColumns...).Values(
		b.ID, b.Name, b.Address, b.Phone, b.TimeZone, b.SlotMinutes,
		wdOpen, wdClose, weOpen, weClose, hoOpen, hoClose,
		b.CreatedAt, b.UpdatedAt,
	)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create branch", err)
	}
	return nil
}

func (r *BranchRepository) Update(ctx context.Context, b branch.Branch) error {
	wdOpen, wdClose := windowArgs(b.Hours.Weekday)
	weOpen, weClose := windowArgs(b.Hours.Weekend)
	hoOpen, hoClose := windowArgs(b.Hours.Holiday)
	q := psql.Update("branches").SetMap(map[string]any{
		"name":          b.Name,
		"address":       b.Address,
		"phone":         b.Phone,
		"timezone":      b.TimeZone,
		"slot_minutes":  b.SlotMinutes,
		"weekday_open":  wdOpen,
		"weekday_close": wdClose,
		"weekend_open":  weOpen,
		"weekend_close": weClose,
		"holiday_open":  hoOpen,
		"holiday_close": hoClose,
		"updated_at":    b.UpdatedAt,
	}).Where(sq.Eq{"id": b.ID})
	return execOne(ctx, r.db, q, "branch", "failed to update branch")
}

func (r *BranchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, psql.Delete("branches").Where(sq.Eq{"id": id}), "branch", "failed to delete branch")
}

func (r *BranchRepository) FindByID(ctx context.Context, id uuid.UUID) (branch.Branch, error) {
	row, err := queryRow(ctx, r.db, psql.Select(branchColumns...).From("branches").Where(sq.Eq{"id": id}))
	if err != nil {
		return branch.Branch{}, infra.WrapRepoErr("failed to find branch", err)
	}
	b, err := scanBranch(row)
	if err != nil {
		return branch.Branch{}, notFoundOr(err, "branch", "failed to find branch")
	}
	return b, nil
}

func scanBranch(row rowScanner) (branch.Branch, error) {
	var (
		b               branch.Branch
		wdOpen, wdClose sql.NullInt32
		weOpen, weClose sql.NullInt32
		hoOpen, hoClose sql.NullInt32
	)
	if err := row.Scan(&b.ID, &b.Name, &b.Address, &b.Phone, &b.TimeZone, &b.SlotMinutes,
		&wdOpen, &wdClose, &weOpen, &weClose, &hoOpen, &hoClose,
		&b.CreatedAt, &b.UpdatedAt); err != nil {
		return branch.Branch{}, err
	}
	b.Hours.Weekday = windowOf(wdOpen, wdClose)
	b.Hours.Weekend = windowOf(weOpen, weClose)
	b.Hours.Holiday = windowOf(hoOpen, hoClose)
	return b, nil
}
