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

var promotionViewColumns = []string{
	"id", "branch_id", "title", "description", "starts_on", "ends_on", "discount_id", "created_at", "updated_at",
}

type PromotionReadStore struct {
	db db.DBTX
}

func NewPromotionReadStore(dbtx db.DBTX) *PromotionReadStore {
	return &PromotionReadStore{db: dbtx}
}

func (r *PromotionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PromotionView, error) {
	q := psql.Select(promotionViewColumns...).From("promotions").Where(sq.Eq{"id": id})
	return findOne(ctx, r.db, q, scanPromotionView, "promotion")
}

// List treats promotions without a branch as running everywhere.
func (r *PromotionReadStore) List(ctx context.Context, f queries.PromotionFilter) ([]*queries.PromotionView, error) {
	q := psql.Select(promotionViewColumns...).From("promotions")
	if f.BranchID != nil {
		q = q.Where(sq.Or{sq.Eq{"branch_id": *f.BranchID}, sq.Eq{"branch_id": nil}})
	}
	if f.ActiveOn != nil {
		q = q.Where(sq.LtOrEq{"starts_on": *f.ActiveOn}).Where(sq.GtOrEq{"ends_on": *f.ActiveOn})
	}
	q = q.OrderBy("starts_on", "id")

	views, err := queryAll(ctx, r.db, q, scanPromotionView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	return views, nil
}

func scanPromotionView(row rowScanner) (*queries.PromotionView, error) {
	var (
		v                  queries.PromotionView
		branchID, discount uuid.NullUUID
		startsOn, endsOn   time.Time
	)
	if err := row.Scan(
		&v.ID, &branchID, &v.Title, &v.Description, &startsOn, &endsOn, &discount, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.BranchID = ptr.UUIDFromNull(branchID)
	v.DiscountID = ptr.UUIDFromNull(discount)
	v.StartsOn = dateString(startsOn)
	v.EndsOn = dateString(endsOn)
	return &v, nil
}

var discountViewColumns = []string{
	"id", "code", "amount_off_cents", "percent_off", "valid_from", "valid_to",
	"max_redemptions", "redeemed", "created_at", "updated_at",
}

type DiscountReadStore struct {
	db db.DBTX
}

func NewDiscountReadStore(dbtx db.DBTX) *DiscountReadStore {
	return &DiscountReadStore{db: dbtx}
}

func (r *DiscountReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DiscountView, error) {
	q := psql.Select(discountViewColumns...).From("discounts").Where(sq.Eq{"id": id})
	return findOne(ctx, r.db, q, scanDiscountView, "discount")
}

func (r *DiscountReadStore) FindByCode(ctx context.Context, code string) (*queries.DiscountView, error) {
	q := psql.Select(discountViewColumns...).From("discounts").Where(sq.Eq{"code": code})
	return findOne(ctx, r.db, q, scanDiscountView, "discount")
}

func (r *DiscountReadStore) List(ctx context.Context) ([]*queries.DiscountView, error) {
	q := psql.Select(discountViewColumns...).From("discounts").OrderBy("code")
	views, err := queryAll(ctx, r.db, q, scanDiscountView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts", err)
	}
	return views, nil
}

func scanDiscountView(row rowScanner) (*queries.DiscountView, error) {
	var (
		v                  queries.DiscountView
		amountOff          sql.NullInt64
		percentOff         sql.NullFloat64
		validFrom, validTo sql.NullTime
		maxRedemptions     sql.NullInt32
	)
	if err := row.Scan(
		&v.ID, &v.Code, &amountOff, &percentOff, &validFrom, &validTo,
		&maxRedemptions, &v.Redeemed, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.AmountOffCents = ptr.Int64FromNull(amountOff)
	if percentOff.Valid {
		v.PercentOff = ptr.Of(percentOff.Float64)
	}
	v.ValidFrom = ptr.TimeFromNull(validFrom)
	v.ValidTo = ptr.TimeFromNull(validTo)
	if maxRedemptions.Valid {
		v.MaxRedemptions = ptr.Of(int(maxRedemptions.Int32))
	}
	return &v, nil
}
