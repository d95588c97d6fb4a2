package repository

import (
	"context"
	"database/sql"
	"time"

	"salon-backend/internal/domain/promotion"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var (
	promotionColumns = []string{
		"id", "branch_id", "title", "description", "starts_on", "ends_on", "discount_id", "created_at", "updated_at",
	}
	discountColumns = []string{
		"id", "code", "amount_off_cents", "percent_off", "valid_from", "valid_to",
		"max_redemptions", "redeemed", "created_at", "updated_at",
	}
)

type PromotionRepository struct {
	db db.DBTX
}

func NewPromotionRepository(dbtx db.DBTX) *PromotionRepository {
	return &PromotionRepository{db: dbtx}
}

func (r *PromotionRepository) Create(ctx context.Context, p promotion.Promotion) error {
	q := psql.Insert("promotions").Columns(promotionColumns...).Values(
		p.ID, p.BranchID, p.Title, p.Description, dateArg(p.StartsOn), dateArg(p.EndsOn),
		p.DiscountID, p.CreatedAt, p.UpdatedAt,
	)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Update(ctx context.Context, p promotion.Promotion) error {
	q := psql.Update("promotions").SetMap(map[string]any{
		"branch_id":   p.BranchID,
		"title":       p.Title,
		"description": p.Description,
		"starts_on":   dateArg(p.StartsOn),
		"ends_on":     dateArg(p.EndsOn),
		"discount_id": p.DiscountID,
		"updated_at":  p.UpdatedAt,
	}).Where(sq.Eq{"id": p.ID})
	return execOne(ctx, r.db, q, "promotion", "failed to update promotion")
}

func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, psql.Delete("promotions").Where(sq.Eq{"id": id}), "promotion", "failed to delete promotion")
}

func (r *PromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (promotion.Promotion, error) {
	row, err := queryRow(ctx, r.db, psql.Select(promotionColumns...).From("promotions").Where(sq.Eq{"id": id}))
	if err != nil {
		return promotion.Promotion{}, infra.WrapRepoErr("failed to find promotion", err)
	}
	var (
		p                    promotion.Promotion
		branchID, discountID uuid.NullUUID
		startsOn, endsOn     time.Time
	)
	if err := row.Scan(&p.ID, &branchID, &p.Title, &p.Description, &startsOn, &endsOn,
		&discountID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return promotion.Promotion{}, notFoundOr(err, "promotion", "failed to find promotion")
	}
	p.BranchID = ptr.UUIDFromNull(branchID)
	p.DiscountID = ptr.UUIDFromNull(discountID)
	p.StartsOn = dateOf(startsOn)
	p.EndsOn = dateOf(endsOn)
	return p, nil
}

type DiscountRepository struct {
	db db.DBTX
}

func NewDiscountRepository(dbtx db.DBTX) *DiscountRepository {
	return &DiscountRepository{db: dbtx}
}

func (r *DiscountRepository) Create(ctx context.Context, d *promotion.Discount) error {
	q := psql.Insert("discounts").Columns(discountColumns...).Values(
		d.ID(), d.Code().String(), d.AmountOffCents(), d.PercentOff(), d.ValidFrom(), d.ValidTo(),
		d.MaxRedemptions(), d.Redeemed(), d.CreatedAt(), d.UpdatedAt(),
	)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create discount", err)
	}
	return nil
}

func (r *DiscountRepository) Update(ctx context.Context, d *promotion.Discount) error {
	q := psql.Update("discounts").SetMap(map[string]any{
		"amount_off_cents": d.AmountOffCents(),
		"percent_off":      d.PercentOff(),
		"valid_from":       d.ValidFrom(),
		"valid_to":         d.ValidTo(),
		"max_redemptions":  d.MaxRedemptions(),
		"redeemed":         d.Redeemed(),
		"updated_at":       d.UpdatedAt(),
	}).Where(sq.Eq{"id": d.ID()})
	return execOne(ctx, r.db, q, "discount", "failed to update discount")
}

func (r *DiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, psql.Delete("discounts").Where(sq.Eq{"id": id}), "discount", "failed to delete discount")
}

func (r *DiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Discount, error) {
	return r.findOne(ctx, psql.Select(discountColumns...).From("discounts").Where(sq.Eq{"id": id}))
}

// FindByCodeForUpdate locks the discount so concurrent bookings count redemptions one at a time.
func (r *DiscountRepository) FindByCodeForUpdate(ctx context.Context, code promotion.Code) (*promotion.Discount, error) {
	q := psql.Select(discountColumns...).From("discounts").Where(sq.Eq{"code": code.String()}).Suffix("FOR UPDATE")
	return r.findOne(ctx, q)
}

func (r *DiscountRepository) findOne(ctx context.Context, q sq.SelectBuilder) (*promotion.Discount, error) {
	row, err := queryRow(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find discount", err)
	}
	var (
		id                   uuid.UUID
		code                 string
		amountOff            sql.NullInt64
		percentOff           sql.NullFloat64
		validFrom, validTo   sql.NullTime
		maxRedemptions       sql.NullInt32
		redeemed             int
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &code, &amountOff, &percentOff, &validFrom, &validTo,
		&maxRedemptions, &redeemed, &createdAt, &updatedAt); err != nil {
		return nil, notFoundOr(err, "discount", "failed to find discount")
	}
	var percent *float64
	if percentOff.Valid {
		percent = ptr.Of(percentOff.Float64)
	}
	var limit *int
	if maxRedemptions.Valid {
		limit = ptr.Of(int(maxRedemptions.Int32))
	}
	return promotion.ReconstructDiscount(
		id, code, ptr.Int64FromNull(amountOff), percent,
		ptr.TimeFromNull(validFrom), ptr.TimeFromNull(validTo),
		limit, redeemed, createdAt, updatedAt,
	), nil
}
