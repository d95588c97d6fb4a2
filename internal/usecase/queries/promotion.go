package queries

//go:generate mockgen -source=promotion.go -destination=../../testutil/mock/queriesmock/promotion.go -package=queriesmock

import (
	"context"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/promotion"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/infra"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type PromotionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	List(ctx context.Context, f PromotionFilter) ([]*PromotionView, error)
}

type DiscountReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DiscountView, error)
	FindByCode(ctx context.Context, code string) (*DiscountView, error)
	List(ctx context.Context) ([]*DiscountView, error)
}

type PromotionQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	// List keeps only promotions running today in the salon's zone when activeOnly is set.
	List(ctx context.Context, branchID *uuid.UUID, activeOnly bool) ([]*PromotionView, error)
}

type DiscountQueries interface {
	Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*DiscountView, error)
	List(ctx context.Context, p auth.Principal) ([]*DiscountView, error)
	// CheckCode reports whether the code could be redeemed now. An unusable code is not an error.
	CheckCode(ctx context.Context, code string) (*DiscountCheck, error)
}

type promotionQueriesImpl struct {
	store PromotionReadStore
	clock clock.Clock
	loc   *time.Location
}

func NewPromotionQueries(store PromotionReadStore, clk clock.Clock, loc *time.Location) PromotionQueries {
	return &promotionQueriesImpl{store: store, clock: clk, loc: loc}
}

func (q *promotionQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*PromotionView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *promotionQueriesImpl) List(ctx context.Context, branchID *uuid.UUID, activeOnly bool) ([]*PromotionView, error) {
	f := PromotionFilter{BranchID: branchID}
	if activeOnly {
		today := schedule.DateOf(q.clock.Now().In(q.loc)).String()
		f.ActiveOn = &today
	}
	return q.store.List(ctx, f)
}

type discountQueriesImpl struct {
	store DiscountReadStore
	clock clock.Clock
}

func NewDiscountQueries(store DiscountReadStore, clk clock.Clock) DiscountQueries {
	return &discountQueriesImpl{store: store, clock: clk}
}

func (q *discountQueriesImpl) Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*DiscountView, error) {
	if err := p.Require(account.RoleAdmin); err != nil {
		return nil, err
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *discountQueriesImpl) List(ctx context.Context, p auth.Principal) ([]*DiscountView, error) {
	if err := p.Require(account.RoleAdmin); err != nil {
		return nil, err
	}
	return q.store.List(ctx)
}

func (q *discountQueriesImpl) CheckCode(ctx context.Context, raw string) (*DiscountCheck, error) {
	code, err := promotion.NewCode(raw)
	if err != nil {
		return nil, ErrDiscountNotFound
	}
	v, err := q.store.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}

	d := promotion.ReconstructDiscount(
		v.ID, v.Code, v.AmountOffCents, v.PercentOff,
		v.ValidFrom, v.ValidTo, v.MaxRedemptions, v.Redeemed,
		v.CreatedAt, v.UpdatedAt,
	)
	check := &DiscountCheck{Discount: v, Valid: true}
	if err := d.Validate(q.clock.Now()); err != nil {
		check.Valid = false
		check.Reason = errs.Message(err)
	}
	return check, nil
}
