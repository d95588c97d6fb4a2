package commands

//go:generate mockgen -source=promotion.go -destination=../../testutil/mock/commandsmock/promotion.go -package=commandsmock

import (
	"context"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/promotion"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromotionCommands interface {
	Create(ctx context.Context, p auth.Principal, params promotion.PromotionParams) (uuid.UUID, error)
	// Replace overwrites every field of the promotion.
	Replace(ctx context.Context, p auth.Principal, id uuid.UUID, params promotion.PromotionParams) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type DiscountCommands interface {
	Create(ctx context.Context, p auth.Principal, params promotion.DiscountParams) (uuid.UUID, error)
	Replace(ctx context.Context, p auth.Principal, id uuid.UUID, params promotion.DiscountParams) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type promotionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPromotionCommands(uow shared.UnitOfWork, clk clock.Clock) PromotionCommands {
	return &promotionCommandsImpl{uow: uow, clock: clk}
}

func (uc *promotionCommandsImpl) Create(ctx context.Context, p auth.Principal, params promotion.PromotionParams) (uuid.UUID, error) {
	if err := requireStaff(p); err != nil {
		return uuid.Nil, err
	}
	promo, err := promotion.NewPromotion(params, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := checkPromotionRefs(ctx, tx, params); err != nil {
			return err
		}
		return tx.Promotions().Create(ctx, promo)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return promo.ID, nil
}

func (uc *promotionCommandsImpl) Replace(ctx context.Context, p auth.Principal, id uuid.UUID, params promotion.PromotionParams) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		promo, err := tx.Promotions().FindByID(ctx, id)
		if err != nil {
			return orNotFound(err, ErrPromotionNotFound)
		}
		if err := promo.Replace(params, uc.clock.Now()); err != nil {
			return err
		}
		if err := checkPromotionRefs(ctx, tx, params); err != nil {
			return err
		}
		return tx.Promotions().Update(ctx, promo)
	})
}

func (uc *promotionCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return orNotFound(tx.Promotions().Delete(ctx, id), ErrPromotionNotFound)
	})
}

func checkPromotionRefs(ctx context.Context, tx shared.Tx, params promotion.PromotionParams) error {
	if params.BranchID != nil {
		if _, err := tx.Branches().FindByID(ctx, *params.BranchID); err != nil {
			return orNotFound(err, ErrBranchNotFound)
		}
	}
	if params.DiscountID != nil {
		if _, err := tx.Discounts().FindByID(ctx, *params.DiscountID); err != nil {
			return orNotFound(err, ErrDiscountNotFound)
		}
	}
	return nil
}

type discountCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDiscountCommands(uow shared.UnitOfWork, clk clock.Clock) DiscountCommands {
	return &discountCommandsImpl{uow: uow, clock: clk}
}

func (uc *discountCommandsImpl) Create(ctx context.Context, p auth.Principal, params promotion.DiscountParams) (uuid.UUID, error) {
	if err := p.Require(account.RoleAdmin); err != nil {
		return uuid.Nil, err
	}
	d, err := promotion.NewDiscount(params, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Discounts().Create(ctx, d)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return d.ID(), nil
}

func (uc *discountCommandsImpl) Replace(ctx context.Context, p auth.Principal, id uuid.UUID, params promotion.DiscountParams) error {
	if err := p.Require(account.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Discounts().FindByID(ctx, id)
		if err != nil {
			return orNotFound(err, ErrDiscountNotFound)
		}
		if err := d.Replace(params, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Discounts().Update(ctx, d)
	})
}

func (uc *discountCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := p.Require(account.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return orNotFound(tx.Discounts().Delete(ctx, id), ErrDiscountNotFound)
	})
}
