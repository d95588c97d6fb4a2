package commands

//go:generate mockgen -source=branch.go -destination=../../testutil/mock/commandsmock/branch.go -package=commandsmock

import (
	"context"
	"log/slog"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/branch"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type BranchCommands interface {
	Create(ctx context.Context, p auth.Principal, params branch.Params) (uuid.UUID, error)
	Update(ctx context.Context, p auth.Principal, id uuid.UUID, params branch.UpdateParams) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
	CreateHoliday(ctx context.Context, p auth.Principal, in HolidayInput) (uuid.UUID, error)
	DeleteHoliday(ctx context.Context, p auth.Principal, id uuid.UUID) error
	// ImportHolidays upserts a calendar loaded at startup and returns how many entries were written.
	ImportHolidays(ctx context.Context, in []HolidayInput) (int, error)
}

type branchCommandsImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	defaultZone string
}

func NewBranchCommands(uow shared.UnitOfWork, clk clock.Clock, defaultZone string) BranchCommands {
	return &branchCommandsImpl{uow: uow, clock: clk, defaultZone: defaultZone}
}

func (uc *branchCommandsImpl) Create(ctx context.Context, p auth.Principal, params branch.Params) (uuid.UUID, error) {
	if err := p.Require(account.RoleAdmin); err != nil {
		return uuid.Nil, err
	}
	b, err := branch.New(params, uc.defaultZone, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Branches().Create(ctx, b)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID, nil
}

func (uc *branchCommandsImpl) Update(ctx context.Context, p auth.Principal, id uuid.UUID, params branch.UpdateParams) error {
	if err := p.Require(account.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Branches().FindByID(ctx, id)
		if err != nil {
			return orNotFound(err, ErrBranchNotFound)
		}
		if err := b.Apply(params, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Branches().Update(ctx, b)
	})
}

func (uc *branchCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := p.Require(account.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return orNotFound(tx.Branches().Delete(ctx, id), ErrBranchNotFound)
	})
}

func (uc *branchCommandsImpl) CreateHoliday(ctx context.Context, p auth.Principal, in HolidayInput) (uuid.UUID, error) {
	if err := p.Require(account.RoleAdmin); err != nil {
		return uuid.Nil, err
	}
	h, err := branch.NewHoliday(in.BranchID, in.Date, in.Name)
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if h.BranchID != nil {
			if _, err := tx.Branches().FindByID(ctx, *h.BranchID); err != nil {
				return orNotFound(err, ErrBranchNotFound)
			}
		}
		return tx.Holidays().Create(ctx, h)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return h.ID, nil
}

func (uc *branchCommandsImpl) DeleteHoliday(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := p.Require(account.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return orNotFound(tx.Holidays().Delete(ctx, id), ErrHolidayNotFound)
	})
}

func (uc *branchCommandsImpl) ImportHolidays(ctx context.Context, in []HolidayInput) (int, error) {
	holidays := make([]branch.Holiday, 0, len(in))
	for _, item := range in {
		h, err := branch.NewHoliday(item.BranchID, item.Date, item.Name)
		if err != nil {
			return 0, err
		}
		holidays = append(holidays, h)
	}
	if len(holidays) == 0 {
		return 0, nil
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, h := range holidays {
			if err := tx.Holidays().Upsert(ctx, h); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "holiday calendar imported", "count", len(holidays))
	return len(holidays), nil
}
