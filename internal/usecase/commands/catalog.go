package commands

//go:generate mockgen -source=catalog.go -destination=../../testutil/mock/commandsmock/catalog.go -package=commandsmock

import (
	"context"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/catalog"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogCommands interface {
	CreateService(ctx context.Context, p auth.Principal, in ServiceInput) (uuid.UUID, error)
	UpdateService(ctx context.Context, p auth.Principal, id uuid.UUID, u catalog.ServiceUpdate) error
	DeleteService(ctx context.Context, p auth.Principal, id uuid.UUID) error
	AddRate(ctx context.Context, p auth.Principal, serviceID uuid.UUID, in RateInput) (uuid.UUID, error)
	DeleteRate(ctx context.Context, p auth.Principal, serviceID, rateID uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

func requireStaff(p auth.Principal) error {
	return p.Require(account.RoleManager, account.RoleAdmin)
}

func (uc *catalogCommandsImpl) CreateService(ctx context.Context, p auth.Principal, in ServiceInput) (uuid.UUID, error) {
	if err := requireStaff(p); err != nil {
		return uuid.Nil, err
	}
	s, err := catalog.NewService(in.Name, in.Description, in.DurationMinutes, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().Create(ctx, s)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return s.ID, nil
}

func (uc *catalogCommandsImpl) UpdateService(ctx context.Context, p auth.Principal, id uuid.UUID, u catalog.ServiceUpdate) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Services().FindByID(ctx, id)
		if err != nil {
			return orNotFound(err, ErrServiceNotFound)
		}
		if err := s.Apply(u, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Services().Update(ctx, s)
	})
}

func (uc *catalogCommandsImpl) DeleteService(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return orNotFound(tx.Services().Delete(ctx, id), ErrServiceNotFound)
	})
}

func (uc *catalogCommandsImpl) AddRate(ctx context.Context, p auth.Principal, serviceID uuid.UUID, in RateInput) (uuid.UUID, error) {
	if err := requireStaff(p); err != nil {
		return uuid.Nil, err
	}
	r, err := catalog.NewRate(serviceID, in.RateCents, in.StartDate, in.EndDate)
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Services().FindByID(ctx, serviceID); err != nil {
			return orNotFound(err, ErrServiceNotFound)
		}
		return tx.Rates().Create(ctx, r)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return r.ID, nil
}

func (uc *catalogCommandsImpl) DeleteRate(ctx context.Context, p auth.Principal, serviceID, rateID uuid.UUID) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return orNotFound(tx.Rates().Delete(ctx, serviceID, rateID), ErrRateNotFound)
	})
}
