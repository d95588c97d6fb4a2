package commands

//go:generate mockgen -source=team.go -destination=../../testutil/mock/commandsmock/team.go -package=commandsmock

import (
	"context"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/team"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateTeamInput struct {
	Name      *string
	ManagerID *uuid.UUID
}

type TeamCommands interface {
	Create(ctx context.Context, p auth.Principal, in TeamInput) (uuid.UUID, error)
	Update(ctx context.Context, p auth.Principal, id uuid.UUID, in UpdateTeamInput) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type teamCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTeamCommands(uow shared.UnitOfWork, clk clock.Clock) TeamCommands {
	return &teamCommandsImpl{uow: uow, clock: clk}
}

func (uc *teamCommandsImpl) Create(ctx context.Context, p auth.Principal, in TeamInput) (uuid.UUID, error) {
	if err := requireStaff(p); err != nil {
		return uuid.Nil, err
	}
	t, err := team.New(in.BranchID, in.Name, in.ManagerID, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Branches().FindByID(ctx, t.BranchID); err != nil {
			return orNotFound(err, ErrBranchNotFound)
		}
		if err := checkTeamManager(ctx, tx, t.ManagerID); err != nil {
			return err
		}
		return tx.Teams().Create(ctx, t)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return t.ID, nil
}

func (uc *teamCommandsImpl) Update(ctx context.Context, p auth.Principal, id uuid.UUID, in UpdateTeamInput) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Teams().FindByID(ctx, id)
		if err != nil {
			return orNotFound(err, ErrTeamNotFound)
		}
		if err := t.Apply(in.Name, in.ManagerID, uc.clock.Now()); err != nil {
			return err
		}
		if err := checkTeamManager(ctx, tx, in.ManagerID); err != nil {
			return err
		}
		return tx.Teams().Update(ctx, t)
	})
}

func (uc *teamCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return orNotFound(tx.Teams().Delete(ctx, id), ErrTeamNotFound)
	})
}

// checkTeamManager accepts a stylist or staff account as the team lead.
func checkTeamManager(ctx context.Context, tx shared.Tx, managerID *uuid.UUID) error {
	if managerID == nil {
		return nil
	}
	m, err := tx.Accounts().FindByID(ctx, *managerID)
	if err != nil {
		return orNotFound(err, ErrAccountNotFound)
	}
	if m.Role() == account.RoleCustomer {
		return ErrInvalidAccountRole
	}
	return nil
}
