package commands

//go:generate mockgen -source=account.go -destination=../../testutil/mock/commandsmock/account.go -package=commandsmock

import (
	"context"
	"slices"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/pkg/password"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type AccountCommands interface {
	// Create signs up a customer publicly; other roles need a staff principal.
	Create(ctx context.Context, p auth.Principal, in CreateAccountInput) (uuid.UUID, error)
	// Update and Delete only touch accounts whose role is in roles, so /customers/:id cannot reach an admin.
	Update(ctx context.Context, p auth.Principal, id uuid.UUID, roles []account.Role, in UpdateAccountInput) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID, roles []account.Role) error
}

type accountCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAccountCommands(uow shared.UnitOfWork, clk clock.Clock) AccountCommands {
	return &accountCommandsImpl{uow: uow, clock: clk}
}

// canCreate: customers sign up themselves, staff add stylists, admins add managers and admins.
func canCreate(p auth.Principal, role account.Role) error {
	switch role {
	case account.RoleCustomer:
		return nil
	case account.RoleStylist:
		return p.Require(account.RoleManager, account.RoleAdmin)
	case account.RoleManager, account.RoleAdmin:
		return p.Require(account.RoleAdmin)
	default:
		return ErrInvalidAccountRole
	}
}

func canUpdate(p auth.Principal, target *account.Account) error {
	if p.UserID == target.ID() {
		return nil
	}
	if target.Role().IsStaff() {
		return p.Require(account.RoleAdmin)
	}
	return p.Require(account.RoleManager, account.RoleAdmin)
}

func canDelete(p auth.Principal, target *account.Account) error {
	if target.Role() == account.RoleStylist {
		return p.Require(account.RoleManager, account.RoleAdmin)
	}
	return p.Require(account.RoleAdmin)
}

func (uc *accountCommandsImpl) Create(ctx context.Context, p auth.Principal, in CreateAccountInput) (uuid.UUID, error) {
	if err := canCreate(p, in.Role); err != nil {
		return uuid.Nil, err
	}
	pw, err := account.NewPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	a, err := account.NewAccount(account.NewAccountParams{
		Role:         in.Role,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Phone:        in.Phone,
		BranchID:     in.BranchID,
		TeamID:       in.TeamID,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Accounts().UsernameOrEmailTaken(ctx, a.Username().Value(), a.Email().Value(), uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return account.ErrUsernameOrEmailTaken
		}
		return tx.Accounts().Create(ctx, a)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return a.ID(), nil
}

func (uc *accountCommandsImpl) Update(ctx context.Context, p auth.Principal, id uuid.UUID, roles []account.Role, in UpdateAccountInput) error {
	params := account.UpdateParams{
		Username: in.Username,
		Email:    in.Email,
		Name:     in.Name,
		Phone:    in.Phone,
		BranchID: in.BranchID,
		TeamID:   in.TeamID,
	}
	if in.Password != nil {
		pw, err := account.NewPassword(*in.Password)
		if err != nil {
			return err
		}
		hash, err := password.HashPassword(pw.Value())
		if err != nil {
			return errs.Wrap(err, "hash password")
		}
		params.PasswordHash = &hash
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := findInRoles(ctx, tx, id, roles, true)
		if err != nil {
			return err
		}
		if err := canUpdate(p, a); err != nil {
			return err
		}
		if err := a.Apply(params, uc.clock.Now()); err != nil {
			return err
		}

		if in.Username != nil || in.Email != nil {
			taken, err := tx.Accounts().UsernameOrEmailTaken(ctx, a.Username().Value(), a.Email().Value(), a.ID())
			if err != nil {
				return err
			}
			if taken {
				return account.ErrUsernameOrEmailTaken
			}
		}
		return tx.Accounts().Update(ctx, a)
	})
}

func (uc *accountCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID, roles []account.Role) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := findInRoles(ctx, tx, id, roles, false)
		if err != nil {
			return err
		}
		if err := canDelete(p, a); err != nil {
			return err
		}
		return tx.Accounts().Delete(ctx, id)
	})
}

func findInRoles(ctx context.Context, tx shared.Tx, id uuid.UUID, roles []account.Role, lock bool) (*account.Account, error) {
	find := tx.Accounts().FindByID
	if lock {
		find = tx.Accounts().FindByIDForUpdate
	}
	a, err := find(ctx, id)
	if err != nil {
		return nil, orNotFound(err, ErrAccountNotFound)
	}
	if !slices.Contains(roles, a.Role()) {
		return nil, ErrAccountNotFound
	}
	return a, nil
}
