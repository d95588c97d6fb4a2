package commands

//go:generate mockgen -source=leave.go -destination=../../testutil/mock/commandsmock/leave.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/leave"
	"salon-backend/internal/domain/notification"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type LeaveCommands interface {
	Apply(ctx context.Context, p auth.Principal, in ApplyLeaveInput) (uuid.UUID, error)
	// Approve deducts the balance exactly once; a second approval is a conflict.
	Approve(ctx context.Context, p auth.Principal, id uuid.UUID) error
	Reject(ctx context.Context, p auth.Principal, id uuid.UUID) error
	Withdraw(ctx context.Context, p auth.Principal, id uuid.UUID) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
	// Balance returns the stylist's balance for year, creating it from the default allotment on first access.
	Balance(ctx context.Context, p auth.Principal, stylistID uuid.UUID, year int) (leave.GetOrCreateResult, error)
}

type leaveCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	allotment leave.Allotment
}

func NewLeaveCommands(uow shared.UnitOfWork, clk clock.Clock, allotment leave.Allotment) LeaveCommands {
	return &leaveCommandsImpl{uow: uow, clock: clk, allotment: allotment}
}

func (uc *leaveCommandsImpl) Apply(ctx context.Context, p auth.Principal, in ApplyLeaveInput) (uuid.UUID, error) {
	if err := p.Require(account.RoleStylist); err != nil {
		return uuid.Nil, err
	}
	t, err := leave.ParseType(in.LeaveType)
	if err != nil {
		return uuid.Nil, err
	}
	now := uc.clock.Now()
	req, err := leave.NewRequest(p.UserID, t, in.Start, in.End, in.Reason, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.LeaveBalances().GetOrCreate(ctx, p.UserID, req.Period().From.Year, uc.allotment, now)
		if err != nil {
			return err
		}
		if err := res.Balance.Covers(req.Type(), req.Days()); err != nil {
			return err
		}
		return tx.LeaveRequests().Create(ctx, req)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return req.ID(), nil
}

func (uc *leaveCommandsImpl) Approve(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := p.Require(account.RoleManager, account.RoleAdmin); err != nil {
		return err
	}
	var approved *leave.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.LeaveRequests().FindByIDForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, ErrLeaveNotFound)
		}
		if req.Status() != leave.StatusPending {
			return leave.ErrNotPending
		}

		year := req.Period().From.Year
		if _, err := tx.LeaveBalances().GetOrCreate(ctx, req.StylistID(), year, uc.allotment, now); err != nil {
			return err
		}
		balance, err := tx.LeaveBalances().FindForUpdate(ctx, req.StylistID(), year)
		if err != nil {
			return err
		}
		if err := req.Approve(p.UserID, &balance, now); err != nil {
			return err
		}
		if err := tx.LeaveBalances().Update(ctx, balance); err != nil {
			return err
		}
		if err := tx.LeaveRequests().Update(ctx, req); err != nil {
			return err
		}
		if err := uc.enqueueDecision(ctx, tx, req, now); err != nil {
			return err
		}
		approved = req
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "leave approved",
		"leave_id", approved.ID(),
		"stylist_id", approved.StylistID(),
		"days", approved.Days(),
		"type", approved.Type(),
	)
	return nil
}

func (uc *leaveCommandsImpl) Reject(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := p.Require(account.RoleManager, account.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.LeaveRequests().FindByIDForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, ErrLeaveNotFound)
		}
		if err := req.Reject(p.UserID, now); err != nil {
			return err
		}
		if err := tx.LeaveRequests().Update(ctx, req); err != nil {
			return err
		}
		return uc.enqueueDecision(ctx, tx, req, now)
	})
}

func (uc *leaveCommandsImpl) Withdraw(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := p.Require(account.RoleStylist); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.LeaveRequests().FindByIDForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, ErrLeaveNotFound)
		}
		if err := req.Withdraw(p.UserID, uc.clock.Now()); err != nil {
			return err
		}
		return tx.LeaveRequests().Update(ctx, req)
	})
}

func (uc *leaveCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := p.Require(account.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.LeaveRequests().FindByIDForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, ErrLeaveNotFound)
		}
		if err := req.CanDelete(); err != nil {
			return err
		}
		return tx.LeaveRequests().Delete(ctx, id)
	})
}

func (uc *leaveCommandsImpl) Balance(ctx context.Context, p auth.Principal, stylistID uuid.UUID, year int) (leave.GetOrCreateResult, error) {
	if err := p.RequireSelfOrStaff(stylistID); err != nil {
		return leave.GetOrCreateResult{}, err
	}
	var res leave.GetOrCreateResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stylist, err := tx.Accounts().FindByID(ctx, stylistID)
		if err != nil {
			return orNotFound(err, ErrStylistNotFound)
		}
		if !stylist.IsStylist() {
			return ErrStylistNotFound
		}
		res, err = tx.LeaveBalances().GetOrCreate(ctx, stylistID, year, uc.allotment, uc.clock.Now())
		return err
	})
	return res, err
}

func (uc *leaveCommandsImpl) enqueueDecision(ctx context.Context, tx shared.Tx, req *leave.Request, now time.Time) error {
	stylist, err := tx.Accounts().FindByID(ctx, req.StylistID())
	if err != nil {
		return orNotFound(err, ErrStylistNotFound)
	}
	period := req.Period()
	email, err := notification.NewEmail(notification.TopicLeaveDecided, notification.EmailPayload{
		To:      stylist.Email().Value(),
		Subject: "Your leave request was " + string(req.Status()),
		Body:    fmt.Sprintf("Hi %s, your %s leave from %s to %s was %s.", stylist.Name(), req.Type(), period.From, period.To, req.Status()),
	}, now)
	if err != nil {
		return err
	}
	event, err := notification.NewEvent(notification.TopicLeaveDecided, req.ID().String(), map[string]any{
		"leave_id":   req.ID(),
		"stylist_id": req.StylistID(),
		"status":     req.Status(),
		"days":       req.Days(),
	}, now)
	if err != nil {
		return err
	}
	return tx.Notifications().Enqueue(ctx, email, event)
}
