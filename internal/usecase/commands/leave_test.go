//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/leave"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var allotment = leave.Allotment{Paid: 14, Unpaid: 30}

func leaveClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
}

func pendingLeave(stylistID uuid.UUID, days int) *leave.Request {
	start := schedule.Date{Year: 2026, Month: time.April, Day: 6}
	return leave.ReconstructRequest(uuid.New(), stylistID, leave.TypePaid, start, start.AddDays(days-1), days,
		leave.StatusPending, "", nil, nil, time.Time{}, time.Time{})
}

func TestLeaveCommands_Apply(t *testing.T) {
	ctx := context.Background()
	stylistID := uuid.New()
	p := auth.Principal{UserID: stylistID, Role: account.RoleStylist}
	in := commands.ApplyLeaveInput{
		LeaveType: "paid",
		Start:     schedule.Date{Year: 2026, Month: time.April, Day: 6},
		End:       schedule.Date{Year: 2026, Month: time.April, Day: 10},
	}

	t.Run("creates the balance on first use", func(t *testing.T) {
		f := newTxFixture(t)
		f.balances.EXPECT().GetOrCreate(ctx, stylistID, 2026, allotment, gomock.Any()).
			Return(leave.GetOrCreateResult{Balance: leave.NewBalance(stylistID, 2026, allotment, time.Time{}), Created: true}, nil)
		f.leaves.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *leave.Request) error {
			assert.Equal(t, 5, r.Days())
			assert.Equal(t, leave.StatusPending, r.Status())
			return nil
		})

		_, err := commands.NewLeaveCommands(f.uow, leaveClock(), allotment).Apply(ctx, p, in)
		require.NoError(t, err)
	})

	t.Run("more days than available", func(t *testing.T) {
		f := newTxFixture(t)
		f.balances.EXPECT().GetOrCreate(ctx, stylistID, 2026, allotment, gomock.Any()).
			Return(leave.GetOrCreateResult{Balance: leave.Balance{StylistID: stylistID, Year: 2026, AvailablePaid: 3}}, nil)

		_, err := commands.NewLeaveCommands(f.uow, leaveClock(), allotment).Apply(ctx, p, in)
		assert.ErrorIs(t, err, leave.ErrInsufficientLeave)
	})

	t.Run("customers cannot apply", func(t *testing.T) {
		f := newTxFixture(t)
		_, err := commands.NewLeaveCommands(f.uow, leaveClock(), allotment).Apply(ctx, principal(account.RoleCustomer), in)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}

func TestLeaveCommands_Approve(t *testing.T) {
	ctx := context.Background()
	stylistID := uuid.New()
	manager := principal(account.RoleManager)

	t.Run("deducts the balance once", func(t *testing.T) {
		f := newTxFixture(t)
		req := pendingLeave(stylistID, 3)
		balance := leave.Balance{StylistID: stylistID, Year: 2026, AvailablePaid: 14, AvailableUnpaid: 30}

		f.leaves.EXPECT().FindByIDForUpdate(ctx, req.ID()).Return(req, nil).Times(2)
		f.balances.EXPECT().GetOrCreate(ctx, stylistID, 2026, allotment, gomock.Any()).Return(leave.GetOrCreateResult{Balance: balance}, nil)
		f.balances.EXPECT().FindForUpdate(ctx, stylistID, 2026).Return(balance, nil)
		f.balances.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b leave.Balance) error {
			assert.Equal(t, 11, b.AvailablePaid)
			assert.Equal(t, 30, b.AvailableUnpaid)
			return nil
		})
		f.leaves.EXPECT().Update(ctx, req).Return(nil)
		f.accounts.EXPECT().FindByID(ctx, stylistID).Return(stylistAccount(stylistID, uuid.New()), nil)
		f.notifications.EXPECT().Enqueue(ctx, gomock.Any(), gomock.Any()).Return(nil)

		logs := captureLogs(t)
		uc := commands.NewLeaveCommands(f.uow, leaveClock(), allotment)
		require.NoError(t, uc.Approve(ctx, manager, req.ID()))
		assert.Equal(t, leave.StatusApproved, req.Status())
		assert.Contains(t, logs.String(), `"msg":"leave approved"`)
		assert.Equal(t, &manager.UserID, req.DecidedBy())

		err := uc.Approve(ctx, manager, req.ID())
		assert.ErrorIs(t, err, leave.ErrNotPending)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})

	t.Run("balance spent in the meantime", func(t *testing.T) {
		f := newTxFixture(t)
		req := pendingLeave(stylistID, 5)
		drained := leave.Balance{StylistID: stylistID, Year: 2026, AvailablePaid: 2}

		f.leaves.EXPECT().FindByIDForUpdate(ctx, req.ID()).Return(req, nil)
		f.balances.EXPECT().GetOrCreate(ctx, stylistID, 2026, allotment, gomock.Any()).Return(leave.GetOrCreateResult{Balance: drained}, nil)
		f.balances.EXPECT().FindForUpdate(ctx, stylistID, 2026).Return(drained, nil)

		err := commands.NewLeaveCommands(f.uow, leaveClock(), allotment).Approve(ctx, manager, req.ID())
		assert.ErrorIs(t, err, leave.ErrBalanceUnavailable)
		assert.Equal(t, leave.StatusPending, req.Status())
	})

	t.Run("rolled back approval is not logged", func(t *testing.T) {
		f := newTxFixture(t)
		req := pendingLeave(stylistID, 3)
		balance := leave.Balance{StylistID: stylistID, Year: 2026, AvailablePaid: 14, AvailableUnpaid: 30}

		f.leaves.EXPECT().FindByIDForUpdate(ctx, req.ID()).Return(req, nil)
		f.balances.EXPECT().GetOrCreate(ctx, stylistID, 2026, allotment, gomock.Any()).Return(leave.GetOrCreateResult{Balance: balance}, nil)
		f.balances.EXPECT().FindForUpdate(ctx, stylistID, 2026).Return(balance, nil)
		f.balances.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.leaves.EXPECT().Update(ctx, req).Return(nil)
		f.accounts.EXPECT().FindByID(ctx, stylistID).Return(stylistAccount(stylistID, uuid.New()), nil)
		f.notifications.EXPECT().Enqueue(ctx, gomock.Any(), gomock.Any()).Return(errors.New("outbox unavailable"))

		logs := captureLogs(t)
		err := commands.NewLeaveCommands(f.uow, leaveClock(), allotment).Approve(ctx, manager, req.ID())
		require.Error(t, err)
		assert.NotContains(t, logs.String(), "leave approved")
	})

	t.Run("stylists cannot approve", func(t *testing.T) {
		f := newTxFixture(t)
		err := commands.NewLeaveCommands(f.uow, leaveClock(), allotment).Approve(ctx, principal(account.RoleStylist), uuid.New())
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}

func TestLeaveCommands_Withdraw(t *testing.T) {
	ctx := context.Background()
	stylistID := uuid.New()

	t.Run("only the requester", func(t *testing.T) {
		f := newTxFixture(t)
		req := pendingLeave(stylistID, 1)
		f.leaves.EXPECT().FindByIDForUpdate(ctx, req.ID()).Return(req, nil)

		err := commands.NewLeaveCommands(f.uow, leaveClock(), allotment).Withdraw(ctx, principal(account.RoleStylist), req.ID())
		assert.ErrorIs(t, err, leave.ErrNotOwner)
	})

	t.Run("requester withdraws", func(t *testing.T) {
		f := newTxFixture(t)
		req := pendingLeave(stylistID, 1)
		f.leaves.EXPECT().FindByIDForUpdate(ctx, req.ID()).Return(req, nil)
		f.leaves.EXPECT().Update(ctx, req).Return(nil)

		p := auth.Principal{UserID: stylistID, Role: account.RoleStylist}
		require.NoError(t, commands.NewLeaveCommands(f.uow, leaveClock(), allotment).Withdraw(ctx, p, req.ID()))
		assert.Equal(t, leave.StatusWithdrawn, req.Status())
	})
}
