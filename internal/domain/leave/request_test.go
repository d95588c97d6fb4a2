//go:build unit

package leave_test

import (
	"testing"
	"time"

	"salon-backend/internal/domain/leave"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now     = time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)
	apr10   = schedule.Date{Year: 2025, Month: time.April, Day: 10}
	manager = uuid.New()
)

func TestNewRequest(t *testing.T) {
	stylist := uuid.New()

	t.Run("inclusive day count", func(t *testing.T) {
		r, err := leave.NewRequest(stylist, leave.TypePaid, apr10, apr10.AddDays(2), " family ", now)
		require.NoError(t, err)
		assert.Equal(t, 3, r.Days())
		assert.Equal(t, leave.StatusPending, r.Status())
		assert.Equal(t, "family", r.Reason())
	})

	t.Run("single day", func(t *testing.T) {
		r, err := leave.NewRequest(stylist, leave.TypeUnpaid, apr10, apr10, "", now)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Days())
	})

	cases := []struct {
		name       string
		leaveType  leave.Type
		start, end schedule.Date
		errIs      error
	}{
		{name: "end before start", leaveType: leave.TypePaid, start: apr10, end: apr10.AddDays(-1), errIs: leave.ErrInvalidPeriod},
		{
			name: "crosses year", leaveType: leave.TypePaid,
			start: schedule.Date{Year: 2025, Month: time.December, Day: 30},
			end:   schedule.Date{Year: 2026, Month: time.January, Day: 2},
			errIs: leave.ErrCrossesYear,
		},
		{name: "unknown type", leaveType: leave.Type("sick"), start: apr10, end: apr10, errIs: leave.ErrInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := leave.NewRequest(stylist, tc.leaveType, tc.start, tc.end, "", now)
			require.ErrorIs(t, err, tc.errIs)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}
}

func TestApprove_DeductsExactlyOnce(t *testing.T) {
	stylist := uuid.New()
	r, err := leave.NewRequest(stylist, leave.TypePaid, apr10, apr10.AddDays(4), "", now)
	require.NoError(t, err)
	balance := leave.NewBalance(stylist, 2025, leave.Allotment{Paid: 14, Unpaid: 30}, now)

	require.NoError(t, r.Approve(manager, &balance, now))
	assert.Equal(t, leave.StatusApproved, r.Status())
	assert.Equal(t, 9, balance.AvailablePaid)
	assert.Equal(t, 30, balance.AvailableUnpaid)
	require.NotNil(t, r.DecidedBy())
	assert.Equal(t, manager, *r.DecidedBy())

	err = r.Approve(manager, &balance, now)
	require.ErrorIs(t, err, leave.ErrNotPending)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	assert.Equal(t, 9, balance.AvailablePaid)
}

func TestApprove_BalanceShrankSinceFiling(t *testing.T) {
	stylist := uuid.New()
	r, err := leave.NewRequest(stylist, leave.TypeUnpaid, apr10, apr10.AddDays(4), "", now)
	require.NoError(t, err)
	balance := leave.NewBalance(stylist, 2025, leave.Allotment{Paid: 14, Unpaid: 3}, now)

	err = r.Approve(manager, &balance, now)
	require.ErrorIs(t, err, leave.ErrBalanceUnavailable)
	assert.Equal(t, leave.StatusPending, r.Status())
	assert.Equal(t, 3, balance.AvailableUnpaid)
}

func TestRejectAndWithdraw(t *testing.T) {
	stylist := uuid.New()
	newReq := func() *leave.Request {
		r, err := leave.NewRequest(stylist, leave.TypePaid, apr10, apr10, "", now)
		require.NoError(t, err)
		return r
	}

	r := newReq()
	require.NoError(t, r.Reject(manager, now))
	assert.Equal(t, leave.StatusRejected, r.Status())
	assert.ErrorIs(t, r.Withdraw(stylist, now), leave.ErrNotPending)
	assert.NoError(t, r.CanDelete())

	w := newReq()
	err := w.Withdraw(uuid.New(), now)
	require.ErrorIs(t, err, leave.ErrNotOwner)
	assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
	require.NoError(t, w.Withdraw(stylist, now))
	assert.Equal(t, leave.StatusWithdrawn, w.Status())

	a := newReq()
	balance := leave.NewBalance(stylist, 2025, leave.Allotment{Paid: 1}, now)
	require.NoError(t, a.Approve(manager, &balance, now))
	assert.ErrorIs(t, a.CanDelete(), leave.ErrApprovedImmutable)
}

func TestBalance_Covers(t *testing.T) {
	b := leave.NewBalance(uuid.New(), 2025, leave.Allotment{Paid: 2, Unpaid: 0}, now)
	assert.NoError(t, b.Covers(leave.TypePaid, 2))
	assert.ErrorIs(t, b.Covers(leave.TypePaid, 3), leave.ErrInsufficientLeave)
	assert.ErrorIs(t, b.Covers(leave.TypeUnpaid, 1), leave.ErrInsufficientLeave)
}
