//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"salon-backend/internal/domain/appointment"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

type percentOff float64

func (p percentOff) Apply(base int64) int64 {
	return base - int64(float64(base)*float64(p)/100)
}

func TestStatusTransitions(t *testing.T) {
	all := []appointment.Status{
		appointment.StatusPending, appointment.StatusConfirmed,
		appointment.StatusCompleted, appointment.StatusCancelled,
	}
	allowed := map[[2]appointment.Status]bool{
		{appointment.StatusPending, appointment.StatusConfirmed}:   true,
		{appointment.StatusPending, appointment.StatusCancelled}:   true,
		{appointment.StatusConfirmed, appointment.StatusCompleted}: true,
		{appointment.StatusConfirmed, appointment.StatusCancelled}: true,
	}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]appointment.Status{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestPrice(t *testing.T) {
	cases := []struct {
		name      string
		base      int64
		discount  appointment.Discounter
		requested int
		available int
		want      appointment.Quote
		errIs     error
	}{
		{
			name: "no discount no points",
			base: 5000,
			want: appointment.Quote{BaseCents: 5000, PriceCents: 5000},
		},
		{
			name:     "discount then points",
			base:     5000,
			discount: percentOff(20),
			// 100 points are one currency unit
			requested: 1000,
			available: 1500,
			want:      appointment.Quote{BaseCents: 5000, PriceCents: 3000, PointsUsed: 1000},
		},
		{
			name:      "points capped at the price",
			base:      800,
			requested: 1000,
			available: 1000,
			want:      appointment.Quote{BaseCents: 800, PriceCents: 0, PointsUsed: 800},
		},
		{
			name:      "more points than the customer has",
			base:      5000,
			requested: 200,
			available: 100,
			errIs:     appointment.ErrInsufficientPoints,
		},
		{
			name:      "negative points",
			base:      5000,
			requested: -1,
			errIs:     appointment.ErrInvalidPoints,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := appointment.Price(tc.base, tc.discount, tc.requested, tc.available)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, errs.KindValidation, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func book(t *testing.T, start time.Time, slots []schedule.Slot) (*appointment.Appointment, error) {
	t.Helper()
	f := appointment.NewFactory(clock.NewMockClock(now))
	return f.Book(appointment.BookParams{
		CustomerID: uuid.New(),
		StylistID:  uuid.New(),
		ServiceID:  uuid.New(),
		BranchID:   uuid.New(),
		Start:      start,
		Duration:   time.Hour,
		Available:  slots,
		Quote:      appointment.Quote{BaseCents: 5000, PriceCents: 4550, PointsUsed: 450},
		Note:       "  fringe only ",
	})
}

func TestFactory_Book(t *testing.T) {
	start := now.Add(26 * time.Hour)
	slots := []schedule.Slot{{Start: start, End: start.Add(time.Hour)}}

	t.Run("creates a pending appointment", func(t *testing.T) {
		a, err := book(t, start, slots)
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusPending, a.Status())
		assert.Equal(t, int64(4550), a.PriceCents())
		assert.Equal(t, 450, a.PointsUsed())
		assert.Equal(t, start.Add(time.Hour), a.TimeSlot().End())
		assert.Equal(t, "fringe only", a.Note().String())
		assert.Equal(t, now, a.CreatedAt())
	})

	t.Run("start not among available slots", func(t *testing.T) {
		_, err := book(t, start.Add(30*time.Minute), slots)
		require.ErrorIs(t, err, appointment.ErrSlotUnavailable)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})

	t.Run("start in the past", func(t *testing.T) {
		past := now.Add(-time.Hour)
		_, err := book(t, past, []schedule.Slot{{Start: past}})
		require.ErrorIs(t, err, appointment.ErrInPast)
	})
}

func TestAppointment_Lifecycle(t *testing.T) {
	later := now.Add(time.Hour)
	newAppt := func(status appointment.Status) *appointment.Appointment {
		return appointment.ReconstructAppointment(
			uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			now.Add(48*time.Hour), now.Add(49*time.Hour),
			status, 12345, 300, nil, "", now, now,
		)
	}

	t.Run("confirm then complete", func(t *testing.T) {
		a := newAppt(appointment.StatusPending)
		require.NoError(t, a.Confirm(later))
		require.NoError(t, a.Complete(later))
		assert.Equal(t, appointment.StatusCompleted, a.Status())
		assert.Equal(t, 123, a.EarnedPoints())
		assert.ErrorIs(t, a.CanDelete(), appointment.ErrCompletedImmutable)
	})

	t.Run("cancel refunds points", func(t *testing.T) {
		a := newAppt(appointment.StatusConfirmed)
		refund, err := a.Cancel(later)
		require.NoError(t, err)
		assert.Equal(t, 300, refund)
		assert.Equal(t, later, a.UpdatedAt())
		assert.NoError(t, a.CanDelete())
	})

	t.Run("invalid transition leaves state unchanged", func(t *testing.T) {
		a := newAppt(appointment.StatusPending)
		err := a.Complete(later)
		require.ErrorIs(t, err, appointment.ErrInvalidTransition)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		assert.Equal(t, appointment.StatusPending, a.Status())
		assert.Equal(t, now, a.UpdatedAt())

		c := newAppt(appointment.StatusCancelled)
		_, err = c.Cancel(later)
		require.ErrorIs(t, err, appointment.ErrInvalidTransition)
	})
}
