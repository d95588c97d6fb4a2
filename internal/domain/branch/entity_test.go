//go:build unit

package branch_test

import (
	"testing"
	"time"

	"salon-backend/internal/domain/branch"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() branch.Params {
	return branch.Params{
		Name:    "Orchard",
		Address: "1 Orchard Rd",
		Weekday: &branch.WindowParams{Open: "09:00", Close: "18:00"},
		Weekend: &branch.WindowParams{Open: "10:00", Close: "16:00"},
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		b, err := branch.New(validParams(), "Asia/Singapore", now)
		require.NoError(t, err)
		assert.Equal(t, "Asia/Singapore", b.TimeZone)
		assert.Equal(t, 30, b.SlotMinutes)
		assert.Equal(t, 30*time.Minute, b.Granularity())
		require.NotNil(t, b.Hours.Weekday)
		assert.Equal(t, schedule.NewTimeOfDay(9, 0), b.Hours.Weekday.Open)
		assert.Nil(t, b.Hours.Holiday)
		assert.Equal(t, now, b.CreatedAt)
	})

	cases := []struct {
		name   string
		mutate func(*branch.Params)
		errIs  error
	}{
		{name: "empty name", mutate: func(p *branch.Params) { p.Name = " " }, errIs: branch.ErrInvalidName},
		{name: "bad zone", mutate: func(p *branch.Params) { p.TimeZone = "Mars/Olympus" }, errIs: branch.ErrInvalidTimeZone},
		{name: "bad slot minutes", mutate: func(p *branch.Params) { p.SlotMinutes = 20 }, errIs: branch.ErrInvalidSlotMinutes},
		{name: "close before open", mutate: func(p *branch.Params) {
			p.Weekday = &branch.WindowParams{Open: "18:00", Close: "09:00"}
		}, errIs: schedule.ErrInvalidWindow},
		{name: "half window", mutate: func(p *branch.Params) {
			p.Weekend = &branch.WindowParams{Open: "10:00"}
		}, errIs: branch.ErrIncompleteWindow},
		{name: "bad time", mutate: func(p *branch.Params) {
			p.Weekday = &branch.WindowParams{Open: "9am", Close: "18:00"}
		}, errIs: schedule.ErrInvalidTimeOfDay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			_, err := branch.New(p, "Asia/Singapore", now)
			require.ErrorIs(t, err, tc.errIs)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}
}

func TestApply(t *testing.T) {
	now := time.Now()
	b, err := branch.New(validParams(), "UTC", now)
	require.NoError(t, err)

	t.Run("closing a day type", func(t *testing.T) {
		c := b
		require.NoError(t, c.Apply(branch.UpdateParams{Weekend: &branch.WindowParams{}}, now))
		assert.Nil(t, c.Hours.Weekend)
		assert.NotNil(t, c.Hours.Weekday)
	})

	t.Run("failed update leaves the branch untouched", func(t *testing.T) {
		c := b
		name := "Renamed"
		bad := 45
		err := c.Apply(branch.UpdateParams{Name: &name, SlotMinutes: &bad}, now.Add(time.Hour))
		require.ErrorIs(t, err, branch.ErrInvalidSlotMinutes)
		assert.Equal(t, "Orchard", c.Name)
		assert.Equal(t, b.UpdatedAt, c.UpdatedAt)
	})

	t.Run("time zone drives location", func(t *testing.T) {
		c := b
		zone := "Asia/Tokyo"
		require.NoError(t, c.Apply(branch.UpdateParams{TimeZone: &zone}, now))
		assert.Equal(t, "Asia/Tokyo", c.Location().String())
	})
}

func TestNewHoliday(t *testing.T) {
	d := schedule.Date{Year: 2025, Month: time.August, Day: 9}
	h, err := branch.NewHoliday(nil, d, " National Day ")
	require.NoError(t, err)
	assert.Equal(t, "National Day", h.Name)
	assert.Equal(t, []schedule.Date{d}, branch.Dates([]branch.Holiday{h}))

	_, err = branch.NewHoliday(nil, d, "")
	assert.ErrorIs(t, err, branch.ErrInvalidHolidayName)
	_, err = branch.NewHoliday(nil, schedule.Date{}, "x")
	assert.ErrorIs(t, err, schedule.ErrInvalidDate)
}
