//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/branch"
	"salon-backend/internal/domain/catalog"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/infra"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBranchCommands_Create(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	t.Run("zone defaults to the app zone", func(t *testing.T) {
		f := newTxFixture(t)
		f.branches.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b branch.Branch) error {
			assert.Equal(t, "Asia/Singapore", b.TimeZone)
			assert.Equal(t, 30, b.SlotMinutes)
			require.NotNil(t, b.Hours.Weekday)
			assert.Equal(t, "09:00", b.Hours.Weekday.Open.String())
			assert.Nil(t, b.Hours.Weekend)
			return nil
		})

		_, err := commands.NewBranchCommands(f.uow, clk, "Asia/Singapore").Create(ctx, principal(account.RoleAdmin), branch.Params{
			Name:    "Orchard",
			Weekday: &branch.WindowParams{Open: "09:00", Close: "18:00"},
		})
		require.NoError(t, err)
	})

	t.Run("managers cannot create branches", func(t *testing.T) {
		f := newTxFixture(t)
		_, err := commands.NewBranchCommands(f.uow, clk, "Asia/Singapore").Create(ctx, principal(account.RoleManager), branch.Params{Name: "Orchard"})
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}

func TestBranchCommands_ImportHolidays(t *testing.T) {
	ctx := context.Background()
	f := newTxFixture(t)
	in := []commands.HolidayInput{
		{Date: schedule.Date{Year: 2026, Month: time.January, Day: 1}, Name: "New Year's Day"},
		{Date: schedule.Date{Year: 2026, Month: time.August, Day: 9}, Name: "National Day"},
	}
	f.holidays.EXPECT().Upsert(ctx, gomock.Any()).Times(2).Return(nil)

	n, err := commands.NewBranchCommands(f.uow, clock.NewRealClock(), "UTC").ImportHolidays(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCatalogCommands_AddRate(t *testing.T) {
	ctx := context.Background()
	serviceID := uuid.New()
	start := schedule.Date{Year: 2026, Month: time.March, Day: 1}

	t.Run("end before start", func(t *testing.T) {
		f := newTxFixture(t)
		_, err := commands.NewCatalogCommands(f.uow, clock.NewRealClock()).AddRate(ctx, principal(account.RoleManager), serviceID,
			commands.RateInput{RateCents: 4500, StartDate: start, EndDate: start.AddDays(-1)})
		assert.ErrorIs(t, err, catalog.ErrInvalidRateRange)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newTxFixture(t)
		f.services.EXPECT().FindByID(ctx, serviceID).Return(catalog.Service{}, infra.WrapRepoErr("service not found", nil, infra.KindNotFound))

		_, err := commands.NewCatalogCommands(f.uow, clock.NewRealClock()).AddRate(ctx, principal(account.RoleManager), serviceID,
			commands.RateInput{RateCents: 4500, StartDate: start, EndDate: start})
		assert.ErrorIs(t, err, commands.ErrServiceNotFound)
	})
}
