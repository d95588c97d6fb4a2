//go:build unit

package queries_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/infra"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/pkg/ptr"
	"salon-backend/internal/testutil/mock/queriesmock"
	"salon-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDiscountQueries_CheckCode(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		raw          string
		stored       *queries.DiscountView
		storeErr     error
		expectValid  bool
		expectReason string
		expectKind   errs.Kind
	}{
		{
			name:        "usable code, lookup is case-insensitive",
			raw:         " spring10 ",
			stored:      &queries.DiscountView{ID: uuid.New(), Code: "SPRING10", PercentOff: ptr.Of(10.0)},
			expectValid: true,
		},
		{
			name:         "expired",
			raw:          "SPRING10",
			stored:       &queries.DiscountView{ID: uuid.New(), Code: "SPRING10", PercentOff: ptr.Of(10.0), ValidTo: ptr.Of(now.Add(-time.Hour))},
			expectReason: "discount code has expired",
		},
		{
			name:         "fully redeemed",
			raw:          "SPRING10",
			stored:       &queries.DiscountView{ID: uuid.New(), Code: "SPRING10", AmountOffCents: ptr.Of(int64(500)), MaxRedemptions: ptr.Of(2), Redeemed: 2},
			expectReason: "discount code has been fully redeemed",
		},
		{
			name:       "unknown code",
			raw:        "NOPE123",
			storeErr:   infra.WrapRepoErr("discount not found", sql.ErrNoRows),
			expectKind: errs.KindNotFound,
		},
		{
			name:       "malformed code never hits the store",
			raw:        "x!",
			expectKind: errs.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockDiscountReadStore(ctrl)
			if tc.stored != nil || tc.storeErr != nil {
				store.EXPECT().FindByCode(ctx, gomock.Any()).Return(tc.stored, tc.storeErr)
			}

			check, err := queries.NewDiscountQueries(store, clock.NewMockClock(now)).CheckCode(ctx, tc.raw)
			if tc.expectKind != "" {
				assert.Equal(t, tc.expectKind, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectValid, check.Valid)
			assert.Equal(t, tc.expectReason, check.Reason)
			assert.Equal(t, tc.stored, check.Discount)
		})
	}
}

func TestDiscountQueries_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queries.NewDiscountQueries(queriesmock.NewMockDiscountReadStore(ctrl), clock.NewRealClock())

	_, err := q.List(context.Background(), principal(account.RoleManager))
	assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
}

func TestPromotionQueries_ActiveUsesSalonToday(t *testing.T) {
	ctx := context.Background()
	sgt, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)
	// 20:00 UTC on the 9th is already the 10th in Singapore.
	clk := clock.NewMockClock(time.Date(2026, 5, 9, 20, 0, 0, 0, time.UTC))

	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPromotionReadStore(ctrl)
	store.EXPECT().List(ctx, queries.PromotionFilter{ActiveOn: ptr.Of("2026-05-10")}).Return(nil, nil)
	store.EXPECT().List(ctx, queries.PromotionFilter{}).Return(nil, nil)

	q := queries.NewPromotionQueries(store, clk, sgt)
	_, err = q.List(ctx, nil, true)
	require.NoError(t, err)
	_, err = q.List(ctx, nil, false)
	require.NoError(t, err)
}
