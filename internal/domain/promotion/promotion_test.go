//go:build unit

package promotion_test

import (
	"strings"
	"testing"
	"time"

	"salon-backend/internal/domain/promotion"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

func TestNewDiscount(t *testing.T) {
	cases := []struct {
		name   string
		params promotion.DiscountParams
		errIs  error
	}{
		{name: "fixed", params: promotion.DiscountParams{Code: "save10", AmountOffCents: ptr.Of[int64](1000)}},
		{name: "percent", params: promotion.DiscountParams{Code: "HALF", PercentOff: ptr.Of(50.0)}},
		{name: "both", params: promotion.DiscountParams{Code: "BOTH", AmountOffCents: ptr.Of[int64](1), PercentOff: ptr.Of(1.0)}, errIs: promotion.ErrAmbiguousDiscount},
		{name: "neither", params: promotion.DiscountParams{Code: "NONE"}, errIs: promotion.ErrAmbiguousDiscount},
		{name: "zero percent", params: promotion.DiscountParams{Code: "ZERO", PercentOff: ptr.Of(0.0)}, errIs: promotion.ErrInvalidPercent},
		{name: "over 100 percent", params: promotion.DiscountParams{Code: "MORE", PercentOff: ptr.Of(100.5)}, errIs: promotion.ErrInvalidPercent},
		{name: "bad code", params: promotion.DiscountParams{Code: "a!", AmountOffCents: ptr.Of[int64](1)}, errIs: promotion.ErrInvalidCode},
		{name: "inverted window", params: promotion.DiscountParams{
			Code: "WIN", AmountOffCents: ptr.Of[int64](1),
			ValidFrom: ptr.Of(now), ValidTo: ptr.Of(now.Add(-time.Hour)),
		}, errIs: promotion.ErrInvalidValidity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := promotion.NewDiscount(tc.params, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, promotion.Code(strings.ToUpper(tc.params.Code)), d.Code())
		})
	}
}

func TestDiscount_Apply(t *testing.T) {
	fixed, err := promotion.NewDiscount(promotion.DiscountParams{Code: "FIX", AmountOffCents: ptr.Of[int64](1500)}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), fixed.Apply(5000))
	assert.Equal(t, int64(0), fixed.Apply(1000))

	pct, err := promotion.NewDiscount(promotion.DiscountParams{Code: "PCT", PercentOff: ptr.Of(20.0)}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), pct.Apply(5000))
}

func TestDiscount_Redeem(t *testing.T) {
	d, err := promotion.NewDiscount(promotion.DiscountParams{
		Code:           "ONCE",
		AmountOffCents: ptr.Of[int64](100),
		ValidFrom:      ptr.Of(now.Add(-time.Hour)),
		ValidTo:        ptr.Of(now.Add(time.Hour)),
		MaxRedemptions: ptr.Of(1),
	}, now)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Validate(now.Add(-2*time.Hour)), promotion.ErrDiscountNotYetValid)
	assert.ErrorIs(t, d.Validate(now.Add(2*time.Hour)), promotion.ErrDiscountExpired)

	require.NoError(t, d.Redeem(now))
	assert.Equal(t, 1, d.Redeemed())
	assert.ErrorIs(t, d.Redeem(now), promotion.ErrDiscountExhausted)
	assert.Equal(t, 1, d.Redeemed())
}

func TestPromotion(t *testing.T) {
	start := schedule.Date{Year: 2025, Month: time.May, Day: 1}
	p, err := promotion.NewPromotion(promotion.PromotionParams{
		Title: "May deals", StartsOn: start, EndsOn: start.AddDays(30),
	}, now)
	require.NoError(t, err)
	assert.True(t, p.ActiveOn(start))
	assert.True(t, p.ActiveOn(start.AddDays(30)))
	assert.False(t, p.ActiveOn(start.AddDays(31)))

	_, err = promotion.NewPromotion(promotion.PromotionParams{
		Title: "Backwards", StartsOn: start, EndsOn: start.AddDays(-1),
	}, now)
	assert.ErrorIs(t, err, promotion.ErrInvalidPeriod)
}
