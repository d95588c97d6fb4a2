//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"salon-backend/internal/domain/catalog"
	"salon-backend/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d int) schedule.Date {
	return schedule.Date{Year: 2025, Month: m, Day: d}
}

func mustRate(t *testing.T, serviceID uuid.UUID, cents int64, from, to schedule.Date) catalog.Rate {
	t.Helper()
	r, err := catalog.NewRate(serviceID, cents, from, to)
	require.NoError(t, err)
	return r
}

func TestEffectivePrice(t *testing.T) {
	svc := uuid.New()
	rates := []catalog.Rate{
		mustRate(t, svc, 5000, day(time.January, 1), day(time.December, 31)),
		mustRate(t, svc, 3500, day(time.March, 1), day(time.March, 31)),
	}

	cases := []struct {
		name  string
		date  schedule.Date
		want  int64
		found bool
	}{
		{name: "only the yearly rate", date: day(time.February, 10), want: 5000, found: true},
		{name: "overlapping rates take the minimum", date: day(time.March, 15), want: 3500, found: true},
		{name: "start date inclusive", date: day(time.March, 1), want: 3500, found: true},
		{name: "end date inclusive", date: day(time.March, 31), want: 3500, found: true},
		{name: "outside every rate", date: schedule.Date{Year: 2026, Month: time.January, Day: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := catalog.EffectivePrice(rates, tc.date)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPriceAll_ExcludesUnpriced(t *testing.T) {
	now := time.Now()
	cut, err := catalog.NewService("Cut", "", 45, now)
	require.NoError(t, err)
	colour, err := catalog.NewService("Colour", "", 120, now)
	require.NoError(t, err)

	rates := []catalog.Rate{mustRate(t, cut.ID, 4000, day(time.January, 1), day(time.June, 30))}

	got := catalog.PriceAll([]catalog.Service{cut, colour}, rates, day(time.May, 5))

	want := []catalog.PricedService{{Service: cut, PriceCents: 4000}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("priced services mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, catalog.PriceAll([]catalog.Service{cut}, rates, day(time.July, 1)))
}

func TestNewRate(t *testing.T) {
	svc := uuid.New()
	_, err := catalog.NewRate(svc, -1, day(time.January, 1), day(time.January, 2))
	assert.ErrorIs(t, err, catalog.ErrNegativeRate)

	_, err = catalog.NewRate(svc, 100, day(time.January, 2), day(time.January, 1))
	assert.ErrorIs(t, err, catalog.ErrInvalidRateRange)

	r, err := catalog.NewRate(svc, 0, day(time.January, 1), day(time.January, 1))
	require.NoError(t, err)
	assert.True(t, r.Covers(day(time.January, 1)))
}

func TestService(t *testing.T) {
	now := time.Now()
	s, err := catalog.NewService(" Cut ", "wash and cut", 45, now)
	require.NoError(t, err)
	assert.Equal(t, "Cut", s.Name)
	assert.Equal(t, 45*time.Minute, s.Duration())

	_, err = catalog.NewService("Cut", "", 0, now)
	assert.ErrorIs(t, err, catalog.ErrInvalidDuration)

	bad := ""
	err = s.Apply(catalog.ServiceUpdate{Name: &bad}, now)
	assert.ErrorIs(t, err, catalog.ErrInvalidServiceName)
	assert.Equal(t, "Cut", s.Name)
}
