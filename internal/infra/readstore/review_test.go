//go:build unit

package readstore

import (
	"context"
	"regexp"
	"testing"

	"salon-backend/internal/infra"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewReadStore_RatingSummary(t *testing.T) {
	ctx := context.Background()
	stylistID := uuid.New()

	testCases := []struct {
		name          string
		count         int
		average       float64
		dbErr         error
		expectKind    infra.RepositoryErrorKind
		expectAverage float64
	}{
		{name: "with reviews", count: 3, average: 4.333, expectAverage: 4.333},
		{name: "no reviews yet", count: 0, average: 0, expectAverage: 0},
		{name: "database failure", dbErr: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer sqlDB.Close()

			exp := mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COALESCE(AVG(rating), 0)::float8 FROM reviews WHERE stylist_id = $1")).
				WithArgs(stylistID)
			if tc.dbErr != nil {
				exp.WillReturnError(tc.dbErr)
			} else {
				exp.WillReturnRows(sqlmock.NewRows([]string{"count", "avg"}).AddRow(tc.count, tc.average))
			}

			s, err := NewReviewReadStore(sqlDB).RatingSummary(ctx, stylistID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stylistID, s.StylistID)
			assert.Equal(t, tc.count, s.Count)
			assert.InDelta(t, tc.expectAverage, s.Average, 0.0001)
		})
	}
}
