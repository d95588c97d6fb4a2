//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"salon-backend/internal/infra"
	"salon-backend/internal/usecase/queries"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountViewRowColumns = []string{
	"id", "role", "username", "email", "name", "phone",
	"branch_id", "team_id", "loyalty_points", "created_at", "updated_at",
}

func TestAccountReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	branchID := uuid.New()
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setup      func(mock sqlmock.Sqlmock)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: nullable references are mapped",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM accounts a WHERE a.id = $1")).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(accountViewRowColumns).
						AddRow(id.String(), "stylist", "sam", "sam@salon.test", "Sam", "", branchID.String(), nil, 0, now, now))
			},
		},
		{
			name: "error: not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM accounts a").WillReturnError(sql.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM accounts a").WillReturnError(assert.AnError)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer sqlDB.Close()
			tc.setup(mock)

			v, err := NewAccountReadStore(sqlDB).FindByID(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, v.ID)
				assert.Equal(t, "stylist", v.Role)
				require.NotNil(t, v.BranchID)
				assert.Equal(t, branchID, *v.BranchID)
				assert.Nil(t, v.TeamID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountReadStore_List(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()
	after := &queries.Keyset{CreatedAt: time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC), ID: uuid.New()}

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM accounts a WHERE a.role IN ($1) AND a.team_id = $2 AND (a.created_at, a.id) < ($3, $4) " +
			"ORDER BY a.created_at DESC, a.id DESC LIMIT 11")).
		WithArgs("stylist", teamID, after.CreatedAt, after.ID).
		WillReturnRows(sqlmock.NewRows(accountViewRowColumns))

	views, err := NewAccountReadStore(sqlDB).List(ctx, queries.AccountFilter{Roles: []string{"stylist"}, TeamID: &teamID}, after, 11)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
	assert.NoError(t, mock.ExpectationsWereMet())
}
