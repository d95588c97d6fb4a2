//go:build unit

package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/infra"
	"salon-backend/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(t *testing.T) *account.Account {
	t.Helper()
	a, err := account.NewAccount(account.NewAccountParams{
		Role:         account.RoleCustomer,
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: "hash",
		Name:         "Jane",
	}, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return a
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows(accountColumns)
}

func TestAccountRepository_Create(t *testing.T) {
	tests := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
		expectMark error
	}{
		{name: "success"},
		{
			name:       "duplicate username maps to conflict",
			dbErr:      &pq.Error{Code: "23505", Constraint: "accounts_username_key"},
			expectKind: infra.KindDuplicateKey,
			expectMark: errs.ErrConflict,
		},
		{
			name:       "unknown branch maps to conflict",
			dbErr:      &pq.Error{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
			expectMark: errs.ErrConflict,
		},
		{
			name:       "driver failure",
			dbErr:      assert.AnError,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer sqlDB.Close()

			a := newAccount(t)
			exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts (id,role,username,email,password_hash,name,phone,branch_id,team_id,loyalty_points,created_at,updated_at)")).
				WithArgs(a.ID(), "customer", "jane", "jane@example.com", "hash", "Jane", "", nil, nil, 0, a.CreatedAt(), a.UpdatedAt())
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err = NewAccountRepository(sqlDB).Create(context.Background(), a)

			if tt.expectKind == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind))
				if tt.expectMark != nil {
					assert.True(t, errs.Is(err, tt.expectMark))
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_FindByLogin(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	id := uuid.New()
	branchID := uuid.New()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE (username = $1 OR email = $2) LIMIT 1")).
		WithArgs("jane@example.com", "jane@example.com").
		WillReturnRows(accountRows().AddRow(
			id.String(), "stylist", "jane", "jane@example.com", "hash", "Jane", "+65 9123 4567",
			branchID.String(), nil, 40, now, now,
		))

	a, err := NewAccountRepository(sqlDB).FindByLogin(context.Background(), "  Jane@Example.com ")
	require.NoError(t, err)

	assert.Equal(t, id, a.ID())
	assert.Equal(t, account.RoleStylist, a.Role())
	require.NotNil(t, a.BranchID())
	assert.Equal(t, branchID, *a.BranchID())
	assert.Nil(t, a.TeamID())
	assert.Equal(t, 40, a.LoyaltyPoints())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByID_NotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE id = $1")).
		WillReturnRows(accountRows())

	_, err = NewAccountRepository(sqlDB).FindByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByIDForUpdate_Locks(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE id = $1 FOR UPDATE")).
		WillReturnRows(accountRows().AddRow(uuid.New().String(), "customer", "jane", "jane@example.com", "hash", "Jane", "", nil, nil, 0, now, now))

	_, err = NewAccountRepository(sqlDB).FindByIDForUpdate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_UsernameOrEmailTaken(t *testing.T) {
	for _, taken := range []bool{true, false} {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)

		exclude := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM accounts WHERE (username = $1 OR email = $2) AND id <> $3 )")).
			WithArgs("jane", "jane@example.com", exclude).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(taken))

		got, err := NewAccountRepository(sqlDB).UsernameOrEmailTaken(context.Background(), "jane", "jane@example.com", exclude)
		require.NoError(t, err)
		assert.Equal(t, taken, got)
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	}
}

func TestAccountRepository_Delete(t *testing.T) {
	tests := []struct {
		name       string
		affected   int64
		expectKind infra.RepositoryErrorKind
	}{
		{name: "deleted", affected: 1},
		{name: "missing row", affected: 0, expectKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer sqlDB.Close()

			id := uuid.New()
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE id = $1")).
				WithArgs(id).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err = NewAccountRepository(sqlDB).Delete(context.Background(), id)
			if tt.expectKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.expectKind))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
