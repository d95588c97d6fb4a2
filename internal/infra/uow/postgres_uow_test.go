//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-backend/internal/usecase/shared"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithin_CommitsOnSuccess(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = NewPostgresUoW(sqlDB).Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		assert.Same(t, tx.Accounts(), tx.Accounts())
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithin_RollsBackOnError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = NewPostgresUoW(sqlDB).Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithin_RetriesSerializationFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err = NewPostgresUoW(sqlDB).Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		calls++
		if calls == 1 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithin_DoesNotRetryOtherErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err = NewPostgresUoW(sqlDB).Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		calls++
		return &pq.Error{Code: "23505"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculateBackoff(t *testing.T) {
	for attempt := 0; attempt < 3; attempt++ {
		got := calculateBackoff(attempt, 100*time.Millisecond)
		floor := time.Duration(1<<attempt) * 100 * time.Millisecond
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+1)
	}
}
