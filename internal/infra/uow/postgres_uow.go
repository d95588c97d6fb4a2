package uow

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"salon-backend/internal/infra/db"
	"salon-backend/internal/infra/repository"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/usecase/shared"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

const (
	maxRetries  = 3
	backoffBase = 100 * time.Millisecond
)

type PostgresUoW struct {
	db *sql.DB
}

func NewPostgresUoW(sqlDB *sql.DB) shared.UnitOfWork {
	return &PostgresUoW{db: sqlDB}
}

// ReadCommitted plus explicit row locks; serialization failures and deadlocks are retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runReadOnlyTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.db)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		sqlTx, err := u.db.BeginTx(ctx, opts)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, newTx(sqlTx))
		if err == nil {
			if err = sqlTx.Commit(); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := sqlTx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
		}

		if !shouldRetry(err, attempt) {
			if attempt == maxRetries && db.IsRetryable(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, backoffBase)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	sqlTx, err := u.db.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := sqlTx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
		}
	}()

	if err := fn(ctx, newTx(sqlTx)); err != nil {
		return err
	}

	return sqlTx.Commit()
}

func shouldRetry(err error, attempt int) bool {
	return db.IsRetryable(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

// pgTx hands out repositories bound to one transaction, created on first use.
type pgTx struct {
	dbtx db.DBTX

	accounts      shared.AccountRepository
	branches      shared.BranchRepository
	holidays      shared.HolidayRepository
	services      shared.ServiceRepository
	rates         shared.RateRepository
	appointments  shared.AppointmentRepository
	leaveRequests shared.LeaveRequestRepository
	leaveBalances shared.LeaveBalanceRepository
	reviews       shared.ReviewRepository
	transactions  shared.TransactionRepository
	promotions    shared.PromotionRepository
	discounts     shared.DiscountRepository
	teams         shared.TeamRepository
	notifications shared.NotificationRepository
}

func newTx(dbtx db.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx}
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Accounts() shared.AccountRepository {
	if t.accounts == nil {
		t.accounts = repository.NewAccountRepository(t.dbtx)
	}
	return t.accounts
}

func (t *pgTx) Branches() shared.BranchRepository {
	if t.branches == nil {
		t.branches = repository.NewBranchRepository(t.dbtx)
	}
	return t.branches
}

func (t *pgTx) Holidays() shared.HolidayRepository {
	if t.holidays == nil {
		t.holidays = repository.NewHolidayRepository(t.dbtx)
	}
	return t.holidays
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.services == nil {
		t.services = repository.NewServiceRepository(t.dbtx)
	}
	return t.services
}

func (t *pgTx) Rates() shared.RateRepository {
	if t.rates == nil {
		t.rates = repository.NewRateRepository(t.dbtx)
	}
	return t.rates
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointments == nil {
		t.appointments = repository.NewAppointmentRepository(t.dbtx)
	}
	return t.appointments
}

func (t *pgTx) LeaveRequests() shared.LeaveRequestRepository {
	if t.leaveRequests == nil {
		t.leaveRequests = repository.NewLeaveRequestRepository(t.dbtx)
	}
	return t.leaveRequests
}

func (t *pgTx) LeaveBalances() shared.LeaveBalanceRepository {
	if t.leaveBalances == nil {
		t.leaveBalances = repository.NewLeaveBalanceRepository(t.dbtx)
	}
	return t.leaveBalances
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviews == nil {
		t.reviews = repository.NewReviewRepository(t.dbtx)
	}
	return t.reviews
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactions == nil {
		t.transactions = repository.NewTransactionRepository(t.dbtx)
	}
	return t.transactions
}

func (t *pgTx) Promotions() shared.PromotionRepository {
	if t.promotions == nil {
		t.promotions = repository.NewPromotionRepository(t.dbtx)
	}
	return t.promotions
}

func (t *pgTx) Discounts() shared.DiscountRepository {
	if t.discounts == nil {
		t.discounts = repository.NewDiscountRepository(t.dbtx)
	}
	return t.discounts
}

func (t *pgTx) Teams() shared.TeamRepository {
	if t.teams == nil {
		t.teams = repository.NewTeamRepository(t.dbtx)
	}
	return t.teams
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notifications == nil {
		t.notifications = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notifications
}
