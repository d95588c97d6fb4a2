//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"salon-backend/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is what every fixture account logs in with.
const DefaultPassword = "password123"

var (
	hashOnce sync.Once
	hashed   string
)

func defaultHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(DefaultPassword)
		require.NoError(t, err)
		hashed = h
	})
	return hashed
}

// CreateBranch inserts a branch open 09:00-18:00 every day on a 30 minute grid.
func CreateBranch(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO branches (name, timezone, slot_minutes,
			weekday_open, weekday_close, weekend_open, weekend_close, holiday_open, holiday_close)
		VALUES ($1, 'Asia/Singapore', 30, 9, 18, 9, 18, 10, 16)
		RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateAccount(t *testing.T, db DBLike, role, username string, branchID *uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO accounts (role, username, email, password_hash, name, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		role, username, username+"@example.com", defaultHash(t), strings.ToUpper(username[:1])+username[1:], branchID,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetLoyaltyPoints(t *testing.T, db DBLike, accountID uuid.UUID, points int) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE accounts SET loyalty_points = $2 WHERE id = $1", accountID, points)
	require.NoError(t, err)
}

// CreateService inserts a service with one rate valid for the whole current and next year.
func CreateService(t *testing.T, db DBLike, name string, minutes int, rateCents int64) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var id uuid.UUID
	err := db.QueryRow(ctx,
		"INSERT INTO services (name, duration_minutes) VALUES ($1, $2) RETURNING id", name, minutes,
	).Scan(&id)
	require.NoError(t, err)

	year := time.Now().Year()
	_, err = db.Exec(ctx,
		"INSERT INTO service_rates (service_id, rate_cents, start_date, end_date) VALUES ($1, $2, $3, $4)",
		id, rateCents, fmt.Sprintf("%d-01-01", year), fmt.Sprintf("%d-12-31", year+1))
	require.NoError(t, err)
	return id
}

type AppointmentFixture struct {
	CustomerID uuid.UUID
	StylistID  uuid.UUID
	ServiceID  uuid.UUID
	BranchID   uuid.UUID
	Start      time.Time
	Duration   time.Duration
	Status     string
	PriceCents int64
}

func CreateAppointment(t *testing.T, db DBLike, f AppointmentFixture) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO appointments (customer_id, stylist_id, service_id, branch_id, start_at, end_at, status, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		f.CustomerID, f.StylistID, f.ServiceID, f.BranchID, f.Start, f.Start.Add(f.Duration), f.Status, f.PriceCents,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

var (
	truncateOnce sync.Once
	truncateSQL  string
	truncateErr  error
)

// ResetDB truncates every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateErr = err
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				truncateErr = err
				return
			}
			tables = append(tables, name)
		}
		if err := rows.Err(); err != nil {
			truncateErr = err
			return
		}
		if len(tables) == 0 {
			truncateSQL = "SELECT 1"
			return
		}
		truncateSQL = "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	})
	if truncateErr != nil {
		return fmt.Errorf("failed to build TRUNCATE statement: %w", truncateErr)
	}
	_, err := pool.Exec(ctx, truncateSQL)
	return err
}
