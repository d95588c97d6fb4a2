package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
)

var psql = db.PSQL

type rowScanner interface {
	Scan(dest ...any) error
}

func queryRow(ctx context.Context, dbtx db.DBTX, b sq.Sqlizer) (rowScanner, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return dbtx.QueryRowContext(ctx, query, args...), nil
}

func queryRows(ctx context.Context, dbtx db.DBTX, b sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return dbtx.QueryContext(ctx, query, args...)
}

// exec runs b and returns the number of affected rows.
func exec(ctx context.Context, dbtx db.DBTX, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := dbtx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// execOne fails with a not-found repository error when b touched no row.
func execOne(ctx context.Context, dbtx db.DBTX, b sq.Sqlizer, entity, action string) error {
	n, err := exec(ctx, dbtx, b)
	if err != nil {
		return infra.WrapRepoErr(action, err)
	}
	if n == 0 {
		return infra.WrapRepoErr(entity+" not found", sql.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func notFoundOr(err error, entity, action string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(action, err)
}

// scanAll drains rows with scan and always closes them.
func scanAll[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// dateArg renders a calendar day the way a Postgres DATE parameter accepts it.
func dateArg(d schedule.Date) string {
	return d.String()
}

// dateOf reads a DATE column, which the driver returns as midnight at offset zero.
func dateOf(t time.Time) schedule.Date {
	return schedule.DateOf(t.UTC())
}

func windowArgs(w *schedule.Window) (open, closeAt any) {
	if w == nil {
		return nil, nil
	}
	return int(w.Open), int(w.Close)
}

func windowOf(open, closeAt sql.NullInt32) *schedule.Window {
	if !open.Valid || !closeAt.Valid {
		return nil
	}
	return &schedule.Window{Open: schedule.TimeOfDay(open.Int32), Close: schedule.TimeOfDay(closeAt.Int32)}
}
