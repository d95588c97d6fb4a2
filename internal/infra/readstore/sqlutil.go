package readstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/usecase/queries"

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

// queryAll runs b and maps every row with scan.
func queryAll[T any](ctx context.Context, dbtx db.DBTX, b sq.Sqlizer, scan func(rowScanner) (T, error)) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := dbtx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
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

func findOne[T any](ctx context.Context, dbtx db.DBTX, b sq.Sqlizer, scan func(rowScanner) (T, error), entity string) (T, error) {
	var zero T
	row, err := queryRow(ctx, dbtx, b)
	if err != nil {
		return zero, infra.WrapRepoErr("failed to build "+entity+" query", err)
	}
	v, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
		}
		return zero, infra.WrapRepoErr("failed to get "+entity+" view", err)
	}
	return v, nil
}

// page orders newest first and continues after the keyset when one is given.
func page(b sq.SelectBuilder, alias string, after *queries.Keyset, limit int) sq.SelectBuilder {
	if after != nil {
		b = b.Where(sq.Expr("("+alias+".created_at, "+alias+".id) < (?, ?)", after.CreatedAt, after.ID))
	}
	return b.OrderBy(alias+".created_at DESC", alias+".id DESC").Limit(uint64(limit))
}

func dateString(t time.Time) string {
	return t.UTC().Format(schedule.DateLayout)
}

func windowView(open, closeAt sql.NullInt32) *queries.WindowView {
	if !open.Valid || !closeAt.Valid {
		return nil
	}
	return &queries.WindowView{
		Open:  schedule.TimeOfDay(open.Int32).String(),
		Close: schedule.TimeOfDay(closeAt.Int32).String(),
	}
}
