package readstore

import (
	"context"
	"database/sql"
	"time"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/ptr"
	"salon-backend/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// Effective price: the cheapest rate whose inclusive range covers the day.
const effectivePriceExpr = "(SELECT MIN(r.rate_cents) FROM service_rates r " +
	"WHERE r.service_id = s.id AND r.start_date <= ? AND r.end_date >= ?) AS price_cents"

var serviceViewColumns = []string{"s.id", "s.name", "s.description", "s.duration_minutes", "s.created_at", "s.updated_at"}

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID, on schedule.Date) (*queries.ServiceView, error) {
	day := on.String()
	q := psql.Select(serviceViewColumns...).
		Column(sq.Expr(effectivePriceExpr, day, day)).
		From("services s").
		Where(sq.Eq{"s.id": id})
	return findOne(ctx, r.db, q, scanServiceView, "service")
}

// ListPriced drops services without a rate covering the day.
func (r *ServiceReadStore) ListPriced(ctx context.Context, on schedule.Date) ([]*queries.ServiceView, error) {
	day := on.String()
	q := psql.Select(serviceViewColumns...).
		Column("MIN(r.rate_cents) AS price_cents").
		From("services s").
		Join("service_rates r ON r.service_id = s.id AND r.start_date <= ? AND r.end_date >= ?", day, day).
		GroupBy("s.id").
		OrderBy("s.name", "s.id")

	views, err := queryAll(ctx, r.db, q, scanServiceView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list priced services", err)
	}
	return views, nil
}

func (r *ServiceReadStore) ListRates(ctx context.Context, serviceID uuid.UUID) ([]*queries.RateView, error) {
	q := psql.Select("id", "service_id", "rate_cents", "start_date", "end_date").
		From("service_rates").
		Where(sq.Eq{"service_id": serviceID}).
		OrderBy("start_date", "id")

	views, err := queryAll(ctx, r.db, q, func(row rowScanner) (*queries.RateView, error) {
		var (
			v          queries.RateView
			start, end time.Time
		)
		if err := row.Scan(&v.ID, &v.ServiceID, &v.RateCents, &start, &end); err != nil {
			return nil, err
		}
		v.StartDate = dateString(start)
		v.EndDate = dateString(end)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service rates", err)
	}
	return views, nil
}

func scanServiceView(row rowScanner) (*queries.ServiceView, error) {
	var (
		v     queries.ServiceView
		price sql.NullInt64
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &v.DurationMinutes, &v.CreatedAt, &v.UpdatedAt, &price); err != nil {
		return nil, err
	}
	v.PriceCents = ptr.Int64FromNull(price)
	return &v, nil
}
