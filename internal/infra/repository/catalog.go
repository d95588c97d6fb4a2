package repository

import (
	"context"
	"time"

	"salon-backend/internal/domain/catalog"
	"salon-backend/internal/infra"
	"salon-backend/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var (
	serviceColumns = []string{"id", "name", "description", "duration_minutes", "created_at", "updated_at"}
	rateColumns    = []string{"id", "service_id", "rate_cents", "start_date", "end_date"}
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

func (r *ServiceRepository) Create(ctx context.Context, s catalog.Service) error {
	q := psql.Insert("services").Columns(serviceColumns...).
		Values(s.ID, s.Name, s.Description, s.DurationMinutes, s.CreatedAt, s.UpdatedAt)
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s catalog.Service) error {
	q := psql.Update("services").SetMap(map[string]any{
		"name":             s.Name,
		"description":      s.Description,
		"duration_minutes": s.DurationMinutes,
		"updated_at":       s.UpdatedAt,
	}).Where(sq.Eq{"id": s.ID})
	return execOne(ctx, r.db, q, "service", "failed to update service")
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, psql.Delete("services").Where(sq.Eq{"id": id}), "service", "failed to delete service")
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (catalog.Service, error) {
	row, err := queryRow(ctx, r.db, psql.Select(serviceColumns...).From("services").Where(sq.Eq{"id": id}))
	if err != nil {
		return catalog.Service{}, infra.WrapRepoErr("failed to find service", err)
	}
	var s catalog.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return catalog.Service{}, notFoundOr(err, "service", "failed to find service")
	}
	return s, nil
}

type RateRepository struct {
	db db.DBTX
}

func NewRateRepository(dbtx db.DBTX) *RateRepository {
	return &RateRepository{db: dbtx}
}

func (r *RateRepository) Create(ctx context.Context, rate catalog.Rate) error {
	q := psql.Insert("service_rates").Columns(rateColumns...).
		Values(rate.ID, rate.ServiceID, rate.RateCents, dateArg(rate.StartDate), dateArg(rate.EndDate))
	if _, err := exec(ctx, r.db, q); err != nil {
		return infra.WrapRepoErr("failed to create service rate", err)
	}
	return nil
}

// Delete only removes the rate when it belongs to serviceID.
func (r *RateRepository) Delete(ctx context.Context, serviceID, rateID uuid.UUID) error {
	q := psql.Delete("service_rates").Where(sq.Eq{"id": rateID, "service_id": serviceID})
	return execOne(ctx, r.db, q, "service rate", "failed to delete service rate")
}

func (r *RateRepository) ListByService(ctx context.Context, serviceID uuid.UUID) ([]catalog.Rate, error) {
	q := psql.Select(rateColumns...).From("service_rates").
		Where(sq.Eq{"service_id": serviceID}).
		OrderBy("start_date", "id")
	rows, err := queryRows(ctx, r.db, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service rates", err)
	}
	rates, err := scanAll(rows, scanRate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service rates", err)
	}
	return rates, nil
}

func scanRate(row rowScanner) (catalog.Rate, error) {
	var (
		rate       catalog.Rate
		start, end time.Time
	)
	if err := row.Scan(&rate.ID, &rate.ServiceID, &rate.RateCents, &start, &end); err != nil {
		return catalog.Rate{}, err
	}
	rate.StartDate = dateOf(start)
	rate.EndDate = dateOf(end)
	return rate, nil
}
