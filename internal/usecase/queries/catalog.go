package queries

//go:generate mockgen -source=catalog.go -destination=../../testutil/mock/queriesmock/catalog.go -package=queriesmock

import (
	"context"
	"time"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/infra"
	"salon-backend/internal/pkg/clock"

	"github.com/google/uuid"
)

type ServiceReadStore interface {
	// FindByID fills PriceCents with the effective price on the day, if any.
	FindByID(ctx context.Context, id uuid.UUID, on schedule.Date) (*ServiceView, error)
	// ListPriced returns only services with an effective price on the day.
	ListPriced(ctx context.Context, on schedule.Date) ([]*ServiceView, error)
	ListRates(ctx context.Context, serviceID uuid.UUID) ([]*RateView, error)
}

type CatalogQueries interface {
	// ListServices defaults to today in the salon's zone when on is nil.
	ListServices(ctx context.Context, on *schedule.Date) ([]*ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListRates(ctx context.Context, serviceID uuid.UUID) ([]*RateView, error)
}

type catalogQueriesImpl struct {
	store ServiceReadStore
	clock clock.Clock
	loc   *time.Location
}

func NewCatalogQueries(store ServiceReadStore, clk clock.Clock, loc *time.Location) CatalogQueries {
	return &catalogQueriesImpl{store: store, clock: clk, loc: loc}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, on *schedule.Date) ([]*ServiceView, error) {
	day := q.today()
	if on != nil {
		day = *on
	}
	return q.store.ListPriced(ctx, day)
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	v, err := q.store.FindByID(ctx, id, q.today())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *catalogQueriesImpl) ListRates(ctx context.Context, serviceID uuid.UUID) ([]*RateView, error) {
	if _, err := q.GetService(ctx, serviceID); err != nil {
		return nil, err
	}
	return q.store.ListRates(ctx, serviceID)
}

func (q *catalogQueriesImpl) today() schedule.Date {
	return schedule.DateOf(q.clock.Now().In(q.loc))
}
