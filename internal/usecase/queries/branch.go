package queries

//go:generate mockgen -source=branch.go -destination=../../testutil/mock/queriesmock/branch.go -package=queriesmock

import (
	"context"

	"salon-backend/internal/infra"

	"github.com/google/uuid"
)

type BranchReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BranchView, error)
	List(ctx context.Context) ([]*BranchView, error)
}

type HolidayReadStore interface {
	List(ctx context.Context, f HolidayFilter) ([]*HolidayView, error)
}

type BranchQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*BranchView, error)
	List(ctx context.Context) ([]*BranchView, error)
	ListHolidays(ctx context.Context, f HolidayFilter) ([]*HolidayView, error)
}

type branchQueriesImpl struct {
	branches BranchReadStore
	holidays HolidayReadStore
}

func NewBranchQueries(branches BranchReadStore, holidays HolidayReadStore) BranchQueries {
	return &branchQueriesImpl{branches: branches, holidays: holidays}
}

func (q *branchQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*BranchView, error) {
	v, err := q.branches.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *branchQueriesImpl) List(ctx context.Context) ([]*BranchView, error) {
	return q.branches.List(ctx)
}

func (q *branchQueriesImpl) ListHolidays(ctx context.Context, f HolidayFilter) ([]*HolidayView, error) {
	return q.holidays.List(ctx, f)
}
