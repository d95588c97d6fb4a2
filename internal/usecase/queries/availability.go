package queries

//go:generate mockgen -source=availability.go -destination=../../testutil/mock/queriesmock/availability.go -package=queriesmock

import (
	"context"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// AvailableSlots is empty, not an error, when any of the ids is unknown or nil.
	AvailableSlots(ctx context.Context, stylistID, branchID, serviceID uuid.UUID, date schedule.Date) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAvailabilityQueries(uow shared.UnitOfWork, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, clock: clk}
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, stylistID, branchID, serviceID uuid.UUID, date schedule.Date) ([]SlotView, error) {
	if stylistID == uuid.Nil || branchID == uuid.Nil || serviceID == uuid.Nil {
		return []SlotView{}, nil
	}

	var slots []schedule.Slot
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ds, found, err := shared.LoadDaySchedule(ctx, tx, stylistID, branchID, serviceID, date, q.clock.Now())
		if err != nil || !found {
			return err
		}
		slots = schedule.Calculate(ds.Input)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotView{Start: s.Start, End: s.End, Label: s.Label})
	}
	return out, nil
}
