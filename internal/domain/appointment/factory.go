package appointment

import (
	"time"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{Clock: c}
}

type BookParams struct {
	CustomerID uuid.UUID
	StylistID  uuid.UUID
	ServiceID  uuid.UUID
	BranchID   uuid.UUID
	Start      time.Time
	Duration   time.Duration
	// Available are the slots computed for the stylist on the start date.
	Available  []schedule.Slot
	Quote      Quote
	DiscountID *uuid.UUID
	Note       string
}

// Book creates a Pending appointment. The start must be one of the available slots.
func (f *Factory) Book(p BookParams) (*Appointment, error) {
	now := f.Clock.Now()
	slot, err := NewTimeSlot(p.Start, p.Duration)
	if err != nil {
		return nil, err
	}
	if slot.Start().Before(now) {
		return nil, ErrInPast
	}
	if !schedule.Contains(p.Available, slot.Start()) {
		return nil, ErrSlotUnavailable
	}
	if p.Quote.PriceCents < 0 {
		return nil, ErrNegativePrice
	}
	note, err := NewNote(p.Note)
	if err != nil {
		return nil, err
	}

	return &Appointment{
		id:         uuid.New(),
		customerID: p.CustomerID,
		stylistID:  p.StylistID,
		serviceID:  p.ServiceID,
		branchID:   p.BranchID,
		timeSlot:   slot,
		status:     StatusPending,
		priceCents: p.Quote.PriceCents,
		pointsUsed: p.Quote.PointsUsed,
		discountID: p.DiscountID,
		note:       note,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}
