package leave

import (
	"time"

	"github.com/google/uuid"
)

// Allotment is the yearly number of days a new balance starts with.
type Allotment struct {
	Paid   int
	Unpaid int
}

type Balance struct {
	StylistID       uuid.UUID
	Year            int
	AvailablePaid   int
	AvailableUnpaid int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBalance(stylistID uuid.UUID, year int, a Allotment, now time.Time) Balance {
	return Balance{
		StylistID:       stylistID,
		Year:            year,
		AvailablePaid:   a.Paid,
		AvailableUnpaid: a.Unpaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// GetOrCreateResult tells the caller whether the balance was created by this call.
type GetOrCreateResult struct {
	Balance Balance
	Created bool
}

func (b Balance) Available(t Type) int {
	if t == TypePaid {
		return b.AvailablePaid
	}
	return b.AvailableUnpaid
}

// Covers is the check done when a request is filed.
func (b Balance) Covers(t Type, days int) error {
	if days > b.Available(t) {
		return ErrInsufficientLeave
	}
	return nil
}

// Deduct is the check done again at approval time, after the balance row is locked.
func (b *Balance) Deduct(t Type, days int, now time.Time) error {
	if days > b.Available(t) {
		return ErrBalanceUnavailable
	}
	if t == TypePaid {
		b.AvailablePaid -= days
	} else {
		b.AvailableUnpaid -= days
	}
	b.UpdatedAt = now
	return nil
}
