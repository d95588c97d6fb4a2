package catalog

import (
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNegativeRate     = errs.Validation("rate must not be negative")
	ErrInvalidRateRange = errs.Validation("rate end date must not be before its start date")
	ErrNotBookable      = errs.Validation("service has no price on the requested date")
)

// Rate prices a service over an inclusive date range. Ranges of one service may overlap.
type Rate struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	RateCents int64
	StartDate schedule.Date
	EndDate   schedule.Date
}

func NewRate(serviceID uuid.UUID, cents int64, start, end schedule.Date) (Rate, error) {
	if cents < 0 {
		return Rate{}, ErrNegativeRate
	}
	if start.IsZero() || end.IsZero() {
		return Rate{}, schedule.ErrInvalidDate
	}
	if end.Before(start) {
		return Rate{}, ErrInvalidRateRange
	}
	return Rate{
		ID:        uuid.New(),
		ServiceID: serviceID,
		RateCents: cents,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func (r Rate) Covers(d schedule.Date) bool {
	return schedule.DateRange{From: r.StartDate, To: r.EndDate}.Contains(d)
}

// EffectivePrice is the lowest rate covering d.
func EffectivePrice(rates []Rate, d schedule.Date) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, r := range rates {
		if !r.Covers(d) {
			continue
		}
		if !found || r.RateCents < best {
			best = r.RateCents
			found = true
		}
	}
	return best, found
}

// PriceAll drops services without a rate on d.
func PriceAll(services []Service, rates []Rate, d schedule.Date) []PricedService {
	byService := make(map[uuid.UUID][]Rate, len(services))
	for _, r := range rates {
		byService[r.ServiceID] = append(byService[r.ServiceID], r)
	}
	out := make([]PricedService, 0, len(services))
	for _, s := range services {
		price, ok := EffectivePrice(byService[s.ID], d)
		if !ok {
			continue
		}
		out = append(out, PricedService{Service: s, PriceCents: price})
	}
	return out
}
