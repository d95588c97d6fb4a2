package appointment

import (
	"strings"
	"time"

	"salon-backend/internal/domain/schedule"
)

const (
	MaxNoteLength = 500
	// CentsPerPoint values one loyalty point; 100 points make one currency unit.
	CentsPerPoint = 1
	// CentsPerEarnedPoint is the spend that earns one point on completion.
	CentsPerEarnedPoint = 100
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start time.Time, d time.Duration) (TimeSlot, error) {
	if d <= 0 {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: start.Add(d)}, nil
}

func (ts TimeSlot) Start() time.Time        { return ts.start }
func (ts TimeSlot) End() time.Time          { return ts.end }
func (ts TimeSlot) Duration() time.Duration { return ts.end.Sub(ts.start) }

func (ts TimeSlot) Interval() schedule.Interval {
	return schedule.Interval{Start: ts.start, End: ts.end}
}

type Note struct {
	value string
}

func NewNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: s}, nil
}

func (n Note) String() string { return n.value }

// Quote is the outcome of pricing a booking.
type Quote struct {
	BaseCents  int64
	PriceCents int64
	PointsUsed int
}

// Discounter is anything that reduces a price, such as a redeemed discount code.
type Discounter interface {
	Apply(baseCents int64) int64
}

// Price applies the discount first and then the points. Points beyond what the
// discounted price can absorb are not spent.
func Price(baseCents int64, discount Discounter, pointsRequested, pointsAvailable int) (Quote, error) {
	if baseCents < 0 {
		return Quote{}, ErrNegativePrice
	}
	if pointsRequested < 0 {
		return Quote{}, ErrInvalidPoints
	}
	if pointsRequested > pointsAvailable {
		return Quote{}, ErrInsufficientPoints
	}

	price := baseCents
	if discount != nil {
		price = discount.Apply(price)
	}

	points := pointsRequested
	if maxPoints := int(price / CentsPerPoint); points > maxPoints {
		points = maxPoints
	}
	price -= int64(points) * CentsPerPoint

	return Quote{BaseCents: baseCents, PriceCents: price, PointsUsed: points}, nil
}

// EarnedPoints is one point per whole currency unit paid.
func EarnedPoints(priceCents int64) int {
	if priceCents <= 0 {
		return 0
	}
	return int(priceCents / CentsPerEarnedPoint)
}
