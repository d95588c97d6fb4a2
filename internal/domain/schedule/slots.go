package schedule

import (
	"time"
)

const (
	DefaultGranularity = 30 * time.Minute
	labelLayout        = "3:04 PM"
)

// Interval is half-open: [Start, End). Two intervals that only touch do not overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

type Slot struct {
	Start time.Time
	End   time.Time
	Label string
}

type Input struct {
	Date     Date
	Location *time.Location
	Hours    Hours
	Holidays []Date
	// Granularity is the step between candidate starts (15 or 30 minutes).
	Granularity time.Duration
	Duration    time.Duration
	// Busy holds the stylist's Pending/Confirmed appointments.
	Busy []Interval
	// Leave holds the stylist's Approved leave; a covered day has no slots.
	Leave []DateRange
	// Candidates starting before Now are skipped. Zero disables the check.
	Now time.Time
}

// Calculate returns the bookable start times of one day in ascending order.
func Calculate(in Input) []Slot {
	if in.Duration <= 0 {
		return nil
	}
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	step := in.Granularity
	if step <= 0 {
		step = DefaultGranularity
	}

	for _, r := range in.Leave {
		if r.Contains(in.Date) {
			return nil
		}
	}

	window, open := in.Hours.For(DayTypeOf(in.Date, in.Holidays))
	if !open {
		return nil
	}
	opensAt := window.Open.On(in.Date, loc)
	closesAt := window.Close.On(in.Date, loc)

	var slots []Slot
	for start := opensAt; !start.Add(in.Duration).After(closesAt); start = start.Add(step) {
		candidate := Interval{Start: start, End: start.Add(in.Duration)}
		if !in.Now.IsZero() && candidate.Start.Before(in.Now) {
			continue
		}
		if overlapsAny(candidate, in.Busy) {
			continue
		}
		slots = append(slots, Slot{
			Start: candidate.Start,
			End:   candidate.End,
			Label: candidate.Start.In(loc).Format(labelLayout),
		})
	}
	return slots
}

// Contains reports whether start is one of the calculated slot starts.
func Contains(slots []Slot, start time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
