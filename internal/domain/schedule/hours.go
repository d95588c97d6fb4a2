package schedule

import (
	"fmt"
	"time"

	"salon-backend/internal/pkg/errs"
)

type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
	DayTypeHoliday DayType = "holiday"
)

var (
	ErrInvalidTimeOfDay = errs.Validation("time of day must be formatted as HH:MM")
	ErrInvalidWindow    = errs.Validation("opening time must be before closing time")
)

// TimeOfDay is minutes since local midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// On anchors the time of day to a calendar day in loc.
func (t TimeOfDay) On(d Date, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, int(t)/60, int(t)%60, 0, 0, loc)
}

type Window struct {
	Open  TimeOfDay
	Close TimeOfDay
}

func NewWindow(open, closeAt TimeOfDay) (Window, error) {
	if open < 0 || closeAt > 24*60 || open >= closeAt {
		return Window{}, ErrInvalidWindow
	}
	return Window{Open: open, Close: closeAt}, nil
}

// Hours holds one optional window per day type; nil means closed.
type Hours struct {
	Weekday *Window
	Weekend *Window
	Holiday *Window
}

func (h Hours) For(dt DayType) (Window, bool) {
	var w *Window
	switch dt {
	case DayTypeWeekday:
		w = h.Weekday
	case DayTypeWeekend:
		w = h.Weekend
	case DayTypeHoliday:
		w = h.Holiday
	}
	if w == nil {
		return Window{}, false
	}
	return *w, true
}

// DayTypeOf classifies a calendar day. Holidays take precedence over weekends.
func DayTypeOf(d Date, holidays []Date) DayType {
	for _, h := range holidays {
		if h == d {
			return DayTypeHoliday
		}
	}
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	default:
		return DayTypeWeekday
	}
}
