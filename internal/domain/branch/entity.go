package branch

import (
	"strings"
	"time"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errs.Validation("branch name must be 1-100 characters")
	ErrInvalidTimeZone    = errs.Validation("unknown time zone")
	ErrInvalidSlotMinutes = errs.Validation("slot minutes must be 15 or 30")
	ErrIncompleteWindow   = errs.Validation("opening and closing time must be given together")
)

const DefaultSlotMinutes = 30

// Branch is a salon location with its own time zone and opening hours.
type Branch struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Phone       string
	TimeZone    string
	SlotMinutes int
	Hours       schedule.Hours
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WindowParams is an "HH:MM" pair. Both empty means closed on that day type.
type WindowParams struct {
	Open  string
	Close string
}

type Params struct {
	Name        string
	Address     string
	Phone       string
	TimeZone    string
	SlotMinutes int
	Weekday     *WindowParams
	Weekend     *WindowParams
	Holiday     *WindowParams
}

func New(p Params, defaultZone string, now time.Time) (Branch, error) {
	b := Branch{
		ID:          uuid.New(),
		TimeZone:    defaultZone,
		SlotMinutes: DefaultSlotMinutes,
		CreatedAt:   now,
	}
	if err := b.Apply(UpdateParams{
		Name:        &p.Name,
		Address:     &p.Address,
		Phone:       &p.Phone,
		TimeZone:    nonEmpty(p.TimeZone),
		SlotMinutes: nonZero(p.SlotMinutes),
		Weekday:     p.Weekday,
		Weekend:     p.Weekend,
		Holiday:     p.Holiday,
	}, now); err != nil {
		return Branch{}, err
	}
	return b, nil
}

// UpdateParams carries a partial update. A non-nil window with empty times closes that day type.
type UpdateParams struct {
	Name        *string
	Address     *string
	Phone       *string
	TimeZone    *string
	SlotMinutes *int
	Weekday     *WindowParams
	Weekend     *WindowParams
	Holiday     *WindowParams
}

func (b *Branch) Apply(p UpdateParams, now time.Time) error {
	next := *b
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" || len(name) > 100 {
			return ErrInvalidName
		}
		next.Name = name
	}
	if p.Address != nil {
		next.Address = strings.TrimSpace(*p.Address)
	}
	if p.Phone != nil {
		next.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.TimeZone != nil {
		if _, err := time.LoadLocation(*p.TimeZone); err != nil || *p.TimeZone == "" {
			return ErrInvalidTimeZone
		}
		next.TimeZone = *p.TimeZone
	}
	if p.SlotMinutes != nil {
		if *p.SlotMinutes != 15 && *p.SlotMinutes != 30 {
			return ErrInvalidSlotMinutes
		}
		next.SlotMinutes = *p.SlotMinutes
	}

	var err error
	if p.Weekday != nil {
		if next.Hours.Weekday, err = ParseWindow(*p.Weekday); err != nil {
			return err
		}
	}
	if p.Weekend != nil {
		if next.Hours.Weekend, err = ParseWindow(*p.Weekend); err != nil {
			return err
		}
	}
	if p.Holiday != nil {
		if next.Hours.Holiday, err = ParseWindow(*p.Holiday); err != nil {
			return err
		}
	}

	next.UpdatedAt = now
	*b = next
	return nil
}

// ParseWindow returns nil for a closed day.
func ParseWindow(p WindowParams) (*schedule.Window, error) {
	if p.Open == "" && p.Close == "" {
		return nil, nil
	}
	if p.Open == "" || p.Close == "" {
		return nil, ErrIncompleteWindow
	}
	open, err := schedule.ParseTimeOfDay(p.Open)
	if err != nil {
		return nil, err
	}
	closeAt, err := schedule.ParseTimeOfDay(p.Close)
	if err != nil {
		return nil, err
	}
	w, err := schedule.NewWindow(open, closeAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Location falls back to UTC for a zone that no longer loads.
func (b Branch) Location() *time.Location {
	loc, err := time.LoadLocation(b.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (b Branch) Granularity() time.Duration {
	if b.SlotMinutes <= 0 {
		return time.Duration(DefaultSlotMinutes) * time.Minute
	}
	return time.Duration(b.SlotMinutes) * time.Minute
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
