package branch

import (
	"strings"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidHolidayName = errs.Validation("holiday name must be 1-100 characters")

// Holiday closes or shortens a day. A nil BranchID applies to every branch.
type Holiday struct {
	ID       uuid.UUID
	BranchID *uuid.UUID
	Date     schedule.Date
	Name     string
}

func NewHoliday(branchID *uuid.UUID, date schedule.Date, name string) (Holiday, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return Holiday{}, ErrInvalidHolidayName
	}
	if date.IsZero() {
		return Holiday{}, schedule.ErrInvalidDate
	}
	return Holiday{ID: uuid.New(), BranchID: branchID, Date: date, Name: name}, nil
}

func Dates(hs []Holiday) []schedule.Date {
	out := make([]schedule.Date, 0, len(hs))
	for _, h := range hs {
		out = append(out, h.Date)
	}
	return out
}
