package shared

import (
	"context"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/branch"
	"salon-backend/internal/domain/catalog"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/infra"

	"github.com/google/uuid"
)

// DaySchedule is everything needed to compute one stylist's slots on one day.
type DaySchedule struct {
	Branch     branch.Branch
	Service    catalog.Service
	PriceCents int64
	Priced     bool
	Input      schedule.Input
}

// LoadDaySchedule reads branch, service, holidays, busy time and leave through tx.
// found is false when the stylist, branch or service does not exist, or when
// the stylist is not based at branchID.
func LoadDaySchedule(ctx context.Context, tx Tx, stylistID, branchID, serviceID uuid.UUID, date schedule.Date, now time.Time) (ds DaySchedule, found bool, err error) {
	stylist, err := tx.Accounts().FindByID(ctx, stylistID)
	if err != nil {
		return DaySchedule{}, false, ignoreNotFound(err)
	}
	if stylist.Role() != account.RoleStylist {
		return DaySchedule{}, false, nil
	}
	// a stylist only takes bookings at their home branch
	if home := stylist.BranchID(); home == nil || *home != branchID {
		return DaySchedule{}, false, nil
	}
	b, err := tx.Branches().FindByID(ctx, branchID)
	if err != nil {
		return DaySchedule{}, false, ignoreNotFound(err)
	}
	svc, err := tx.Services().FindByID(ctx, serviceID)
	if err != nil {
		return DaySchedule{}, false, ignoreNotFound(err)
	}
	rates, err := tx.Rates().ListByService(ctx, serviceID)
	if err != nil {
		return DaySchedule{}, false, err
	}
	holidays, err := tx.Holidays().ListFor(ctx, branchID, date, date)
	if err != nil {
		return DaySchedule{}, false, err
	}

	loc := b.Location()
	dayStart := date.In(loc)
	busy, err := tx.Appointments().ListBlocking(ctx, stylistID, dayStart, date.AddDays(1).In(loc))
	if err != nil {
		return DaySchedule{}, false, err
	}
	leaves, err := tx.LeaveRequests().ListApproved(ctx, stylistID, date, date)
	if err != nil {
		return DaySchedule{}, false, err
	}

	price, priced := catalog.EffectivePrice(rates, date)
	return DaySchedule{
		Branch:     b,
		Service:    svc,
		PriceCents: price,
		Priced:     priced,
		Input: schedule.Input{
			Date:        date,
			Location:    loc,
			Hours:       b.Hours,
			Holidays:    branch.Dates(holidays),
			Granularity: b.Granularity(),
			Duration:    svc.Duration(),
			Busy:        busy,
			Leave:       leaves,
			Now:         now,
		},
	}, true, nil
}

func ignoreNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return nil
	}
	return err
}
