package commands

//go:generate mockgen -source=appointment.go -destination=../../testutil/mock/commandsmock/appointment.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/appointment"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/notification"
	"salon-backend/internal/domain/promotion"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentCommands interface {
	Book(ctx context.Context, p auth.Principal, in BookInput) (uuid.UUID, error)
	Confirm(ctx context.Context, p auth.Principal, id uuid.UUID) error
	Complete(ctx context.Context, p auth.Principal, id uuid.UUID) error
	Cancel(ctx context.Context, p auth.Principal, id uuid.UUID) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type appointmentCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *appointment.Factory
	clock   clock.Clock
	metrics shared.Metrics
}

func NewAppointmentCommands(uow shared.UnitOfWork, clk clock.Clock, metrics shared.Metrics) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:     uow,
		factory: appointment.NewFactory(clk),
		clock:   clk,
		metrics: metrics,
	}
}

// bookingCustomer resolves whom the appointment is for.
func bookingCustomer(p auth.Principal, requested *uuid.UUID) (uuid.UUID, error) {
	switch {
	case p.Is(account.RoleCustomer):
		if requested != nil && *requested != p.UserID {
			return uuid.Nil, auth.ErrForbidden
		}
		return p.UserID, nil
	case p.IsStaff():
		if requested == nil || *requested == uuid.Nil {
			return uuid.Nil, ErrCustomerRequired
		}
		return *requested, nil
	default:
		return uuid.Nil, auth.ErrForbidden
	}
}

func (uc *appointmentCommandsImpl) Book(ctx context.Context, p auth.Principal, in BookInput) (uuid.UUID, error) {
	customerID, err := bookingCustomer(p, in.CustomerID)
	if err != nil {
		return uuid.Nil, err
	}

	var booked *appointment.Appointment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		// Serializes bookings per stylist so two requests cannot take the same slot.
		stylist, err := tx.Accounts().FindByIDForUpdate(ctx, in.StylistID)
		if err != nil {
			return orNotFound(err, ErrStylistNotFound)
		}
		if !stylist.IsStylist() {
			return ErrStylistNotFound
		}
		if home := stylist.BranchID(); home == nil || *home != in.BranchID {
			return ErrStylistNotAtBranch
		}
		b, err := tx.Branches().FindByID(ctx, in.BranchID)
		if err != nil {
			return orNotFound(err, ErrBranchNotFound)
		}

		date := schedule.DateOf(in.Start.In(b.Location()))
		ds, found, err := shared.LoadDaySchedule(ctx, tx, in.StylistID, in.BranchID, in.ServiceID, date, now)
		if err != nil {
			return err
		}
		if !found {
			return ErrServiceNotFound
		}
		if !ds.Priced {
			return ErrServiceNotBookable
		}
		available := schedule.Calculate(ds.Input)

		customer, err := tx.Accounts().FindByIDForUpdate(ctx, customerID)
		if err != nil {
			return orNotFound(err, ErrCustomerNotFound)
		}
		if customer.Role() != account.RoleCustomer {
			return ErrCustomerNotFound
		}

		var discounter appointment.Discounter
		var discount *promotion.Discount
		if in.DiscountCode != "" {
			discount, err = redeemDiscount(ctx, tx, in.DiscountCode, now)
			if err != nil {
				return err
			}
			discounter = discount
		}

		quote, err := appointment.Price(ds.PriceCents, discounter, in.PointsUsed, customer.LoyaltyPoints())
		if err != nil {
			return err
		}
		params := appointment.BookParams{
			CustomerID: customerID,
			StylistID:  in.StylistID,
			ServiceID:  in.ServiceID,
			BranchID:   in.BranchID,
			Start:      in.Start,
			Duration:   ds.Service.Duration(),
			Available:  available,
			Quote:      quote,
			Note:       in.Note,
		}
		if discount != nil {
			id := discount.ID()
			params.DiscountID = &id
		}
		a, err := uc.factory.Book(params)
		if err != nil {
			return err
		}

		if quote.PointsUsed > 0 {
			if err := customer.SpendPoints(quote.PointsUsed, now); err != nil {
				return err
			}
			if err := tx.Accounts().Update(ctx, customer); err != nil {
				return err
			}
		}
		if discount != nil {
			if err := tx.Discounts().Update(ctx, discount); err != nil {
				return err
			}
		}
		if err := tx.Appointments().Create(ctx, a); err != nil {
			return err
		}

		jobs, err := appointmentNotices(notification.TopicAppointmentBooked, a, customer, b.Location(), now)
		if err != nil {
			return err
		}
		if err := tx.Notifications().Enqueue(ctx, jobs...); err != nil {
			return err
		}
		booked = a
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.metrics.AppointmentBooked(booked.BranchID())
	slog.InfoContext(ctx, "appointment booked",
		"appointment_id", booked.ID(),
		"stylist_id", booked.StylistID(),
		"start_at", booked.TimeSlot().Start(),
		"price_cents", booked.PriceCents(),
	)
	return booked.ID(), nil
}

func redeemDiscount(ctx context.Context, tx shared.Tx, raw string, now time.Time) (*promotion.Discount, error) {
	code, err := promotion.NewCode(raw)
	if err != nil {
		return nil, ErrUnknownDiscountCode
	}
	d, err := tx.Discounts().FindByCodeForUpdate(ctx, code)
	if err != nil {
		return nil, orNotFound(err, ErrUnknownDiscountCode)
	}
	if err := d.Redeem(now); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *appointmentCommandsImpl) Confirm(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	return uc.transition(ctx, id, notification.TopicAppointmentConfirmed, func(ctx context.Context, tx shared.Tx, a *appointment.Appointment, customer *account.Account) error {
		if err := requireStaffOrStylist(p, a); err != nil {
			return err
		}
		return a.Confirm(uc.clock.Now())
	})
}

func (uc *appointmentCommandsImpl) Complete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	return uc.transition(ctx, id, notification.TopicAppointmentCompleted, func(ctx context.Context, tx shared.Tx, a *appointment.Appointment, customer *account.Account) error {
		if err := requireStaffOrStylist(p, a); err != nil {
			return err
		}
		now := uc.clock.Now()
		if err := a.Complete(now); err != nil {
			return err
		}
		if earned := a.EarnedPoints(); earned > 0 {
			if err := customer.EarnPoints(earned, now); err != nil {
				return err
			}
			return tx.Accounts().Update(ctx, customer)
		}
		return nil
	})
}

func (uc *appointmentCommandsImpl) Cancel(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	return uc.transition(ctx, id, notification.TopicAppointmentCancelled, func(ctx context.Context, tx shared.Tx, a *appointment.Appointment, customer *account.Account) error {
		if err := p.RequireSelfOrStaff(a.CustomerID()); err != nil {
			return err
		}
		now := uc.clock.Now()
		refund, err := a.Cancel(now)
		if err != nil {
			return err
		}
		if refund > 0 {
			if err := customer.EarnPoints(refund, now); err != nil {
				return err
			}
			return tx.Accounts().Update(ctx, customer)
		}
		return nil
	})
}

func (uc *appointmentCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := p.Require(account.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Appointments().FindByIDForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, ErrAppointmentNotFound)
		}
		if err := a.CanDelete(); err != nil {
			return err
		}
		return tx.Appointments().Delete(ctx, id)
	})
}

func requireStaffOrStylist(p auth.Principal, a *appointment.Appointment) error {
	if p.IsStaff() || p.UserID == a.StylistID() {
		return nil
	}
	return auth.ErrForbidden
}

type transitionFunc func(ctx context.Context, tx shared.Tx, a *appointment.Appointment, customer *account.Account) error

// transition locks the appointment and its customer, applies change, then persists the
// status and enqueues notices under topic.
func (uc *appointmentCommandsImpl) transition(ctx context.Context, id uuid.UUID, topic string, change transitionFunc) error {
	var status appointment.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Appointments().FindByIDForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, ErrAppointmentNotFound)
		}
		customer, err := tx.Accounts().FindByIDForUpdate(ctx, a.CustomerID())
		if err != nil {
			return orNotFound(err, ErrCustomerNotFound)
		}
		if err := change(ctx, tx, a, customer); err != nil {
			return err
		}
		if err := tx.Appointments().UpdateStatus(ctx, a); err != nil {
			return err
		}

		b, err := tx.Branches().FindByID(ctx, a.BranchID())
		if err != nil {
			return orNotFound(err, ErrBranchNotFound)
		}
		jobs, err := appointmentNotices(topic, a, customer, b.Location(), uc.clock.Now())
		if err != nil {
			return err
		}
		status = a.Status()
		return tx.Notifications().Enqueue(ctx, jobs...)
	})
	if err != nil {
		return err
	}
	uc.metrics.AppointmentStatusChanged(status.String())
	return nil
}
