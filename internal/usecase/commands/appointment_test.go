//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/appointment"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/branch"
	"salon-backend/internal/domain/catalog"
	"salon-backend/internal/domain/notification"
	"salon-backend/internal/domain/promotion"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/ptr"
	"salon-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingScene struct {
	sgt                             *time.Location
	date                            schedule.Date
	customerID, stylistID           uuid.UUID
	branchID, serviceID, discountID uuid.UUID
	branch                          branch.Branch
	clock                           *clock.MockClock
}

func newBookingScene(t *testing.T) bookingScene {
	sgt, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)
	branchID := uuid.New()
	return bookingScene{
		sgt:        sgt,
		date:       schedule.Date{Year: 2026, Month: time.March, Day: 2}, // Monday
		customerID: uuid.New(),
		stylistID:  uuid.New(),
		branchID:   branchID,
		serviceID:  uuid.New(),
		discountID: uuid.New(),
		branch: branch.Branch{
			ID:          branchID,
			Name:        "Orchard",
			TimeZone:    "Asia/Singapore",
			SlotMinutes: 30,
			Hours: schedule.Hours{
				Weekday: &schedule.Window{Open: schedule.NewTimeOfDay(9, 0), Close: schedule.NewTimeOfDay(18, 0)},
			},
		},
		clock: clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, sgt)),
	}
}

func (s bookingScene) at(hour, minute int) time.Time {
	return time.Date(s.date.Year, s.date.Month, s.date.Day, hour, minute, 0, 0, s.sgt)
}

// expectDay wires the reads done before the slot check, with the stylist busy from 10:00 to 11:00.
func (s bookingScene) expectDay(ctx context.Context, f *txFixture) {
	stylist := stylistAccount(s.stylistID, s.branchID)
	f.accounts.EXPECT().FindByIDForUpdate(ctx, s.stylistID).Return(stylist, nil)
	f.accounts.EXPECT().FindByID(ctx, s.stylistID).Return(stylist, nil)
	f.branches.EXPECT().FindByID(ctx, s.branchID).Return(s.branch, nil).Times(2)
	f.services.EXPECT().FindByID(ctx, s.serviceID).Return(catalog.Service{ID: s.serviceID, Name: "Cut", DurationMinutes: 60}, nil)
	f.rates.EXPECT().ListByService(ctx, s.serviceID).Return([]catalog.Rate{
		{ID: uuid.New(), ServiceID: s.serviceID, RateCents: 4500, StartDate: s.date, EndDate: s.date},
	}, nil)
	f.holidays.EXPECT().ListFor(ctx, s.branchID, s.date, s.date).Return(nil, nil)
	f.appointments.EXPECT().ListBlocking(ctx, s.stylistID, s.date.In(s.sgt), s.date.AddDays(1).In(s.sgt)).
		Return([]schedule.Interval{{Start: s.at(10, 0), End: s.at(11, 0)}}, nil)
	f.leaves.EXPECT().ListApproved(ctx, s.stylistID, s.date, s.date).Return(nil, nil)
}

func TestAppointmentCommands_Book(t *testing.T) {
	ctx := context.Background()

	t.Run("discount first, then points", func(t *testing.T) {
		s := newBookingScene(t)
		f := newTxFixture(t)
		s.expectDay(ctx, f)

		customer := customerAccount(s.customerID, 1000)
		discount := promotion.ReconstructDiscount(s.discountID, "SPRING10", nil, ptr.Of(10.0), nil, nil, nil, 0, time.Time{}, time.Time{})
		f.accounts.EXPECT().FindByIDForUpdate(ctx, s.customerID).Return(customer, nil)
		f.discounts.EXPECT().FindByCodeForUpdate(ctx, promotion.Code("SPRING10")).Return(discount, nil)
		f.accounts.EXPECT().Update(ctx, customer).Return(nil)
		f.discounts.EXPECT().Update(ctx, discount).Return(nil)

		var created *appointment.Appointment
		f.appointments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *appointment.Appointment) error {
			created = a
			return nil
		})
		var enqueued []notification.Job
		f.notifications.EXPECT().Enqueue(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, jobs ...notification.Job) error {
				enqueued = jobs
				return nil
			})
		f.metrics.EXPECT().AppointmentBooked(s.branchID)

		p := auth.Principal{UserID: s.customerID, Role: account.RoleCustomer}
		id, err := commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).Book(ctx, p, commands.BookInput{
			StylistID:    s.stylistID,
			ServiceID:    s.serviceID,
			BranchID:     s.branchID,
			Start:        s.at(11, 0),
			DiscountCode: " spring10 ",
			PointsUsed:   500,
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, created.ID(), id)
		assert.Equal(t, appointment.StatusPending, created.Status())
		assert.Equal(t, int64(3550), created.PriceCents()) // 4500 -10% = 4050, minus 500 points
		assert.Equal(t, 500, created.PointsUsed())
		assert.Equal(t, &s.discountID, created.DiscountID())
		assert.Equal(t, s.at(12, 0), created.TimeSlot().End())
		assert.Equal(t, 500, customer.LoyaltyPoints())
		assert.Equal(t, 1, discount.Redeemed())

		kinds := []notification.Kind{}
		for _, j := range enqueued {
			assert.Equal(t, notification.TopicAppointmentBooked, j.Topic)
			kinds = append(kinds, j.Kind)
		}
		assert.Equal(t, []notification.Kind{notification.KindEmail, notification.KindSMS, notification.KindEvent}, kinds)
	})

	t.Run("start inside a busy interval is a conflict", func(t *testing.T) {
		s := newBookingScene(t)
		f := newTxFixture(t)
		s.expectDay(ctx, f)
		f.accounts.EXPECT().FindByIDForUpdate(ctx, s.customerID).Return(customerAccount(s.customerID, 0), nil)

		p := auth.Principal{UserID: s.customerID, Role: account.RoleCustomer}
		_, err := commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).Book(ctx, p, commands.BookInput{
			StylistID: s.stylistID,
			ServiceID: s.serviceID,
			BranchID:  s.branchID,
			Start:     s.at(9, 30), // would run into the 10:00 appointment
		})
		assert.ErrorIs(t, err, appointment.ErrSlotUnavailable)
	})

	t.Run("unknown discount code", func(t *testing.T) {
		s := newBookingScene(t)
		f := newTxFixture(t)
		s.expectDay(ctx, f)
		f.accounts.EXPECT().FindByIDForUpdate(ctx, s.customerID).Return(customerAccount(s.customerID, 0), nil)

		p := auth.Principal{UserID: s.customerID, Role: account.RoleCustomer}
		_, err := commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).Book(ctx, p, commands.BookInput{
			StylistID:    s.stylistID,
			ServiceID:    s.serviceID,
			BranchID:     s.branchID,
			Start:        s.at(11, 0),
			DiscountCode: "no such code!",
		})
		assert.ErrorIs(t, err, commands.ErrUnknownDiscountCode)
	})

	t.Run("stylist outside the requested branch", func(t *testing.T) {
		for name, stylist := range map[string]*account.Account{
			"other branch": stylistAccount(uuid.New(), uuid.New()),
			"no branch": account.Reconstruct(uuid.New(), account.RoleStylist, "sam", "sam@salon.test", "x", "Sam", "",
				nil, nil, 0, time.Time{}, time.Time{}),
		} {
			t.Run(name, func(t *testing.T) {
				s := newBookingScene(t)
				f := newTxFixture(t)
				f.accounts.EXPECT().FindByIDForUpdate(ctx, s.stylistID).Return(stylist, nil)

				p := auth.Principal{UserID: s.customerID, Role: account.RoleCustomer}
				_, err := commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).Book(ctx, p, commands.BookInput{
					StylistID: s.stylistID,
					ServiceID: s.serviceID,
					BranchID:  s.branchID,
					Start:     s.at(11, 0),
				})
				assert.ErrorIs(t, err, commands.ErrStylistNotAtBranch)
			})
		}
	})

	t.Run("staff must name the customer", func(t *testing.T) {
		s := newBookingScene(t)
		f := newTxFixture(t)
		_, err := commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).
			Book(ctx, principal(account.RoleManager), commands.BookInput{StylistID: s.stylistID})
		assert.ErrorIs(t, err, commands.ErrCustomerRequired)
	})

	t.Run("customer cannot book for someone else", func(t *testing.T) {
		s := newBookingScene(t)
		f := newTxFixture(t)
		other := uuid.New()
		_, err := commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).
			Book(ctx, principal(account.RoleCustomer), commands.BookInput{CustomerID: &other})
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}

func storedAppointment(s bookingScene, status appointment.Status, price int64, points int) *appointment.Appointment {
	return appointment.ReconstructAppointment(uuid.New(), s.customerID, s.stylistID, s.serviceID, s.branchID,
		s.at(11, 0), s.at(12, 0), status, price, points, nil, "", time.Time{}, time.Time{})
}

func TestAppointmentCommands_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel refunds points", func(t *testing.T) {
		s := newBookingScene(t)
		f := newTxFixture(t)
		a := storedAppointment(s, appointment.StatusConfirmed, 3550, 500)
		customer := customerAccount(s.customerID, 20)

		f.appointments.EXPECT().FindByIDForUpdate(ctx, a.ID()).Return(a, nil)
		f.accounts.EXPECT().FindByIDForUpdate(ctx, s.customerID).Return(customer, nil)
		f.accounts.EXPECT().Update(ctx, customer).Return(nil)
		f.appointments.EXPECT().UpdateStatus(ctx, a).Return(nil)
		f.branches.EXPECT().FindByID(ctx, s.branchID).Return(s.branch, nil)
		f.notifications.EXPECT().Enqueue(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.metrics.EXPECT().AppointmentStatusChanged("cancelled")

		p := auth.Principal{UserID: s.customerID, Role: account.RoleCustomer}
		require.NoError(t, commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).Cancel(ctx, p, a.ID()))
		assert.Equal(t, appointment.StatusCancelled, a.Status())
		assert.Equal(t, 520, customer.LoyaltyPoints())
	})

	t.Run("complete awards one point per currency unit", func(t *testing.T) {
		s := newBookingScene(t)
		f := newTxFixture(t)
		a := storedAppointment(s, appointment.StatusConfirmed, 3550, 0)
		customer := customerAccount(s.customerID, 0)

		f.appointments.EXPECT().FindByIDForUpdate(ctx, a.ID()).Return(a, nil)
		f.accounts.EXPECT().FindByIDForUpdate(ctx, s.customerID).Return(customer, nil)
		f.accounts.EXPECT().Update(ctx, customer).Return(nil)
		f.appointments.EXPECT().UpdateStatus(ctx, a).Return(nil)
		f.branches.EXPECT().FindByID(ctx, s.branchID).Return(s.branch, nil)
		f.notifications.EXPECT().Enqueue(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.metrics.EXPECT().AppointmentStatusChanged("completed")

		p := auth.Principal{UserID: s.stylistID, Role: account.RoleStylist}
		require.NoError(t, commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).Complete(ctx, p, a.ID()))
		assert.Equal(t, 35, customer.LoyaltyPoints())
	})

	t.Run("confirming a completed appointment is a conflict", func(t *testing.T) {
		s := newBookingScene(t)
		f := newTxFixture(t)
		a := storedAppointment(s, appointment.StatusCompleted, 3550, 0)

		f.appointments.EXPECT().FindByIDForUpdate(ctx, a.ID()).Return(a, nil)
		f.accounts.EXPECT().FindByIDForUpdate(ctx, s.customerID).Return(customerAccount(s.customerID, 0), nil)

		err := commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).Confirm(ctx, principal(account.RoleAdmin), a.ID())
		assert.ErrorIs(t, err, appointment.ErrInvalidTransition)
		assert.Equal(t, appointment.StatusCompleted, a.Status())
	})

	t.Run("another stylist cannot confirm", func(t *testing.T) {
		s := newBookingScene(t)
		f := newTxFixture(t)
		a := storedAppointment(s, appointment.StatusPending, 3550, 0)

		f.appointments.EXPECT().FindByIDForUpdate(ctx, a.ID()).Return(a, nil)
		f.accounts.EXPECT().FindByIDForUpdate(ctx, s.customerID).Return(customerAccount(s.customerID, 0), nil)

		err := commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).Confirm(ctx, principal(account.RoleStylist), a.ID())
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("completed appointments are never deleted", func(t *testing.T) {
		s := newBookingScene(t)
		f := newTxFixture(t)
		a := storedAppointment(s, appointment.StatusCompleted, 3550, 0)
		f.appointments.EXPECT().FindByIDForUpdate(ctx, a.ID()).Return(a, nil)

		err := commands.NewAppointmentCommands(f.uow, s.clock, f.metrics).Delete(ctx, principal(account.RoleAdmin), a.ID())
		assert.ErrorIs(t, err, appointment.ErrCompletedImmutable)
	})
}
