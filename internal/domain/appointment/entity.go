package appointment

import (
	"time"

	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot    = errs.Validation("appointment must have a positive duration")
	ErrInvalidStatus      = errs.Validation("invalid appointment status")
	ErrNegativePrice      = errs.Validation("price cannot be negative")
	ErrInvalidPoints      = errs.Validation("points used must not be negative")
	ErrInsufficientPoints = errs.Validation("not enough loyalty points")
	ErrNoteTooLong        = errs.Validation("note exceeds maximum length")
	ErrSlotUnavailable    = errs.Conflict("requested time is not available")
	ErrInPast             = errs.Validation("appointment cannot start in the past")
	ErrInvalidTransition  = errs.Conflict("appointment cannot move to the requested status")
	ErrCompletedImmutable = errs.Conflict("completed appointments cannot be deleted")
)

type Appointment struct {
	id         uuid.UUID
	customerID uuid.UUID
	stylistID  uuid.UUID
	serviceID  uuid.UUID
	branchID   uuid.UUID
	timeSlot   TimeSlot
	status     Status
	priceCents int64
	pointsUsed int
	discountID *uuid.UUID
	note       Note
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructAppointment(
	id, customerID, stylistID, serviceID, branchID uuid.UUID,
	start, end time.Time,
	status Status,
	priceCents int64,
	pointsUsed int,
	discountID *uuid.UUID,
	note string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		customerID: customerID,
		stylistID:  stylistID,
		serviceID:  serviceID,
		branchID:   branchID,
		timeSlot:   TimeSlot{start: start, end: end},
		status:     status,
		priceCents: priceCents,
		pointsUsed: pointsUsed,
		discountID: discountID,
		note:       Note{value: note},
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Appointment) transition(next Status, now time.Time) error {
	if !a.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", a.status, next)
	}
	a.status = next
	a.updatedAt = now
	return nil
}

func (a *Appointment) Confirm(now time.Time) error  { return a.transition(StatusConfirmed, now) }
func (a *Appointment) Complete(now time.Time) error { return a.transition(StatusCompleted, now) }

// Cancel returns the loyalty points to refund to the customer.
func (a *Appointment) Cancel(now time.Time) (int, error) {
	if err := a.transition(StatusCancelled, now); err != nil {
		return 0, err
	}
	return a.pointsUsed, nil
}

func (a *Appointment) CanDelete() error {
	if a.status == StatusCompleted {
		return ErrCompletedImmutable
	}
	return nil
}

func (a *Appointment) EarnedPoints() int {
	return EarnedPoints(a.priceCents)
}

func (a *Appointment) ID() uuid.UUID          { return a.id }
func (a *Appointment) CustomerID() uuid.UUID  { return a.customerID }
func (a *Appointment) StylistID() uuid.UUID   { return a.stylistID }
func (a *Appointment) ServiceID() uuid.UUID   { return a.serviceID }
func (a *Appointment) BranchID() uuid.UUID    { return a.branchID }
func (a *Appointment) TimeSlot() TimeSlot     { return a.timeSlot }
func (a *Appointment) Status() Status         { return a.status }
func (a *Appointment) PriceCents() int64      { return a.priceCents }
func (a *Appointment) PointsUsed() int        { return a.pointsUsed }
func (a *Appointment) DiscountID() *uuid.UUID { return a.discountID }
func (a *Appointment) Note() Note             { return a.note }
func (a *Appointment) CreatedAt() time.Time   { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time   { return a.updatedAt }
