package leave

import (
	"strings"
	"time"

	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxReasonLength = 500

var (
	ErrInvalidType        = errs.Validation("leave type must be paid or unpaid")
	ErrInvalidStatus      = errs.Validation("invalid leave status")
	ErrInvalidPeriod      = errs.Validation("leave must end on or after its start")
	ErrCrossesYear        = errs.Validation("leave must start and end in the same calendar year")
	ErrReasonTooLong      = errs.Validation("reason exceeds maximum length")
	ErrInsufficientLeave  = errs.Validation("requested days exceed the available balance")
	ErrNotPending         = errs.Conflict("leave request has already been decided")
	ErrNotOwner           = errs.Forbidden("only the requesting stylist can withdraw")
	ErrApprovedImmutable  = errs.Conflict("approved leave cannot be deleted")
	ErrBalanceUnavailable = errs.Conflict("balance no longer covers the requested days")
)

type Request struct {
	id        uuid.UUID
	stylistID uuid.UUID
	leaveType Type
	period    schedule.DateRange
	days      int
	status    Status
	reason    string
	decidedBy *uuid.UUID
	decidedAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewRequest(stylistID uuid.UUID, leaveType Type, start, end schedule.Date, reason string, now time.Time) (*Request, error) {
	if !leaveType.IsValid() {
		return nil, ErrInvalidType
	}
	if start.IsZero() || end.IsZero() {
		return nil, schedule.ErrInvalidDate
	}
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}
	if start.Year != end.Year {
		return nil, ErrCrossesYear
	}
	reason = strings.TrimSpace(reason)
	if len(reason) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}
	return &Request{
		id:        uuid.New(),
		stylistID: stylistID,
		leaveType: leaveType,
		period:    schedule.DateRange{From: start, To: end},
		days:      start.DaysUntil(end),
		status:    StatusPending,
		reason:    reason,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRequest(
	id, stylistID uuid.UUID,
	leaveType Type,
	start, end schedule.Date,
	days int,
	status Status,
	reason string,
	decidedBy *uuid.UUID,
	decidedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:        id,
		stylistID: stylistID,
		leaveType: leaveType,
		period:    schedule.DateRange{From: start, To: end},
		days:      days,
		status:    status,
		reason:    reason,
		decidedBy: decidedBy,
		decidedAt: decidedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Request) decide(next Status, by uuid.UUID, now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = next
	r.decidedBy = &by
	r.decidedAt = &now
	r.updatedAt = now
	return nil
}

// Approve deducts the request from balance. Either both change or neither does.
func (r *Request) Approve(by uuid.UUID, balance *Balance, now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	if balance.StylistID != r.stylistID || balance.Year != r.period.From.Year {
		return errs.Newf("balance %s/%d does not belong to request %s", balance.StylistID, balance.Year, r.id)
	}
	if err := balance.Deduct(r.leaveType, r.days, now); err != nil {
		return err
	}
	return r.decide(StatusApproved, by, now)
}

func (r *Request) Reject(by uuid.UUID, now time.Time) error {
	return r.decide(StatusRejected, by, now)
}

func (r *Request) Withdraw(by uuid.UUID, now time.Time) error {
	if by != r.stylistID {
		return ErrNotOwner
	}
	return r.decide(StatusWithdrawn, by, now)
}

func (r *Request) CanDelete() error {
	if r.status == StatusApproved {
		return ErrApprovedImmutable
	}
	return nil
}

func (r *Request) ID() uuid.UUID              { return r.id }
func (r *Request) StylistID() uuid.UUID       { return r.stylistID }
func (r *Request) Type() Type                 { return r.leaveType }
func (r *Request) Period() schedule.DateRange { return r.period }
func (r *Request) Days() int                  { return r.days }
func (r *Request) Status() Status             { return r.status }
func (r *Request) Reason() string             { return r.reason }
func (r *Request) DecidedBy() *uuid.UUID      { return r.decidedBy }
func (r *Request) DecidedAt() *time.Time      { return r.decidedAt }
func (r *Request) CreatedAt() time.Time       { return r.createdAt }
func (r *Request) UpdatedAt() time.Time       { return r.updatedAt }
