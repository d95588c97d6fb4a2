package commands

import (
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/schedule"

	"github.com/google/uuid"
)

// Write-side inputs. Handlers translate request DTOs into these.

type CreateAccountInput struct {
	Role     account.Role
	Username string
	Email    string
	Password string
	Name     string
	Phone    string
	BranchID *uuid.UUID
	TeamID   *uuid.UUID
}

// UpdateAccountInput is partial: nil fields are left as they are.
type UpdateAccountInput struct {
	Username *string
	Email    *string
	Password *string
	Name     *string
	Phone    *string
	BranchID *uuid.UUID
	TeamID   *uuid.UUID
}

type BookInput struct {
	// CustomerID is only read when staff book for a customer.
	CustomerID   *uuid.UUID
	StylistID    uuid.UUID
	ServiceID    uuid.UUID
	BranchID     uuid.UUID
	Start        time.Time
	DiscountCode string
	PointsUsed   int
	Note         string
}

type ApplyLeaveInput struct {
	LeaveType string
	Start     schedule.Date
	End       schedule.Date
	Reason    string
}

type HolidayInput struct {
	BranchID *uuid.UUID
	Date     schedule.Date
	Name     string
}

type ServiceInput struct {
	Name            string
	Description     string
	DurationMinutes int
}

type RateInput struct {
	RateCents int64
	StartDate schedule.Date
	EndDate   schedule.Date
}

type CreateReviewInput struct {
	AppointmentID uuid.UUID
	Rating        int
	Comment       string
}

type RecordTransactionInput struct {
	CustomerID    uuid.UUID
	AppointmentID *uuid.UUID
	AmountCents   int64
	Method        string
}

type OnlinePaymentInput struct {
	AppointmentID *uuid.UUID
	AmountCents   int64
}

type TeamInput struct {
	BranchID  uuid.UUID
	Name      string
	ManagerID *uuid.UUID
}
