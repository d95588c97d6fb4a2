package queries

import (
	"encoding/json"
	"time"

	"salon-backend/internal/domain/schedule"

	"github.com/google/uuid"
)

// AccountView never carries the password hash.
type AccountView struct {
	ID            uuid.UUID  `json:"id"`
	Role          string     `json:"role"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	BranchID      *uuid.UUID `json:"branch_id,omitempty"`
	TeamID        *uuid.UUID `json:"team_id,omitempty"`
	LoyaltyPoints int        `json:"loyalty_points"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type AccountFilter struct {
	Roles    []string
	BranchID *uuid.UUID
	TeamID   *uuid.UUID
}

type WindowView struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type BranchView struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	TimeZone    string      `json:"timezone"`
	SlotMinutes int         `json:"slot_minutes"`
	Weekday     *WindowView `json:"weekday_hours,omitempty"`
	Weekend     *WindowView `json:"weekend_hours,omitempty"`
	Holiday     *WindowView `json:"holiday_hours,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type HolidayView struct {
	ID       uuid.UUID  `json:"id"`
	BranchID *uuid.UUID `json:"branch_id,omitempty"`
	Date     string     `json:"date"`
	Name     string     `json:"name"`
}

type HolidayFilter struct {
	BranchID *uuid.UUID
	From     *schedule.Date
	To       *schedule.Date
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      *int64    `json:"price_cents,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RateView struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"service_id"`
	RateCents int64     `json:"rate_cents"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

type AppointmentView struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	StylistID    uuid.UUID  `json:"stylist_id"`
	StylistName  string     `json:"stylist_name"`
	ServiceID    uuid.UUID  `json:"service_id"`
	ServiceName  string     `json:"service_name"`
	BranchID     uuid.UUID  `json:"branch_id"`
	BranchName   string     `json:"branch_name"`
	StartAt      time.Time  `json:"start_at"`
	EndAt        time.Time  `json:"end_at"`
	Status       string     `json:"status"`
	PriceCents   int64      `json:"price_cents"`
	PointsUsed   int        `json:"points_used"`
	DiscountID   *uuid.UUID `json:"discount_id,omitempty"`
	Note         string     `json:"note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type AppointmentFilter struct {
	CustomerID *uuid.UUID
	StylistID  *uuid.UUID
	BranchID   *uuid.UUID
	Status     *string
	From       *time.Time
	To         *time.Time
}

type LeaveRequestView struct {
	ID          uuid.UUID  `json:"id"`
	StylistID   uuid.UUID  `json:"stylist_id"`
	StylistName string     `json:"stylist_name"`
	LeaveType   string     `json:"leave_type"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Days        int        `json:"days"`
	Status      string     `json:"status"`
	Reason      string     `json:"reason,omitempty"`
	DecidedBy   *uuid.UUID `json:"decided_by,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type LeaveFilter struct {
	StylistID *uuid.UUID
	Status    *string
}

type ReviewView struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	StylistID     uuid.UUID `json:"stylist_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RatingSummary struct {
	StylistID uuid.UUID `json:"stylist_id"`
	Count     int       `json:"count"`
	Average   float64   `json:"average"`
}

type TransactionView struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	AmountCents   int64      `json:"amount_cents"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	ProviderRef   *string    `json:"provider_ref,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type TransactionFilter struct {
	CustomerID *uuid.UUID
}

type PromotionView struct {
	ID          uuid.UUID  `json:"id"`
	BranchID    *uuid.UUID `json:"branch_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartsOn    string     `json:"starts_on"`
	EndsOn      string     `json:"ends_on"`
	DiscountID  *uuid.UUID `json:"discount_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type PromotionFilter struct {
	BranchID *uuid.UUID
	// ActiveOn keeps promotions whose window contains the day (YYYY-MM-DD).
	ActiveOn *string
}

type DiscountView struct {
	ID             uuid.UUID  `json:"id"`
	Code           string     `json:"code"`
	AmountOffCents *int64     `json:"amount_off_cents,omitempty"`
	PercentOff     *float64   `json:"percent_off,omitempty"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidTo        *time.Time `json:"valid_to,omitempty"`
	MaxRedemptions *int       `json:"max_redemptions,omitempty"`
	Redeemed       int        `json:"redeemed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// DiscountCheck answers whether a code can be used right now.
type DiscountCheck struct {
	Discount *DiscountView `json:"discount"`
	Valid    bool          `json:"valid"`
	Reason   string        `json:"reason,omitempty"`
}

type TeamView struct {
	ID        uuid.UUID  `json:"id"`
	BranchID  uuid.UUID  `json:"branch_id"`
	Name      string     `json:"name"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	RunAt     time.Time       `json:"run_at"`
	Attempts  int             `json:"attempts"`
	Status    string          `json:"status"`
	LastError *string         `json:"last_error,omitempty"`
	SentAt    *time.Time      `json:"sent_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
