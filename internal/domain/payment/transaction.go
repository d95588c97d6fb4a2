package payment

import (
	"time"

	"salon-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type Method string

const (
	MethodCash   Method = "cash"
	MethodCard   Method = "card"
	MethodPoints Method = "points"
	MethodOnline Method = "online"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodPoints, MethodOnline:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

var (
	ErrInvalidMethod    = errs.Validation("payment method must be cash, card, points or online")
	ErrInvalidAmount    = errs.Validation("amount must be positive")
	ErrNotRefundable    = errs.Conflict("only succeeded transactions can be refunded")
	ErrOnlineNotEnabled = errs.Validation("online payments are not available")
)

// Transaction records money received for an appointment or a walk-in sale.
type Transaction struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	AppointmentID *uuid.UUID
	AmountCents   int64
	Method        Method
	Status        Status
	ProviderRef   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction records an in-person payment as succeeded. Online payments
// stay pending until the provider confirms them.
func NewTransaction(customerID uuid.UUID, appointmentID *uuid.UUID, amountCents int64, method Method, now time.Time) (Transaction, error) {
	if !method.IsValid() {
		return Transaction{}, ErrInvalidMethod
	}
	if amountCents <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	status := StatusSucceeded
	if method == MethodOnline {
		status = StatusPending
	}
	return Transaction{
		ID:            uuid.New(),
		CustomerID:    customerID,
		AppointmentID: appointmentID,
		AmountCents:   amountCents,
		Method:        method,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (t *Transaction) Refund(now time.Time) error {
	if t.Status != StatusSucceeded {
		return ErrNotRefundable
	}
	t.Status = StatusRefunded
	t.UpdatedAt = now
	return nil
}

// Intent is what a payment provider returns for an online payment.
type Intent struct {
	ProviderRef  string
	ClientSecret string
	Status       string
}
