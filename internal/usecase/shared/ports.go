package shared

//go:generate mockgen -source=ports.go -destination=../../testutil/mock/sharedmock/ports.go -package=sharedmock

import (
	"context"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/notification"
	"salon-backend/internal/domain/payment"

	"github.com/google/uuid"
)

type IntentParams struct {
	AmountCents    int64
	CustomerID     uuid.UUID
	Description    string
	IdempotencyKey string
}

// PaymentGateway starts online payments with an external provider.
type PaymentGateway interface {
	Enabled() bool
	CreateIntent(ctx context.Context, p IntentParams) (payment.Intent, error)
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role account.Role) (string, time.Time, error)
}

// NotificationSender delivers one kind of outbox job (email, sms or event).
type NotificationSender interface {
	Kind() notification.Kind
	Send(ctx context.Context, job notification.Job) error
}

// Metrics receives business counters.
type Metrics interface {
	AppointmentBooked(branchID uuid.UUID)
	AppointmentStatusChanged(status string)
	NotificationDelivered(kind string, ok bool)
}
