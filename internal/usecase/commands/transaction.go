package commands

//go:generate mockgen -source=transaction.go -destination=../../testutil/mock/commandsmock/transaction.go -package=commandsmock

import (
	"context"
	"log/slog"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/payment"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

// OnlinePayment is handed back to the client to finish the payment with the provider.
type OnlinePayment struct {
	TransactionID uuid.UUID
	ProviderRef   string
	ClientSecret  string
}

type TransactionCommands interface {
	// Record stores an in-person payment taken by staff.
	Record(ctx context.Context, p auth.Principal, in RecordTransactionInput) (uuid.UUID, error)
	// StartOnline opens a payment intent for the calling customer.
	StartOnline(ctx context.Context, p auth.Principal, in OnlinePaymentInput) (*OnlinePayment, error)
	Refund(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type transactionCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	gateway shared.PaymentGateway
}

func NewTransactionCommands(uow shared.UnitOfWork, clk clock.Clock, gateway shared.PaymentGateway) TransactionCommands {
	return &transactionCommandsImpl{uow: uow, clock: clk, gateway: gateway}
}

func (uc *transactionCommandsImpl) Record(ctx context.Context, p auth.Principal, in RecordTransactionInput) (uuid.UUID, error) {
	if err := requireStaff(p); err != nil {
		return uuid.Nil, err
	}
	method := payment.Method(in.Method)
	if method == payment.MethodOnline {
		return uuid.Nil, payment.ErrInvalidMethod
	}
	t, err := payment.NewTransaction(in.CustomerID, in.AppointmentID, in.AmountCents, method, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := uc.checkRefs(ctx, tx, t); err != nil {
			return err
		}
		return tx.Transactions().Create(ctx, t)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return t.ID, nil
}

func (uc *transactionCommandsImpl) StartOnline(ctx context.Context, p auth.Principal, in OnlinePaymentInput) (*OnlinePayment, error) {
	if err := p.Require(account.RoleCustomer); err != nil {
		return nil, err
	}
	if !uc.gateway.Enabled() {
		return nil, payment.ErrOnlineNotEnabled
	}
	t, err := payment.NewTransaction(p.UserID, in.AppointmentID, in.AmountCents, payment.MethodOnline, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var intent payment.Intent
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := uc.checkRefs(ctx, tx, t); err != nil {
			return err
		}
		// The transaction id doubles as the idempotency key, so a retried tx does not open a second intent.
		intent, err = uc.gateway.CreateIntent(ctx, shared.IntentParams{
			AmountCents:    t.AmountCents,
			CustomerID:     t.CustomerID,
			Description:    "salon payment " + t.ID.String(),
			IdempotencyKey: t.ID.String(),
		})
		if err != nil {
			return errs.Wrap(err, "create payment intent")
		}
		ref := intent.ProviderRef
		t.ProviderRef = &ref
		return tx.Transactions().Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "online payment started", "transaction_id", t.ID, "provider_ref", intent.ProviderRef)
	return &OnlinePayment{TransactionID: t.ID, ProviderRef: intent.ProviderRef, ClientSecret: intent.ClientSecret}, nil
}

func (uc *transactionCommandsImpl) Refund(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := requireStaff(p); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Transactions().FindByIDForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, ErrTransactionNotFound)
		}
		if err := t.Refund(uc.clock.Now()); err != nil {
			return err
		}
		return tx.Transactions().Update(ctx, t)
	})
}

// checkRefs makes sure the customer exists and owns the appointment, if one is given.
func (uc *transactionCommandsImpl) checkRefs(ctx context.Context, tx shared.Tx, t payment.Transaction) error {
	customer, err := tx.Accounts().FindByID(ctx, t.CustomerID)
	if err != nil {
		return orNotFound(err, ErrCustomerNotFound)
	}
	if customer.Role() != account.RoleCustomer {
		return ErrCustomerNotFound
	}
	if t.AppointmentID == nil {
		return nil
	}
	appt, err := tx.Appointments().FindByID(ctx, *t.AppointmentID)
	if err != nil {
		return orNotFound(err, ErrAppointmentNotFound)
	}
	if appt.CustomerID() != t.CustomerID {
		return ErrAppointmentNotFound
	}
	return nil
}
