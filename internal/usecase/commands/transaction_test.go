//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/domain/payment"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/testutil/mock/sharedmock"
	"salon-backend/internal/usecase/commands"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransactionCommands_StartOnline(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	customerID := uuid.New()
	p := auth.Principal{UserID: customerID, Role: account.RoleCustomer}

	t.Run("disabled gateway", func(t *testing.T) {
		f := newTxFixture(t)
		gw := sharedmock.NewMockPaymentGateway(gomock.NewController(t))
		gw.EXPECT().Enabled().Return(false)

		_, err := commands.NewTransactionCommands(f.uow, clk, gw).StartOnline(ctx, p, commands.OnlinePaymentInput{AmountCents: 4500})
		assert.ErrorIs(t, err, payment.ErrOnlineNotEnabled)
	})

	t.Run("transaction id is the idempotency key", func(t *testing.T) {
		f := newTxFixture(t)
		gw := sharedmock.NewMockPaymentGateway(gomock.NewController(t))
		gw.EXPECT().Enabled().Return(true)
		f.accounts.EXPECT().FindByID(ctx, customerID).Return(customerAccount(customerID, 0), nil)

		var key string
		gw.EXPECT().CreateIntent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ip shared.IntentParams) (payment.Intent, error) {
			assert.Equal(t, int64(4500), ip.AmountCents)
			assert.Equal(t, customerID, ip.CustomerID)
			key = ip.IdempotencyKey
			return payment.Intent{ProviderRef: "pi_123", ClientSecret: "pi_123_secret", Status: "requires_payment_method"}, nil
		})
		f.transactions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tr payment.Transaction) error {
			assert.Equal(t, payment.StatusPending, tr.Status)
			assert.Equal(t, payment.MethodOnline, tr.Method)
			require.NotNil(t, tr.ProviderRef)
			assert.Equal(t, "pi_123", *tr.ProviderRef)
			return nil
		})

		res, err := commands.NewTransactionCommands(f.uow, clk, gw).StartOnline(ctx, p, commands.OnlinePaymentInput{AmountCents: 4500})
		require.NoError(t, err)
		assert.Equal(t, res.TransactionID.String(), key)
		assert.Equal(t, "pi_123_secret", res.ClientSecret)
	})
}

func TestTransactionCommands_Record(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	customerID := uuid.New()
	gw := sharedmock.NewMockPaymentGateway(gomock.NewController(t))

	t.Run("cash is recorded as succeeded", func(t *testing.T) {
		f := newTxFixture(t)
		f.accounts.EXPECT().FindByID(ctx, customerID).Return(customerAccount(customerID, 0), nil)
		f.transactions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tr payment.Transaction) error {
			assert.Equal(t, payment.StatusSucceeded, tr.Status)
			return nil
		})

		_, err := commands.NewTransactionCommands(f.uow, clk, gw).Record(ctx, principal(account.RoleManager), commands.RecordTransactionInput{
			CustomerID:  customerID,
			AmountCents: 4500,
			Method:      "cash",
		})
		require.NoError(t, err)
	})

	t.Run("staff cannot record online payments", func(t *testing.T) {
		f := newTxFixture(t)
		_, err := commands.NewTransactionCommands(f.uow, clk, gw).Record(ctx, principal(account.RoleManager), commands.RecordTransactionInput{
			CustomerID:  customerID,
			AmountCents: 4500,
			Method:      "online",
		})
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})

	t.Run("refund twice", func(t *testing.T) {
		f := newTxFixture(t)
		tr := payment.Transaction{ID: uuid.New(), CustomerID: customerID, AmountCents: 4500, Method: payment.MethodCard, Status: payment.StatusRefunded}
		f.transactions.EXPECT().FindByIDForUpdate(ctx, tr.ID).Return(tr, nil)

		err := commands.NewTransactionCommands(f.uow, clk, gw).Refund(ctx, principal(account.RoleAdmin), tr.ID)
		assert.ErrorIs(t, err, payment.ErrNotRefundable)
	})
}
