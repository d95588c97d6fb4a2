//go:build unit

package payment

import (
	"context"
	"testing"

	"salon-backend/internal/domain/payment"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
)

type fakeIntents struct {
	params *stripe.PaymentIntentParams
}

func (f *fakeIntents) New(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.params = p
	return &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Status: stripe.PaymentIntentStatusRequiresPaymentMethod}, nil
}

func TestStripeGateway(t *testing.T) {
	t.Run("disabled without a key", func(t *testing.T) {
		g := NewStripeGateway(config.StripeConfig{Currency: "sgd"})
		assert.False(t, g.Enabled())
		_, err := g.CreateIntent(context.Background(), shared.IntentParams{AmountCents: 100})
		assert.ErrorIs(t, err, payment.ErrOnlineNotEnabled)
	})

	t.Run("passes amount, currency and idempotency key", func(t *testing.T) {
		fake := &fakeIntents{}
		g := &StripeGateway{intents: fake, currency: "sgd"}
		customerID := uuid.New()

		intent, err := g.CreateIntent(context.Background(), shared.IntentParams{
			AmountCents:    4500,
			CustomerID:     customerID,
			Description:    "salon payment",
			IdempotencyKey: "tx-1",
		})
		require.NoError(t, err)
		assert.Equal(t, payment.Intent{ProviderRef: "pi_1", ClientSecret: "pi_1_secret", Status: "requires_payment_method"}, intent)

		require.NotNil(t, fake.params)
		assert.Equal(t, int64(4500), *fake.params.Amount)
		assert.Equal(t, "sgd", *fake.params.Currency)
		assert.Equal(t, "tx-1", *fake.params.IdempotencyKey)
		assert.Equal(t, customerID.String(), fake.params.Metadata["customer_id"])
	})
}
