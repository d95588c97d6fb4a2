package payment

import (
	"context"
	"strings"

	"salon-backend/internal/domain/payment"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/usecase/shared"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeGateway opens PaymentIntents. It is disabled when STRIPE_SECRET_KEY is empty.
type StripeGateway struct {
	intents  intentCreator
	currency string
}

var _ shared.PaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	g := &StripeGateway{currency: strings.ToLower(cfg.Currency)}
	if cfg.SecretKey != "" {
		// A per-client key keeps the package-level stripe.Key untouched.
		g.intents = &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: cfg.SecretKey}
	}
	return g
}

func (g *StripeGateway) Enabled() bool {
	return g.intents != nil
}

func (g *StripeGateway) CreateIntent(ctx context.Context, p shared.IntentParams) (payment.Intent, error) {
	if !g.Enabled() {
		return payment.Intent{}, payment.ErrOnlineNotEnabled
	}
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(p.AmountCents),
		Currency:    stripe.String(g.currency),
		Description: stripe.String(p.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"customer_id": p.CustomerID.String(),
		},
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(p.IdempotencyKey)

	pi, err := g.intents.New(params)
	if err != nil {
		return payment.Intent{}, errs.Wrap(err, "stripe payment intent")
	}
	return payment.Intent{
		ProviderRef:  pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}
