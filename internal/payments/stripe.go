package payments

import (
	"context"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/paymentintent"
	"go.uber.org/zap"
)

type StripeProvider struct {
	log *zap.Logger
}

func NewStripeProvider(secretKey string, log *zap.Logger) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{log: log}
}

func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, amount, currency string, metadata map[string]string) (*Intent, error) {
	if stripe.Key == "" {
		return nil, ErrNotConfigured
	}

	units, err := AmountToMinorUnits(amount)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(units),
		Currency: stripe.String(currency),
		Metadata: metadata,
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		p.log.Error("stripe payment intent failed", zap.Error(err))
		return nil, err
	}

	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
