package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// IntentRequest asks the payment provider for a charge intent.
type IntentRequest struct {
	Amount         int64
	Currency       string
	MethodTypes    []string
	BookingID      string
	IdempotencyKey string
}

type Intent struct {
	ID           string
	ClientSecret string
}

type IntentCreator interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

// StripeIntentCreator creates Stripe PaymentIntents. The API client is
// built once and shared by every request.
type StripeIntentCreator struct {
	api *client.API
}

// NewStripeIntentCreator uses the default Stripe backends when backends is nil.
func NewStripeIntentCreator(secretKey string, backends *stripe.Backends) *StripeIntentCreator {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeIntentCreator{api: api}
}

func (s *StripeIntentCreator) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice(req.MethodTypes),
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	if req.BookingID != "" {
		params.AddMetadata("booking_id", req.BookingID)
	}

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
