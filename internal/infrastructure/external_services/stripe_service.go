package external_services

import (
	"context"
	"fmt"

	"github.com/henokg/lessonhub/internal/domain/contract"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// premiumPlanAmount is the fixed one-time price of the premium plan, in USD
// cents.
const premiumPlanAmount = 999

// StripeService implements the payment gateway contract over Stripe Checkout.
type StripeService struct {
	successURL string
	cancelURL  string
}

// NewStripeService configures the Stripe client with the secret key and
// derives the redirect URLs from the frontend origin.
func NewStripeService(secretKey, clientBaseURL string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		successURL: clientBaseURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  clientBaseURL + "/payment-cancel",
	}
}

// make sure StripeService implements contract.IPaymentGateway
var _ contract.IPaymentGateway = (*StripeService)(nil)

// CreateCheckoutSession requests a hosted checkout session for the premium
// plan. The user id travels as session metadata; the payer email becomes the
// session's customer contact.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, email, userID string) (*contract.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(email),
		SuccessURL:         stripe.String(s.successURL),
		CancelURL:          stripe.String(s.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Premium Plan"),
					},
					UnitAmount: stripe.Int64(premiumPlanAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("userId", userID)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create Stripe checkout session: %w", err)
	}
	return toCheckoutSession(sess), nil
}

// GetCheckoutSession retrieves a session's payment status and payer email.
func (s *StripeService) GetCheckoutSession(ctx context.Context, sessionID string) (*contract.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}
	sess, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve Stripe checkout session: %w", err)
	}
	return toCheckoutSession(sess), nil
}

func toCheckoutSession(sess *stripe.CheckoutSession) *contract.CheckoutSession {
	return &contract.CheckoutSession{
		ID:            sess.ID,
		URL:           sess.URL,
		CustomerEmail: sess.CustomerEmail,
		PaymentStatus: string(sess.PaymentStatus),
	}
}
