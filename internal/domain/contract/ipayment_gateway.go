package contract

import "context"

// PaymentStatusPaid is the gateway's status for a settled checkout session.
const PaymentStatusPaid = "paid"

// CheckoutSession is the subset of a hosted payment session the application
// consumes: the redirect URL on creation and the payer email plus payment
// status on retrieval.
type CheckoutSession struct {
	ID            string
	URL           string
	CustomerEmail string
	PaymentStatus string
}

// IPaymentGateway is the opaque external payment collaborator. The core
// threads exactly two calls through it and implements no payment logic of
// its own.
type IPaymentGateway interface {
	// CreateCheckoutSession requests a hosted session for the fixed premium
	// plan, tagging it with the user id as metadata and the email as the
	// payer contact.
	CreateCheckoutSession(ctx context.Context, email, userID string) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
