package contract

import (
	"context"
	"errors"
)

var (
	// ErrInvalidEmail is returned when the payer email fails boundary
	// validation before any gateway call is made.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPaymentNotCompleted is returned when a retrieved checkout session
	// is not in a paid state. No user document is mutated in that case.
	ErrPaymentNotCompleted = errors.New("payment not completed")
)

type IPaymentUseCase interface {
	// CreateCheckoutSession requests a hosted checkout session from the
	// gateway and returns its redirect URL.
	CreateCheckoutSession(ctx context.Context, email, userID string) (string, error)
	// ConfirmPayment retrieves the session and, if paid, upgrades the user
	// identified by the session's payer email to premium. It returns the
	// number of modified user documents.
	ConfirmPayment(ctx context.Context, sessionID string) (int64, error)
}
