package mocks

import (
	"context"
	"errors"

	usecasecontract "github.com/henokg/lessonhub/internal/usecase/contract"
)

// MockPaymentUsecase is a mock implementation of the payment usecase interface
type MockPaymentUsecase struct {
	// Control mock behavior
	ShouldFailCreateSession bool
	InvalidEmail            bool
	PaymentUnpaid           bool

	// Return values
	MockSessionURL    string
	MockModifiedCount int64
}

// Ensure MockPaymentUsecase implements the correct interface for handler.NewPaymentHandler
var _ usecasecontract.IPaymentUseCase = (*MockPaymentUsecase)(nil)

func NewMockPaymentUsecase() *MockPaymentUsecase {
	return &MockPaymentUsecase{
		MockSessionURL:    "https://checkout.stripe.com/c/pay/mock_session",
		MockModifiedCount: 1,
	}
}

func (m *MockPaymentUsecase) CreateCheckoutSession(ctx context.Context, email, userID string) (string, error) {
	if m.InvalidEmail {
		return "", usecasecontract.ErrInvalidEmail
	}
	if m.ShouldFailCreateSession {
		return "", errors.New("checkout session creation failed")
	}
	return m.MockSessionURL, nil
}

func (m *MockPaymentUsecase) ConfirmPayment(ctx context.Context, sessionID string) (int64, error) {
	if m.PaymentUnpaid {
		return 0, usecasecontract.ErrPaymentNotCompleted
	}
	return m.MockModifiedCount, nil
}
