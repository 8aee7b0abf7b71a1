package usecase

import (
	"context"
	"fmt"

	"github.com/henokg/lessonhub/internal/domain/contract"
	"github.com/henokg/lessonhub/internal/domain/entity"
	usecasecontract "github.com/henokg/lessonhub/internal/usecase/contract"
)

// PaymentUsecase threads the two gateway calls into the premium upgrade flow.
type PaymentUsecase struct {
	gateway   contract.IPaymentGateway
	userRepo  contract.IUserRepository
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
}

var _ usecasecontract.IPaymentUseCase = (*PaymentUsecase)(nil)

func NewPaymentUsecase(gateway contract.IPaymentGateway, userRepo contract.IUserRepository, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *PaymentUsecase {
	return &PaymentUsecase{
		gateway:   gateway,
		userRepo:  userRepo,
		validator: validator,
		logger:    logger,
	}
}

func (u *PaymentUsecase) CreateCheckoutSession(ctx context.Context, email, userID string) (string, error) {
	if err := u.validator.ValidateEmail(email); err != nil {
		return "", fmt.Errorf("%w: %v", usecasecontract.ErrInvalidEmail, err)
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, email, userID)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session.URL, nil
}

// ConfirmPayment upgrades the user identified by the session's payer email.
// The userId metadata attached at creation is deliberately not consulted:
// the email recovered from the gateway is the key, matching the session's
// customer contact.
func (u *PaymentUsecase) ConfirmPayment(ctx context.Context, sessionID string) (int64, error) {
	session, err := u.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	if session.PaymentStatus != contract.PaymentStatusPaid {
		return 0, usecasecontract.ErrPaymentNotCompleted
	}

	modified, err := u.userRepo.UpdateUserRole(ctx, session.CustomerEmail, entity.UserRolePremium)
	if err != nil {
		return 0, fmt.Errorf("failed to upgrade user role: %w", err)
	}
	u.logger.Infof("payment confirmed for %s, upgraded to premium (%d modified)", session.CustomerEmail, modified)
	return modified, nil
}
