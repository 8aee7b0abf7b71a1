package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/henokg/lessonhub/internal/handler/http/dto"
	usecasecontract "github.com/henokg/lessonhub/internal/usecase/contract"
)

// PaymentHandlerInterface defines the methods for the payment handler to
// allow interface-based dependency injection (for testing/mocking)
type PaymentHandlerInterface interface {
	CreateCheckoutSession(*gin.Context)
	ConfirmPayment(*gin.Context)
}

// Ensure PaymentHandler implements PaymentHandlerInterface
var _ PaymentHandlerInterface = (*PaymentHandler)(nil)

type PaymentHandler struct {
	paymentUsecase usecasecontract.IPaymentUseCase
}

func NewPaymentHandler(paymentUsecase usecasecontract.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
	}
}

// CreateCheckoutSession requests a hosted checkout session and returns its
// redirect URL.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req dto.CreateCheckoutSessionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	url, err := h.paymentUsecase.CreateCheckoutSession(c.Request.Context(), req.Email, req.UserID)
	if err != nil {
		if errors.Is(err, usecasecontract.ErrInvalidEmail) {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CheckoutSessionResponse{URL: url})
}

// ConfirmPayment retrieves the session and, when paid, upgrades the payer's
// role to premium. An unpaid session returns a failure without mutation.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req dto.ConfirmPaymentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	modified, err := h.paymentUsecase.ConfirmPayment(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, usecasecontract.ErrPaymentNotCompleted) {
			SuccessHandler(c, http.StatusBadRequest, dto.ConfirmPaymentResponse{Success: false})
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ConfirmPaymentResponse{Success: true, ModifiedCount: modified})
}
