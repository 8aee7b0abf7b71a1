package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/henokg/lessonhub/internal/handler/http"
	dto "github.com/henokg/lessonhub/internal/handler/http/dto"
	mocks "github.com/henokg/lessonhub/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func setupPaymentRouter(h handler.PaymentHandlerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/create-checkout-session", h.CreateCheckoutSession)
	r.PATCH("/payment-success", h.ConfirmPayment)
	return r
}

func TestCreateCheckoutSession(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	h := handler.NewPaymentHandler(mockUsecase)
	r := setupPaymentRouter(h)
	payload := dto.CreateCheckoutSessionRequest{
		Email:  "buyer@example.com",
		UserID: "user-123",
	}

	w := postJSON(r, "/create-checkout-session", payload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), mockUsecase.MockSessionURL)
}

func TestCreateCheckoutSession_InvalidEmail(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	mockUsecase.InvalidEmail = true
	h := handler.NewPaymentHandler(mockUsecase)
	r := setupPaymentRouter(h)
	payload := dto.CreateCheckoutSessionRequest{
		Email:  "not-an-email",
		UserID: "user-123",
	}

	w := postJSON(r, "/create-checkout-session", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email address")
}

func TestCreateCheckoutSession_GatewayFail(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	mockUsecase.ShouldFailCreateSession = true
	h := handler.NewPaymentHandler(mockUsecase)
	r := setupPaymentRouter(h)
	payload := dto.CreateCheckoutSessionRequest{
		Email:  "buyer@example.com",
		UserID: "user-123",
	}

	w := postJSON(r, "/create-checkout-session", payload)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestConfirmPayment(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	h := handler.NewPaymentHandler(mockUsecase)
	r := setupPaymentRouter(h)
	body, _ := json.Marshal(dto.ConfirmPaymentRequest{SessionID: "cs_test_123"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/payment-success", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"modifiedCount":1`)
}

func TestConfirmPayment_Unpaid(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	mockUsecase.PaymentUnpaid = true
	h := handler.NewPaymentHandler(mockUsecase)
	r := setupPaymentRouter(h)
	body, _ := json.Marshal(dto.ConfirmPaymentRequest{SessionID: "cs_test_123"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/payment-success", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestConfirmPayment_MissingSessionID(t *testing.T) {
	mockUsecase := mocks.NewMockPaymentUsecase()
	h := handler.NewPaymentHandler(mockUsecase)
	r := setupPaymentRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/payment-success", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
