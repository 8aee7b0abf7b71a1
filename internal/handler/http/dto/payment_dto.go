package dto

// CreateCheckoutSessionRequest is the body of POST /create-checkout-session.
type CreateCheckoutSessionRequest struct {
	Email  string `json:"email" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

// CheckoutSessionResponse carries the hosted session's redirect URL.
type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// ConfirmPaymentRequest is the body of PATCH /payment-success.
type ConfirmPaymentRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ConfirmPaymentResponse reports the outcome of a payment confirmation.
type ConfirmPaymentResponse struct {
	Success       bool  `json:"success"`
	ModifiedCount int64 `json:"modifiedCount"`
}
