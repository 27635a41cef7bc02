package models

// CheckoutPrefill pre-populates the gateway popup with the visitor's details.
type CheckoutPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type CheckoutTheme struct {
	Color string `json:"color"`
}

// CheckoutOptions is the constructor payload for the Razorpay checkout
// popup. The amount and currency always come from the create-order response,
// never from a client-side computation.
type CheckoutOptions struct {
	Key         string            `json:"key"`
	OrderID     string            `json:"order_id"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Prefill     CheckoutPrefill   `json:"prefill"`
	Notes       map[string]string `json:"notes"`
	Theme       CheckoutTheme     `json:"theme"`
}

// PaymentResult is the tuple the gateway hands back on a completed payment.
type PaymentResult struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
