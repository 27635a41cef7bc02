package models

// Request/response shapes for the capacity backend. The backend is the
// source of truth for capacity, pricing and payment verification; this
// service only reflects and reacts to it.

// CustomerInfo is the visitor snapshot sent with order creation.
type CustomerInfo struct {
	Name        string `json:"name"`
	PartnerName string `json:"partnerName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// EventMeta identifies the event a reservation belongs to.
type EventMeta struct {
	EventName    string `json:"eventName"`
	EventTagline string `json:"eventTagline"`
	EventDate    string `json:"eventDate"`
	TableType    string `json:"tableType"`
}

type CreateOrderRequest struct {
	PaymentType PaymentType  `json:"paymentType"`
	Slot        string       `json:"slot"`
	Customer    CustomerInfo `json:"customer"`
	Meta        EventMeta    `json:"meta"`
}

type CreateOrderResponse struct {
	OK       bool   `json:"ok"`
	KeyID    string `json:"keyId"`
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
	HoldRow  int64  `json:"holdRow"`

	AmountPaidRupees  float64     `json:"amountPaidRupees"`
	AmountPaidDisplay string      `json:"amountPaidDisplay"`
	PaymentType       PaymentType `json:"paymentType"`
	Slot              string      `json:"slot"`

	Error string `json:"error,omitempty"`
}

// VerifyMeta extends the event metadata with the display amount recorded on
// the confirmation.
type VerifyMeta struct {
	EventName         string `json:"eventName"`
	EventTagline      string `json:"eventTagline"`
	EventDate         string `json:"eventDate"`
	TableType         string `json:"tableType"`
	AmountPaidDisplay string `json:"amountPaidDisplay"`
}

type VerifyRequest struct {
	RazorpayPaymentID string      `json:"razorpay_payment_id"`
	RazorpayOrderID   string      `json:"razorpay_order_id"`
	RazorpaySignature string      `json:"razorpay_signature"`
	HoldRow           int64       `json:"holdRow"`
	PaymentType       PaymentType `json:"paymentType"`
	Slot              string      `json:"slot"`
	Form              BookingForm `json:"form"`
	Meta              VerifyMeta  `json:"meta"`
}

type VerifyResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
