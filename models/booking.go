package models

// BookingForm holds the visitor-entered reservation fields. Only user input
// mutates it, with one exception: the slot may be reassigned when the
// selected slot fills up while the flow is idle.
type BookingForm struct {
	Name        string `json:"name"`
	PartnerName string `json:"partnerName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Slot        string `json:"slot"`
}

// PaymentType selects which of the two server-priced amounts secures a slot.
type PaymentType string

const (
	PaymentPartial PaymentType = "partial"
	PaymentFull    PaymentType = "full"
)

func (p PaymentType) Valid() bool {
	return p == PaymentPartial || p == PaymentFull
}

// FlowState is the booking flow's current position in the payment
// transaction. Only one non-idle state may be active per session.
type FlowState string

const (
	StateIdle             FlowState = "idle"
	StateSubmitting       FlowState = "submitting"
	StateAwaitingCheckout FlowState = "awaiting_checkout"
	StateVerifying        FlowState = "verifying"
	StateSuccess          FlowState = "success"
)

// OrderSession is the ephemeral per-attempt transaction context. It is
// created by order creation, consumed by checkout and again by verification,
// and discarded when the attempt settles.
type OrderSession struct {
	AttemptID     string      `json:"attemptId"`
	PaymentType   PaymentType `json:"paymentType"`
	Slot          string      `json:"slot"`
	KeyID         string      `json:"keyId"`
	OrderID       string      `json:"orderId"`
	Amount        int64       `json:"amount"` // minor currency units (paise)
	Currency      string      `json:"currency"`
	HoldRow       int64       `json:"holdRow"`
	AmountDisplay string      `json:"amountDisplay"`
}

// Toast is a transient user-facing message. At most one is visible at a time.
type Toast struct {
	Visible bool   `json:"visible"`
	Message string `json:"message"`
}
