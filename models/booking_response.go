package models

// BookingConfirmation is the success-screen snapshot shown once a payment
// has been verified.
type BookingConfirmation struct {
	Name              string `json:"name"`
	PartnerName       string `json:"partnerName"`
	Slot              string `json:"slot"`
	AmountPaidDisplay string `json:"amountPaidDisplay"`
}

// FlowSnapshot is the state the UI renders from. Checkout is present only
// while a popup is awaited; Confirmation only after success.
type FlowSnapshot struct {
	SessionID     string               `json:"sessionId"`
	State         FlowState            `json:"state"`
	PaymentType   PaymentType          `json:"paymentType,omitempty"`
	Form          BookingForm          `json:"form"`
	Toast         Toast                `json:"toast"`
	CheckoutReady bool                 `json:"checkoutReady"`
	Checkout      *CheckoutOptions     `json:"checkout,omitempty"`
	Confirmation  *BookingConfirmation `json:"confirmation,omitempty"`
}
