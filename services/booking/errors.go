package booking

import "fmt"

// FlowError is a user-visible booking flow failure. Message is what the
// toast layer shows; Code classifies it for logs.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewGatewayError(msg string) error {
	return &FlowError{Code: "gatewayError", Message: msg}
}

func NewCheckoutClosedError() error {
	return &FlowError{Code: "checkoutClosed", Message: "Checkout closed"}
}
