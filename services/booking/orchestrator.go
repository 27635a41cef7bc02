package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"slowlove/models"
	"slowlove/services/upstream"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const checkoutThemeColor = "#E11D48"

const (
	msgAllSlotsFull     = "All slots are full. Please contact us to check availability."
	msgSlotFullChoose   = "This slot is full. Please choose the other slot."
	msgSlotFullRejected = "This slot is full. Please choose the other slot or contact us."
	msgSlotSwitched     = "Selected slot is full. Switched you to the available slot."
	msgPaymentLoading   = "Payment system is loading. Please try again in a moment."
	msgBookingConfirmed = "Booking confirmed! Check your email for confirmation."
	msgGenericFailure   = "Something went wrong. Please try again."
)

// Deps are the shared collaborators every booking flow uses.
type Deps struct {
	Upstream upstream.Client
	Slots    SlotView
	Event    models.EventDetails
	Logger   *zap.Logger
}

// Flow is one visitor's booking state machine. It coordinates form
// validation, order creation, the checkout popup and payment verification.
// At most one payment attempt is in flight at a time; a submit while the
// flow is not idle is a no-op.
type Flow struct {
	ID string

	deps     Deps
	Form     *FormState
	Toasts   *Toaster
	Checkout *BrowserCheckout

	mu          sync.Mutex
	state       models.FlowState
	paymentType models.PaymentType
	order       *models.OrderSession
	confirm     *models.BookingConfirmation
	lastSeen    time.Time
}

func NewFlow(deps Deps) *Flow {
	defaultSlot := ""
	if len(deps.Event.Slots) > 0 {
		defaultSlot = deps.Event.Slots[0]
	}
	return &Flow{
		ID:       uuid.New().String(),
		deps:     deps,
		Form:     NewFormState(defaultSlot),
		Toasts:   NewToaster(),
		Checkout: NewBrowserCheckout(),
		state:    models.StateIdle,
		lastSeen: time.Now(),
	}
}

// State returns the flow's current position in the transaction.
func (f *Flow) State() models.FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// LastSeen is the time of the last visitor interaction, used by the
// registry's TTL sweep.
func (f *Flow) LastSeen() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSeen
}

// Touch records visitor activity.
func (f *Flow) Touch() {
	f.mu.Lock()
	f.lastSeen = time.Now()
	f.mu.Unlock()
}

// UpdateField applies a visitor edit. A change of slot to a currently full
// slot is rejected with a toast and no mutation; slot changes are also
// ignored while a payment attempt is in flight, since the transaction has
// already captured the slot value.
func (f *Flow) UpdateField(field, value string) error {
	f.Touch()
	if field == "slot" {
		if f.State() != models.StateIdle {
			return nil
		}
		if f.deps.Slots.Status().SlotFull(value) {
			f.Toasts.Show(msgSlotFullRejected)
			return nil
		}
	}
	return f.Form.Set(field, value)
}

// Submit runs one complete payment attempt and blocks until it settles.
func (f *Flow) Submit(ctx context.Context, paymentType models.PaymentType) {
	if !f.begin(paymentType) {
		return
	}
	f.runTransaction(ctx, paymentType)
}

// StartSubmit runs the submit guards synchronously; when they pass, the
// transaction continues in the background (the checkout step blocks until
// the visitor's browser settles it).
func (f *Flow) StartSubmit(paymentType models.PaymentType) bool {
	if !f.begin(paymentType) {
		return false
	}
	go f.runTransaction(context.Background(), paymentType)
	return true
}

// begin applies the submit guards and, when they all pass, moves the flow to
// Submitting. Every rejection except the in-flight no-op surfaces a toast.
func (f *Flow) begin(paymentType models.PaymentType) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSeen = time.Now()

	// Double-click protection: at most one attempt in flight, and Success is
	// terminal for the session.
	if f.state != models.StateIdle {
		return false
	}

	if msg := f.Form.Validate(); msg != "" {
		f.Toasts.Show(msg)
		return false
	}

	if !f.Checkout.Ready() {
		f.Toasts.Show(msgPaymentLoading)
		return false
	}

	status := f.deps.Slots.Status()
	if status.AllFull(f.deps.Event.Slots) {
		f.Toasts.Show(msgAllSlotsFull)
		return false
	}

	if status.SlotFull(f.Form.Slot()) {
		// Reassign when possible, but never silently pay for a different
		// slot: the visitor must resubmit explicitly.
		if other, ok := status.FirstAvailable(f.deps.Event.Slots); ok {
			f.Toasts.Show(msgSlotFullChoose)
			f.Form.SetSlot(other)
		} else {
			f.Toasts.Show(msgAllSlotsFull)
		}
		return false
	}

	f.state = models.StateSubmitting
	f.paymentType = paymentType
	return true
}

func (f *Flow) runTransaction(ctx context.Context, paymentType models.PaymentType) {
	form := f.Form.Snapshot()
	ev := f.deps.Event

	orderResp, err := f.deps.Upstream.CreateOrder(ctx, models.CreateOrderRequest{
		PaymentType: paymentType,
		Slot:        form.Slot,
		Customer: models.CustomerInfo{
			Name:        form.Name,
			PartnerName: form.PartnerName,
			Email:       form.Email,
			Phone:       form.Phone,
		},
		Meta: models.EventMeta{
			EventName:    ev.Name,
			EventTagline: ev.Tagline,
			EventDate:    ev.Date,
			TableType:    ev.TableType,
		},
	})

	// Order creation may consume capacity even when the attempt later fails.
	f.deps.Slots.Refresh()

	if err != nil {
		f.fail("order creation", err, "Failed to create order")
		return
	}

	order := &models.OrderSession{
		AttemptID:     uuid.New().String(),
		PaymentType:   orderResp.PaymentType,
		Slot:          orderResp.Slot,
		KeyID:         orderResp.KeyID,
		OrderID:       orderResp.OrderID,
		Amount:        orderResp.Amount,
		Currency:      orderResp.Currency,
		HoldRow:       orderResp.HoldRow,
		AmountDisplay: orderResp.AmountPaidDisplay,
	}

	f.mu.Lock()
	f.order = order
	f.state = models.StateAwaitingCheckout
	f.mu.Unlock()

	// The amount and currency come from the create-order response; nothing
	// is computed client-side.
	result, err := f.Checkout.Open(ctx, models.CheckoutOptions{
		Key:         order.KeyID,
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Name:        ev.Name,
		Description: ev.Tagline,
		Prefill: models.CheckoutPrefill{
			Name:    form.Name,
			Email:   form.Email,
			Contact: form.Phone,
		},
		Notes: map[string]string{
			"partnerName": form.PartnerName,
			"eventName":   ev.Name,
			"slot":        form.Slot,
		},
		Theme: models.CheckoutTheme{Color: checkoutThemeColor},
	})
	if err != nil {
		// The hold created upstream is left as-is; expiring it is the
		// backend's responsibility.
		f.deps.Slots.Refresh()
		f.fail("checkout", err, msgGenericFailure)
		return
	}

	f.mu.Lock()
	f.state = models.StateVerifying
	f.mu.Unlock()

	_, err = f.deps.Upstream.VerifyPayment(ctx, models.VerifyRequest{
		RazorpayPaymentID: result.RazorpayPaymentID,
		RazorpayOrderID:   result.RazorpayOrderID,
		RazorpaySignature: result.RazorpaySignature,
		HoldRow:           order.HoldRow,
		PaymentType:       order.PaymentType,
		Slot:              order.Slot,
		Form:              form,
		Meta: models.VerifyMeta{
			EventName:         ev.Name,
			EventTagline:      ev.Tagline,
			EventDate:         ev.Date,
			TableType:         ev.TableType,
			AmountPaidDisplay: order.AmountDisplay,
		},
	})

	f.deps.Slots.Refresh()

	if err != nil {
		// Verification is never retried automatically: the payment may have
		// gone through at the gateway, and a blind retry risks
		// double-charge ambiguity.
		f.fail("verification", err, "Payment verification failed")
		return
	}

	f.mu.Lock()
	f.state = models.StateSuccess
	f.order = nil
	f.confirm = &models.BookingConfirmation{
		Name:              form.Name,
		PartnerName:       form.PartnerName,
		Slot:              form.Slot,
		AmountPaidDisplay: order.AmountDisplay,
	}
	f.mu.Unlock()

	f.Toasts.Show(msgBookingConfirmed)
}

// fail surfaces the error as a toast and returns the flow to Idle.
func (f *Flow) fail(stage string, err error, fallback string) {
	f.deps.Logger.Warn("booking attempt failed",
		zap.String("flow", f.ID),
		zap.String("stage", stage),
		zap.Error(err),
	)
	f.Toasts.Show(toastMessage(err, fallback))

	f.mu.Lock()
	f.state = models.StateIdle
	f.paymentType = ""
	f.order = nil
	f.mu.Unlock()
}

// toastMessage extracts a visitor-safe message from err.
func toastMessage(err error, fallback string) string {
	var flowErr *FlowError
	if errors.As(err, &flowErr) {
		return flowErr.Message
	}
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}

// SlotStatusUpdated reacts to a fresh capacity snapshot. If the selected
// slot just filled up and the flow is idle, the slot is switched to the
// first available one; mid-transaction flows are left alone because the
// transaction already captured its slot value.
func (f *Flow) SlotStatusUpdated(status *models.SlotStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != models.StateIdle {
		return
	}
	if !status.SlotFull(f.Form.Slot()) {
		return
	}

	if other, ok := status.FirstAvailable(f.deps.Event.Slots); ok {
		f.Form.SetSlot(other)
		f.Toasts.Show(msgSlotSwitched)
	} else {
		f.Toasts.Show(msgAllSlotsFull)
	}
}

// Snapshot returns the render state for the UI.
func (f *Flow) Snapshot() models.FlowSnapshot {
	f.mu.Lock()
	state := f.state
	paymentType := f.paymentType
	confirm := f.confirm
	f.mu.Unlock()

	snap := models.FlowSnapshot{
		SessionID:     f.ID,
		State:         state,
		PaymentType:   paymentType,
		Form:          f.Form.Snapshot(),
		Toast:         f.Toasts.Snapshot(),
		CheckoutReady: f.Checkout.Ready(),
	}
	if state == models.StateAwaitingCheckout {
		snap.Checkout = f.Checkout.Options()
	}
	if confirm != nil {
		c := *confirm
		snap.Confirmation = &c
	}
	return snap
}
