package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"slowlove/models"
	"slowlove/services/upstream"

	"go.uber.org/zap"
)

const (
	slotNoon    = "12:00 PM – 03:00 PM"
	slotEvening = "04:00 PM – 07:00 PM"
)

var testEvent = models.EventDetails{
	Name:      "The Slow Love Club",
	Tagline:   "Love, but at an unhurried pace",
	Date:      "Valentine's Day 2024",
	TableType: "Couple's Sanctuary Table",
	Currency:  "₹",
	Slots:     []string{slotNoon, slotEvening},
}

// fakeUpstream counts calls and serves configurable responses.
type fakeUpstream struct {
	mu sync.Mutex

	createCalls int
	verifyCalls int

	createErr error
	verifyErr error
}

func (f *fakeUpstream) SlotStatus(ctx context.Context) (*models.SlotStatus, error) {
	return &models.SlotStatus{OK: true}, nil
}

func (f *fakeUpstream) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	f.mu.Lock()
	f.createCalls++
	f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.CreateOrderResponse{
		OK:                true,
		KeyID:             "rzp_test_key",
		OrderID:           "order_42",
		Amount:            100000,
		Currency:          "INR",
		HoldRow:           7,
		AmountPaidRupees:  1000,
		AmountPaidDisplay: "₹1,000",
		PaymentType:       req.PaymentType,
		Slot:              req.Slot,
	}, nil
}

func (f *fakeUpstream) VerifyPayment(ctx context.Context, req models.VerifyRequest) (*models.VerifyResponse, error) {
	f.mu.Lock()
	f.verifyCalls++
	f.mu.Unlock()
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return &models.VerifyResponse{OK: true}, nil
}

func (f *fakeUpstream) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls, f.verifyCalls
}

// fakeSlots is a hand-set capacity view.
type fakeSlots struct {
	mu      sync.Mutex
	status  *models.SlotStatus
	refresh int
}

func (f *fakeSlots) Status() *models.SlotStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeSlots) Refresh() {
	f.mu.Lock()
	f.refresh++
	f.mu.Unlock()
}

func (f *fakeSlots) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refresh
}

func statusWith(full ...string) *models.SlotStatus {
	st := &models.SlotStatus{OK: true, Capacity: 10, Slots: map[string]models.SlotInfo{}}
	for _, s := range []string{slotNoon, slotEvening} {
		st.Slots[s] = models.SlotInfo{Capacity: 10, Remaining: 10}
	}
	for _, s := range full {
		st.Slots[s] = models.SlotInfo{Capacity: 10, Confirmed: 10, Total: 10, IsFull: true}
	}
	return st
}

func newTestFlow(up *fakeUpstream, slots *fakeSlots) *Flow {
	flow := NewFlow(Deps{
		Upstream: up,
		Slots:    slots,
		Event:    testEvent,
		Logger:   zap.NewNop(),
	})
	flow.Checkout.SetReady(true)
	return flow
}

func fillForm(f *Flow) {
	f.Form.Set("name", "Asha")
	f.Form.Set("partnerName", "Rohan")
	f.Form.Set("email", "asha@example.com")
	f.Form.Set("phone", "+91 98765 43210")
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSubmitValidationBlocksNetworkPerField(t *testing.T) {
	cases := []struct {
		clear string
		want  string
	}{
		{"name", "Please enter your name."},
		{"partnerName", "Please enter partner's name."},
		{"slot", "Please select a slot."},
		{"email", "Please enter email address."},
		{"phone", "Please enter phone number."},
	}

	for _, tc := range cases {
		up := &fakeUpstream{}
		flow := newTestFlow(up, &fakeSlots{status: statusWith()})
		fillForm(flow)
		flow.Form.Set(tc.clear, "")

		flow.Submit(context.Background(), models.PaymentPartial)

		if flow.State() != models.StateIdle {
			t.Errorf("missing %s: state = %s, want idle", tc.clear, flow.State())
		}
		if creates, _ := up.calls(); creates != 0 {
			t.Errorf("missing %s: %d order creations, want none", tc.clear, creates)
		}
		if toast := flow.Toasts.Snapshot(); !toast.Visible || toast.Message != tc.want {
			t.Errorf("missing %s: toast = %+v, want %q", tc.clear, toast, tc.want)
		}
	}
}

func TestSubmitRequiresCheckoutReady(t *testing.T) {
	up := &fakeUpstream{}
	flow := newTestFlow(up, &fakeSlots{status: statusWith()})
	flow.Checkout.SetReady(false)
	fillForm(flow)

	flow.Submit(context.Background(), models.PaymentFull)

	if creates, _ := up.calls(); creates != 0 {
		t.Errorf("%d order creations, want none", creates)
	}
	if toast := flow.Toasts.Snapshot(); toast.Message != msgPaymentLoading {
		t.Errorf("toast = %q", toast.Message)
	}
}

func TestSubmitAllSlotsFull(t *testing.T) {
	up := &fakeUpstream{}
	flow := newTestFlow(up, &fakeSlots{status: statusWith(slotNoon, slotEvening)})
	fillForm(flow)

	flow.Submit(context.Background(), models.PaymentPartial)

	if creates, _ := up.calls(); creates != 0 {
		t.Errorf("%d order creations, want none", creates)
	}
	if toast := flow.Toasts.Snapshot(); toast.Message != msgAllSlotsFull {
		t.Errorf("toast = %q, want %q", toast.Message, msgAllSlotsFull)
	}
}

func TestSubmitReassignsFullSlotWithoutOrdering(t *testing.T) {
	up := &fakeUpstream{}
	flow := newTestFlow(up, &fakeSlots{status: statusWith(slotNoon)})
	fillForm(flow)

	flow.Submit(context.Background(), models.PaymentPartial)

	if got := flow.Form.Slot(); got != slotEvening {
		t.Errorf("slot = %q, want reassigned to %q", got, slotEvening)
	}
	if creates, _ := up.calls(); creates != 0 {
		t.Errorf("%d order creations in the same invocation, want none", creates)
	}
	if flow.State() != models.StateIdle {
		t.Errorf("state = %s, want idle pending an explicit resubmit", flow.State())
	}
	if toast := flow.Toasts.Snapshot(); toast.Message != msgSlotFullChoose {
		t.Errorf("toast = %q, want %q", toast.Message, msgSlotFullChoose)
	}
}

func TestSubmitHappyPath(t *testing.T) {
	up := &fakeUpstream{}
	slots := &fakeSlots{status: statusWith()}
	flow := newTestFlow(up, slots)
	fillForm(flow)

	done := make(chan struct{})
	go func() {
		flow.Submit(context.Background(), models.PaymentPartial)
		close(done)
	}()

	waitFor(t, "checkout options", func() bool { return flow.Checkout.Options() != nil })

	opts := flow.Checkout.Options()
	if opts.OrderID != "order_42" || opts.Amount != 100000 || opts.Currency != "INR" {
		t.Errorf("checkout options = %+v, want backend order values", opts)
	}
	if flow.State() != models.StateAwaitingCheckout {
		t.Errorf("state = %s, want awaiting_checkout", flow.State())
	}

	if err := flow.Checkout.Complete(models.PaymentResult{
		RazorpayPaymentID: "pay_1",
		RazorpayOrderID:   "order_42",
		RazorpaySignature: "sig",
	}); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	<-done

	if flow.State() != models.StateSuccess {
		t.Fatalf("state = %s, want success", flow.State())
	}
	creates, verifies := up.calls()
	if creates != 1 || verifies != 1 {
		t.Errorf("creates = %d, verifies = %d, want exactly one each", creates, verifies)
	}
	if toast := flow.Toasts.Snapshot(); toast.Message != msgBookingConfirmed {
		t.Errorf("toast = %q, want confirmation", toast.Message)
	}
	snap := flow.Snapshot()
	if snap.Confirmation == nil || snap.Confirmation.Slot != slotNoon {
		t.Errorf("confirmation = %+v", snap.Confirmation)
	}
	if slots.refreshCount() < 2 {
		t.Errorf("refresh count = %d, want refresh after order creation and verification", slots.refreshCount())
	}
}

func TestSubmitIsNoOpWhileInFlight(t *testing.T) {
	up := &fakeUpstream{}
	flow := newTestFlow(up, &fakeSlots{status: statusWith()})
	fillForm(flow)

	done := make(chan struct{})
	go func() {
		flow.Submit(context.Background(), models.PaymentPartial)
		close(done)
	}()
	waitFor(t, "checkout options", func() bool { return flow.Checkout.Options() != nil })

	// Double clicks while the popup is open must not create another order.
	flow.Submit(context.Background(), models.PaymentPartial)
	flow.Submit(context.Background(), models.PaymentFull)

	flow.Checkout.Dismiss()
	<-done

	if creates, _ := up.calls(); creates != 1 {
		t.Errorf("creates = %d, want exactly one", creates)
	}
}

func TestSubmitOrderCreationFailure(t *testing.T) {
	up := &fakeUpstream{createErr: &upstream.APIError{Op: "create-order", Message: "Slot just sold out"}}
	slots := &fakeSlots{status: statusWith()}
	flow := newTestFlow(up, slots)
	fillForm(flow)

	flow.Submit(context.Background(), models.PaymentFull)

	if flow.State() != models.StateIdle {
		t.Errorf("state = %s, want idle", flow.State())
	}
	if toast := flow.Toasts.Snapshot(); toast.Message != "Slot just sold out" {
		t.Errorf("toast = %q, want the server message", toast.Message)
	}
	if slots.refreshCount() == 0 {
		t.Error("slot status must refresh after a failed order attempt")
	}
	if _, verifies := up.calls(); verifies != 0 {
		t.Errorf("verifies = %d, want none", verifies)
	}
}

func TestSubmitCheckoutDismissed(t *testing.T) {
	up := &fakeUpstream{}
	slots := &fakeSlots{status: statusWith()}
	flow := newTestFlow(up, slots)
	fillForm(flow)

	done := make(chan struct{})
	go func() {
		flow.Submit(context.Background(), models.PaymentPartial)
		close(done)
	}()
	waitFor(t, "checkout options", func() bool { return flow.Checkout.Options() != nil })

	flow.Checkout.Dismiss()
	<-done

	if flow.State() != models.StateIdle {
		t.Errorf("state = %s, want idle", flow.State())
	}
	if toast := flow.Toasts.Snapshot(); toast.Message != "Checkout closed" {
		t.Errorf("toast = %q, want Checkout closed", toast.Message)
	}
	if _, verifies := up.calls(); verifies != 0 {
		t.Errorf("verifies = %d, want none after dismissal", verifies)
	}
}

func TestSubmitVerificationFailure(t *testing.T) {
	up := &fakeUpstream{verifyErr: &upstream.APIError{Op: "verify-payment", Message: "Signature mismatch"}}
	flow := newTestFlow(up, &fakeSlots{status: statusWith()})
	fillForm(flow)

	done := make(chan struct{})
	go func() {
		flow.Submit(context.Background(), models.PaymentPartial)
		close(done)
	}()
	waitFor(t, "checkout options", func() bool { return flow.Checkout.Options() != nil })
	flow.Checkout.Complete(models.PaymentResult{RazorpayPaymentID: "pay_1"})
	<-done

	if flow.State() != models.StateIdle {
		t.Errorf("state = %s, want idle", flow.State())
	}
	if toast := flow.Toasts.Snapshot(); toast.Message != "Signature mismatch" {
		t.Errorf("toast = %q, want the verification error", toast.Message)
	}
}

func TestSlotStatusUpdateSwitchesIdleFlow(t *testing.T) {
	flow := newTestFlow(&fakeUpstream{}, &fakeSlots{status: statusWith()})
	fillForm(flow)

	flow.SlotStatusUpdated(statusWith(slotNoon))

	if got := flow.Form.Slot(); got != slotEvening {
		t.Errorf("slot = %q, want switched to %q", got, slotEvening)
	}
	if toast := flow.Toasts.Snapshot(); toast.Message != msgSlotSwitched {
		t.Errorf("toast = %q, want %q", toast.Message, msgSlotSwitched)
	}
}

func TestSlotStatusUpdateAllFull(t *testing.T) {
	flow := newTestFlow(&fakeUpstream{}, &fakeSlots{status: statusWith()})
	fillForm(flow)

	flow.SlotStatusUpdated(statusWith(slotNoon, slotEvening))

	if got := flow.Form.Slot(); got != slotNoon {
		t.Errorf("slot = %q, want unchanged", got)
	}
	if toast := flow.Toasts.Snapshot(); toast.Message != msgAllSlotsFull {
		t.Errorf("toast = %q, want %q", toast.Message, msgAllSlotsFull)
	}
}

func TestSlotStatusUpdateLeavesInFlightFlowAlone(t *testing.T) {
	up := &fakeUpstream{}
	flow := newTestFlow(up, &fakeSlots{status: statusWith()})
	fillForm(flow)

	done := make(chan struct{})
	go func() {
		flow.Submit(context.Background(), models.PaymentPartial)
		close(done)
	}()
	waitFor(t, "checkout options", func() bool { return flow.Checkout.Options() != nil })

	flow.SlotStatusUpdated(statusWith(slotNoon))

	if got := flow.Form.Slot(); got != slotNoon {
		t.Errorf("slot = %q, want untouched mid-transaction", got)
	}

	flow.Checkout.Dismiss()
	<-done
}

func TestUpdateFieldRejectsFullSlot(t *testing.T) {
	flow := newTestFlow(&fakeUpstream{}, &fakeSlots{status: statusWith(slotEvening)})
	fillForm(flow)

	if err := flow.UpdateField("slot", slotEvening); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}

	if got := flow.Form.Slot(); got != slotNoon {
		t.Errorf("slot = %q, want unchanged %q", got, slotNoon)
	}
	if toast := flow.Toasts.Snapshot(); toast.Message != msgSlotFullRejected {
		t.Errorf("toast = %q, want %q", toast.Message, msgSlotFullRejected)
	}
}
