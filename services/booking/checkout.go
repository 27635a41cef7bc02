package booking

import (
	"context"
	"errors"
	"sync"

	"slowlove/models"
)

// CheckoutGateway opens the external payment checkout and waits for it to
// settle. Open resolves or rejects exactly once per attempt.
type CheckoutGateway interface {
	Ready() bool
	Open(ctx context.Context, opts models.CheckoutOptions) (models.PaymentResult, error)
}

var ErrNoCheckoutPending = errors.New("no checkout in progress")

type checkoutOutcome struct {
	result models.PaymentResult
	err    error
}

// checkoutLatch settles exactly once, even if the gateway fires a success
// handler after a rejection already went through.
type checkoutLatch struct {
	once sync.Once
	ch   chan checkoutOutcome
}

func newCheckoutLatch() *checkoutLatch {
	return &checkoutLatch{ch: make(chan checkoutOutcome, 1)}
}

func (l *checkoutLatch) settle(out checkoutOutcome) {
	l.once.Do(func() { l.ch <- out })
}

// BrowserCheckout bridges the orchestrator to the Razorpay popup running in
// the visitor's browser. Open publishes the popup options into the flow
// snapshot and blocks until the browser reports completion, failure or
// dismissal through the callback endpoints.
type BrowserCheckout struct {
	mu      sync.Mutex
	ready   bool
	options *models.CheckoutOptions
	pending *checkoutLatch
}

func NewBrowserCheckout() *BrowserCheckout {
	return &BrowserCheckout{}
}

// SetReady records whether the page has loaded the checkout script.
func (b *BrowserCheckout) SetReady(ready bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ready = ready
}

func (b *BrowserCheckout) Ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready
}

// Options returns the published popup options while a checkout is pending.
func (b *BrowserCheckout) Options() *models.CheckoutOptions {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.options == nil {
		return nil
	}
	opts := *b.options
	return &opts
}

// Open blocks until the checkout settles or ctx is cancelled.
func (b *BrowserCheckout) Open(ctx context.Context, opts models.CheckoutOptions) (models.PaymentResult, error) {
	b.mu.Lock()
	if b.pending != nil {
		b.mu.Unlock()
		return models.PaymentResult{}, NewGatewayError("Checkout already in progress")
	}
	latch := newCheckoutLatch()
	b.pending = latch
	b.options = &opts
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.pending = nil
		b.options = nil
		b.mu.Unlock()
	}()

	select {
	case out := <-latch.ch:
		return out.result, out.err
	case <-ctx.Done():
		return models.PaymentResult{}, ctx.Err()
	}
}

// Complete settles the pending checkout with a payment result.
func (b *BrowserCheckout) Complete(result models.PaymentResult) error {
	return b.settle(checkoutOutcome{result: result})
}

// Fail settles the pending checkout with a gateway failure.
func (b *BrowserCheckout) Fail(description string) error {
	if description == "" {
		description = "Payment failed"
	}
	return b.settle(checkoutOutcome{err: NewGatewayError(description)})
}

// Dismiss settles the pending checkout as closed by the visitor.
func (b *BrowserCheckout) Dismiss() error {
	return b.settle(checkoutOutcome{err: NewCheckoutClosedError()})
}

func (b *BrowserCheckout) settle(out checkoutOutcome) error {
	b.mu.Lock()
	latch := b.pending
	b.mu.Unlock()
	if latch == nil {
		return ErrNoCheckoutPending
	}
	latch.settle(out)
	return nil
}
