package booking

import (
	"sync"
	"time"

	"slowlove/models"
)

// toastDuration is how long a toast stays visible before auto-dismissing.
const toastDuration = 3500 * time.Millisecond

// Toaster holds at most one visible toast. A new message replaces the
// current one and restarts the dismiss timer; stale timers never clear a
// newer message.
type Toaster struct {
	mu    sync.Mutex
	delay time.Duration
	seq   int
	toast models.Toast
	timer *time.Timer
}

func NewToaster() *Toaster {
	return &Toaster{delay: toastDuration}
}

// Show replaces any visible toast with message and resets the dismiss timer.
func (t *Toaster) Show(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	t.toast = models.Toast{Visible: true, Message: message}

	if t.timer != nil {
		t.timer.Stop()
	}
	seq := t.seq
	t.timer = time.AfterFunc(t.delay, func() {
		t.dismiss(seq)
	})
}

// dismiss clears the toast only if no newer Show happened since.
func (t *Toaster) dismiss(seq int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.seq != seq {
		return
	}
	t.toast = models.Toast{}
}

// Snapshot returns the current toast state.
func (t *Toaster) Snapshot() models.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.toast
}
