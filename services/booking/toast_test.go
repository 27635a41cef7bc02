package booking

import (
	"testing"
	"time"
)

func TestToastReplacesAndStaysSingle(t *testing.T) {
	toasts := &Toaster{delay: time.Second}

	toasts.Show("first")
	toasts.Show("second")

	snap := toasts.Snapshot()
	if !snap.Visible {
		t.Fatal("toast should be visible")
	}
	if snap.Message != "second" {
		t.Errorf("message = %q, want the latest", snap.Message)
	}
}

func TestToastAutoDismiss(t *testing.T) {
	toasts := &Toaster{delay: 50 * time.Millisecond}

	toasts.Show("going away")
	time.Sleep(150 * time.Millisecond)

	if snap := toasts.Snapshot(); snap.Visible {
		t.Errorf("toast still visible after delay: %+v", snap)
	}
}

func TestToastTimerResetsOnReplace(t *testing.T) {
	toasts := &Toaster{delay: 120 * time.Millisecond}

	toasts.Show("first")
	time.Sleep(80 * time.Millisecond)
	toasts.Show("second")
	time.Sleep(80 * time.Millisecond)

	// 160ms after the first Show, but only 80ms after the second: the reset
	// timer must keep the second message visible.
	snap := toasts.Snapshot()
	if !snap.Visible || snap.Message != "second" {
		t.Errorf("toast = %+v, want visible %q", snap, "second")
	}

	time.Sleep(100 * time.Millisecond)
	if snap := toasts.Snapshot(); snap.Visible {
		t.Errorf("toast still visible after reset delay elapsed: %+v", snap)
	}
}
