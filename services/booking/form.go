package booking

import (
	"fmt"
	"strings"
	"sync"

	"slowlove/models"
)

// FormState holds the visitor-entered reservation fields for one flow.
type FormState struct {
	mu   sync.Mutex
	form models.BookingForm
}

func NewFormState(defaultSlot string) *FormState {
	return &FormState{form: models.BookingForm{Slot: defaultSlot}}
}

// Set assigns a field by its wire name. Full-slot rejection happens at the
// flow level, where the capacity view lives.
func (f *FormState) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "name":
		f.form.Name = value
	case "partnerName":
		f.form.PartnerName = value
	case "email":
		f.form.Email = value
	case "phone":
		f.form.Phone = value
	case "slot":
		f.form.Slot = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// SetSlot reassigns the selected slot. Used both by visitor input and by the
// poller's auto-switch when the selected slot fills up.
func (f *FormState) SetSlot(slot string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Slot = slot
}

// Slot returns the currently selected slot.
func (f *FormState) Slot() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form.Slot
}

// Snapshot returns a copy of the form.
func (f *FormState) Snapshot() models.BookingForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

// Validate checks required fields in a fixed order and returns the first
// failing message, or "" when the form is complete. Only presence is checked;
// the backend is the source of truth for formats.
func (f *FormState) Validate() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case strings.TrimSpace(f.form.Name) == "":
		return "Please enter your name."
	case strings.TrimSpace(f.form.PartnerName) == "":
		return "Please enter partner's name."
	case strings.TrimSpace(f.form.Slot) == "":
		return "Please select a slot."
	case strings.TrimSpace(f.form.Email) == "":
		return "Please enter email address."
	case strings.TrimSpace(f.form.Phone) == "":
		return "Please enter phone number."
	}
	return ""
}
