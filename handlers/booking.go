package handlers

import (
	"errors"
	"net/http"

	"slowlove/models"
	"slowlove/services/booking"
	"slowlove/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking flow over HTTP. The browser drives the
// flow: it opens a session, edits the form, starts a payment, opens the
// Razorpay popup with the published options and reports the popup's outcome
// back through the checkout callbacks.
type BookingHandler struct {
	svc    booking.SessionService
	slots  booking.SlotView
	logger *zap.Logger
}

func NewBookingHandler(svc booking.SessionService, slots booking.SlotView, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, slots: slots, logger: logger}
}

func (h *BookingHandler) flow(c *gin.Context) (*booking.Flow, bool) {
	flow, ok := h.svc.GetSession(c.Param("sessionID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", c.Param("sessionID"))
		return nil, false
	}
	return flow, true
}

// OpenSession creates a new booking session.
func (h *BookingHandler) OpenSession(c *gin.Context) {
	flow := h.svc.OpenSession()
	c.JSON(http.StatusOK, flow.Snapshot())
}

// GetSession returns the current flow snapshot for rendering.
func (h *BookingHandler) GetSession(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, flow.Snapshot())
}

// CloseSession discards the session (the navigation reset).
func (h *BookingHandler) CloseSession(c *gin.Context) {
	if !h.svc.CloseSession(c.Param("sessionID")) {
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", c.Param("sessionID"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UpdateForm applies a single field edit.
func (h *BookingHandler) UpdateForm(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}

	var input struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := flow.UpdateField(input.Field, input.Value); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid form field", err.Error())
		return
	}
	c.JSON(http.StatusOK, flow.Snapshot())
}

// Pay starts a payment attempt. The guards run synchronously so their toast
// is in the response snapshot; a passing attempt continues in the
// background and the page follows it via GetSession.
func (h *BookingHandler) Pay(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}

	var input struct {
		PaymentType models.PaymentType `json:"paymentType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.PaymentType.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment type", string(input.PaymentType))
		return
	}

	started := flow.StartSubmit(input.PaymentType)
	c.JSON(http.StatusOK, gin.H{
		"started": started,
		"session": flow.Snapshot(),
	})
}

// CheckoutReady records whether the page managed to load the checkout
// script.
func (h *BookingHandler) CheckoutReady(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}

	input := struct {
		Ready *bool `json:"ready"`
	}{}
	// Absent body means the script loaded.
	_ = c.ShouldBindJSON(&input)
	ready := input.Ready == nil || *input.Ready
	flow.Checkout.SetReady(ready)
	c.JSON(http.StatusOK, flow.Snapshot())
}

// CheckoutComplete settles the pending checkout with the gateway's payment
// result tuple.
func (h *BookingHandler) CheckoutComplete(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}

	var result models.PaymentResult
	if err := c.ShouldBindJSON(&result); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.settle(c, flow, flow.Checkout.Complete(result))
}

// CheckoutFailed settles the pending checkout with the gateway's failure
// description.
func (h *BookingHandler) CheckoutFailed(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}

	input := struct {
		Description string `json:"description"`
	}{}
	_ = c.ShouldBindJSON(&input)
	h.settle(c, flow, flow.Checkout.Fail(input.Description))
}

// CheckoutDismissed settles the pending checkout as closed by the visitor.
func (h *BookingHandler) CheckoutDismissed(c *gin.Context) {
	flow, ok := h.flow(c)
	if !ok {
		return
	}
	h.settle(c, flow, flow.Checkout.Dismiss())
}

func (h *BookingHandler) settle(c *gin.Context, flow *booking.Flow, err error) {
	if errors.Is(err, booking.ErrNoCheckoutPending) {
		utils.JSONError(c, http.StatusConflict, "no checkout in progress", flow.ID)
		return
	}
	c.JSON(http.StatusOK, flow.Snapshot())
}

// GetSlots returns the current capacity snapshot.
func (h *BookingHandler) GetSlots(c *gin.Context) {
	status := h.slots.Status()
	if status == nil {
		c.JSON(http.StatusOK, models.SlotStatus{OK: false, Slots: map[string]models.SlotInfo{}})
		return
	}
	c.JSON(http.StatusOK, status)
}
