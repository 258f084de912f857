package models

import "fmt"

// CartStatus tracks where a cart is in its lifecycle.
type CartStatus string

const (
	CartOpen                 CartStatus = "open"
	CartAwaitingConfirmation CartStatus = "awaiting_confirmation"
	CartConfirmed            CartStatus = "confirmed"
	CartCancelled            CartStatus = "cancelled"
)

// CartError is returned when a cart operation is attempted in the wrong state.
type CartError struct {
	Code    string
	Message string
}

func (e *CartError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newInvalidStateError(msg string) error {
	return &CartError{Code: "invalidState", Message: msg}
}

func newEmptyCartError() error {
	return &CartError{Code: "emptyCart", Message: "cart has no items"}
}

// LineItem references one catalog variation with a quantity. The unit price
// and display names are captured at add time so the cart stays stable even
// if the catalog changes afterwards.
type LineItem struct {
	VariationID string `json:"variationId" bson:"variationId"`
	ItemName    string `json:"itemName" bson:"itemName"`
	Label       string `json:"label" bson:"label"`
	Quantity    int    `json:"quantity" bson:"quantity"`
	UnitPrice   int64  `json:"unitPrice" bson:"unitPrice"`
}

// Subtotal returns quantity times the captured unit price.
func (l LineItem) Subtotal() int64 {
	return int64(l.Quantity) * l.UnitPrice
}

// Cart is the per-session ordered collection of line items. Insertion order
// is display order. Confirmed and cancelled carts are immutable.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Lines     []LineItem `json:"lines"`
	Status    CartStatus `json:"status"`
}

// NewCart returns an empty open cart for the given session.
func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Status: CartOpen}
}

// AddLine appends a line item, merging into an existing line when the same
// variation is already in the cart. Only open carts accept new lines.
func (c *Cart) AddLine(item LineItem) error {
	if c.Status != CartOpen {
		return newInvalidStateError(fmt.Sprintf("cannot add items to a %s cart", c.Status))
	}
	if item.Quantity < 1 {
		return newInvalidStateError("quantity must be at least 1")
	}
	for i := range c.Lines {
		if c.Lines[i].VariationID == item.VariationID {
			c.Lines[i].Quantity += item.Quantity
			return nil
		}
	}
	c.Lines = append(c.Lines, item)
	return nil
}

// Total sums quantity times unit price over all lines.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount sums the quantities over all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear resets the cart to an empty open state.
func (c *Cart) Clear() {
	c.Lines = nil
	c.Status = CartOpen
}

// BeginConfirmation moves an open, non-empty cart into awaiting confirmation.
func (c *Cart) BeginConfirmation() error {
	if c.Status != CartOpen {
		return newInvalidStateError(fmt.Sprintf("cannot confirm a %s cart", c.Status))
	}
	if c.IsEmpty() {
		return newEmptyCartError()
	}
	c.Status = CartAwaitingConfirmation
	return nil
}

// Finalize resolves an awaiting-confirmation cart. On success the cart is
// confirmed and frozen with its final line items; on failure it returns to
// open with the items preserved so the user can retry.
func (c *Cart) Finalize(success bool) error {
	if c.Status != CartAwaitingConfirmation {
		return newInvalidStateError(fmt.Sprintf("cannot finalize a %s cart", c.Status))
	}
	if success {
		c.Status = CartConfirmed
	} else {
		c.Status = CartOpen
	}
	return nil
}
