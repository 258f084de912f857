package ordering

import (
	"context"
	"time"

	"brewflow/models"

	"go.uber.org/zap"
)

// OrderBackend creates orders at the external order collaborator.
type OrderBackend interface {
	CreateOrder(ctx context.Context, lines []models.LineItem) (string, error)
}

// Submitter translates a finalized cart into an order-creation call. It
// never mutates the cart; the controller performs the finalize step based
// on the result. Backend failures are recoverable, never fatal.
type Submitter struct {
	Backend OrderBackend
	Timeout time.Duration
	Logger  *zap.Logger
}

// Submit places the cart's line items with the backend under a bounded
// timeout and returns the backend's order id.
func (s *Submitter) Submit(ctx context.Context, cart *models.Cart) (string, error) {
	submitCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	orderID, err := s.Backend.CreateOrder(submitCtx, cart.Lines)
	if err != nil {
		s.Logger.Warn("order submission failed",
			zap.String("sessionId", cart.SessionID), zap.Error(err))
		return "", newCollaboratorError("createOrder", err)
	}
	return orderID, nil
}
