package models

import "time"

// Session is one continuous chat conversation, identified by an opaque id
// supplied by the transport. It owns exactly one cart. Sessions are created
// lazily on the first turn for an unseen id and are never deleted by the
// conversation core itself.
type Session struct {
	SessionID string    `json:"sessionId"`
	Cart      *Cart     `json:"cart"`
	LastSeen  time.Time `json:"lastSeen"`
}

// NewSession returns a fresh session with an empty open cart.
func NewSession(sessionID string) *Session {
	return &Session{
		SessionID: sessionID,
		Cart:      NewCart(sessionID),
		LastSeen:  time.Now(),
	}
}

// ResetCart swaps in a fresh empty open cart, used after an order settles.
func (s *Session) ResetCart() {
	s.Cart = NewCart(s.SessionID)
}
