package models

// ChatRequest is the payload coming from the transport into /api/chat.
type ChatRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// ChatResponse carries the single reply produced for one chat turn.
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
	State     string `json:"state"` // idle, browsing
	Intent    string `json:"intent"`
}
