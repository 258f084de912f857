package models

// MatchResult is the outcome of resolving a free-text phrase against a
// catalog snapshot. When Matched is false no candidate cleared the
// acceptance threshold and the other fields are zero.
type MatchResult struct {
	Matched   bool      `json:"matched"`
	Variation Variation `json:"variation,omitempty"`
	ItemName  string    `json:"itemName,omitempty"`
	Score     float64   `json:"score"`
	Quantity  int       `json:"quantity"`
}
