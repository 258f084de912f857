package models

// IntentKind is the closed set of purposes a single chat turn can have.
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentShowMenu
	IntentAddItem
	IntentShowCart
	IntentConfirm
	IntentCancel
	IntentHelp
)

func (k IntentKind) String() string {
	switch k {
	case IntentShowMenu:
		return "show_menu"
	case IntentAddItem:
		return "add_item"
	case IntentShowCart:
		return "show_cart"
	case IntentConfirm:
		return "confirm"
	case IntentCancel:
		return "cancel"
	case IntentHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ItemPhrase is one requested item extracted from an AddItem turn.
type ItemPhrase struct {
	Text     string `json:"text"`
	Quantity int    `json:"quantity"` // >= 1, defaults to 1 when no quantity token was given
}

// Intent is the classified purpose of one chat turn. Produced fresh per turn,
// never mutated. Phrases is populated only for AddItem, Raw only for Unknown.
type Intent struct {
	Kind    IntentKind   `json:"kind"`
	Phrases []ItemPhrase `json:"phrases,omitempty"`
	Raw     string       `json:"raw,omitempty"`
}
