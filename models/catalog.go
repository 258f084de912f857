package models

import "fmt"

// Variation is a purchasable SKU under a catalog item, with its own price.
type Variation struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int64  `json:"price"` // minor currency units (cents), never negative
}

// CatalogItem is one menu entry with its ordered variations.
// Snapshots are replaced wholesale on refresh; items are never patched in place.
type CatalogItem struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Variations []Variation `json:"variations"`
}

// FormatCents renders minor currency units as a dollar string, e.g. 1000 -> "$10.00".
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100.0)
}
