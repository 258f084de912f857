package ordering

import (
	"testing"

	"brewflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMenuNumbersAcrossItems(t *testing.T) {
	menu := FormatMenu([]models.CatalogItem{
		{Name: "Matcha", Variations: []models.Variation{
			{ID: "v1", Label: "Honey Oat", Price: 1000},
			{ID: "v2", Label: "Eispanner", Price: 1100},
		}},
		{Name: "Drip Coffee", Variations: []models.Variation{
			{ID: "v3", Label: "Regular", Price: 350},
		}},
	})

	assert.Contains(t, menu, "1. Matcha - Honey Oat ($10.00)")
	assert.Contains(t, menu, "2. Matcha - Eispanner ($11.00)")
	assert.Contains(t, menu, "3. Drip Coffee - Regular ($3.50)")
}

func TestFormatMenuEmptyCatalog(t *testing.T) {
	assert.Equal(t, "The menu is empty right now. Please check back soon.", FormatMenu(nil))
}

func TestFormatCartShape(t *testing.T) {
	cart := models.NewCart("s1")
	require.NoError(t, cart.AddLine(models.LineItem{
		VariationID: "v1", ItemName: "Matcha", Label: "Honey Oat", Quantity: 2, UnitPrice: 1000,
	}))
	require.NoError(t, cart.AddLine(models.LineItem{
		VariationID: "v2", ItemName: "Soda", Label: "Can", Quantity: 1, UnitPrice: 299,
	}))

	want := "Your current order:\n" +
		"1. Matcha - Honey Oat (x2) - $20.00\n" +
		"2. Soda - Can - $2.99\n" +
		"\n" +
		"Total: $22.99\n" +
		"Say 'confirm' to checkout or 'cancel' to clear your cart."
	assert.Equal(t, want, FormatCart(cart))
}

func TestFormatConfirmation(t *testing.T) {
	got := formatConfirmation(2, 700, "abc123")
	assert.Equal(t, "Order confirmed! You ordered 2 item(s) for $7.00. Order ID: abc123. Thank you for your order!", got)
}
