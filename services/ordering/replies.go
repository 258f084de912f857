// File: services/ordering/replies.go
package ordering

import (
	"fmt"
	"strings"

	"brewflow/models"
)

const (
	confirmHint = "Say 'confirm' to checkout or 'cancel' to clear your cart."
	keepHint    = "Say 'confirm' to checkout, 'cart' to see your order, or keep adding items."

	emptyCartReply     = "Your cart is empty. Say 'menu' to see what's available!"
	nothingToConfirm   = "Nothing to confirm - your cart is empty. Say 'menu' to see what's available."
	nothingToCancel    = "Nothing to cancel - your cart is already empty. Say 'menu' to see what's available."
	menuUnavailable    = "Sorry, I can't fetch the menu right now. Please try again in a moment."
	catalogUnavailable = "Sorry, I can't look that up right now. Please try again in a moment."
	submitFailed       = "Sorry, I couldn't place your order right now. Your cart is unchanged - say 'confirm' to try again."
	noItemsMatched     = "I couldn't find that item on the menu. Try saying 'menu' to see what's available."
	unknownReply       = "I didn't quite understand that. Try 'menu' to see options or 'help' for commands."

	helpReply = `Here's how to order:

  - 'menu'    - see what's available
  - 'cart'    - view your current order
  - 'add X'   - add an item (e.g. 'add matcha latte')
  - 'confirm' - place your order
  - 'cancel'  - clear your cart and start over

Just type naturally! For example:
  - "I'll have two iced lattes"
  - "Show me the menu"
  - "What's in my cart?"
  - "That's all, checkout please"`
)

// FormatMenu renders the catalog as a numbered list, one entry per
// variation: "<n>. <item name> - <variation label> (<price>)".
func FormatMenu(items []models.CatalogItem) string {
	var lines []string
	n := 1
	for _, item := range items {
		for _, v := range item.Variations {
			lines = append(lines, fmt.Sprintf("%d. %s - %s (%s)", n, item.Name, v.Label, models.FormatCents(v.Price)))
			n++
		}
	}
	if len(lines) == 0 {
		return "The menu is empty right now. Please check back soon."
	}
	return "Here's our menu:\n\n" + strings.Join(lines, "\n")
}

// FormatCart renders the cart: header, numbered lines, blank line, total,
// then the confirm/cancel hint.
func FormatCart(cart *models.Cart) string {
	lines := []string{"Your current order:"}
	for i, l := range cart.Lines {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, lineDisplay(l), models.FormatCents(l.Subtotal())))
	}
	lines = append(lines, "", fmt.Sprintf("Total: %s", models.FormatCents(cart.Total())), confirmHint)
	return strings.Join(lines, "\n")
}

// lineDisplay names a line item for replies, tagging merged quantities.
func lineDisplay(l models.LineItem) string {
	display := l.ItemName + " - " + l.Label
	if l.Quantity > 1 {
		display += fmt.Sprintf(" (x%d)", l.Quantity)
	}
	return display
}

func formatConfirmation(count int, total int64, orderID string) string {
	return fmt.Sprintf("Order confirmed! You ordered %d item(s) for %s. Order ID: %s. Thank you for your order!",
		count, models.FormatCents(total), orderID)
}

func formatCancelled(count int) string {
	return fmt.Sprintf("Order cancelled. Removed %d item(s) from your cart. Say 'menu' to start over.", count)
}

func formatAdded(result models.MatchResult) string {
	display := result.ItemName + " - " + result.Variation.Label
	if result.Quantity > 1 {
		return fmt.Sprintf("Added %d x %s (%s each) to your cart.",
			result.Quantity, display, models.FormatCents(result.Variation.Price))
	}
	return fmt.Sprintf("Added %s (%s) to your cart.", display, models.FormatCents(result.Variation.Price))
}

func formatNotFound(phrase string) string {
	return fmt.Sprintf("I couldn't find %q on the menu.", phrase)
}

func formatCartNudge(cart *models.Cart) string {
	var names []string
	for _, l := range cart.Lines {
		names = append(names, lineDisplay(l))
	}
	return fmt.Sprintf("Note: You have %d item(s) in your cart (%s). Say 'cart' to review them.",
		cart.ItemCount(), strings.Join(names, ", "))
}
