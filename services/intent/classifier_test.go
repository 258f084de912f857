package intent

import (
	"testing"

	"brewflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKeywordIntents(t *testing.T) {
	cases := []struct {
		text string
		want models.IntentKind
	}{
		{"menu", models.IntentShowMenu},
		{"show me the menu", models.IntentShowMenu},
		{"what do you have today", models.IntentShowMenu},
		{"what's available?", models.IntentShowMenu},
		{"cart", models.IntentShowCart},
		{"what's in my cart?", models.IntentShowCart},
		{"show order", models.IntentShowCart},
		{"confirm", models.IntentConfirm},
		{"that's all, checkout please", models.IntentConfirm},
		{"place order", models.IntentConfirm},
		{"ok I'm done", models.IntentConfirm},
		{"cancel", models.IntentCancel},
		{"nevermind, forget it", models.IntentCancel},
		{"let's start over", models.IntentCancel},
		{"help", models.IntentHelp},
		{"how do I order?", models.IntentHelp},
	}
	for _, tc := range cases {
		got := Classify(tc.text)
		assert.Equal(t, tc.want, got.Kind, "text: %q", tc.text)
	}
}

func TestClassifyKeywordsBeatAddItem(t *testing.T) {
	// A message containing both "menu" and an item phrase is ShowMenu;
	// ambiguity is resolved by rule priority, not confidence.
	got := Classify("show me the menu, I want a burger")
	assert.Equal(t, models.IntentShowMenu, got.Kind)

	got = Classify("cancel my coffee order")
	assert.Equal(t, models.IntentCancel, got.Kind)
}

func TestClassifyStripsMentions(t *testing.T) {
	got := Classify("@orderbot menu")
	assert.Equal(t, models.IntentShowMenu, got.Kind)

	got = Classify("@orderbot @here I'll have a latte")
	require.Equal(t, models.IntentAddItem, got.Kind)
	require.Len(t, got.Phrases, 1)
	assert.Equal(t, "latte", got.Phrases[0].Text)
}

func TestClassifyAddItemQuantities(t *testing.T) {
	cases := []struct {
		text    string
		phrases []models.ItemPhrase
	}{
		{"I'll have two coffees", []models.ItemPhrase{{Text: "coffees", Quantity: 2}}},
		{"add 3 bacon burgers", []models.ItemPhrase{{Text: "bacon burgers", Quantity: 3}}},
		{"order a matcha latte", []models.ItemPhrase{{Text: "matcha latte", Quantity: 1}}},
		{"give me two of the iced lattes", []models.ItemPhrase{{Text: "iced lattes", Quantity: 2}}},
		{"i want a cheese burger and two sodas", []models.ItemPhrase{
			{Text: "cheese burger", Quantity: 1},
			{Text: "sodas", Quantity: 2},
		}},
		{"add a soda, a juice and three waters", []models.ItemPhrase{
			{Text: "soda", Quantity: 1},
			{Text: "juice", Quantity: 1},
			{Text: "waters", Quantity: 3},
		}},
	}
	for _, tc := range cases {
		got := Classify(tc.text)
		require.Equal(t, models.IntentAddItem, got.Kind, "text: %q", tc.text)
		assert.Equal(t, tc.phrases, got.Phrases, "text: %q", tc.text)
	}
}

func TestClassifyUnknownWithoutOrderingCue(t *testing.T) {
	for _, text := range []string{"asdkjfh", "the weather is nice", ""} {
		got := Classify(text)
		assert.Equal(t, models.IntentUnknown, got.Kind, "text: %q", text)
		assert.Equal(t, text, got.Raw, "text: %q", text)
	}
}

func TestClassifyIsPure(t *testing.T) {
	// Same input, same result, always.
	first := Classify("I'll have two coffees and a muffin")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify("I'll have two coffees and a muffin"))
	}
}
