package matcher

import (
	"testing"

	"brewflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:   "item-matcha",
			Name: "Matcha",
			Variations: []models.Variation{
				{ID: "v-honey-oat", Label: "Honey Oat", Price: 1000},
				{ID: "v-eispanner", Label: "Eispanner", Price: 1100},
			},
		},
		{
			ID:   "item-coffee",
			Name: "Drip Coffee",
			Variations: []models.Variation{
				{ID: "v-coffee-reg", Label: "Regular", Price: 350},
			},
		},
		{
			ID:   "item-latte",
			Name: "Latte",
			Variations: []models.Variation{
				{ID: "v-latte-iced", Label: "Iced", Price: 550},
				{ID: "v-latte-hot", Label: "Hot", Price: 500},
			},
		},
	}
}

func newMatcher() *DefaultService {
	return &DefaultService{MinConfidence: 0.5}
}

func TestMatchExactLabel(t *testing.T) {
	got := newMatcher().Match("matcha honey oat", testCatalog())
	require.True(t, got.Matched)
	assert.Equal(t, "v-honey-oat", got.Variation.ID)
	assert.Equal(t, "Matcha", got.ItemName)
}

func TestMatchGenericNounResolvesToContainingEntry(t *testing.T) {
	// "coffee" must resolve to some variation whose name contains it.
	got := newMatcher().Match("coffee", testCatalog())
	require.True(t, got.Matched)
	assert.Equal(t, "v-coffee-reg", got.Variation.ID)
}

func TestMatchSingularizesTrivially(t *testing.T) {
	got := newMatcher().Match("coffees", testCatalog())
	require.True(t, got.Matched)
	assert.Equal(t, "v-coffee-reg", got.Variation.ID)

	got = newMatcher().Match("lattes", testCatalog())
	require.True(t, got.Matched)
}

func TestMatchIgnoresCaseAndPunctuation(t *testing.T) {
	got := newMatcher().Match("MATCHA, honey-oat!!", testCatalog())
	require.True(t, got.Matched)
	assert.Equal(t, "v-honey-oat", got.Variation.ID)
}

func TestMatchBelowThresholdIsUnmatched(t *testing.T) {
	got := newMatcher().Match("pepperoni pizza", testCatalog())
	assert.False(t, got.Matched)
	assert.Zero(t, got.Variation.ID)
}

func TestMatchEmptyPhraseIsUnmatched(t *testing.T) {
	got := newMatcher().Match("  !? ", testCatalog())
	assert.False(t, got.Matched)
}

func TestMatchTieBreaksByCatalogOrder(t *testing.T) {
	// Two equally-good generic candidates with equal-length names: the one
	// declared first wins, deterministically.
	catalog := []models.CatalogItem{
		{ID: "i1", Name: "Soda", Variations: []models.Variation{{ID: "v-first", Label: "Can", Price: 299}}},
		{ID: "i2", Name: "Soda", Variations: []models.Variation{{ID: "v-second", Label: "Can", Price: 399}}},
	}
	m := newMatcher()
	got := m.Match("soda", catalog)
	require.True(t, got.Matched)
	assert.Equal(t, "v-first", got.Variation.ID)
}

func TestMatchTieBreaksByShorterCandidate(t *testing.T) {
	catalog := []models.CatalogItem{
		{ID: "i1", Name: "Latte", Variations: []models.Variation{
			{ID: "v-long", Label: "Iced Deluxe Special", Price: 650},
			{ID: "v-short", Label: "Iced", Price: 550},
		}},
	}
	got := newMatcher().Match("iced latte", catalog)
	require.True(t, got.Matched)
	assert.Equal(t, "v-short", got.Variation.ID)
}

func TestMatchIsDeterministic(t *testing.T) {
	m := newMatcher()
	first := m.Match("latte", testCatalog())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.Match("latte", testCatalog()))
	}
}
