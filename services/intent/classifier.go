// File: services/intent/classifier.go
package intent

import (
	"strings"

	"brewflow/models"
)

// Keyword rules are checked in priority order before the add-item parse, so
// a message containing both "menu" and an item phrase classifies as
// ShowMenu. Sets follow the phrasing users actually type; extend with care.
var (
	cancelKeywords  = []string{"cancel", "nevermind", "never mind", "forget it", "start over", "clear"}
	confirmKeywords = []string{"confirm", "checkout", "check out", "place order", "that's all", "thats all", "submit", "done"}
	helpKeywords    = []string{"help", "how do i", "what can you do"}
	menuKeywords    = []string{"menu", "options", "what do you have", "what's available", "whats available"}
	cartKeywords    = []string{"cart", "my order", "show order", "what did i"}
)

// Ordering cues mark a clause as an add-item request. A clause with neither
// a cue nor an explicit quantity yields no phrase, so arbitrary text falls
// through to Unknown instead of being force-fit into the cart.
var orderingCues = []string{
	"i would like", "i'd like", "i will have", "i'll have",
	"can i get", "can i have", "could i get", "could i have", "may i have",
	"give me", "get me", "add", "order", "i want", "want", "get", "have",
}

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Classify maps a raw chat turn to an intent. It is a pure function of the
// input text and the fixed rule set.
func Classify(raw string) models.Intent {
	text := stripMentions(raw)
	lower := strings.ToLower(text)
	words := tokenize(lower)

	switch {
	case matchesAny(lower, words, cancelKeywords):
		return models.Intent{Kind: models.IntentCancel}
	case matchesAny(lower, words, confirmKeywords):
		return models.Intent{Kind: models.IntentConfirm}
	case matchesAny(lower, words, helpKeywords):
		return models.Intent{Kind: models.IntentHelp}
	case matchesAny(lower, words, menuKeywords):
		return models.Intent{Kind: models.IntentShowMenu}
	case matchesAny(lower, words, cartKeywords):
		return models.Intent{Kind: models.IntentShowCart}
	}

	if phrases := parseItemPhrases(lower); len(phrases) > 0 {
		return models.Intent{Kind: models.IntentAddItem, Phrases: phrases}
	}
	return models.Intent{Kind: models.IntentUnknown, Raw: raw}
}

// stripMentions removes leading transport addressing tokens like "@agent".
func stripMentions(text string) string {
	fields := strings.Fields(text)
	for len(fields) > 0 && strings.HasPrefix(fields[0], "@") {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

// matchesAny checks single-word keywords against word boundaries and
// multi-word keywords as substrings.
func matchesAny(lower string, words map[string]bool, keywords []string) bool {
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') || strings.ContainsRune(kw, '\'') {
			if strings.Contains(lower, kw) {
				return true
			}
		} else if words[kw] {
			return true
		}
	}
	return false
}

func tokenize(lower string) map[string]bool {
	words := make(map[string]bool)
	for _, f := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '\'')
	}) {
		words[strings.Trim(f, "'")] = true
	}
	return words
}

// parseItemPhrases splits the turn into clauses on commas and conjunctions
// and extracts (phrase, quantity) pairs. The turn is only treated as an
// add-item request when at least one clause carries an ordering cue or an
// explicit quantity token.
func parseItemPhrases(lower string) []models.ItemPhrase {
	clauses := splitClauses(lower)

	var phrases []models.ItemPhrase
	anchored := false
	for _, clause := range clauses {
		cueFound, qty, phrase := parseClause(clause)
		if phrase == "" {
			continue
		}
		if cueFound || qty > 0 {
			anchored = true
		}
		if qty == 0 {
			qty = 1
		}
		phrases = append(phrases, models.ItemPhrase{Text: phrase, Quantity: qty})
	}

	if !anchored {
		return nil
	}
	return phrases
}

func splitClauses(lower string) []string {
	normalized := strings.ReplaceAll(lower, " and ", ",")
	normalized = strings.ReplaceAll(normalized, " plus ", ",")
	normalized = strings.ReplaceAll(normalized, "&", ",")

	var clauses []string
	for _, c := range strings.Split(normalized, ",") {
		if c = strings.TrimSpace(c); c != "" {
			clauses = append(clauses, c)
		}
	}
	return clauses
}

// parseClause strips ordering cues and a leading quantity token from one
// clause. qty is 0 when no explicit quantity was present.
func parseClause(clause string) (cueFound bool, qty int, phrase string) {
	words := strings.Fields(strings.Trim(clause, " .!?"))

	// Drop leading politeness.
	for len(words) > 0 && (words[0] == "please" || words[0] == "hi" || words[0] == "hey") {
		words = words[1:]
	}

	// Strip ordering cue prefixes, longest first. Cues may stack
	// ("please add", "i want to order").
	for stripped := true; stripped && len(words) > 0; {
		stripped = false
		rest := strings.Join(words, " ")
		for _, cue := range orderingCues {
			if rest == cue {
				words = nil
				stripped = true
				break
			}
			if strings.HasPrefix(rest, cue+" ") {
				words = strings.Fields(rest[len(cue)+1:])
				cueFound = true
				stripped = true
				break
			}
		}
		// "to" glue between stacked cues, as in "want to order".
		for len(words) > 0 && words[0] == "to" {
			words = words[1:]
		}
	}

	// Leading quantity token: digits or a small number word.
	if len(words) > 0 {
		if n, ok := parseQuantity(words[0]); ok {
			qty = n
			words = words[1:]
			// "two of the coffees"
			if len(words) > 0 && words[0] == "of" {
				words = words[1:]
			}
		}
	}

	// Articles and fillers before the item phrase itself.
	for len(words) > 0 && (words[0] == "the" || words[0] == "some" || words[0] == "me") {
		words = words[1:]
	}
	for len(words) > 0 && words[len(words)-1] == "please" {
		words = words[:len(words)-1]
	}

	return cueFound, qty, strings.Join(words, " ")
}

func parseQuantity(word string) (int, bool) {
	if n, ok := numberWords[word]; ok {
		return n, true
	}
	n := 0
	for _, r := range word {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n < 1 || n > 99 {
		return 0, false
	}
	return n, true
}
