// File: services/matcher/matcher.go
package matcher

import (
	"strings"

	"brewflow/models"
)

// containmentBonus rewards a candidate whose full name contains the phrase
// (or the other way round) on top of plain token overlap.
const containmentBonus = 0.25

// Service resolves free-text phrases against a catalog snapshot.
type Service interface {
	Match(phrase string, items []models.CatalogItem) models.MatchResult
}

// DefaultService implements Service with deterministic token-overlap
// scoring. MinConfidence is the fixed acceptance threshold; candidates
// below it are reported as unmatched.
type DefaultService struct {
	MinConfidence float64
}

// Match scores every variation's label together with its parent item name
// against the phrase. Ties break toward the shorter candidate name, then
// catalog declaration order, so identical input always resolves to the same
// variation.
func (s *DefaultService) Match(phrase string, items []models.CatalogItem) models.MatchResult {
	phraseNorm := normalize(phrase)
	phraseTokens := tokens(phraseNorm)
	if len(phraseTokens) == 0 {
		return models.MatchResult{}
	}

	best := models.MatchResult{}
	bestLen := 0
	for _, item := range items {
		for _, v := range item.Variations {
			candNorm := normalize(item.Name + " " + v.Label)
			score := overlapScore(phraseTokens, tokens(candNorm))
			if score > 0 && (strings.Contains(candNorm, phraseNorm) || strings.Contains(phraseNorm, candNorm)) {
				score += containmentBonus
			}
			if score < s.MinConfidence {
				continue
			}
			if score > best.Score || (score == best.Score && len(candNorm) < bestLen) {
				best = models.MatchResult{
					Matched:   true,
					Variation: v,
					ItemName:  item.Name,
					Score:     score,
				}
				bestLen = len(candNorm)
			}
		}
	}
	return best
}

// overlapScore is the fraction of phrase tokens found in the candidate.
func overlapScore(phraseTokens, candTokens []string) float64 {
	candSet := make(map[string]bool, len(candTokens))
	for _, t := range candTokens {
		candSet[t] = true
	}
	matched := 0
	for _, t := range phraseTokens {
		if candSet[t] {
			matched++
		}
	}
	return float64(matched) / float64(len(phraseTokens))
}

// normalize case-folds and strips punctuation, keeping word boundaries.
func normalize(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case 'a' <= r && r <= 'z' || '0' <= r && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '/':
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func tokens(norm string) []string {
	fields := strings.Fields(norm)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, singularize(f))
	}
	return out
}

// singularize trims a trivial plural suffix; "coffees" and "coffee" should
// land on the same token.
func singularize(word string) string {
	if len(word) > 3 && strings.HasSuffix(word, "ies") {
		return word[:len(word)-3] + "y"
	}
	if len(word) > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
		return word[:len(word)-1]
	}
	return word
}
