// File: services/intent/gemini.go
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"brewflow/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const scorerPrompt = `Classify the customer message into exactly one of:
show_menu, add_item, show_cart, confirm, cancel, help, unknown.
For add_item also extract the requested items with quantities.
Respond with JSON only: {"intent": "...", "confidence": 0.0,
"items": [{"text": "...", "quantity": 1}]}
Message: %q`

// GeminiScorer implements Scorer on top of the Gemini API.
type GeminiScorer struct {
	model *genai.GenerativeModel
}

// NewGeminiScorer builds a Gemini-backed intent scorer.
func NewGeminiScorer(apiKey string) (*GeminiScorer, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiScorer{model: client.GenerativeModel("models/gemini-1.5-pro")}, nil
}

type scorerReply struct {
	Intent     string              `json:"intent"`
	Confidence float64             `json:"confidence"`
	Items      []models.ItemPhrase `json:"items"`
}

// ScoreIntent asks the model to classify the turn and parses its JSON reply.
func (g *GeminiScorer) ScoreIntent(ctx context.Context, text string) (models.Intent, float64, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(scorerPrompt, text)))
	if err != nil {
		return models.Intent{Kind: models.IntentUnknown, Raw: text}, 0, fmt.Errorf("gemini generate error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return models.Intent{Kind: models.IntentUnknown, Raw: text}, 0, fmt.Errorf("empty scorer response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	var reply scorerReply
	raw := strings.TrimSpace(sb.String())
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.Trim(raw, "` \n")
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return models.Intent{Kind: models.IntentUnknown, Raw: text}, 0, fmt.Errorf("unparseable scorer reply: %w", err)
	}

	intent := models.Intent{Kind: kindFromString(reply.Intent)}
	switch intent.Kind {
	case models.IntentAddItem:
		for _, it := range reply.Items {
			if it.Quantity < 1 {
				it.Quantity = 1
			}
			if it.Text != "" {
				intent.Phrases = append(intent.Phrases, it)
			}
		}
		if len(intent.Phrases) == 0 {
			intent = models.Intent{Kind: models.IntentUnknown, Raw: text}
		}
	case models.IntentUnknown:
		intent.Raw = text
	}
	return intent, reply.Confidence, nil
}

func kindFromString(s string) models.IntentKind {
	switch s {
	case "show_menu":
		return models.IntentShowMenu
	case "add_item":
		return models.IntentAddItem
	case "show_cart":
		return models.IntentShowCart
	case "confirm":
		return models.IntentConfirm
	case "cancel":
		return models.IntentCancel
	case "help":
		return models.IntentHelp
	default:
		return models.IntentUnknown
	}
}
