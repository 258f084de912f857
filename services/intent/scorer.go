package intent

import (
	"context"

	"brewflow/models"
)

// Scorer is the pluggable capability for model-backed intent scoring. The
// rule classifier never depends on it; the conversation controller may
// consult a scorer when the rules return Unknown. A nil scorer is valid.
type Scorer interface {
	ScoreIntent(ctx context.Context, text string) (models.Intent, float64, error)
}
