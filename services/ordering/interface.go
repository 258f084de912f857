package ordering

import (
	"context"
	"time"

	ordersRepo "brewflow/database/repository/orders"
	"brewflow/models"
	"brewflow/services/catalog"
	"brewflow/services/intent"
	"brewflow/services/matcher"

	"go.uber.org/zap"
)

// ConversationService drives one chat turn through classification, the cart
// state machine and order submission, producing exactly one reply.
type ConversationService interface {
	HandleTurn(ctx context.Context, sessionID, text string) (*models.ChatResponse, error)
}

// DefaultConversationService implements ConversationService.
type DefaultConversationService struct {
	Catalog   *catalog.Cache
	Matcher   matcher.Service
	Submitter *Submitter
	Store     SessionStore
	Records   ordersRepo.OrderRecordRepository // optional, best-effort order history
	Scorer    intent.Scorer                    // optional LLM fallback for Unknown turns
	Timeout   time.Duration
	Logger    *zap.Logger

	locks sessionLocks
}
