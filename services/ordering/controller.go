// File: services/ordering/controller.go
package ordering

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brewflow/models"
	"brewflow/services/intent"

	"go.uber.org/zap"
)

// scorerMinConfidence gates how sure the optional LLM scorer must be before
// its classification overrides an Unknown from the rule classifier.
const scorerMinConfidence = 0.6

// HandleTurn processes one chat turn. Turns for the same session are
// serialized by a per-session lock held across classify, act and reply;
// different sessions proceed fully concurrently.
func (s *DefaultConversationService) HandleTurn(ctx context.Context, sessionID, text string) (*models.ChatResponse, error) {
	lock := s.locks.acquire(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if session == nil {
		session = models.NewSession(sessionID)
	}

	turnIntent := intent.Classify(text)
	if turnIntent.Kind == models.IntentUnknown && s.Scorer != nil {
		turnIntent = s.consultScorer(ctx, text, turnIntent)
	}

	reply := s.dispatch(ctx, session, turnIntent)

	session.LastSeen = time.Now()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session %s: %w", sessionID, err)
	}

	return &models.ChatResponse{
		SessionID: sessionID,
		Reply:     reply,
		State:     stateOf(session.Cart),
		Intent:    turnIntent.Kind.String(),
	}, nil
}

// consultScorer asks the pluggable LLM scorer to break an Unknown. Scorer
// failures are logged and ignored; the rules' verdict stands.
func (s *DefaultConversationService) consultScorer(ctx context.Context, text string, fallback models.Intent) models.Intent {
	scoreCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	scored, confidence, err := s.Scorer.ScoreIntent(scoreCtx, text)
	if err != nil {
		s.Logger.Warn("intent scorer failed", zap.Error(err))
		return fallback
	}
	if scored.Kind == models.IntentUnknown || confidence < scorerMinConfidence {
		return fallback
	}
	s.Logger.Debug("intent resolved by scorer",
		zap.String("intent", scored.Kind.String()), zap.Float64("confidence", confidence))
	return scored
}

// dispatch routes the classified intent to its handler. The switch is
// exhaustive over the intent kinds; Unknown is the default arm.
func (s *DefaultConversationService) dispatch(ctx context.Context, session *models.Session, turnIntent models.Intent) string {
	switch turnIntent.Kind {
	case models.IntentShowMenu:
		return withCartNote(session, s.handleShowMenu(ctx))
	case models.IntentAddItem:
		return s.handleAddItem(ctx, session, turnIntent.Phrases)
	case models.IntentShowCart:
		return s.handleShowCart(session)
	case models.IntentConfirm:
		return s.handleConfirm(ctx, session)
	case models.IntentCancel:
		return s.handleCancel(session)
	case models.IntentHelp:
		return withCartNote(session, helpReply)
	case models.IntentUnknown:
		return s.handleUnknown(session)
	default:
		return s.handleUnknown(session)
	}
}

// withCartNote prefixes a reply with the pending-cart note when a user who
// still has items in their cart navigates to the menu or help.
func withCartNote(session *models.Session, reply string) string {
	if session.Cart.IsEmpty() {
		return reply
	}
	return formatCartNudge(session.Cart) + "\n\n" + reply
}

func (s *DefaultConversationService) handleShowMenu(ctx context.Context) string {
	items, err := s.Catalog.Snapshot(ctx)
	if err != nil {
		s.Logger.Warn("menu unavailable", zap.Error(err))
		return menuUnavailable
	}
	return FormatMenu(items)
}

// handleAddItem resolves each phrase against the catalog. Matched phrases
// go into the cart; unmatched ones are enumerated in the reply without
// touching cart state. Partial success is explicit.
func (s *DefaultConversationService) handleAddItem(ctx context.Context, session *models.Session, phrases []models.ItemPhrase) string {
	items, err := s.Catalog.Snapshot(ctx)
	if err != nil {
		s.Logger.Warn("catalog unavailable during add", zap.Error(err))
		return catalogUnavailable
	}

	var lines []string
	added := 0
	for _, phrase := range phrases {
		result := s.Matcher.Match(phrase.Text, items)
		if !result.Matched {
			lines = append(lines, formatNotFound(phrase.Text))
			continue
		}
		result.Quantity = phrase.Quantity
		line := models.LineItem{
			VariationID: result.Variation.ID,
			ItemName:    result.ItemName,
			Label:       result.Variation.Label,
			Quantity:    phrase.Quantity,
			UnitPrice:   result.Variation.Price,
		}
		if err := session.Cart.AddLine(line); err != nil {
			s.Logger.Error("cart rejected line item",
				zap.String("sessionId", session.SessionID), zap.Error(err))
			lines = append(lines, formatNotFound(phrase.Text))
			continue
		}
		added++
		lines = append(lines, formatAdded(result))
	}

	if added == 0 {
		if len(phrases) == 1 {
			return noItemsMatched
		}
		return strings.Join(append(lines, "", noItemsMatched), "\n")
	}

	lines = append(lines,
		fmt.Sprintf("Cart total: %s (%d item(s))", models.FormatCents(session.Cart.Total()), session.Cart.ItemCount()),
		"",
		keepHint,
	)
	return strings.Join(lines, "\n")
}

func (s *DefaultConversationService) handleShowCart(session *models.Session) string {
	if session.Cart.IsEmpty() {
		return emptyCartReply
	}
	return FormatCart(session.Cart)
}

// handleConfirm runs the full begin-confirmation, submit, finalize cycle.
// On backend failure the cart returns to open with its items preserved; on
// success the session folds back to idle with a fresh empty cart.
func (s *DefaultConversationService) handleConfirm(ctx context.Context, session *models.Session) string {
	cart := session.Cart
	if cart.IsEmpty() {
		return nothingToConfirm
	}
	if err := cart.BeginConfirmation(); err != nil {
		s.Logger.Warn("confirmation rejected",
			zap.String("sessionId", session.SessionID), zap.Error(err))
		return nothingToConfirm
	}

	orderID, err := s.Submitter.Submit(ctx, cart)
	if err != nil {
		// Back to open, items preserved for retry.
		if finErr := cart.Finalize(false); finErr != nil {
			s.Logger.Error("failed to reopen cart after submit failure", zap.Error(finErr))
		}
		return submitFailed
	}

	count := cart.ItemCount()
	total := cart.Total()
	if finErr := cart.Finalize(true); finErr != nil {
		s.Logger.Error("failed to finalize confirmed cart", zap.Error(finErr))
	}
	s.recordOrder(ctx, session, orderID, total)

	// Settled is transient: the session immediately resets to idle so the
	// same session id can start a new order.
	session.ResetCart()
	return formatConfirmation(count, total, orderID)
}

// recordOrder writes the confirmed order trace, best effort.
func (s *DefaultConversationService) recordOrder(ctx context.Context, session *models.Session, orderID string, total int64) {
	if s.Records == nil {
		return
	}
	record := models.OrderRecord{
		SessionID: session.SessionID,
		OrderID:   orderID,
		Lines:     session.Cart.Lines,
		Total:     total,
	}
	if _, err := s.Records.Create(ctx, record); err != nil {
		s.Logger.Warn("failed to record confirmed order",
			zap.String("sessionId", session.SessionID),
			zap.String("orderId", orderID), zap.Error(err))
	}
}

func (s *DefaultConversationService) handleCancel(session *models.Session) string {
	if session.Cart.IsEmpty() {
		return nothingToCancel
	}
	count := session.Cart.ItemCount()
	session.Cart.Clear()
	return formatCancelled(count)
}

func (s *DefaultConversationService) handleUnknown(session *models.Session) string {
	if session.Cart.IsEmpty() {
		return unknownReply
	}
	return unknownReply + "\n\n" + formatCartNudge(session.Cart)
}

// stateOf reports the conversational state implied by the cart. Settled is
// never observed here because confirmed orders reset the cart in-turn.
func stateOf(cart *models.Cart) string {
	if cart.IsEmpty() {
		return "idle"
	}
	return "browsing"
}
