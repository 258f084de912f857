package handlers

import (
	"net/http"

	"brewflow/models"
	"brewflow/services/ordering"
	"brewflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversation controller over HTTP.
type ChatHandler struct {
	Svc    ordering.ConversationService
	Logger *zap.Logger
}

// NewChatHandler returns a ChatHandler.
func NewChatHandler(svc ordering.ConversationService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

// HandleChat accepts one chat turn and returns exactly one reply.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.HandleTurn(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		// Collaborator failures surface as plain-language replies inside the
		// turn; an error here means session state itself could not be handled.
		h.Logger.Error("chat turn failed", zap.String("sessionId", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", "please try again")
		return
	}
	c.JSON(http.StatusOK, resp)
}
