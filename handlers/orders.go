package handlers

import (
	"net/http"

	ordersRepo "brewflow/database/repository/orders"
	"brewflow/utils"

	"github.com/gin-gonic/gin"
)

// OrdersHandler serves confirmed order history.
type OrdersHandler struct {
	Repo ordersRepo.OrderRecordRepository
}

// NewOrdersHandler returns an OrdersHandler.
func NewOrdersHandler(repo ordersRepo.OrderRecordRepository) *OrdersHandler {
	return &OrdersHandler{Repo: repo}
}

// GetSessionOrders lists confirmed orders placed in a session, newest first.
func (h *OrdersHandler) GetSessionOrders(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "sessionID is required")
		return
	}

	records, err := h.Repo.GetBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "orders": records})
}
