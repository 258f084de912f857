package handlers

import (
	"net/http"

	"brewflow/services/catalog"
	"brewflow/services/ordering"
	"brewflow/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler serves the formatted catalog outside the chat flow.
type MenuHandler struct {
	Cache *catalog.Cache
}

// NewMenuHandler returns a MenuHandler.
func NewMenuHandler(cache *catalog.Cache) *MenuHandler {
	return &MenuHandler{Cache: cache}
}

// GetMenu returns the current menu snapshot, refreshing it when stale.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	items, err := h.Cache.Snapshot(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "menu unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"menu":      ordering.FormatMenu(items),
		"items":     items,
		"fetchedAt": h.Cache.FetchedAt(),
	})
}
