package routes

import (
	"net/http"
	"time"

	"brewflow/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversation endpoint.
func RegisterChatRoutes(r *gin.Engine, chat *handlers.ChatHandler) {
	api := r.Group("/api")
	{
		api.POST("/chat", chat.HandleChat)
	}
}

// RegisterMenuRoutes registers the catalog endpoints.
func RegisterMenuRoutes(r *gin.Engine, menu *handlers.MenuHandler) {
	api := r.Group("/api")
	{
		api.GET("/menu", menu.GetMenu)
	}
}

// RegisterOrderRoutes registers order history endpoints. Skipped entirely
// when order records are not configured.
func RegisterOrderRoutes(r *gin.Engine, orders *handlers.OrdersHandler) {
	api := r.Group("/api")
	{
		api.GET("/orders/:sessionID", orders.GetSessionOrders)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Brewflow"})
	})
}

// CORSConfig returns the CORS policy for the API surface.
func CORSConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
