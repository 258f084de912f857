// File: brewflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brewflow/config"
	"brewflow/database"
	ordersRepo "brewflow/database/repository/orders"
	"brewflow/handlers"
	"brewflow/middleware"
	"brewflow/routes"
	"brewflow/services/catalog"
	"brewflow/services/intent"
	"brewflow/services/matcher"
	"brewflow/services/ordering"
	"brewflow/services/square"
	"brewflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.SquareToken == "" {
		logger.Sugar().Fatal("main: SQUARE_TOKEN is required")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.New(routes.CORSConfig()))
	router.Use(middleware.RateLimitMiddleware())

	// Collaborators.
	squareClient := square.NewClient(
		config.AppConfig.SquareBaseURL,
		config.AppConfig.SquareToken,
		config.AppConfig.SquareLocationID,
		logger,
	)

	catalogCache := catalog.NewCache(
		squareClient,
		time.Duration(config.AppConfig.CatalogTTLMinutes)*time.Minute,
		config.CollaboratorTimeout(),
		logger,
	)

	cronCtx, cronCancel := context.WithCancel(context.Background())
	defer cronCancel()
	go catalog.StartRefreshCron(cronCtx, catalogCache,
		time.Duration(config.AppConfig.CatalogRefreshMinutes)*time.Minute, logger)

	// Session persistence: redis when configured, in-memory otherwise.
	var sessionStore ordering.SessionStore
	if config.AppConfig.RedisAddr != "" {
		utils.InitSessionCache()
		sessionStore = ordering.NewRedisSessionStore(
			utils.GetSessionCacheClient(),
			time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
		)
	} else {
		logger.Sugar().Warn("main: REDIS_ADDR not set, sessions will not survive restarts")
		sessionStore = ordering.NewMemorySessionStore()
	}

	// Order history: optional, only when Mongo is configured.
	var orderRecords ordersRepo.OrderRecordRepository
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		orderRecords = ordersRepo.NewMongoOrderRepo()
	} else {
		logger.Sugar().Warn("main: DATABASE_URL not set, order history disabled")
	}

	// Optional LLM intent scorer.
	var scorer intent.Scorer
	if config.AppConfig.GeminiAPIKey != "" {
		geminiScorer, err := intent.NewGeminiScorer(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini scorer: %v", err)
		}
		scorer = geminiScorer
	}

	conversationService := &ordering.DefaultConversationService{
		Catalog: catalogCache,
		Matcher: &matcher.DefaultService{MinConfidence: config.AppConfig.MatchMinConfidence},
		Submitter: &ordering.Submitter{
			Backend: squareClient,
			Timeout: config.CollaboratorTimeout(),
			Logger:  logger,
		},
		Store:   sessionStore,
		Records: orderRecords,
		Scorer:  scorer,
		Timeout: config.CollaboratorTimeout(),
		Logger:  logger,
	}

	chatHandler := handlers.NewChatHandler(conversationService, logger)
	menuHandler := handlers.NewMenuHandler(catalogCache)

	routes.RegisterChatRoutes(router, chatHandler)
	routes.RegisterMenuRoutes(router, menuHandler)
	if orderRecords != nil {
		routes.RegisterOrderRoutes(router, handlers.NewOrdersHandler(orderRecords))
	}
	routes.RegisterHealthRoute(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	cronCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
