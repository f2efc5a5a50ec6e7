package routes

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/api/docs"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers mounted on the router
type Handlers struct {
	Transaction *handler.TransactionHandler
	Balance     *handler.BalanceHandler
	Health      *handler.HealthHandler
}

// MiddlewareConfig holds the settings of the global middleware chain
type MiddlewareConfig struct {
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, gatherer prometheus.Gatherer) {
	// both spellings of the collection path are served directly, without a redirect
	router.RedirectTrailingSlash = false

	router.GET("/", handler.Home)
	router.GET("/health", handlers.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	transactions := router.Group("/transactions")
	{
		transactions.POST("/", handlers.Transaction.CreateTransaction)
		transactions.POST("", handlers.Transaction.CreateTransaction)
		transactions.GET("", handlers.Transaction.ListTransactions)
		transactions.GET("/", handlers.Transaction.ListTransactions)
		transactions.GET("/:txId", handlers.Transaction.GetTransaction)
	}

	router.GET("/balance/:walletAddress", handlers.Balance.GetBalance)

	router.GET("/swagger.json", docs.SpecHandler)
	router.GET("/docs", docs.UIHandler)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrNotFound),
			Message: "Not found.",
		})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	registerer prometheus.Registerer,
	cfg MiddlewareConfig,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.Metrics(registerer))
	router.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
}
