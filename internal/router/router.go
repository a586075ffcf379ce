package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"myteai/internal/config"
	"myteai/internal/handler"
	"myteai/internal/metrics"
	"myteai/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	invoiceH *handler.InvoiceHandler,
	assistantH *handler.AssistantHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.MaxFileBytes()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Operational surface
	r.GET("/healthz", healthH.Liveness)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst)

	invoiceGroup := r.Group("/invoice-classifier")
	invoiceGroup.Use(middleware.RateLimit(limiter))
	invoiceGroup.POST("/parse-and-classify-invoice", invoiceH.ParseAndClassify)

	assistantGroup := r.Group("/voice-assistant")
	assistantGroup.Use(middleware.RateLimit(limiter))
	assistantGroup.POST("/chat", assistantH.Chat)
	assistantGroup.POST("/transcribe", assistantH.Transcribe)

	return r
}
