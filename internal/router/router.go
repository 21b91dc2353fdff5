package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/config"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/handler"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/middleware"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Session *handler.SessionHandler
	WS      *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Catalog ───────────────────────────────────────────────────────
	api := router.Group("/api/v1")
	{
		api.GET("/tests", handlers.Catalog.ListTests)
	}

	// Creating sessions is rate limited per IP; everything else inside a
	// session is as fast as the candidate can click.
	createLimiter := middleware.NewRateLimiter(cfg.SessionCreateRate, time.Minute)

	// ─── Exam sessions ─────────────────────────────────────────────────
	sessions := api.Group("/sessions")
	{
		sessions.POST("", createLimiter.Middleware(), handlers.Session.CreateSession)
		sessions.GET("/:id", handlers.Session.GetSession)
		sessions.GET("/:id/paper", handlers.Session.GetPaper)
		sessions.POST("/:id/start", handlers.Session.StartExam)
		sessions.POST("/:id/answer", handlers.Session.SelectOption)
		sessions.POST("/:id/clear", handlers.Session.ClearAnswer)
		sessions.POST("/:id/mark", handlers.Session.ToggleMark)
		sessions.POST("/:id/save-next", handlers.Session.SaveAndNext)
		sessions.POST("/:id/navigate", handlers.Session.Navigate)
		sessions.POST("/:id/submit", handlers.Session.SubmitExam)
		sessions.GET("/:id/result", handlers.Session.GetResult)
		sessions.DELETE("/:id", handlers.Session.DiscardSession)
	}

	// ─── WebSocket ─────────────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/sessions/:id/clock", handlers.WS.ClockStream)
	}

	return router
}
