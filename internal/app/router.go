package app

import (
	"econ_quiz_backend/internal/config"
	"econ_quiz_backend/internal/middleware"
	"econ_quiz_backend/internal/model"
	"econ_quiz_backend/pkg/monitoring"
	"econ_quiz_backend/pkg/security"
	"econ_quiz_backend/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.GET("/questions", c.question.GetQuestions)
		authGroup.GET("/questions/topics", c.question.GetTopics)
		authGroup.GET("/questions/session", c.question.GetSessionPreview)
		authGroup.POST("/questions",
			middleware.RoleMiddleware(model.Teacher, model.Admin),
			c.question.CreateQuestion)

		authGroup.POST("/sessions", c.session.CreateSession)
		authGroup.POST("/sessions/:sessionId/submit", c.session.SubmitSession)
		authGroup.GET("/sessions", c.session.GetUserSessions)

		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
		authGroup.GET("/dashboard/analytics", c.dashboard.GetProgressAnalytics)
	}
}
