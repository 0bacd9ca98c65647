package routes

import (
	"net/http"

	"moviebag/internal/config"
	"moviebag/internal/delivery/http/handler"
	"moviebag/internal/infrastructure/database/postgres"
	"moviebag/internal/logger"
	"moviebag/internal/middleware"
	"moviebag/internal/usecase/auth"
	"moviebag/internal/usecase/movie"

	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the route table once at startup.
func SetupRoutes(cfg *config.Config, db *postgres.DB, mailer auth.Mailer) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security
	// headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	authService := auth.NewService(userRepository, mailer, cfg)
	authHandler := handler.NewAuthHandler(authService)

	movieRepository := postgres.NewMovieRepository(db)
	movieService := movie.NewService(movieRepository)
	movieHandler := handler.NewMovieHandler(movieService)

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		movieHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			movieHandler.RegisterProtectedRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
