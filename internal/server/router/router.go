package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(breedingHandler *handlers.BreedingHandler, healthHandler *handlers.HealthHandler, livestockHandler *handlers.LivestockHandler, reportsHandler *handlers.ReportsHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(handlers.SessionMiddleware())

	breeding := api.Group("/breeding")
	breeding.POST("", breedingHandler.Create)
	breeding.GET("", breedingHandler.List)
	breeding.GET("/detailed", breedingHandler.Detailed)
	breeding.GET("/breeds", breedingHandler.Breeds)
	breeding.GET("/statistics", breedingHandler.Statistics)
	breeding.POST("/validate", breedingHandler.Validate)
	breeding.GET("/:id", breedingHandler.Get)
	breeding.GET("/:id/status", breedingHandler.Status)
	breeding.PATCH("/:id", breedingHandler.Update)
	breeding.DELETE("/:id", breedingHandler.Delete)
	breeding.POST("/:id/record-birth", breedingHandler.RecordBirth)
	breeding.POST("/:id/offspring/:offspringId/register", breedingHandler.RegisterOffspring)

	healthHandler.Register(api.Group("/health"))

	roster := api.Group("/livestock")
	roster.GET("", livestockHandler.List)
	roster.GET("/:id", livestockHandler.Get)

	reports := api.Group("/reports")
	reports.GET("/latest", reportsHandler.Latest)
	reports.GET("/reminders", reportsHandler.Reminders)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
