package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"social-pulse/analyzer"
	"social-pulse/api/handlers"
	"social-pulse/api/middleware"
	"social-pulse/config"
	"social-pulse/db"
	_ "social-pulse/docs"
	"social-pulse/repositories"
)

// New assembles the gin engine. analysisRepo is nil when Mongo is disabled;
// the history route is only registered when persistence is available.
func New(svc *analyzer.Service, analysisRepo *repositories.AnalysisRepository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if config.GetConfig().Mongo.Enabled {
			if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.POST("/analyze", handlers.AnalyzeHandler(svc))
		api.POST("/suggestions", handlers.SuggestionsHandler(svc))
		if analysisRepo != nil {
			api.GET("/analyses", handlers.ListAnalysesHandler(analysisRepo))
		}
	}

	return r
}
