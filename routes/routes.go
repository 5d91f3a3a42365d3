package routes

import (
	"context"
	"net/http"
	"time"

	"taxibot/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterWebhookRoutes registers the fulfillment entry point.
func RegisterWebhookRoutes(r *gin.Engine, wh *handlers.WebhookHandler) {
	api := r.Group("/api")
	{
		api.POST("/webhook/dialogflow", wh.HandleWebhook)
	}
}

// RegisterHealthRoute registers a health-check endpoint that reports store
// reachability.
func RegisterHealthRoute(r *gin.Engine, client *mongo.Client) {
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := client.Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "mongo": true})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, wh *handlers.WebhookHandler, client *mongo.Client) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWebhookRoutes(r, wh)
	RegisterHealthRoute(r, client)
}
