package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/geocode"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/middleware"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/order"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/session"
)

func New(
	store session.Store,
	sessionHandler *session.Handler,
	orderHandler *order.Handler,
	geocodeHandler *geocode.Handler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/sessions", sessionHandler.Start)

	scoped := r.Group("/sessions/:id")
	scoped.Use(middleware.Session(store))
	{
		scoped.GET("", sessionHandler.State)

		scoped.POST("/cart", sessionHandler.AddToCart)
		scoped.PATCH("/cart/:index", sessionHandler.UpdateLine)
		scoped.DELETE("/cart/:index", sessionHandler.RemoveLine)

		scoped.POST("/selection", sessionHandler.OpenSelection)
		scoped.PATCH("/selection", sessionHandler.UpdateSelection)
		scoped.POST("/selection/confirm", sessionHandler.ConfirmSelection)
		scoped.DELETE("/selection", sessionHandler.CancelSelection)

		scoped.POST("/checkout", orderHandler.Checkout)
	}

	r.GET("/geocode/reverse", geocodeHandler.Reverse)

	return r
}
