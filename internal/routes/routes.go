package routes

import (
	"net/http"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"qapro_back_end/internal/config"
	"qapro_back_end/internal/handlers"
	"qapro_back_end/internal/middleware"
	"qapro_back_end/internal/services"
	"qapro_back_end/internal/store"
)

// RegisterRoutes câble toutes les routes de l'API sur le moteur Gin.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, s *store.Store, checkout *services.Checkout, sub message.Subscriber) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	secret := []byte(cfg.JWTSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public
	api.POST("/auth/login", middleware.SimulateLatency(cfg.SimulateLatency, middleware.LoginDelay), handlers.Login(secret))
	api.GET("/products", middleware.SimulateLatency(cfg.SimulateLatency, middleware.CatalogDelay), handlers.GetProducts(s))
	api.POST("/cart/price", handlers.PriceCart(s))
	api.GET("/qa/testcases", handlers.GetTestCases)
	api.GET("/qa/bugs", handlers.GetBugReports)

	// Authentifié — le token reste optionnel sur le checkout (commande invité)
	api.GET("/auth/me", middleware.AuthRequired(secret), handlers.Me)
	api.POST("/orders",
		middleware.OptionalAuth(secret),
		middleware.SimulateLatency(cfg.SimulateLatency, middleware.CheckoutDelay),
		handlers.PlaceOrder(checkout),
	)

	// Admin
	admin := api.Group("/admin", middleware.AuthRequired(secret), middleware.RequireAdmin)
	admin.PUT("/products/:id", handlers.UpdateProduct(s))
	admin.DELETE("/products/:id", handlers.DeleteProduct(s))
	admin.GET("/orders", handlers.GetOrders(s))
	admin.GET("/analytics", handlers.GetAnalytics(s))
	admin.GET("/dashboard/live", handlers.DashboardWebSocket(s, sub))
}
