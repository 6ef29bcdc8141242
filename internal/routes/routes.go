package routes

import (
	"net/http"

	"boutique_back_end/internal/handlers"
	"boutique_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes câble les handlers sur le routeur. Le handle de base
// est injecté ici plutôt que global, pour que les tests puissent monter
// l'API complète sur une base dédiée.
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	auth := &handlers.AuthHandler{DB: db}
	products := &handlers.ProductHandler{DB: db}
	cart := &handlers.CartHandler{DB: db}
	orders := &handlers.OrderHandler{DB: db}
	reviews := &handlers.ReviewHandler{DB: db}
	recommendations := &handlers.RecommendationHandler{DB: db}
	users := &handlers.UserHandler{DB: db}

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Routes publiques
	api.POST("/register", auth.Register)
	api.POST("/login", auth.Login)
	api.GET("/products", products.List)

	// Routes authentifiées
	authed := api.Group("")
	authed.Use(middleware.AuthRequired())
	{
		authed.POST("/cart", cart.Add)
		authed.GET("/cart/:user_id", cart.Get)
		authed.DELETE("/cart/:cart_id", cart.Remove)
		authed.PUT("/cart/:cart_id", cart.Update)

		authed.POST("/orders/confirm", orders.Confirm)
		authed.GET("/orders/:user_id", orders.List)

		authed.POST("/reviews", reviews.Create)
		authed.GET("/recommendations/:user_id", recommendations.List)
	}

	// Routes admin
	admin := api.Group("")
	admin.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	{
		admin.POST("/products", products.Create)
		admin.DELETE("/products/:id", products.Delete)
		admin.GET("/users", users.List)
		admin.GET("/analytics", orders.Analytics)
	}
}
