package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Equatrans/MicroGreen-Labs-App/cart"
	cartControllers "github.com/Equatrans/MicroGreen-Labs-App/controllers/cart"
	orderControllers "github.com/Equatrans/MicroGreen-Labs-App/controllers/order"
	reviewController "github.com/Equatrans/MicroGreen-Labs-App/controllers/review"
	userControllers "github.com/Equatrans/MicroGreen-Labs-App/controllers/user"
	"github.com/Equatrans/MicroGreen-Labs-App/middleware"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, s *store.Store, carts *cart.Registry) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetProfile(s))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(carts))
			cartGroup.POST("/", cartControllers.AddCartItem(s, carts))
			cartGroup.PUT("/:id", cartControllers.UpdateCartQuantity(carts))
			cartGroup.DELETE("/:id", cartControllers.RemoveCartItem(carts))
			cartGroup.DELETE("/", cartControllers.ClearCart(carts))
		}

		// ──────────────── Orders ────────────────
		userGroup.POST("/orders", orderControllers.CheckoutHandler(s, carts))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(s))

		// ──────────────── Reviews ────────────────
		userGroup.POST("/reviews", reviewController.CreateReview(s))
	}
}
