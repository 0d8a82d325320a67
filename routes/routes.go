package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Equatrans/MicroGreen-Labs-App/auth"
	"github.com/Equatrans/MicroGreen-Labs-App/cart"
	"github.com/Equatrans/MicroGreen-Labs-App/imagegen"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, s *store.Store, carts *cart.Registry, gen imagegen.Generator, isAdmin auth.Policy) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, s, isAdmin)

	// Public catalog + builder routes
	SetupPublicRoutes(r, s)

	// User routes (JWT-protected)
	SetupUserRoutes(r, s, carts)

	// Admin routes (JWT + role-protected)
	SetupAdminRoutes(r, s, gen)

	// Websocket order feed
	SetupOrderRoutes(r)
}
