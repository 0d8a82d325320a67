package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Equatrans/MicroGreen-Labs-App/auth"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, s *store.Store, isAdmin auth.Policy) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(s, isAdmin))
		authGroup.POST("/logout", auth.LogoutHandler(s))
	}
}
