package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// GetProfile returns the session user. The stored record wins when it
// matches the token subject; otherwise the profile is rebuilt from claims.
func GetProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		if user, ok := s.CurrentUser(); ok && user.ID == userID {
			c.JSON(http.StatusOK, user)
			return
		}

		user := models.User{ID: userID}
		if v, ok := c.Get("user_name"); ok {
			user.Name, _ = v.(string)
		}
		if v, ok := c.Get("role"); ok {
			role, _ := v.(string)
			user.Role = models.UserRole(role)
		}
		c.JSON(http.StatusOK, user)
	}
}
