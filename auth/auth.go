package auth

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

// LoginHandler signs a session in by email. The display name derives from
// the email local-part; the role comes from the injected policy. The
// resulting identity is persisted as the session record.
func LoginHandler(s *store.Store, isAdmin Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		email := strings.TrimSpace(req.Email)
		if !strings.Contains(email, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}

		user := models.NewUser(email, isAdmin(email))
		s.SaveUser(user)

		token, err := IssueJWT(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"token":   token,
		})
	}
}

// LogoutHandler drops the persisted session identity.
func LogoutHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.ClearUser()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// IssueJWT generates a signed session token for a user.
func IssueJWT(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    string(u.Role),
		"name":    u.Name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
