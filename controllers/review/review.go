package reviewController

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

type CreateReviewInput struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

// GetReviews lists reviews, optionally filtered to one product via the
// productId query param.
func GetReviews(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews := s.Reviews()
		if productID := c.Query("productId"); productID != "" {
			filtered := reviews[:0]
			for _, r := range reviews {
				if r.ProductID == productID {
					filtered = append(filtered, r)
				}
			}
			reviews = filtered
		}
		if reviews == nil {
			reviews = []models.Review{}
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// CreateReview records a review for the signed-in user. The author fields
// come from the token claims, never the request body.
func CreateReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)
		userName := ""
		if v, ok := c.Get("user_name"); ok {
			userName, _ = v.(string)
		}

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
			return
		}
		if input.ProductID != "" {
			if _, found := s.Product(input.ProductID); !found {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
		}

		review := models.Review{
			ID:        "rev-" + uuid.NewString(),
			UserID:    userID,
			UserName:  userName,
			ProductID: input.ProductID,
			Rating:    input.Rating,
			Comment:   input.Comment,
			Date:      time.Now(),
		}
		if err := s.AddReview(review); err != nil {
			if errors.Is(err, store.ErrStorageFull) {
				c.JSON(http.StatusInsufficientStorage, gin.H{"error": "Storage full, review not saved"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}
