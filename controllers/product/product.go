package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// GetProducts lists the catalog. Optional query params: category (exact
// match) and search (case-insensitive substring on name/description).
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := s.Products()

		if category := c.Query("category"); category != "" {
			filtered := products[:0]
			for _, p := range products {
				if string(p.Category) == category {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}
		if search := strings.ToLower(c.Query("search")); search != "" {
			filtered := products[:0]
			for _, p := range products {
				if strings.Contains(strings.ToLower(p.Name), search) ||
					strings.Contains(strings.ToLower(p.Description), search) {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns one product together with the equipment records
// its equipmentIds reference, so clients can show bundled hardware without
// a second round trip.
func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		product, found := s.Product(id)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"product":   product,
			"equipment": s.EquipmentByIDs(product.EquipmentIDs),
		})
	}
}
