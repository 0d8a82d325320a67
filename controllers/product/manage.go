package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Equatrans/MicroGreen-Labs-App/imagegen"
	"github.com/Equatrans/MicroGreen-Labs-App/models"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// CreateProduct adds a catalog record. When no usable image is supplied the
// generation collaborator is asked for one; a failure there is logged and
// the placeholder used instead — creation never blocks on it.
func CreateProduct(s *store.Store, gen imagegen.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if product.Name == "" || !product.Category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and a valid category are required"})
			return
		}
		if product.ID == "" {
			product.ID = string(product.Category) + "-" + uuid.NewString()
		}

		if product.Image == "" || product.Image == store.PlaceholderImage {
			image, err := gen.Generate(c.Request.Context(), product.Name, string(product.Category), product.Description)
			if err != nil {
				if !errors.Is(err, imagegen.ErrUnavailable) {
					log.Printf("⚠️ Image generation failed for %s: %v", product.ID, err)
				}
				product.Image = store.PlaceholderImage
			} else {
				product.Image = image
			}
		}

		saved, err := s.AddProduct(product)
		if err != nil {
			if errors.Is(err, store.ErrStorageFull) {
				c.JSON(http.StatusInsufficientStorage, gin.H{"error": "Storage full, product not saved"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}

// UpdateProduct replaces a catalog record wholesale by id.
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product.ID = id
		if _, found := s.Product(id); !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if !product.Category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		saved, err := s.UpdateProduct(product)
		if err != nil {
			if errors.Is(err, store.ErrStorageFull) {
				c.JSON(http.StatusInsufficientStorage, gin.H{"error": "Storage full, product not saved"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

// DeleteProduct removes one catalog record. Deleting a missing id is a
// no-op success.
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.DeleteProducts([]string{id}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
