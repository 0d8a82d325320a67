package equipmentController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// GetEquipment lists every equipment record.
func GetEquipment(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Equipment())
	}
}

// CreateEquipment adds a hardware record. Admin endpoint.
func CreateEquipment(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var equipment models.Equipment
		if err := c.ShouldBindJSON(&equipment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if equipment.Name == "" || equipment.Purpose == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and purpose are required"})
			return
		}
		if equipment.ID == "" {
			equipment.ID = "eq-" + uuid.NewString()
		}

		saved, err := s.AddEquipment(equipment)
		if err != nil {
			if errors.Is(err, store.ErrStorageFull) {
				c.JSON(http.StatusInsufficientStorage, gin.H{"error": "Storage full, equipment not saved"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save equipment"})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}

// UpdateEquipment replaces a hardware record wholesale by id.
func UpdateEquipment(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var equipment models.Equipment
		if err := c.ShouldBindJSON(&equipment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		equipment.ID = id

		found := false
		for _, e := range s.Equipment() {
			if e.ID == id {
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
			return
		}

		saved, err := s.UpdateEquipment(equipment)
		if err != nil {
			if errors.Is(err, store.ErrStorageFull) {
				c.JSON(http.StatusInsufficientStorage, gin.H{"error": "Storage full, equipment not saved"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update equipment"})
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

// DeleteEquipment removes one hardware record. Products keep their
// equipmentIds; a dangling reference simply resolves to nothing.
func DeleteEquipment(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.DeleteEquipment([]string{id}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete equipment"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted"})
	}
}
