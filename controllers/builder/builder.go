package builderController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Equatrans/MicroGreen-Labs-App/assembly"
	"github.com/Equatrans/MicroGreen-Labs-App/models"
	"github.com/Equatrans/MicroGreen-Labs-App/pricing"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// bindConfig decodes and checks a configuration from the request body,
// running the auto-mode resolve pass. The request is rejected (and no state
// touched) on malformed enum values or unknown seed ids.
func bindConfig(c *gin.Context, s *store.Store) (models.CustomKitConfig, bool) {
	cfg := models.DefaultConfig()
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid configuration: " + err.Error()})
		return models.CustomKitConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.CustomKitConfig{}, false
	}
	if err := validateSeeds(s, cfg.Seeds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.CustomKitConfig{}, false
	}
	return cfg.Resolved(), true
}

// validateSeeds checks every selected seed id against the catalog's
// seed-category products.
func validateSeeds(s *store.Store, seeds []string) error {
	known := make(map[string]bool)
	for _, p := range s.Products() {
		if p.Category == models.CategorySeeds {
			known[p.ID] = true
		}
	}
	for _, id := range seeds {
		if !known[id] {
			return models.ErrInvalidConfig("seeds", id)
		}
	}
	return nil
}

// DefaultConfigHandler returns the starting configuration of a builder
// session.
func DefaultConfigHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := models.DefaultConfig()
		c.JSON(http.StatusOK, gin.H{
			"config": cfg,
			"price":  pricing.Price(cfg),
		})
	}
}

// QuoteHandler resolves a configuration and prices it. The response echoes
// the resolved configuration so clients see the auto-mode side effects.
func QuoteHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, ok := bindConfig(c, s)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"config": cfg,
			"price":  pricing.Price(cfg),
			"units":  cfg.Layout.UnitMultiplier(),
		})
	}
}

// ComposeHandler returns the positioned unit/connector tree for the
// rendering collaborator.
func ComposeHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, ok := bindConfig(c, s)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"config":   cfg,
			"assembly": assembly.Compose(cfg),
		})
	}
}
