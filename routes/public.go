package routes

import (
	"github.com/gin-gonic/gin"

	builderController "github.com/Equatrans/MicroGreen-Labs-App/controllers/builder"
	equipmentController "github.com/Equatrans/MicroGreen-Labs-App/controllers/equipment"
	productcontroller "github.com/Equatrans/MicroGreen-Labs-App/controllers/product"
	reviewController "github.com/Equatrans/MicroGreen-Labs-App/controllers/review"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// SetupPublicRoutes registers the unauthenticated catalog and builder
// endpoints.
func SetupPublicRoutes(r *gin.Engine, s *store.Store) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(s))
	r.GET("/products/:id", productcontroller.GetProductByID(s))
	r.GET("/equipment", equipmentController.GetEquipment(s))
	r.GET("/reviews", reviewController.GetReviews(s))

	// ──────────────── Farm Builder ────────────────
	builder := r.Group("/builder")
	{
		builder.GET("/default", builderController.DefaultConfigHandler())
		builder.POST("/quote", builderController.QuoteHandler(s))
		builder.POST("/compose", builderController.ComposeHandler(s))
	}
}
