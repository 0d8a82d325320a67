package routes

import (
	"github.com/gin-gonic/gin"

	equipmentController "github.com/Equatrans/MicroGreen-Labs-App/controllers/equipment"
	orderControllers "github.com/Equatrans/MicroGreen-Labs-App/controllers/order"
	productcontroller "github.com/Equatrans/MicroGreen-Labs-App/controllers/product"
	"github.com/Equatrans/MicroGreen-Labs-App/imagegen"
	"github.com/Equatrans/MicroGreen-Labs-App/middleware"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires JWT
// middleware plus the admin role gate.
func SetupAdminRoutes(r *gin.Engine, s *store.Store, gen imagegen.Generator) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(s, gen))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(s))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(s))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(s))
		}

		// ─────────── Equipment Management ───────────
		equipmentAdmin := adminGroup.Group("/equipment")
		{
			equipmentAdmin.POST("", equipmentController.CreateEquipment(s))
			equipmentAdmin.PUT("/:id", equipmentController.UpdateEquipment(s))
			equipmentAdmin.DELETE("/:id", equipmentController.DeleteEquipment(s))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(s))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(s))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(s))
		}
	}
}
