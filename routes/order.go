package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/Equatrans/MicroGreen-Labs-App/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
