package orderControllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Equatrans/MicroGreen-Labs-App/cart"
	"github.com/Equatrans/MicroGreen-Labs-App/models"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

type CheckoutRequest struct {
	Address string `json:"address" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// generateOrderRef builds a unique, sortable order id.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// CheckoutHandler converts the session cart into a persisted order. The
// order snapshots the cart lines and total once; the cart is cleared only
// after the order is durably stored. Orders always start pending.
func CheckoutHandler(s *store.Store, carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery address is required"})
			return
		}

		var order models.Order
		var checkoutErr error
		carts.With(userID, func(cc *cart.Cart) {
			if cc.Len() == 0 {
				checkoutErr = errors.New("cart is empty")
				return
			}
			order = models.Order{
				ID:      generateOrderRef(),
				UserID:  userID,
				Items:   cc.Items(),
				Total:   cc.Total(),
				Status:  models.OrderStatusPending,
				Date:    time.Now(),
				Address: req.Address,
			}
			if err := s.CreateOrder(order); err != nil {
				checkoutErr = err
				return
			}
			cc.Clear()
		})

		if checkoutErr != nil {
			if errors.Is(checkoutErr, store.ErrStorageFull) {
				c.JSON(http.StatusInsufficientStorage, gin.H{"error": "Storage full, order not saved"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": checkoutErr.Error()})
			return
		}

		broadcastOrderEvent("created", order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetAllOrdersHandler lists every order, newest first. Operator endpoint.
func GetAllOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := s.Orders()
		sort.Slice(orders, func(i, j int) bool {
			return orders[i].Date.After(orders[j].Date)
		})
		c.JSON(http.StatusOK, orders)
	}
}

// GetUserOrdersHandler lists the session user's own orders, newest first.
func GetUserOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)
		orders := s.OrdersForUser(userID)
		sort.Slice(orders, func(i, j int) bool {
			return orders[i].Date.After(orders[j].Date)
		})
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatusHandler applies one operator transition. Moves that
// break the lifecycle (skipping ahead, or leaving a terminal status) are
// rejected and the record is left untouched.
func UpdateOrderStatusHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		next, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := s.UpdateOrderStatus(orderID, next)
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		case errors.Is(err, store.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Status transition not allowed"})
			return
		case errors.Is(err, store.ErrStorageFull):
			c.JSON(http.StatusInsufficientStorage, gin.H{"error": "Storage full, status not saved"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		broadcastOrderEvent("status", order)
		c.JSON(http.StatusOK, order)
	}
}
