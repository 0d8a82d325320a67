package cartControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Equatrans/MicroGreen-Labs-App/cart"
	"github.com/Equatrans/MicroGreen-Labs-App/models"
	"github.com/Equatrans/MicroGreen-Labs-App/pricing"
	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// customKitImage is the stock image shown for custom builds in the cart.
const customKitImage = "https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?auto=format&fit=crop&q=80&w=400"

type AddItemInput struct {
	ProductID    string                  `json:"productId"`
	VariantID    string                  `json:"variantId"`
	CustomConfig *models.CustomKitConfig `json:"customConfig"`
	Quantity     int                     `json:"quantity"`
}

func sessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, _ := v.(string)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// POST /user/cart
func AddCartItem(s *store.Store, carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity < 1 {
			input.Quantity = 1
		}
		if (input.ProductID == "") == (input.CustomConfig == nil) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Provide either productId or customConfig"})
			return
		}

		var item models.CartItem
		if input.CustomConfig != nil {
			built, err := buildCustomItem(s, *input.CustomConfig, input.Quantity)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item = built
		} else {
			built, err := buildCatalogItem(s, input)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item = built
		}

		carts.With(session, func(cc *cart.Cart) {
			cc.Add(item)
		})
		c.JSON(http.StatusCreated, item)
	}
}

func buildCatalogItem(s *store.Store, input AddItemInput) (models.CartItem, error) {
	product, found := s.Product(input.ProductID)
	if !found {
		return models.CartItem{}, fmt.Errorf("product does not exist")
	}
	unitPrice, err := pricing.ProductPrice(product, input.VariantID)
	if err != nil {
		return models.CartItem{}, err
	}
	var variant *models.ProductVariant
	if input.VariantID != "" {
		v, _ := product.Variant(input.VariantID)
		variant = &v
	}
	return models.NewCatalogItem(uuid.NewString(), product, variant, unitPrice, input.Quantity), nil
}

func buildCustomItem(s *store.Store, cfg models.CustomKitConfig, quantity int) (models.CartItem, error) {
	if err := cfg.Validate(); err != nil {
		return models.CartItem{}, err
	}
	known := make(map[string]bool)
	for _, p := range s.Products() {
		if p.Category == models.CategorySeeds {
			known[p.ID] = true
		}
	}
	for _, id := range cfg.Seeds {
		if !known[id] {
			return models.CartItem{}, models.ErrInvalidConfig("seeds", id)
		}
	}

	resolved := cfg.Resolved()
	mode := "Manual"
	if resolved.AutoMode {
		mode = "Auto"
	}
	name := fmt.Sprintf("Smart Farm (%s / %s)", resolved.Layout, mode)
	id := "custom-" + uuid.NewString()
	return models.NewCustomItem(id, name, resolved, pricing.Price(resolved), quantity, customKitImage), nil
}

// GET /user/cart
func GetCart(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}
		var items []models.CartItem
		var total int
		carts.With(session, func(cc *cart.Cart) {
			items = cc.Items()
			total = cc.Total()
		})
		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}

// PUT /user/cart/:id
func UpdateCartQuantity(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}
		var input struct {
			Delta int `json:"delta" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		id := c.Param("id")
		var items []models.CartItem
		carts.With(session, func(cc *cart.Cart) {
			cc.UpdateQuantity(id, input.Delta)
			items = cc.Items()
		})
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// DELETE /user/cart/:id — removing a missing line is a no-op, so repeated
// clicks stay idempotent.
func RemoveCartItem(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}
		id := c.Param("id")
		carts.With(session, func(cc *cart.Cart) {
			cc.Remove(id)
		})
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /user/cart
func ClearCart(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}
		carts.With(session, func(cc *cart.Cart) {
			cc.Clear()
		})
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
