package models

import "errors"

// CartItem is one cart line: either a catalog product/variant reference or
// an embedded custom configuration snapshot, never both. Use NewCatalogItem
// and NewCustomItem so the invariant holds by construction.
type CartItem struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"productId,omitempty"`
	VariantID    string           `json:"variantId,omitempty"`
	VariantName  string           `json:"variantName,omitempty"`
	CustomConfig *CustomKitConfig `json:"customConfig,omitempty"`
	Name         string           `json:"name"`
	// Unit price, snapshotted at add-time and never recomputed.
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image,omitempty"`
}

func NewCatalogItem(id string, product Product, variant *ProductVariant, unitPrice, quantity int) CartItem {
	item := CartItem{
		ID:        id,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     unitPrice,
		Quantity:  quantity,
		Image:     product.Image,
	}
	if variant != nil {
		item.VariantID = variant.ID
		item.VariantName = variant.Name
		item.Name = product.Name + " (" + variant.Name + ")"
	}
	return item
}

func NewCustomItem(id, name string, config CustomKitConfig, unitPrice, quantity int, image string) CartItem {
	cfg := config
	return CartItem{
		ID:           id,
		CustomConfig: &cfg,
		Name:         name,
		Price:        unitPrice,
		Quantity:     quantity,
		Image:        image,
	}
}

func (i CartItem) IsCustom() bool { return i.CustomConfig != nil }

func (i CartItem) IsCatalog() bool { return i.ProductID != "" }

// SameIdentity reports whether two lines merge on add. Catalog lines match
// on productId+variantId; custom lines never merge, even when value-equal.
func (i CartItem) SameIdentity(other CartItem) bool {
	if i.IsCustom() || other.IsCustom() {
		return false
	}
	return i.ProductID == other.ProductID && i.VariantID == other.VariantID
}

// Validate enforces the exactly-one-kind rule and basic line sanity.
func (i CartItem) Validate() error {
	if i.IsCustom() == i.IsCatalog() {
		return errors.New("cart item must reference a product or embed a custom config, not both")
	}
	if i.Quantity < 1 {
		return errors.New("cart item quantity must be at least 1")
	}
	return nil
}
