package models

type ProductCategory string

const (
	CategoryKit       ProductCategory = "kit"
	CategorySeeds     ProductCategory = "seeds"
	CategoryAccessory ProductCategory = "accessory"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryKit, CategorySeeds, CategoryAccessory:
		return true
	}
	return false
}

type ProductVariant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Product is a catalog record, immutable per session except through the
// admin mutation endpoints.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Details     string           `json:"details,omitempty"`
	Price       int              `json:"price"`
	OldPrice    int              `json:"oldPrice,omitempty"`
	IsHit       bool             `json:"isHit,omitempty"`
	Image       string           `json:"image"`
	Category    ProductCategory  `json:"category"`
	Difficulty  string           `json:"difficulty,omitempty"`
	GrowthTime  string           `json:"growthTime,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
	Dimensions  string           `json:"dimensions,omitempty"`
	// Non-owning references into the equipment records.
	EquipmentIDs []string `json:"equipmentIds,omitempty"`
}

// Variant resolves a variant id against the product's variant list.
func (p Product) Variant(id string) (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return ProductVariant{}, false
}
