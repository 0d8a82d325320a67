package models

// Equipment is bundled hardware referenced by id from Product.EquipmentIDs.
// Its lifecycle is independent of any product.
type Equipment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Purpose     string `json:"purpose"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
	// Power ratings are disclosure strings, e.g. "5W" / "12V USB".
	PowerConsumption string `json:"powerConsumption,omitempty"`
	PowerRating      string `json:"powerRating,omitempty"`
}
