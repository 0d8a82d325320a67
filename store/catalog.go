package store

import (
	"strings"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
)

// isInline reports whether an image is an embedded data-URI payload rather
// than a lightweight reference.
func isInline(image string) bool {
	return strings.HasPrefix(image, "data:")
}

// Products returns the catalog, bootstrapping the seed set when the stored
// record is missing or unreadable.
func (s *Store) Products() []models.Product {
	var products []models.Product
	if !s.loadOrSeed(keyProducts, &products, func() any { return DefaultProducts() }) {
		return DefaultProducts()
	}
	return products
}

// Product resolves one product by id.
func (s *Store) Product(id string) (models.Product, bool) {
	for _, p := range s.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) saveProducts(products []models.Product) bool {
	return s.Save(keyProducts, products)
}

// AddProduct appends a catalog record. If the save fails and the image is
// an inline payload, the image degrades to the stable placeholder and the
// save is retried once; a second failure is final.
func (s *Store) AddProduct(p models.Product) (models.Product, error) {
	products := append(s.Products(), p)
	if s.saveProducts(products) {
		return p, nil
	}
	if isInline(p.Image) {
		p.Image = PlaceholderImage
		products[len(products)-1] = p
		if s.saveProducts(products) {
			return p, nil
		}
	}
	return models.Product{}, ErrStorageFull
}

// UpdateProduct replaces a catalog record in place. A missing id is a
// no-op. On a failed save with an inline image the degrade policy prefers
// reverting to the previously stored reference over the generic
// placeholder, then retries once.
func (s *Store) UpdateProduct(updated models.Product) (models.Product, error) {
	products := s.Products()
	idx := -1
	for i := range products {
		if products[i].ID == updated.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return updated, nil
	}

	oldImage := products[idx].Image
	products[idx] = updated
	if s.saveProducts(products) {
		return updated, nil
	}
	if isInline(updated.Image) {
		if oldImage != "" && !isInline(oldImage) {
			updated.Image = oldImage
		} else {
			updated.Image = PlaceholderImage
		}
		products[idx] = updated
		if s.saveProducts(products) {
			return updated, nil
		}
	}
	return models.Product{}, ErrStorageFull
}

// DeleteProducts drops the listed ids. Missing ids are skipped silently.
func (s *Store) DeleteProducts(ids []string) error {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []models.Product
	for _, p := range s.Products() {
		if !drop[p.ID] {
			kept = append(kept, p)
		}
	}
	if !s.saveProducts(kept) {
		return ErrStorageFull
	}
	return nil
}

// Equipment returns the hardware records, bootstrapping on missing or
// unreadable data.
func (s *Store) Equipment() []models.Equipment {
	var equipment []models.Equipment
	if !s.loadOrSeed(keyEquipment, &equipment, func() any { return DefaultEquipment() }) {
		return DefaultEquipment()
	}
	return equipment
}

// EquipmentByIDs resolves the bundled-hardware references of a product,
// skipping dangling ids (equipment lifecycle is independent of products).
func (s *Store) EquipmentByIDs(ids []string) []models.Equipment {
	byID := make(map[string]models.Equipment)
	for _, e := range s.Equipment() {
		byID[e.ID] = e
	}
	var out []models.Equipment
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) saveEquipment(equipment []models.Equipment) bool {
	return s.Save(keyEquipment, equipment)
}

// AddEquipment follows the same degrade policy as AddProduct.
func (s *Store) AddEquipment(e models.Equipment) (models.Equipment, error) {
	equipment := append(s.Equipment(), e)
	if s.saveEquipment(equipment) {
		return e, nil
	}
	if isInline(e.Image) {
		e.Image = PlaceholderImage
		equipment[len(equipment)-1] = e
		if s.saveEquipment(equipment) {
			return e, nil
		}
	}
	return models.Equipment{}, ErrStorageFull
}

// UpdateEquipment follows the same degrade policy as UpdateProduct.
func (s *Store) UpdateEquipment(updated models.Equipment) (models.Equipment, error) {
	equipment := s.Equipment()
	idx := -1
	for i := range equipment {
		if equipment[i].ID == updated.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return updated, nil
	}

	oldImage := equipment[idx].Image
	equipment[idx] = updated
	if s.saveEquipment(equipment) {
		return updated, nil
	}
	if isInline(updated.Image) {
		if oldImage != "" && !isInline(oldImage) {
			updated.Image = oldImage
		} else {
			updated.Image = PlaceholderImage
		}
		equipment[idx] = updated
		if s.saveEquipment(equipment) {
			return updated, nil
		}
	}
	return models.Equipment{}, ErrStorageFull
}

func (s *Store) DeleteEquipment(ids []string) error {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []models.Equipment
	for _, e := range s.Equipment() {
		if !drop[e.ID] {
			kept = append(kept, e)
		}
	}
	if !s.saveEquipment(kept) {
		return ErrStorageFull
	}
	return nil
}
