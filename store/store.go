// Package store is the key-scoped durable store behind the catalog, orders,
// reviews, equipment and session identity. Each key resolves to one JSON
// payload holding the full sequence for that record kind. Saves are
// quota-aware and never panic or surface a raw storage error; reads fall
// back to bootstrap content instead of propagating parse failures.
package store

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Persisted record keys, namespaced and versioned.
const (
	keyProducts  = "mgl_products_v9"
	keyOrders    = "mgl_orders"
	keyReviews   = "mgl_reviews"
	keyUser      = "mgl_user"
	keyEquipment = "mgl_equipment_v9"
)

// DefaultQuota caps the store at 5 MiB, the budget the web origin grants a
// local store.
const DefaultQuota = 5 << 20

// PlaceholderImage is the stable reference substituted for inline image
// payloads that cannot be persisted.
const PlaceholderImage = "https://images.unsplash.com/photo-1530836369250-ef72a3f5cda8?auto=format&fit=crop&q=80&w=800"

// ErrStorageFull is surfaced to callers only after the degrade-and-retry
// policy has also failed.
var ErrStorageFull = errors.New("storage quota exceeded")

// Record is one key-scoped row of the store.
type Record struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (Record) TableName() string { return "store_records" }

type Store struct {
	db    *gorm.DB
	quota int64
}

// New migrates the record table and returns a store enforcing the given
// byte quota (DefaultQuota when zero or negative).
func New(db *gorm.DB, quota int64) (*Store, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	if quota <= 0 {
		quota = DefaultQuota
	}
	return &Store{db: db, quota: quota}, nil
}

// Save serializes v under key. It reports success; a failed save (quota or
// storage error) never panics and never raises — callers own the degrade
// policy.
func (s *Store) Save(key string, v any) bool {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("❌ Failed to encode record %s: %v", key, err)
		return false
	}

	var used int64
	if err := s.db.Model(&Record{}).
		Where("key <> ?", key).
		Select("COALESCE(SUM(LENGTH(value)), 0)").
		Scan(&used).Error; err != nil {
		log.Printf("❌ Failed to measure store usage: %v", err)
		return false
	}
	if used+int64(len(payload)) > s.quota {
		log.Printf("⚠️ Store quota exceeded saving %s (%d bytes over %d used)", key, len(payload), used)
		return false
	}

	rec := Record{Key: key, Value: payload, UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&rec).Error; err != nil {
		log.Printf("❌ Failed to save record %s: %v", key, err)
		return false
	}
	return true
}

// load reads and decodes one record. gorm.ErrRecordNotFound passes through
// so callers can distinguish missing from corrupt.
func (s *Store) load(key string, dst any) error {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		return err
	}
	return json.Unmarshal(rec.Value, dst)
}

// delete removes a record; missing keys are a no-op.
func (s *Store) delete(key string) {
	if err := s.db.Delete(&Record{}, "key = ?", key).Error; err != nil {
		log.Printf("❌ Failed to delete record %s: %v", key, err)
	}
}

// loadOrSeed reads key into dst, falling back to seed content when the key
// is missing or the payload is unparseable. A missing key is seeded back
// opportunistically so subsequent reads are consistent; a corrupt one is
// left for the next successful save to repair.
func (s *Store) loadOrSeed(key string, dst any, seed func() any) bool {
	err := s.load(key, dst)
	if err == nil {
		return true
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.Save(key, seed())
	} else {
		log.Printf("⚠️ Record %s unreadable, serving bootstrap content: %v", key, err)
	}
	return false
}
