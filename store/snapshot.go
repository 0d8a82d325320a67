package store

import (
	"os"
	"path/filepath"
)

// Snapshot writes every record's raw JSON payload into dir, one file per
// key. Used by the daily backup loop.
func (s *Store) Snapshot(dir string) error {
	var records []Record
	if err := s.db.Find(&records).Error; err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, rec := range records {
		path := filepath.Join(dir, rec.Key+".json")
		if err := os.WriteFile(path, rec.Value, 0644); err != nil {
			return err
		}
	}
	return nil
}
