package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
)

// CurrentUser returns the persisted session identity, if any. An
// unreadable record is dropped rather than surfaced.
func (s *Store) CurrentUser() (models.User, bool) {
	var u models.User
	err := s.load(keyUser, &u)
	if err == nil {
		return u, true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.delete(keyUser)
	}
	return models.User{}, false
}

func (s *Store) SaveUser(u models.User) {
	s.Save(keyUser, u)
}

func (s *Store) ClearUser() {
	s.delete(keyUser)
}
