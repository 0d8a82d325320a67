package store

import "github.com/Equatrans/MicroGreen-Labs-App/models"

func (s *Store) Reviews() []models.Review {
	var reviews []models.Review
	if !s.loadOrSeed(keyReviews, &reviews, func() any { return DefaultReviews() }) {
		return DefaultReviews()
	}
	return reviews
}

// AddReview prepends so the newest review lists first.
func (s *Store) AddReview(r models.Review) error {
	reviews := append([]models.Review{r}, s.Reviews()...)
	if !s.Save(keyReviews, reviews) {
		return ErrStorageFull
	}
	return nil
}
