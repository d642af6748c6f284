package store

import (
	"errors"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

const KeyPreferences = "userPreferences"

// Preferences returns the saved preference record, or fallback when none
// has been saved yet.
func (s *Store) Preferences(fallback news.Preferences) (news.Preferences, error) {
	var p news.Preferences
	err := s.Get(KeyPreferences, &p)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	return p, nil
}

func (s *Store) SavePreferences(p news.Preferences) error {
	return s.Set(KeyPreferences, p)
}
