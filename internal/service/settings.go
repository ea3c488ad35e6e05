package service

import "github.com/fittrack/fittrack-cli/internal/store"

// Display preferences shared with any UI host reading the same state.

func DarkMode(s *store.Store) bool {
	return store.Read(s, store.KeyDarkMode, false)
}

func SetDarkMode(s *store.Store, enabled bool) error {
	return store.Write(s, store.KeyDarkMode, enabled)
}
