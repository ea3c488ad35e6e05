package service

import "github.com/fittrack/fittrack-cli/internal/store"

// ResetApp deletes the profile and every dependent collection. The store
// removes exactly the documented key set, so unrelated state in a shared
// database is never touched.
func ResetApp(s *store.Store) error {
	return s.FullReset()
}
