// Package store is a typed key-value layer over the app_state table. Every
// value is one JSON document under one logical key. Reads never fail from the
// caller's point of view: missing keys yield the supplied default, and a
// corrupted value is logged, best-effort deleted, and replaced by the default.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Logical keys for every persisted collection. FullReset removes exactly
// this set and nothing else.
const (
	KeyProfile            = "fitnessProfile"
	KeyUserStats          = "userStats"
	KeyDailyMeals         = "dailyMeals"
	KeyDailyExercises     = "dailyExercises"
	KeyDailyHistory       = "dailyHistory"
	KeyWeightHistory      = "weightHistory"
	KeyDailyWater         = "dailyWater"
	KeyWaterGoal          = "waterGoal"
	KeyDarkMode           = "darkMode"
	KeyFoodsDB            = "foodsDB"
	KeyFavorites          = "favorites"
	KeyCustomExercises    = "customExercises"
	KeyLastAppOpenDate    = "lastAppOpenDate"
	KeyViewedAchievements = "viewedAchievements"
)

func AllKeys() []string {
	return []string{
		KeyProfile,
		KeyUserStats,
		KeyDailyMeals,
		KeyDailyExercises,
		KeyDailyHistory,
		KeyWeightHistory,
		KeyDailyWater,
		KeyWaterGoal,
		KeyDarkMode,
		KeyFoodsDB,
		KeyFavorites,
		KeyCustomExercises,
		KeyLastAppOpenDate,
		KeyViewedAchievements,
	}
}

// Store fronts either a sqlite database or, when the database could not be
// opened, a process-local map so the session keeps working without
// persistence.
type Store struct {
	db  *sql.DB
	mem map[string]string
	log *zap.Logger
}

func New(db *sql.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log}
}

// NewInMemory returns a store that keeps all values in memory for the
// lifetime of the process. Used when the backing database is unavailable.
func NewInMemory(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{mem: map[string]string{}, log: log}
}

func (s *Store) InMemory() bool {
	return s.db == nil
}

func (s *Store) rawGet(key string) (string, bool, error) {
	if s.db == nil {
		v, ok := s.mem[key]
		return v, ok, nil
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) rawSet(key, value string) error {
	if s.db == nil {
		s.mem[key] = value
		return nil
	}
	_, err := s.db.Exec(`
INSERT INTO app_state(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	if s.db == nil {
		delete(s.mem, key)
		return nil
	}
	if _, err := s.db.Exec(`DELETE FROM app_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

// Read returns the value stored under key, or def when the key is missing.
// A storage error or corrupt JSON document degrades to def; corrupt entries
// are deleted so the next write starts clean.
func Read[T any](s *Store, key string, def T) T {
	raw, ok, err := s.rawGet(key)
	if err != nil {
		s.log.Warn("state read failed, using default", zap.String("key", key), zap.Error(err))
		return def
	}
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.log.Warn("corrupt state entry, using default", zap.String("key", key), zap.Error(err))
		if delErr := s.Delete(key); delErr != nil {
			s.log.Warn("delete corrupt state entry failed", zap.String("key", key), zap.Error(delErr))
		}
		return def
	}
	return out
}

// Write persists value under key. Failures are logged and returned so hosts
// can surface a warning; the caller's in-process state stays usable either
// way.
func Write[T any](s *Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode key %q: %w", key, err)
	}
	if err := s.rawSet(key, string(raw)); err != nil {
		s.log.Warn("state write failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// FullReset removes the documented key set. It deliberately enumerates keys
// instead of truncating the table so unrelated state in a shared database
// survives.
func (s *Store) FullReset() error {
	for _, key := range AllKeys() {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
