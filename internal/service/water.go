package service

import (
	"fmt"
	"time"

	"github.com/fittrack/fittrack-cli/internal/store"
)

// AddWater adds ml to today's counter and returns the new total. The history
// rollup runs afterwards so the ledger's water figure tracks the live value.
func AddWater(s *store.Store, ml int, now time.Time, notifier Notifier) (int, error) {
	if ml <= 0 {
		return 0, fmt.Errorf("water amount must be > 0 ml")
	}
	total := store.Read(s, store.KeyDailyWater, 0) + ml
	if err := store.Write(s, store.KeyDailyWater, total); err != nil {
		return 0, err
	}
	if err := Recompute(s, now, notifier); err != nil {
		return 0, err
	}
	return total, nil
}

func TodayWater(s *store.Store) int {
	return store.Read(s, store.KeyDailyWater, 0)
}

// WaterGoal falls back to the profile's derived goal when no explicit goal
// has been set.
func WaterGoal(s *store.Store) int {
	goal := store.Read(s, store.KeyWaterGoal, 0)
	if goal > 0 {
		return goal
	}
	if profile := CurrentProfile(s); profile != nil {
		return profile.WaterGoalMl
	}
	return 0
}

func SetWaterGoal(s *store.Store, ml int) error {
	if ml < waterMinMl || ml > waterMaxMl {
		return fmt.Errorf("water goal must be between %d and %d ml", waterMinMl, waterMaxMl)
	}
	return store.Write(s, store.KeyWaterGoal, ml)
}
