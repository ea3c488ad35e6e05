package service

import (
	"context"
	"time"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

// CheckDailyRollover clears the day-scoped logs when the calendar day has
// changed since the last recorded app open. It reports whether a reset
// happened. The check is safe to run on every host event (startup, focus,
// poll tick): within one day only the first qualifying call resets anything.
//
// The very first run records today without clearing, so a freshly restored
// backup is never wiped.
func CheckDailyRollover(s *store.Store, now time.Time) (bool, error) {
	today := TodayString(now)
	lastOpen := store.Read(s, store.KeyLastAppOpenDate, "")

	reset := false
	if lastOpen != "" && lastOpen != today {
		// Each collection is rewritten only when non-empty to avoid
		// redundant writes.
		if meals := store.Read(s, store.KeyDailyMeals, []model.Meal(nil)); len(meals) > 0 {
			if err := store.Write(s, store.KeyDailyMeals, []model.Meal{}); err != nil {
				return false, err
			}
		}
		if exercises := store.Read(s, store.KeyDailyExercises, []model.Exercise(nil)); len(exercises) > 0 {
			if err := store.Write(s, store.KeyDailyExercises, []model.Exercise{}); err != nil {
				return false, err
			}
		}
		if water := store.Read(s, store.KeyDailyWater, 0); water > 0 {
			if err := store.Write(s, store.KeyDailyWater, 0); err != nil {
				return false, err
			}
		}
		reset = true
	}

	if err := store.Write(s, store.KeyLastAppOpenDate, today); err != nil {
		return reset, err
	}
	return reset, nil
}

// DefaultRolloverInterval is the liveness poll period for long-running
// hosts. Day changes are still detected lazily; the poll only bounds the
// delay while the process idles across midnight.
const DefaultRolloverInterval = 5 * time.Minute

// WatchDayChange polls CheckDailyRollover until ctx is done. onReset is
// invoked after each detected day change; nil is allowed.
func WatchDayChange(ctx context.Context, s *store.Store, interval time.Duration, onReset func()) {
	if interval <= 0 {
		interval = DefaultRolloverInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if reset, err := CheckDailyRollover(s, time.Now()); err == nil && reset && onReset != nil {
				onReset()
			}
		}
	}
}
