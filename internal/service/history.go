package service

import (
	"sort"
	"time"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

// The ledger keeps the most recent 30 days; inserting day 31 evicts the
// oldest entry.
const historyWindowDays = 30

// UpdateDailyHistory folds today's live logs into the history ledger.
// Today's old entry (if any) is replaced, so the operation is idempotent for
// a given day: the ledger always mirrors the current state of today's logs.
// A day with no meals and no exercises gets no entry at all.
func UpdateDailyHistory(s *store.Store, now time.Time) error {
	today := TodayString(now)

	meals := store.Read(s, store.KeyDailyMeals, []model.Meal(nil))
	exercises := store.Read(s, store.KeyDailyExercises, []model.Exercise(nil))
	water := store.Read(s, store.KeyDailyWater, 0)

	history := store.Read(s, store.KeyDailyHistory, []model.DailyHistory(nil))
	updated := make([]model.DailyHistory, 0, len(history)+1)
	for _, h := range history {
		if h.Date != today {
			updated = append(updated, h)
		}
	}

	if len(meals) > 0 || len(exercises) > 0 {
		totals := CalculateTotalNutrition(meals)
		burned := CalculateTotalCaloriesBurned(exercises)
		updated = append(updated, model.DailyHistory{
			Date:           today,
			Calories:       totals.Calories,
			ProteinG:       totals.ProteinG,
			CarbsG:         totals.CarbsG,
			FatG:           totals.FatG,
			CaloriesBurned: burned,
			NetCalories:    totals.Calories - burned,
			WaterMl:        water,
			Meals:          append([]model.Meal(nil), meals...),
			Exercises:      append([]model.Exercise(nil), exercises...),
		})
	}

	sort.Slice(updated, func(i, j int) bool {
		return updated[i].Date > updated[j].Date
	})
	if len(updated) > historyWindowDays {
		updated = updated[:historyWindowDays]
	}

	return store.Write(s, store.KeyDailyHistory, updated)
}
