package service

import (
	"fmt"
	"time"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

// UpdateGamification derives streaks, cumulative totals, and achievement
// unlocks from the history ledger and today's live logs. It must run after
// UpdateDailyHistory within the same change batch; Recompute enforces that
// order.
//
// The update is idempotent: with unchanged inputs it neither bumps the
// streak, double-counts totals, nor re-unlocks achievements. With no logged
// activity today it leaves stats untouched, so a freshly started day never
// zeroes a streak.
func UpdateGamification(s *store.Store, now time.Time, notifier Notifier) error {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	today := TodayString(now)
	yesterday := YesterdayString(now)

	meals := store.Read(s, store.KeyDailyMeals, []model.Meal(nil))
	exercises := store.Read(s, store.KeyDailyExercises, []model.Exercise(nil))
	if len(meals) == 0 && len(exercises) == 0 {
		return nil
	}

	history := store.Read(s, store.KeyDailyHistory, []model.DailyHistory(nil))
	stats := store.Read(s, store.KeyUserStats, model.UserStats{})

	streak := stats.CurrentStreak
	switch stats.LastLogDate {
	case "":
		streak = 1
	case today:
		// Already counted today.
	case yesterday:
		streak++
	default:
		// Gap of two or more days: streak restarts at today.
		streak = 1
	}
	longest := stats.LongestStreak
	if streak > longest {
		longest = streak
	}

	// Totals fold history excluding today, then add today's live counts.
	// Today is simultaneously "live" and "in history" (the aggregator ran
	// first), so the exclusion prevents double-counting. Water comes purely
	// from history, where today's amount is already folded in.
	var histBurned, histMeals, histExercises, histWater int
	for _, day := range history {
		if day.Date == today {
			histWater += day.WaterMl
			continue
		}
		histBurned += day.CaloriesBurned
		histMeals += len(day.Meals)
		histExercises += len(day.Exercises)
		histWater += day.WaterMl
	}

	updated := model.UserStats{
		CurrentStreak:        streak,
		LongestStreak:        longest,
		TotalMealsLogged:     histMeals + len(meals),
		TotalExercises:       histExercises + len(exercises),
		TotalCaloriesBurned:  histBurned + CalculateTotalCaloriesBurned(exercises),
		TotalWaterLoggedMl:   histWater,
		AchievementsUnlocked: append([]string(nil), stats.AchievementsUnlocked...),
		LastLogDate:          today,
	}

	for _, a := range achievementCatalog {
		if containsString(updated.AchievementsUnlocked, a.ID) {
			continue
		}
		if achievementReached(a, updated) {
			updated.AchievementsUnlocked = append(updated.AchievementsUnlocked, a.ID)
			notifier.ShowAchievement(fmt.Sprintf("%s %s unlocked: %s", a.Icon, a.Name, a.Description))
		}
	}

	return store.Write(s, store.KeyUserStats, updated)
}

func achievementReached(a model.Achievement, stats model.UserStats) bool {
	switch a.Category {
	case model.AchievementCategoryStreak:
		return stats.CurrentStreak >= a.Target
	case model.AchievementCategoryMeals:
		return stats.TotalMealsLogged >= a.Target
	case model.AchievementCategoryExercise:
		if isBurnAchievement(a.ID) {
			return stats.TotalCaloriesBurned >= a.Target
		}
		return stats.TotalExercises >= a.Target
	case model.AchievementCategoryWater:
		return stats.TotalWaterLoggedMl >= a.Target
	default:
		return false
	}
}

func isBurnAchievement(id string) bool {
	return len(id) >= 5 && id[:5] == "burn-"
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
