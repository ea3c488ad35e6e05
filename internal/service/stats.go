package service

import (
	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

func UserStats(s *store.Store) model.UserStats {
	return store.Read(s, store.KeyUserStats, model.UserStats{})
}

func History(s *store.Store) []model.DailyHistory {
	return store.Read(s, store.KeyDailyHistory, []model.DailyHistory(nil))
}

// AchievementStatus pairs a catalog entry with its derived unlock state.
type AchievementStatus struct {
	model.Achievement
	Unlocked bool
	Viewed   bool
}

// AchievementStatuses lists the catalog in order with unlock and viewed
// flags resolved against the stats ledger.
func AchievementStatuses(s *store.Store) []AchievementStatus {
	stats := UserStats(s)
	viewed := store.Read(s, store.KeyViewedAchievements, []string(nil))

	out := make([]AchievementStatus, 0, len(achievementCatalog))
	for _, a := range achievementCatalog {
		out = append(out, AchievementStatus{
			Achievement: a,
			Unlocked:    containsString(stats.AchievementsUnlocked, a.ID),
			Viewed:      containsString(viewed, a.ID),
		})
	}
	return out
}

// MarkAchievementsViewed records every currently unlocked achievement as
// seen, clearing the "new" badge state.
func MarkAchievementsViewed(s *store.Store) error {
	stats := UserStats(s)
	viewed := store.Read(s, store.KeyViewedAchievements, []string(nil))
	for _, id := range stats.AchievementsUnlocked {
		if !containsString(viewed, id) {
			viewed = append(viewed, id)
		}
	}
	return store.Write(s, store.KeyViewedAchievements, viewed)
}
