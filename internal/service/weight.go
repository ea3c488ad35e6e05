package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

type AddWeightInput struct {
	Date     string
	WeightKg float64
	Note     string
}

// AddWeightEntry upserts one entry per calendar date: logging twice on one
// day replaces the earlier value. It reports whether the profile's goal
// weight was reached by this entry.
func AddWeightEntry(s *store.Store, in AddWeightInput, now time.Time, notifier Notifier) (bool, error) {
	if err := ValidateWeight(in.WeightKg, ValidateOptions{}); err != nil {
		return false, err
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = TodayString(now)
	}
	if _, err := ParseDate(date); err != nil {
		return false, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", in.Date)
	}

	entries := store.Read(s, store.KeyWeightHistory, []model.WeightEntry(nil))
	kept := entries[:0]
	for _, e := range entries {
		if e.Date != date {
			kept = append(kept, e)
		}
	}
	kept = append(kept, model.WeightEntry{Date: date, WeightKg: in.WeightKg, Note: strings.TrimSpace(in.Note)})
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Date > kept[j].Date
	})
	if err := store.Write(s, store.KeyWeightHistory, kept); err != nil {
		return false, err
	}

	goalReached := false
	if profile := CurrentProfile(s); profile != nil {
		switch profile.Goal {
		case model.GoalLose:
			goalReached = in.WeightKg <= profile.GoalWeightKg
		case model.GoalGain:
			goalReached = in.WeightKg >= profile.GoalWeightKg
		}
		if goalReached && notifier != nil {
			// Undo reverts the entry that triggered the milestone.
			undoDate := date
			notifier.ShowSuccess(fmt.Sprintf("Goal weight %.1f kg reached!", profile.GoalWeightKg), func() {
				_ = DeleteWeightEntry(s, undoDate)
			})
		}
	}
	return goalReached, nil
}

func DeleteWeightEntry(s *store.Store, date string) error {
	entries := store.Read(s, store.KeyWeightHistory, []model.WeightEntry(nil))
	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.Date == date {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("no weight entry for %s", date)
	}
	return store.Write(s, store.KeyWeightHistory, kept)
}

// WeightHistory returns entries newest-first.
func WeightHistory(s *store.Store) []model.WeightEntry {
	return store.Read(s, store.KeyWeightHistory, []model.WeightEntry(nil))
}
