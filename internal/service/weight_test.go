package service_test

import (
	"testing"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/service"
)

func TestAddWeightEntryUpsertsPerDate(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	now := testNow(t)

	if _, err := service.AddWeightEntry(s, service.AddWeightInput{WeightKg: 80}, now, nil); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	// Same day again: the morning value is replaced, not duplicated.
	if _, err := service.AddWeightEntry(s, service.AddWeightInput{WeightKg: 79.5, Note: "evening"}, now, nil); err != nil {
		t.Fatalf("replace entry: %v", err)
	}
	entries := service.WeightHistory(s)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].WeightKg != 79.5 || entries[0].Note != "evening" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}

	if _, err := service.AddWeightEntry(s, service.AddWeightInput{Date: service.YesterdayString(now), WeightKg: 81}, now, nil); err != nil {
		t.Fatalf("add dated entry: %v", err)
	}
	entries = service.WeightHistory(s)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != service.TodayString(now) {
		t.Fatalf("expected newest entry first, got %s", entries[0].Date)
	}
}

func TestAddWeightEntryRejectsBadInput(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	now := testNow(t)

	if _, err := service.AddWeightEntry(s, service.AddWeightInput{WeightKg: 10}, now, nil); err == nil {
		t.Fatalf("expected error for out-of-range weight")
	}
	if _, err := service.AddWeightEntry(s, service.AddWeightInput{Date: "10-03-2026", WeightKg: 80}, now, nil); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestAddWeightEntryDetectsGoalReached(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	now := testNow(t)
	notifier := &captureNotifier{}

	profile := model.Profile{
		Gender:       model.GenderMale,
		Age:          30,
		HeightCm:     180,
		WeightKg:     80,
		GoalWeightKg: 75,
		Activity:     model.ActivityModerate,
		Goal:         model.GoalLose,
	}
	if err := service.CommitProfile(s, profile); err != nil {
		t.Fatalf("commit profile: %v", err)
	}

	reached, err := service.AddWeightEntry(s, service.AddWeightInput{WeightKg: 76}, now, notifier)
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if reached {
		t.Fatalf("76 kg should not reach a 75 kg lose goal")
	}

	reached, err = service.AddWeightEntry(s, service.AddWeightInput{WeightKg: 74.5}, now, notifier)
	if err != nil {
		t.Fatalf("add reaching entry: %v", err)
	}
	if !reached {
		t.Fatalf("74.5 kg should reach a 75 kg lose goal")
	}
	if len(notifier.successes) != 1 {
		t.Fatalf("expected one success notification, got %v", notifier.successes)
	}

	// The notification carries an undo that reverts the triggering entry.
	if len(notifier.undos) != 1 || notifier.undos[0] == nil {
		t.Fatalf("expected an undo callback with the notification")
	}
	notifier.undos[0]()
	if entries := service.WeightHistory(s); len(entries) != 0 {
		t.Fatalf("expected undo to remove the entry, got %+v", entries)
	}
}

func TestDeleteWeightEntry(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	now := testNow(t)

	if _, err := service.AddWeightEntry(s, service.AddWeightInput{WeightKg: 80}, now, nil); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if err := service.DeleteWeightEntry(s, service.TodayString(now)); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if entries := service.WeightHistory(s); len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
	if err := service.DeleteWeightEntry(s, "2020-01-01"); err == nil {
		t.Fatalf("expected error for unknown date")
	}
}
