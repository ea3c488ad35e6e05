package service_test

import (
	"testing"

	"github.com/fittrack/fittrack-cli/internal/service"
)

func TestAddWater(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	now := testNow(t)

	total, err := service.AddWater(s, 300, now, nil)
	if err != nil {
		t.Fatalf("add water: %v", err)
	}
	if total != 300 {
		t.Fatalf("expected total 300, got %d", total)
	}
	total, err = service.AddWater(s, 450, now, nil)
	if err != nil {
		t.Fatalf("add more water: %v", err)
	}
	if total != 750 {
		t.Fatalf("expected total 750, got %d", total)
	}
	if got := service.TodayWater(s); got != 750 {
		t.Fatalf("expected today water 750, got %d", got)
	}

	// Water alone never opens a ledger entry.
	if history := service.History(s); len(history) != 0 {
		t.Fatalf("expected no history entry from water only, got %+v", history)
	}

	if _, err := service.AddWater(s, 0, now, nil); err == nil {
		t.Fatalf("expected error for zero amount")
	}
	if _, err := service.AddWater(s, -100, now, nil); err == nil {
		t.Fatalf("expected error for negative amount")
	}
}

func TestWaterGoal(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if got := service.WaterGoal(s); got != 0 {
		t.Fatalf("expected no goal before setup, got %d", got)
	}

	if err := service.SetWaterGoal(s, 100); err == nil {
		t.Fatalf("expected error for goal below range")
	}
	if err := service.SetWaterGoal(s, 6000); err == nil {
		t.Fatalf("expected error for goal above range")
	}
	if err := service.SetWaterGoal(s, 2500); err != nil {
		t.Fatalf("set water goal: %v", err)
	}
	if got := service.WaterGoal(s); got != 2500 {
		t.Fatalf("expected goal 2500, got %d", got)
	}
}
