package service_test

import (
	"testing"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/service"
)

func TestTodaySummary(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	now := testNow(t)
	if err := service.EnsureSeedData(s); err != nil {
		t.Fatalf("seed data: %v", err)
	}

	profile := model.Profile{
		Gender:        model.GenderMale,
		Age:           30,
		HeightCm:      180,
		WeightKg:      80,
		GoalWeightKg:  75,
		Activity:      model.ActivityModerate,
		Goal:          model.GoalLose,
		WaterGoalMl:   3350,
		DailyCalories: 2259,
		Macros:        model.Macros{Protein: 160, Carbs: 263, Fat: 63},
	}
	if err := service.CommitProfile(s, profile); err != nil {
		t.Fatalf("commit profile: %v", err)
	}

	// 150 g chicken breast (248 kcal) and 30 min running (300 kcal).
	if _, err := service.LogMeal(s, service.LogMealInput{FoodID: 1, MealType: "lunch", AmountG: 150}, now, nil); err != nil {
		t.Fatalf("log meal: %v", err)
	}
	if _, err := service.LogExercise(s, service.LogExerciseInput{TemplateID: 1, DurationMin: 30}, now, nil); err != nil {
		t.Fatalf("log exercise: %v", err)
	}
	if _, err := service.AddWater(s, 500, now, nil); err != nil {
		t.Fatalf("add water: %v", err)
	}

	status := service.TodaySummary(s, now)
	if status.Date != service.TodayString(now) {
		t.Fatalf("expected today's date, got %s", status.Date)
	}
	if status.IntakeCalories != 248 || status.ExerciseCalories != 300 {
		t.Fatalf("unexpected calorie totals %+v", status)
	}
	if status.NetCalories != -52 {
		t.Fatalf("expected net -52 kcal, got %d", status.NetCalories)
	}
	if status.WaterMl != 500 || status.WaterGoalMl != 3350 {
		t.Fatalf("unexpected water figures %+v", status)
	}
	if !status.HasProfile {
		t.Fatalf("expected profile-backed summary")
	}
	if status.GoalCalories != 2259 || status.RemainingCalories != 2311 {
		t.Fatalf("unexpected goal figures %+v", status)
	}
}

func TestTodaySummaryWithoutProfile(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	now := testNow(t)

	status := service.TodaySummary(s, now)
	if status.HasProfile {
		t.Fatalf("expected no profile")
	}
	if status.GoalCalories != 0 || status.IntakeCalories != 0 {
		t.Fatalf("expected zero totals on a fresh day, got %+v", status)
	}
}
