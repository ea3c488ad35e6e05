package service

import (
	"time"

	"github.com/fittrack/fittrack-cli/internal/store"
)

type TodayStatus struct {
	Date              string  `json:"date"`
	IntakeCalories    int     `json:"intake_calories"`
	ExerciseCalories  int     `json:"exercise_calories"`
	NetCalories       int     `json:"net_calories"`
	ProteinG          float64 `json:"protein_g"`
	CarbsG            float64 `json:"carbs_g"`
	FatG              float64 `json:"fat_g"`
	WaterMl           int     `json:"water_ml"`
	WaterGoalMl       int     `json:"water_goal_ml,omitempty"`
	GoalCalories      int     `json:"goal_calories,omitempty"`
	RemainingCalories int     `json:"remaining_calories,omitempty"`
	GoalProteinG      int     `json:"goal_protein_g,omitempty"`
	GoalCarbsG        int     `json:"goal_carbs_g,omitempty"`
	GoalFatG          int     `json:"goal_fat_g,omitempty"`
	HasProfile        bool    `json:"has_profile"`
}

// TodaySummary folds today's live logs into one status view against the
// profile's targets.
func TodaySummary(s *store.Store, now time.Time) TodayStatus {
	totals := CalculateTotalNutrition(TodayMeals(s))
	burned := CalculateTotalCaloriesBurned(TodayExercises(s))

	status := TodayStatus{
		Date:             TodayString(now),
		IntakeCalories:   totals.Calories,
		ExerciseCalories: burned,
		NetCalories:      totals.Calories - burned,
		ProteinG:         totals.ProteinG,
		CarbsG:           totals.CarbsG,
		FatG:             totals.FatG,
		WaterMl:          TodayWater(s),
		WaterGoalMl:      WaterGoal(s),
	}

	if profile := CurrentProfile(s); profile != nil {
		status.HasProfile = true
		status.GoalCalories = profile.DailyCalories
		status.RemainingCalories = profile.DailyCalories - status.NetCalories
		status.GoalProteinG = profile.Macros.Protein
		status.GoalCarbsG = profile.Macros.Carbs
		status.GoalFatG = profile.Macros.Fat
	}
	return status
}
