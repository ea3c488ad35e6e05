package service

import (
	"fmt"
	"math"

	"github.com/fittrack/fittrack-cli/internal/model"
)

// Mifflin-St Jeor coefficients.
const (
	bmrWeightMultiplier = 10
	bmrHeightMultiplier = 6.25
	bmrAgeMultiplier    = 5
	bmrMaleConstant     = 5
	bmrFemaleConstant   = -161
)

const (
	calorieDeficit     = 500
	calorieSurplus     = 500
	minimumSafeCalorie = 1200
)

const (
	proteinPerKg           = 2
	fatCaloriePercentage   = 0.25
	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 4
	caloriesPerGramOfFat   = 9
)

// Healthy BMI band and the band-aware goal-weight targets.
const (
	bmiHealthyMin = 18.5
	bmiHealthyMax = 24.9
	bmiIdeal      = 22
	bmiTargetLose = 24
	bmiTargetGain = 20
)

var activityMultipliers = map[string]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// Water recommendation: 35 ml per kg, scaled by activity, rounded to the
// nearest glass-sized 250 ml and clamped to a sane daily band.
const (
	waterMlPerKg   = 35
	waterRoundToMl = 250
	waterMinMl     = 1500
	waterMaxMl     = 5000
)

var waterActivityMultipliers = map[string]float64{
	model.ActivitySedentary:  1.0,
	model.ActivityLight:      1.1,
	model.ActivityModerate:   1.2,
	model.ActivityActive:     1.3,
	model.ActivityVeryActive: 1.4,
}

// CalculateBMR computes the basal metabolic rate per Mifflin-St Jeor.
// Height is in cm, weight in kg.
func CalculateBMR(gender string, age int, heightCm, weightKg float64) (float64, error) {
	if err := ValidateAge(float64(age), ValidateOptions{}); err != nil {
		return 0, err
	}
	if err := ValidateHeight(heightCm, ValidateOptions{}); err != nil {
		return 0, err
	}
	if err := ValidateWeight(weightKg, ValidateOptions{}); err != nil {
		return 0, err
	}

	base := bmrWeightMultiplier*weightKg + bmrHeightMultiplier*heightCm - bmrAgeMultiplier*float64(age)
	switch gender {
	case model.GenderMale:
		return base + bmrMaleConstant, nil
	case model.GenderFemale:
		return base + bmrFemaleConstant, nil
	default:
		return 0, fmt.Errorf("invalid gender %q", gender)
	}
}

// CalculateDailyCalories scales BMR by the activity multiplier, applies the
// goal adjustment, and never drops below the safety floor.
func CalculateDailyCalories(bmr float64, activity, goal string) (int, error) {
	if math.IsNaN(bmr) || math.IsInf(bmr, 0) || bmr <= 0 {
		return 0, fmt.Errorf("invalid bmr value %v", bmr)
	}
	multiplier, ok := activityMultipliers[activity]
	if !ok {
		return 0, fmt.Errorf("invalid activity level %q", activity)
	}

	calories := bmr * multiplier
	switch goal {
	case model.GoalLose:
		calories -= calorieDeficit
	case model.GoalGain:
		calories += calorieSurplus
	case model.GoalMaintain:
	default:
		return 0, fmt.Errorf("invalid goal %q", goal)
	}

	calories = math.Max(calories, minimumSafeCalorie)
	return int(math.Round(calories)), nil
}

// CalculateMacros splits a calorie target into protein/carbs/fat grams.
// Carbs absorb the remainder and never go negative.
func CalculateMacros(calories int, weightKg float64) (model.Macros, error) {
	if err := ValidateCalories(float64(calories), ValidateOptions{}); err != nil {
		return model.Macros{}, err
	}
	if err := ValidateWeight(weightKg, ValidateOptions{}); err != nil {
		return model.Macros{}, err
	}

	protein := int(math.Round(weightKg * proteinPerKg))
	fat := int(math.Round(float64(calories) * fatCaloriePercentage / caloriesPerGramOfFat))
	remaining := calories - protein*caloriesPerGramProtein - fat*caloriesPerGramOfFat

	carbs := 0
	if remaining > 0 {
		carbs = int(math.Round(float64(remaining) / caloriesPerGramCarbs))
	}
	return model.Macros{Protein: protein, Carbs: carbs, Fat: fat}, nil
}

// NutritionAmounts is a scaled serving of a catalog food.
type NutritionAmounts struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// CalculateNutrition scales food's per-serving values to grams consumed.
// Calories round to whole kcal, macros to one decimal.
func CalculateNutrition(food model.Food, grams float64) (NutritionAmounts, error) {
	if food.ServingG <= 0 {
		return NutritionAmounts{}, fmt.Errorf("invalid food %q: serving size must be > 0", food.Name)
	}
	if math.IsNaN(grams) || math.IsInf(grams, 0) || grams < 0 {
		return NutritionAmounts{}, fmt.Errorf("invalid amount %v: must be a non-negative number of grams", grams)
	}

	ratio := grams / food.ServingG
	return NutritionAmounts{
		Calories: int(math.Round(food.Calories * ratio)),
		ProteinG: roundTo1(food.ProteinG * ratio),
		CarbsG:   roundTo1(food.CarbsG * ratio),
		FatG:     roundTo1(food.FatG * ratio),
	}, nil
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

type NutritionTotals struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

func CalculateTotalNutrition(meals []model.Meal) NutritionTotals {
	var t NutritionTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.ProteinG += m.ProteinG
		t.CarbsG += m.CarbsG
		t.FatG += m.FatG
	}
	return t
}

func CalculateTotalCaloriesBurned(exercises []model.Exercise) int {
	total := 0
	for _, e := range exercises {
		total += e.CaloriesBurned
	}
	return total
}

func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if err := ValidateWeight(weightKg, ValidateOptions{}); err != nil {
		return 0, err
	}
	if err := ValidateHeight(heightCm, ValidateOptions{}); err != nil {
		return 0, err
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// CalculateRecommendedGoalWeight picks a target weight from the current BMI
// band rather than a single formula, so the recommendation never jumps to a
// medically extreme value.
func CalculateRecommendedGoalWeight(heightCm, currentWeightKg float64, goal string) (float64, error) {
	currentBMI, err := CalculateBMI(currentWeightKg, heightCm)
	if err != nil {
		return 0, err
	}
	heightM := heightCm / 100
	weightAtBMI := func(bmi float64) float64 {
		return math.Round(bmi * heightM * heightM)
	}

	switch goal {
	case model.GoalLose:
		if currentBMI >= 30 {
			return weightAtBMI(bmiTargetLose), nil
		}
		if currentBMI > bmiHealthyMax {
			return weightAtBMI(bmiIdeal), nil
		}
		// Already healthy: gentle 5% cut.
		return math.Round(currentWeightKg * 0.95), nil
	case model.GoalGain:
		if currentBMI < 17 {
			return weightAtBMI(bmiTargetGain), nil
		}
		if currentBMI < bmiHealthyMin {
			return weightAtBMI(bmiIdeal), nil
		}
		return math.Round(currentWeightKg * 1.05), nil
	case model.GoalMaintain:
		if currentBMI > bmiHealthyMax {
			return weightAtBMI(bmiHealthyMax), nil
		}
		if currentBMI < bmiHealthyMin {
			return weightAtBMI(bmiHealthyMin), nil
		}
		return currentWeightKg, nil
	default:
		return 0, fmt.Errorf("invalid goal %q", goal)
	}
}

// CalculateRecommendedWaterIntake derives a daily water target in ml from
// body weight and activity level.
func CalculateRecommendedWaterIntake(weightKg float64, activity string) (int, error) {
	if err := ValidateWeight(weightKg, ValidateOptions{}); err != nil {
		return 0, err
	}
	multiplier, ok := waterActivityMultipliers[activity]
	if !ok {
		return 0, fmt.Errorf("invalid activity level %q", activity)
	}

	ml := weightKg * waterMlPerKg * multiplier
	ml = math.Round(ml/waterRoundToMl) * waterRoundToMl
	ml = math.Min(math.Max(ml, waterMinMl), waterMaxMl)
	return int(ml), nil
}

// CalculatePercentage formats value/total as a fixed-decimal percentage
// string, guarding against a zero total.
func CalculatePercentage(value, total float64, decimals int) string {
	if total == 0 {
		return "0"
	}
	return fmt.Sprintf("%.*f", decimals, value/total*100)
}
