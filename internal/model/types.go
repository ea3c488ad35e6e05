package model

// Gender, activity and goal values are stored as strings so that persisted
// JSON stays readable and forward-compatible.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "veryActive"
)

const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Profile is the single committed user profile. DailyCalories and Macros are
// derived on every commit and never hand-edited.
type Profile struct {
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
	HeightCm      float64 `json:"height"`
	WeightKg      float64 `json:"weight"`
	GoalWeightKg  float64 `json:"goalWeight"`
	Activity      string  `json:"activity"`
	Goal          string  `json:"goal"`
	WaterGoalMl   int     `json:"waterGoal"`
	DailyCalories int     `json:"dailyCalories"`
	Macros        Macros  `json:"macros"`
}

// Food is immutable catalog reference data. Nutrition values are per
// ServingG grams.
type Food struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fat"`
	ServingG float64 `json:"serving"`
	Image    string  `json:"image,omitempty"`
}

// Meal freezes its own nutrition snapshot at log time; later catalog edits
// never touch logged meals.
type Meal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	MealType string  `json:"mealType"`
	AmountG  float64 `json:"amount"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fat"`
	LoggedAt string  `json:"timestamp"`
	Image    string  `json:"image,omitempty"`
}

const (
	ExerciseCategoryCardio   = "cardio"
	ExerciseCategoryStrength = "strength"
	ExerciseCategoryMobility = "mobility"
	ExerciseCategorySports   = "sports"
)

type ExerciseTemplate struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	CaloriesPerMinute float64 `json:"caloriesPerMinute"`
	Category          string  `json:"category"`
}

type Exercise struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CaloriesBurned int    `json:"caloriesBurned"`
	DurationMin    int    `json:"duration"`
	LoggedAt       string `json:"timestamp"`
	Category       string `json:"category"`
	IsCustom       bool   `json:"isCustom"`
}

// WeightEntry is keyed by Date; inserting on an existing date replaces the
// old entry.
type WeightEntry struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight"`
	Note     string  `json:"note,omitempty"`
}

// DailyHistory is one per-date snapshot in the rolling 30-day ledger.
type DailyHistory struct {
	Date           string     `json:"date"`
	Calories       int        `json:"calories"`
	ProteinG       float64    `json:"protein"`
	CarbsG         float64    `json:"carbs"`
	FatG           float64    `json:"fat"`
	CaloriesBurned int        `json:"caloriesBurned"`
	NetCalories    int        `json:"netCalories"`
	WaterMl        int        `json:"water"`
	Meals          []Meal     `json:"meals"`
	Exercises      []Exercise `json:"exercises"`
}

// UserStats is the gamification ledger. AchievementsUnlocked only grows
// within a profile's lifetime, and LongestStreak >= CurrentStreak always.
type UserStats struct {
	CurrentStreak        int      `json:"currentStreak"`
	LongestStreak        int      `json:"longestStreak"`
	TotalMealsLogged     int      `json:"totalMealsLogged"`
	TotalExercises       int      `json:"totalExercises"`
	TotalCaloriesBurned  int      `json:"totalCaloriesBurned"`
	TotalWaterLoggedMl   int      `json:"totalWaterLogged"`
	AchievementsUnlocked []string `json:"achievementsUnlocked"`
	LastLogDate          string   `json:"lastLogDate"`
}

const (
	AchievementCategoryStreak   = "streak"
	AchievementCategoryMeals    = "meals"
	AchievementCategoryExercise = "exercise"
	AchievementCategoryWater    = "water"
)

// Achievement is static catalog data; unlock status is derived from
// UserStats, never persisted on the achievement itself.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Target      int    `json:"target"`
}
