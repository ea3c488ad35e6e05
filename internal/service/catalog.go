package service

import (
	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

// Seeded food catalog, nutrition per ServingG grams. Search-API results are
// merged in at query time; their ids live in a disjoint namespace (provider
// ids are far above the seeded range).
var seedFoods = []model.Food{
	{ID: 1, Name: "Chicken breast", Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6, ServingG: 100},
	{ID: 2, Name: "Rice (cooked)", Calories: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3, ServingG: 100},
	{ID: 3, Name: "Broccoli", Calories: 34, ProteinG: 2.8, CarbsG: 7, FatG: 0.4, ServingG: 100},
	{ID: 4, Name: "Egg", Calories: 78, ProteinG: 6.5, CarbsG: 0.6, FatG: 5.5, ServingG: 50},
	{ID: 5, Name: "Banana", Calories: 89, ProteinG: 1.1, CarbsG: 23, FatG: 0.3, ServingG: 100},
	{ID: 6, Name: "Apple", Calories: 52, ProteinG: 0.3, CarbsG: 14, FatG: 0.2, ServingG: 100},
	{ID: 7, Name: "Beef stew", Calories: 150, ProteinG: 15, CarbsG: 5, FatG: 8, ServingG: 200},
	{ID: 8, Name: "Goulash soup", Calories: 80, ProteinG: 6, CarbsG: 8, FatG: 3, ServingG: 250},
	{ID: 9, Name: "White bread", Calories: 265, ProteinG: 9, CarbsG: 49, FatG: 3.2, ServingG: 100},
	{ID: 10, Name: "Cheese (semi-hard)", Calories: 340, ProteinG: 25, CarbsG: 1, FatG: 26, ServingG: 100},
	{ID: 11, Name: "Yogurt", Calories: 59, ProteinG: 3.5, CarbsG: 4.7, FatG: 3.3, ServingG: 100},
	{ID: 12, Name: "Tomato", Calories: 18, ProteinG: 0.9, CarbsG: 3.9, FatG: 0.2, ServingG: 100},
	{ID: 13, Name: "Cucumber", Calories: 15, ProteinG: 0.7, CarbsG: 3.6, FatG: 0.1, ServingG: 100},
	{ID: 14, Name: "Beef (lean)", Calories: 250, ProteinG: 26, CarbsG: 0, FatG: 15, ServingG: 100},
	{ID: 15, Name: "Oatmeal (cooked)", Calories: 71, ProteinG: 2.5, CarbsG: 12, FatG: 1.5, ServingG: 100},
	{ID: 16, Name: "Salmon", Calories: 208, ProteinG: 20, CarbsG: 0, FatG: 13, ServingG: 100},
	{ID: 17, Name: "Pasta (cooked)", Calories: 158, ProteinG: 5.8, CarbsG: 31, FatG: 0.9, ServingG: 100},
	{ID: 18, Name: "Sausage", Calories: 300, ProteinG: 13, CarbsG: 2, FatG: 27, ServingG: 100},
	{ID: 19, Name: "Cottage cheese", Calories: 98, ProteinG: 11, CarbsG: 3.4, FatG: 4.3, ServingG: 100},
	{ID: 20, Name: "Milk", Calories: 42, ProteinG: 3.4, CarbsG: 5, FatG: 1, ServingG: 100},
}

var seedExerciseTemplates = []model.ExerciseTemplate{
	{ID: 1, Name: "Running", CaloriesPerMinute: 10, Category: model.ExerciseCategoryCardio},
	{ID: 2, Name: "Walking", CaloriesPerMinute: 4, Category: model.ExerciseCategoryCardio},
	{ID: 3, Name: "Cycling", CaloriesPerMinute: 8, Category: model.ExerciseCategoryCardio},
	{ID: 4, Name: "Swimming", CaloriesPerMinute: 7, Category: model.ExerciseCategoryCardio},
	{ID: 5, Name: "Treadmill", CaloriesPerMinute: 9, Category: model.ExerciseCategoryCardio},
	{ID: 6, Name: "Spinning", CaloriesPerMinute: 10, Category: model.ExerciseCategoryCardio},
	{ID: 7, Name: "Weight training", CaloriesPerMinute: 6, Category: model.ExerciseCategoryStrength},
	{ID: 8, Name: "Bodyweight training", CaloriesPerMinute: 5, Category: model.ExerciseCategoryStrength},
	{ID: 9, Name: "CrossFit", CaloriesPerMinute: 11, Category: model.ExerciseCategoryStrength},
	{ID: 10, Name: "Yoga", CaloriesPerMinute: 3, Category: model.ExerciseCategoryMobility},
	{ID: 11, Name: "Stretching", CaloriesPerMinute: 2, Category: model.ExerciseCategoryMobility},
	{ID: 12, Name: "Football", CaloriesPerMinute: 9, Category: model.ExerciseCategorySports},
	{ID: 13, Name: "Basketball", CaloriesPerMinute: 8, Category: model.ExerciseCategorySports},
	{ID: 14, Name: "Tennis", CaloriesPerMinute: 7, Category: model.ExerciseCategorySports},
}

// Achievement catalog. Exercise achievements split by id prefix: "burn-" ids
// track cumulative calories burned, the rest track workout count.
var achievementCatalog = []model.Achievement{
	{ID: "streak-3", Name: "Committed Starter", Description: "3 day streak", Icon: "🔥", Target: 3, Category: model.AchievementCategoryStreak},
	{ID: "streak-7", Name: "Weekly Warrior", Description: "7 day streak", Icon: "⚡", Target: 7, Category: model.AchievementCategoryStreak},
	{ID: "streak-30", Name: "Monthly Master", Description: "30 day streak", Icon: "👑", Target: 30, Category: model.AchievementCategoryStreak},
	{ID: "meals-10", Name: "Logging Rookie", Description: "10 meals logged", Icon: "📝", Target: 10, Category: model.AchievementCategoryMeals},
	{ID: "meals-50", Name: "Meal Master", Description: "50 meals logged", Icon: "🍽️", Target: 50, Category: model.AchievementCategoryMeals},
	{ID: "meals-100", Name: "Logging Hero", Description: "100 meals logged", Icon: "🏆", Target: 100, Category: model.AchievementCategoryMeals},
	{ID: "exercise-5", Name: "Budding Athlete", Description: "5 workouts completed", Icon: "💪", Target: 5, Category: model.AchievementCategoryExercise},
	{ID: "exercise-25", Name: "Fitness Fan", Description: "25 workouts completed", Icon: "🏋️", Target: 25, Category: model.AchievementCategoryExercise},
	{ID: "exercise-50", Name: "Workout Champion", Description: "50 workouts completed", Icon: "🥇", Target: 50, Category: model.AchievementCategoryExercise},
	{ID: "burn-1000", Name: "Calorie Burner", Description: "1000 kcal burned", Icon: "🔥", Target: 1000, Category: model.AchievementCategoryExercise},
	{ID: "burn-5000", Name: "Fat-Burning Hero", Description: "5000 kcal burned", Icon: "💥", Target: 5000, Category: model.AchievementCategoryExercise},
	{ID: "water-10000", Name: "Hydration Habit", Description: "10 L of water logged", Icon: "💧", Target: 10000, Category: model.AchievementCategoryWater},
	{ID: "water-50000", Name: "Deep Blue", Description: "50 L of water logged", Icon: "🌊", Target: 50000, Category: model.AchievementCategoryWater},
}

func AchievementCatalog() []model.Achievement {
	out := make([]model.Achievement, len(achievementCatalog))
	copy(out, achievementCatalog)
	return out
}

func AchievementByID(id string) (model.Achievement, bool) {
	for _, a := range achievementCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return model.Achievement{}, false
}

// EnsureSeedData writes the built-in food catalog on first run. The catalog
// key is left alone once present so provider results merged into it survive
// restarts.
func EnsureSeedData(s *store.Store) error {
	foods := store.Read(s, store.KeyFoodsDB, []model.Food(nil))
	if len(foods) == 0 {
		if err := store.Write(s, store.KeyFoodsDB, seedFoods); err != nil {
			return err
		}
	}
	return nil
}

func Foods(s *store.Store) []model.Food {
	return store.Read(s, store.KeyFoodsDB, append([]model.Food(nil), seedFoods...))
}

// ExerciseTemplates returns the seeded templates followed by the user's
// custom ones.
func ExerciseTemplates(s *store.Store) []model.ExerciseTemplate {
	custom := store.Read(s, store.KeyCustomExercises, []model.ExerciseTemplate(nil))
	out := make([]model.ExerciseTemplate, 0, len(seedExerciseTemplates)+len(custom))
	out = append(out, seedExerciseTemplates...)
	out = append(out, custom...)
	return out
}
