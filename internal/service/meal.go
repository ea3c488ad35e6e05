package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

type LogMealInput struct {
	FoodID   int64
	MealType string
	AmountG  float64
	LoggedAt time.Time
}

var mealTypes = map[string]bool{
	model.MealTypeBreakfast: true,
	model.MealTypeLunch:     true,
	model.MealTypeDinner:    true,
	model.MealTypeSnack:     true,
}

// LogMeal scales the catalog food to the consumed amount and appends it to
// today's meals. The meal freezes its own nutrition snapshot; later catalog
// changes never touch it.
func LogMeal(s *store.Store, in LogMealInput, now time.Time, notifier Notifier) (model.Meal, error) {
	mealType := strings.ToLower(strings.TrimSpace(in.MealType))
	if !mealTypes[mealType] {
		return model.Meal{}, fmt.Errorf("invalid meal type %q (use breakfast, lunch, dinner, or snack)", in.MealType)
	}

	food, ok := foodByID(s, in.FoodID)
	if !ok {
		return model.Meal{}, fmt.Errorf("food %d not found", in.FoodID)
	}
	amounts, err := CalculateNutrition(food, in.AmountG)
	if err != nil {
		return model.Meal{}, err
	}

	loggedAt := in.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = now
	}
	meal := model.Meal{
		ID:       uuid.NewString(),
		Name:     food.Name,
		MealType: mealType,
		AmountG:  in.AmountG,
		Calories: amounts.Calories,
		ProteinG: amounts.ProteinG,
		CarbsG:   amounts.CarbsG,
		FatG:     amounts.FatG,
		LoggedAt: loggedAt.Format(time.RFC3339),
		Image:    food.Image,
	}

	meals := store.Read(s, store.KeyDailyMeals, []model.Meal(nil))
	meals = append(meals, meal)
	if err := store.Write(s, store.KeyDailyMeals, meals); err != nil {
		return model.Meal{}, err
	}
	if err := Recompute(s, now, notifier); err != nil {
		return model.Meal{}, err
	}
	return meal, nil
}

func DeleteMeal(s *store.Store, id string, now time.Time, notifier Notifier) error {
	meals := store.Read(s, store.KeyDailyMeals, []model.Meal(nil))
	kept := meals[:0]
	found := false
	for _, m := range meals {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return fmt.Errorf("meal %s not found", id)
	}
	if err := store.Write(s, store.KeyDailyMeals, kept); err != nil {
		return err
	}
	return Recompute(s, now, notifier)
}

func TodayMeals(s *store.Store) []model.Meal {
	return store.Read(s, store.KeyDailyMeals, []model.Meal(nil))
}

func foodByID(s *store.Store, id int64) (model.Food, bool) {
	for _, f := range Foods(s) {
		if f.ID == id {
			return f, true
		}
	}
	return model.Food{}, false
}

// Favorites are catalog foods pinned by the user for quick logging.

func AddFavorite(s *store.Store, foodID int64) error {
	food, ok := foodByID(s, foodID)
	if !ok {
		return fmt.Errorf("food %d not found", foodID)
	}
	favorites := store.Read(s, store.KeyFavorites, []model.Food(nil))
	for _, f := range favorites {
		if f.ID == foodID {
			return fmt.Errorf("food %q is already a favorite", food.Name)
		}
	}
	return store.Write(s, store.KeyFavorites, append(favorites, food))
}

func RemoveFavorite(s *store.Store, foodID int64) error {
	favorites := store.Read(s, store.KeyFavorites, []model.Food(nil))
	kept := favorites[:0]
	found := false
	for _, f := range favorites {
		if f.ID == foodID {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return fmt.Errorf("food %d is not a favorite", foodID)
	}
	return store.Write(s, store.KeyFavorites, kept)
}

func Favorites(s *store.Store) []model.Food {
	return store.Read(s, store.KeyFavorites, []model.Food(nil))
}
