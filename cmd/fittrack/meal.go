package fittrack

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and manage today's meals",
}

var (
	mealType   string
	mealAmount float64
)

var mealAddCmd = &cobra.Command{
	Use:   "add <food-id>",
	Short: "Log a meal from the food catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foodID, err := parseInt64Arg("food id", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			meal, err := service.LogMeal(s, service.LogMealInput{
				FoodID:   foodID,
				MealType: mealType,
				AmountG:  mealAmount,
			}, time.Now(), terminalNotifier{out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s): %.0f g, %d kcal | P %.1fg C %.1fg F %.1fg\n",
				meal.Name, meal.MealType, meal.AmountG, meal.Calories, meal.ProteinG, meal.CarbsG, meal.FatG)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			meals := service.TodayMeals(s)
			if len(meals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals logged today.")
				return nil
			}
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s %-24s %.0f g  %d kcal\n", m.ID, m.MealType, m.Name, m.AmountG, m.Calories)
			}
			totals := service.CalculateTotalNutrition(meals)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal | P %.1fg C %.1fg F %.1fg\n", totals.Calories, totals.ProteinG, totals.CarbsG, totals.FatG)
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <meal-id>",
	Short: "Delete a meal logged today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := service.DeleteMeal(s, args[0], time.Now(), terminalNotifier{out: cmd.OutOrStdout()}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Meal deleted.")
			return nil
		})
	},
}

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Browse the food catalog and favorites",
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the food catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			for _, f := range service.Foods(s) {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-24s %.0f kcal / %.0f g\n", f.ID, f.Name, f.Calories, f.ServingG)
			}
			return nil
		})
	},
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manage favorite foods",
}

var favoriteAddCmd = &cobra.Command{
	Use:   "add <food-id>",
	Short: "Add a food to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foodID, err := parseInt64Arg("food id", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if err := service.AddFavorite(s, foodID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Favorite added.")
			return nil
		})
	},
}

var favoriteRemoveCmd = &cobra.Command{
	Use:   "remove <food-id>",
	Short: "Remove a food from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foodID, err := parseInt64Arg("food id", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if err := service.RemoveFavorite(s, foodID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Favorite removed.")
			return nil
		})
	},
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			favorites := service.Favorites(s)
			if len(favorites) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
				return nil
			}
			for _, f := range favorites {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-24s %.0f kcal / %.0f g\n", f.ID, f.Name, f.Calories, f.ServingG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealDeleteCmd)
	mealAddCmd.Flags().StringVar(&mealType, "type", "snack", "Meal type (breakfast, lunch, dinner, snack)")
	mealAddCmd.Flags().Float64Var(&mealAmount, "amount", 100, "Amount in grams")

	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodListCmd)

	rootCmd.AddCommand(favoriteCmd)
	favoriteCmd.AddCommand(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteRemoveCmd)
	favoriteCmd.AddCommand(favoriteListCmd)
}
