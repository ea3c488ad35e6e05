package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the rolling 30-day daily ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			history := service.History(s)
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
				return nil
			}
			for _, day := range history {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  in %4d kcal | burned %4d | net %5d | water %4d ml | %d meals, %d workouts\n",
					day.Date, day.Calories, day.CaloriesBurned, day.NetCalories, day.WaterMl, len(day.Meals), len(day.Exercises))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
