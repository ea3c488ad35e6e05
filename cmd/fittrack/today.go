package fittrack

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, workouts, water, and target progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			status := service.TodaySummary(s, time.Now())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			fmt.Fprintf(out, "Intake: %d kcal\n", status.IntakeCalories)
			fmt.Fprintf(out, "Exercise: %d kcal\n", status.ExerciseCalories)
			fmt.Fprintf(out, "Net: %d kcal\n", status.NetCalories)
			fmt.Fprintf(out, "Macros: P %.1fg | C %.1fg | F %.1fg\n", status.ProteinG, status.CarbsG, status.FatG)
			if status.WaterGoalMl > 0 {
				fmt.Fprintf(out, "Water: %d / %d ml\n", status.WaterMl, status.WaterGoalMl)
			} else {
				fmt.Fprintf(out, "Water: %d ml\n", status.WaterMl)
			}
			if status.HasProfile {
				fmt.Fprintf(out, "Target: %d kcal | P %dg C %dg F %dg\n", status.GoalCalories, status.GoalProteinG, status.GoalCarbsG, status.GoalFatG)
				fmt.Fprintf(out, "Remaining: %d kcal\n", status.RemainingCalories)
			} else {
				fmt.Fprintln(out, "Target: no profile (run 'fittrack profile setup')")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
