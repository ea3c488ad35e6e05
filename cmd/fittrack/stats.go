package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks and cumulative totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			stats := service.UserStats(s)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current streak: %d days (longest %d)\n", stats.CurrentStreak, stats.LongestStreak)
			fmt.Fprintf(out, "Meals logged: %d\n", stats.TotalMealsLogged)
			fmt.Fprintf(out, "Workouts: %d\n", stats.TotalExercises)
			fmt.Fprintf(out, "Calories burned: %d kcal\n", stats.TotalCaloriesBurned)
			fmt.Fprintf(out, "Water logged: %d ml\n", stats.TotalWaterLoggedMl)
			fmt.Fprintf(out, "Achievements: %d unlocked\n", len(stats.AchievementsUnlocked))
			return nil
		})
	},
}

var achievementsMarkViewed bool

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and their unlock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			for _, a := range service.AchievementStatuses(s) {
				state := "locked"
				switch {
				case a.Unlocked && !a.Viewed:
					state = "unlocked (new)"
				case a.Unlocked:
					state = "unlocked"
				}
				fmt.Fprintf(out, "%s %-20s %-32s %s\n", a.Icon, a.Name, a.Description, state)
			}
			if achievementsMarkViewed {
				if err := service.MarkAchievementsViewed(s); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	achievementsCmd.Flags().BoolVar(&achievementsMarkViewed, "mark-viewed", false, "Mark unlocked achievements as seen")
}
