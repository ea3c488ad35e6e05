package fittrack

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track today's water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Add water to today's total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q, expected ml", args[0])
		}
		return withStore(func(s *store.Store) error {
			total, err := service.AddWater(s, ml, time.Now(), terminalNotifier{out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			goal := service.WaterGoal(s)
			if goal > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml (%s%%)\n", total, goal, service.CalculatePercentage(float64(total), float64(goal), 0))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Water: %d ml\n", total)
			}
			return nil
		})
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			total := service.TodayWater(s)
			goal := service.WaterGoal(s)
			if goal > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml (%s%%)\n", total, goal, service.CalculatePercentage(float64(total), float64(goal), 0))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Water: %d ml (no goal set)\n", total)
			}
			return nil
		})
	},
}

var waterGoalCmd = &cobra.Command{
	Use:   "goal <ml>",
	Short: "Set the daily water goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid goal %q, expected ml", args[0])
		}
		return withStore(func(s *store.Store) error {
			if err := service.SetWaterGoal(s, ml); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water goal set to %d ml.\n", ml)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterShowCmd)
	waterCmd.AddCommand(waterGoalCmd)
}
