package fittrack

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight over time",
}

var (
	weightDate string
	weightNote string
)

var weightAddCmd = &cobra.Command{
	Use:   "add <kg>",
	Short: "Record body weight (one entry per date)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q, expected kg", args[0])
		}
		return withStore(func(s *store.Store) error {
			_, err := service.AddWeightEntry(s, service.AddWeightInput{
				Date:     weightDate,
				WeightKg: kg,
				Note:     weightNote,
			}, time.Now(), terminalNotifier{out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Weight recorded: %.1f kg\n", kg)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			entries := service.WeightHistory(s)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weight entries yet.")
				return nil
			}
			for _, e := range entries {
				if e.Note != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %.1f kg  (%s)\n", e.Date, e.WeightKg, e.Note)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %.1f kg\n", e.Date, e.WeightKg)
				}
			}
			return nil
		})
	},
}

var weightDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete the weight entry for a date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := service.DeleteWeightEntry(s, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Weight entry deleted.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd)
	weightCmd.AddCommand(weightListCmd)
	weightCmd.AddCommand(weightDeleteCmd)

	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (default today)")
	weightAddCmd.Flags().StringVar(&weightNote, "note", "", "Optional note")
}
