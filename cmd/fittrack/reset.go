package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var resetConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the profile and all logged data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			return fmt.Errorf("this deletes the profile and all logs; re-run with --yes to confirm")
		}
		return withStore(func(s *store.Store) error {
			if err := service.ResetApp(s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All fittrack data deleted.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "Confirm deletion")
}
