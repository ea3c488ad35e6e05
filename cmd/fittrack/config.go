package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change preferences",
}

var configDarkModeCmd = &cobra.Command{
	Use:   "dark-mode [on|off]",
	Short: "Show or set the dark mode preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if len(args) == 0 {
				if service.DarkMode(s) {
					fmt.Fprintln(cmd.OutOrStdout(), "dark mode: on")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "dark mode: off")
				}
				return nil
			}
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("invalid value %q (use on or off)", args[0])
			}
			if err := service.SetDarkMode(s, enabled); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dark mode: %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configDarkModeCmd)
}
