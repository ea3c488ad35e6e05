package fittrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/provider/spoonacular"
	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

const spoonacularKeyEnv = "FITTRACK_SPOONACULAR_KEY"

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods in the catalog, with an online fallback",
	Long:  "Search the local food catalog. When " + spoonacularKeyEnv + " is set, queries with no local match fall back to the Spoonacular API and merge the results into the catalog.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			var searcher service.FoodSearcher
			if key := os.Getenv(spoonacularKeyEnv); key != "" {
				searcher = &spoonacular.Client{APIKey: key}
			}
			foods, err := service.SearchFoods(cmd.Context(), s, searcher, args[0], searchLimit)
			if err != nil {
				return err
			}
			if len(foods) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No foods found.")
				return nil
			}
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%6d  %-24s %.0f kcal / %.0f g | P %.1fg C %.1fg F %.1fg\n",
					f.ID, f.Name, f.Calories, f.ServingG, f.ProteinG, f.CarbsG, f.FatG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 6, "Maximum number of online results")
}
