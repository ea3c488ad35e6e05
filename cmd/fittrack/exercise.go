package fittrack

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log and manage today's workouts",
}

var exerciseDuration int

var exerciseAddCmd = &cobra.Command{
	Use:   "add <template-id>",
	Short: "Log a workout from an exercise template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		templateID, err := parseInt64Arg("template id", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			exercise, err := service.LogExercise(s, service.LogExerciseInput{
				TemplateID:  templateID,
				DurationMin: exerciseDuration,
			}, time.Now(), terminalNotifier{out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %d min, %d kcal burned\n", exercise.Name, exercise.DurationMin, exercise.CaloriesBurned)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			exercises := service.TodayExercises(s)
			if len(exercises) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts logged today.")
				return nil
			}
			for _, e := range exercises {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %3d min  %d kcal\n", e.ID, e.Name, e.DurationMin, e.CaloriesBurned)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total burned: %d kcal\n", service.CalculateTotalCaloriesBurned(exercises))
			return nil
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <exercise-id>",
	Short: "Delete a workout logged today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := service.DeleteExercise(s, args[0], time.Now(), terminalNotifier{out: cmd.OutOrStdout()}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Workout deleted.")
			return nil
		})
	},
}

var exerciseTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List exercise templates (seeded and custom)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			for _, t := range service.ExerciseTemplates(s) {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-24s %-9s %.0f kcal/min\n", t.ID, t.Name, t.Category, t.CaloriesPerMinute)
			}
			return nil
		})
	},
}

var (
	customExerciseName     string
	customExerciseCalories float64
	customExerciseCategory string
)

var exerciseCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a custom exercise template",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			template, err := service.CreateCustomExercise(s, service.CreateCustomExerciseInput{
				Name:              customExerciseName,
				CaloriesPerMinute: customExerciseCalories,
				Category:          customExerciseCategory,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created template %d: %s (%s, %.1f kcal/min)\n", template.ID, template.Name, template.Category, template.CaloriesPerMinute)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	exerciseCmd.AddCommand(exerciseTemplatesCmd)
	exerciseCmd.AddCommand(exerciseCreateCmd)

	exerciseAddCmd.Flags().IntVar(&exerciseDuration, "duration", 30, "Duration in minutes")
	exerciseCreateCmd.Flags().StringVar(&customExerciseName, "name", "", "Template name")
	exerciseCreateCmd.Flags().Float64Var(&customExerciseCalories, "calories-per-minute", 0, "Calories burned per minute")
	exerciseCreateCmd.Flags().StringVar(&customExerciseCategory, "category", "cardio", "Category (cardio, strength, mobility, sports)")
}
