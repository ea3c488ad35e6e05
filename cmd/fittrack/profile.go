package fittrack

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/service"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile and derived targets",
}

var (
	profileGender     string
	profileAge        int
	profileHeight     float64
	profileWeight     float64
	profileGoal       string
	profileGoalWeight float64
	profileActivity   string
	profileWaterGoal  int
)

var profileSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the profile (first run)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if service.CurrentProfile(s) != nil {
				return fmt.Errorf("profile already exists, use 'fittrack profile edit'")
			}
			form := service.NewProfileForm(nil)
			applyProfileFlags(cmd, form)
			return submitProfileForm(cmd, s, form)
		})
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the profile and recompute targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			current := service.CurrentProfile(s)
			if current == nil {
				return fmt.Errorf("no profile yet, use 'fittrack profile setup'")
			}
			form := service.NewProfileForm(current)
			applyProfileFlags(cmd, form)
			if !form.HasChanges() {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
				return nil
			}
			if preview, ok := form.Preview(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Preview: BMR %.1f | %d kcal/day | P %dg C %dg F %dg | BMI %.1f -> %.1f (%s)\n",
					preview.BMR, preview.Calories,
					preview.Macros.Protein, preview.Macros.Carbs, preview.Macros.Fat,
					preview.CurrentBMI, preview.GoalBMI, preview.AdjustedGoal)
			}
			return submitProfileForm(cmd, s, form)
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the committed profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			profile := service.CurrentProfile(s)
			if profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run 'fittrack profile setup'.")
				return nil
			}
			bmi, err := service.CalculateBMI(profile.WeightKg, profile.HeightCm)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Gender: %s | Age: %d\n", profile.Gender, profile.Age)
			fmt.Fprintf(out, "Height: %.0f cm | Weight: %.1f kg | Goal weight: %.1f kg\n", profile.HeightCm, profile.WeightKg, profile.GoalWeightKg)
			fmt.Fprintf(out, "Activity: %s | Goal: %s | BMI: %.1f\n", profile.Activity, profile.Goal, bmi)
			fmt.Fprintf(out, "Daily target: %d kcal | P %dg C %dg F %dg\n", profile.DailyCalories, profile.Macros.Protein, profile.Macros.Carbs, profile.Macros.Fat)
			fmt.Fprintf(out, "Water goal: %d ml\n", profile.WaterGoalMl)
			return nil
		})
	},
}

func applyProfileFlags(cmd *cobra.Command, form *service.ProfileForm) {
	flags := cmd.Flags()
	if flags.Changed("gender") {
		form.SetGender(profileGender)
	}
	if flags.Changed("age") {
		form.SetAge(profileAge)
	}
	if flags.Changed("height") {
		form.SetHeight(profileHeight)
	}
	if flags.Changed("weight") {
		form.SetWeight(profileWeight)
	}
	if flags.Changed("activity") {
		form.SetActivity(profileActivity)
	}
	if flags.Changed("goal") {
		form.SetGoal(profileGoal)
	}
	// Explicit values pin the field; omitted flags leave auto-calculation on.
	if flags.Changed("goal-weight") {
		form.SetGoalWeight(profileGoalWeight)
	}
	if flags.Changed("water-goal") {
		form.SetWaterGoal(profileWaterGoal)
	}
}

func submitProfileForm(cmd *cobra.Command, s *store.Store, form *service.ProfileForm) error {
	profile, fieldErrors, err := form.Submit()
	if err != nil {
		if len(fieldErrors) > 0 {
			fields := make([]string, 0, len(fieldErrors))
			for field := range fieldErrors {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", field, fieldErrors[field])
			}
			return fmt.Errorf("profile not saved")
		}
		return err
	}
	if err := service.CommitProfile(s, profile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Profile saved. Daily target %d kcal (P %dg C %dg F %dg), water goal %d ml.\n",
		profile.DailyCalories, profile.Macros.Protein, profile.Macros.Carbs, profile.Macros.Fat, profile.WaterGoalMl)
	return nil
}

func addProfileFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&profileGender, "gender", "male", "Gender (male or female)")
	cmd.Flags().IntVar(&profileAge, "age", 25, "Age in years")
	cmd.Flags().Float64Var(&profileHeight, "height", 170, "Height in cm")
	cmd.Flags().Float64Var(&profileWeight, "weight", 70, "Weight in kg")
	cmd.Flags().StringVar(&profileActivity, "activity", "moderate", "Activity level (sedentary, light, moderate, active, veryActive)")
	cmd.Flags().StringVar(&profileGoal, "goal", "maintain", "Goal (lose, maintain, gain)")
	cmd.Flags().Float64Var(&profileGoalWeight, "goal-weight", 0, "Goal weight in kg (default: recommended)")
	cmd.Flags().IntVar(&profileWaterGoal, "water-goal", 0, "Water goal in ml (default: recommended)")
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetupCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(profileShowCmd)
	addProfileFieldFlags(profileSetupCmd)
	addProfileFieldFlags(profileEditCmd)
}
