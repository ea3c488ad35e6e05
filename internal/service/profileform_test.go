package service_test

import (
	"testing"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/service"
)

func TestProfileFormSetupDefaults(t *testing.T) {
	t.Parallel()

	form := service.NewProfileForm(nil)
	if form.Mode() != service.FormSetup {
		t.Fatalf("expected setup mode")
	}
	// 70 kg at 170 cm sits in the healthy band, so maintain keeps the
	// current weight as the goal.
	if form.GoalWeightKg != 70 {
		t.Fatalf("expected auto goal weight 70, got %g", form.GoalWeightKg)
	}
	if form.WaterGoalMl != 3000 {
		t.Fatalf("expected auto water goal 3000, got %d", form.WaterGoalMl)
	}
	if !form.HasChanges() {
		t.Fatalf("setup mode must always allow submit")
	}
}

func TestProfileFormAutoRecalculation(t *testing.T) {
	t.Parallel()

	form := service.NewProfileForm(nil)
	form.SetGoal(model.GoalLose)
	// Healthy BMI, lose: gentle 5% cut from 70 kg.
	if form.GoalWeightKg != 67 {
		t.Fatalf("expected recalculated goal weight 67, got %g", form.GoalWeightKg)
	}

	// A direct write pins the field; later weight edits leave it alone but
	// still refresh the water goal.
	form.SetGoalWeight(64)
	form.SetWeight(80)
	if form.GoalWeightKg != 64 {
		t.Fatalf("expected pinned goal weight 64, got %g", form.GoalWeightKg)
	}
	if form.WaterGoalMl != 3250 {
		t.Fatalf("expected water goal 3250 for 80 kg, got %d", form.WaterGoalMl)
	}
}

func TestProfileFormLiveErrors(t *testing.T) {
	t.Parallel()

	form := service.NewProfileForm(nil)
	form.SetAge(1)
	if errs := form.Errors(); len(errs) != 0 {
		t.Fatalf("partial age must not error live, got %v", errs)
	}
	form.SetHeight(300)
	errs := form.Errors()
	if errs[service.FieldHeight] == "" {
		t.Fatalf("expected live error for height 300, got %v", errs)
	}
	form.SetHeight(180)
	if errs := form.Errors(); errs[service.FieldHeight] != "" {
		t.Fatalf("expected height error cleared, got %v", errs)
	}
}

func TestProfileFormEditTracksChanges(t *testing.T) {
	t.Parallel()

	// Stored goals match the recommendations for these measurements, so the
	// construction-time recalculation leaves them in place.
	initial := &model.Profile{
		Gender:       model.GenderMale,
		Age:          30,
		HeightCm:     180,
		WeightKg:     80,
		GoalWeightKg: 76,
		Activity:     model.ActivityModerate,
		Goal:         model.GoalLose,
		WaterGoalMl:  3250,
	}
	form := service.NewProfileForm(initial)
	if form.Mode() != service.FormEdit {
		t.Fatalf("expected edit mode")
	}
	if form.HasChanges() {
		t.Fatalf("untouched edit form must report no changes")
	}
	if form.GoalWeightKg != 76 || form.WaterGoalMl != 3250 {
		t.Fatalf("unexpected derived goals, got %g / %d", form.GoalWeightKg, form.WaterGoalMl)
	}

	form.SetWeight(78)
	if !form.HasChanges() {
		t.Fatalf("expected changes after weight edit")
	}

	preview, ok := form.Preview()
	if !ok {
		t.Fatalf("expected a preview for a valid edit draft")
	}
	if preview.AdjustedGoal != model.GoalLose {
		t.Fatalf("expected adjusted goal lose (goal weight below weight), got %s", preview.AdjustedGoal)
	}
	if preview.Calories < 1200 {
		t.Fatalf("preview calories below safety floor: %d", preview.Calories)
	}
}

func TestProfileFormEditRecalculatesDerivedGoals(t *testing.T) {
	t.Parallel()

	initial := &model.Profile{
		Gender:       model.GenderMale,
		Age:          30,
		HeightCm:     180,
		WeightKg:     80,
		GoalWeightKg: 75,
		Activity:     model.ActivityModerate,
		Goal:         model.GoalLose,
		WaterGoalMl:  3250,
	}
	form := service.NewProfileForm(initial)

	// Auto-calculation stays on in edit mode until the user writes the
	// field: a big weight change refreshes both recommendations.
	form.SetWeight(110)
	if form.GoalWeightKg != 78 {
		t.Fatalf("expected goal weight recalculated to 78 for 110 kg, got %g", form.GoalWeightKg)
	}
	if form.WaterGoalMl != 4500 {
		t.Fatalf("expected water goal recalculated to 4500 for 110 kg, got %d", form.WaterGoalMl)
	}

	// A direct write pins the field even in edit mode.
	form.SetGoalWeight(100)
	form.SetWeight(90)
	if form.GoalWeightKg != 100 {
		t.Fatalf("expected pinned goal weight 100, got %g", form.GoalWeightKg)
	}
}

func TestProfileFormPreviewOnlyInEditMode(t *testing.T) {
	t.Parallel()

	form := service.NewProfileForm(nil)
	if _, ok := form.Preview(); ok {
		t.Fatalf("setup mode must not produce a preview")
	}
}

func TestProfileFormSubmitValidatesStrictly(t *testing.T) {
	t.Parallel()

	form := service.NewProfileForm(nil)
	form.SetAge(1) // passes live validation, must fail submit
	_, fieldErrors, err := form.Submit()
	if err == nil {
		t.Fatalf("expected submit to fail")
	}
	if !service.IsValidationError(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if fieldErrors[service.FieldAge] == "" {
		t.Fatalf("expected an age field error, got %v", fieldErrors)
	}
}

func TestProfileFormSubmitDerivesProfile(t *testing.T) {
	t.Parallel()

	form := service.NewProfileForm(nil)
	profile, fieldErrors, err := form.Submit()
	if err != nil {
		t.Fatalf("submit: %v (%v)", err, fieldErrors)
	}
	// Defaults: male, 25, 170 cm, 70 kg, moderate, goal weight 70 -> maintain.
	if profile.Goal != model.GoalMaintain {
		t.Fatalf("expected adjusted goal maintain, got %s", profile.Goal)
	}
	if profile.DailyCalories != 2546 {
		t.Fatalf("expected 2546 kcal, got %d", profile.DailyCalories)
	}
	want := model.Macros{Protein: 140, Carbs: 337, Fat: 71}
	if profile.Macros != want {
		t.Fatalf("expected macros %+v, got %+v", want, profile.Macros)
	}
	if profile.WaterGoalMl != 3000 {
		t.Fatalf("expected water goal 3000, got %d", profile.WaterGoalMl)
	}
}

func TestProfileFormSubmitAdjustsGoalFromWeights(t *testing.T) {
	t.Parallel()

	form := service.NewProfileForm(nil)
	form.SetGoal(model.GoalMaintain)
	form.SetGoalWeight(80) // above current 70 kg
	profile, _, err := form.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if profile.Goal != model.GoalGain {
		t.Fatalf("expected goal adjusted to gain, got %s", profile.Goal)
	}
}

func TestCommitProfileSyncsWaterGoal(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if got := service.CurrentProfile(s); got != nil {
		t.Fatalf("expected no profile before onboarding, got %+v", got)
	}

	form := service.NewProfileForm(nil)
	profile, _, err := form.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := service.CommitProfile(s, profile); err != nil {
		t.Fatalf("commit: %v", err)
	}

	stored := service.CurrentProfile(s)
	if stored == nil || stored.DailyCalories != profile.DailyCalories {
		t.Fatalf("expected committed profile back, got %+v", stored)
	}
	if goal := service.WaterGoal(s); goal != profile.WaterGoalMl {
		t.Fatalf("expected water goal synced to %d, got %d", profile.WaterGoalMl, goal)
	}
}
