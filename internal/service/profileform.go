package service

import (
	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

// CalcMode is the per-field auto-calculation state. A field starts in Auto
// and flips to Manual permanently on the first direct user write; derived
// recomputes never flip it.
type CalcMode int

const (
	CalcAuto CalcMode = iota
	CalcManual
)

type FormMode int

const (
	// FormSetup is first-run onboarding: no prior profile, submit always
	// allowed.
	FormSetup FormMode = iota
	// FormEdit tracks changes against the existing profile and computes a
	// live preview.
	FormEdit
)

// ProfileForm orchestrates validation and the calculators to turn raw form
// fields into a committed profile.
type ProfileForm struct {
	mode FormMode

	Gender       string
	Age          int
	HeightCm     float64
	WeightKg     float64
	GoalWeightKg float64
	Activity     string
	Goal         string
	WaterGoalMl  int

	goalWeightCalc CalcMode
	waterGoalCalc  CalcMode

	snapshot model.Profile
	errors   map[string]string
}

// NewProfileForm builds a form in setup mode (initial == nil) or edit mode.
// Both goal weight and water goal start auto-calculated in either mode, so a
// later change to height, weight, activity, or goal refreshes them until the
// user writes the field directly.
func NewProfileForm(initial *model.Profile) *ProfileForm {
	f := &ProfileForm{
		mode:         FormSetup,
		Gender:       model.GenderMale,
		Age:          25,
		HeightCm:     170,
		WeightKg:     70,
		GoalWeightKg: 70,
		Activity:     model.ActivityModerate,
		Goal:         model.GoalMaintain,
		errors:       map[string]string{},
	}
	if initial != nil {
		f.mode = FormEdit
		f.Gender = initial.Gender
		f.Age = initial.Age
		f.HeightCm = initial.HeightCm
		f.WeightKg = initial.WeightKg
		f.GoalWeightKg = initial.GoalWeightKg
		f.Activity = initial.Activity
		f.Goal = initial.Goal
		f.WaterGoalMl = initial.WaterGoalMl
		f.snapshot = *initial
	}
	f.recalcDerived()
	return f
}

func (f *ProfileForm) Mode() FormMode {
	return f.mode
}

func (f *ProfileForm) SetGender(gender string) {
	f.Gender = gender
}

func (f *ProfileForm) SetAge(age int) {
	f.Age = age
	f.liveValidate(FieldAge, float64(age))
}

func (f *ProfileForm) SetHeight(heightCm float64) {
	f.HeightCm = heightCm
	f.liveValidate(FieldHeight, heightCm)
	f.recalcDerived()
}

func (f *ProfileForm) SetWeight(weightKg float64) {
	f.WeightKg = weightKg
	f.liveValidate(FieldWeight, weightKg)
	f.recalcDerived()
}

// SetGoalWeight is a direct user write: it disables goal-weight
// auto-calculation for the rest of the form's life.
func (f *ProfileForm) SetGoalWeight(goalWeightKg float64) {
	f.goalWeightCalc = CalcManual
	f.GoalWeightKg = goalWeightKg
	f.liveValidate(FieldGoalWeight, goalWeightKg)
}

func (f *ProfileForm) SetActivity(activity string) {
	f.Activity = activity
	f.recalcDerived()
}

func (f *ProfileForm) SetGoal(goal string) {
	f.Goal = goal
	f.recalcDerived()
}

// SetWaterGoal likewise pins the water goal to the user's value.
func (f *ProfileForm) SetWaterGoal(ml int) {
	f.waterGoalCalc = CalcManual
	f.WaterGoalMl = ml
}

// recalcDerived overwrites the auto-calculated fields from the current
// draft. Invalid drafts are skipped silently; live validation already owns
// the error reporting.
func (f *ProfileForm) recalcDerived() {
	if f.goalWeightCalc == CalcAuto {
		if recommended, err := CalculateRecommendedGoalWeight(f.HeightCm, f.WeightKg, f.Goal); err == nil {
			f.GoalWeightKg = recommended
		}
	}
	if f.waterGoalCalc == CalcAuto {
		if recommended, err := CalculateRecommendedWaterIntake(f.WeightKg, f.Activity); err == nil {
			f.WaterGoalMl = recommended
		}
	}
}

func (f *ProfileForm) liveValidate(field string, value float64) {
	result := ValidateInputField(field, value)
	if result.Valid {
		delete(f.errors, field)
	} else {
		f.errors[field] = result.Error
	}
}

// Errors returns the current field-level validation messages.
func (f *ProfileForm) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// adjustedGoal classifies the draft by comparing goal weight to weight. It
// can differ from the stored goal until submit.
func (f *ProfileForm) adjustedGoal() string {
	switch {
	case f.GoalWeightKg < f.WeightKg:
		return model.GoalLose
	case f.GoalWeightKg > f.WeightKg:
		return model.GoalGain
	default:
		return model.GoalMaintain
	}
}

type ProfilePreview struct {
	BMR          float64
	Calories     int
	Macros       model.Macros
	CurrentBMI   float64
	GoalBMI      float64
	AdjustedGoal string
}

// Preview recomputes the derived numbers for the current draft. Only edit
// mode shows a preview; setup returns false, as does any draft that does not
// validate yet.
func (f *ProfileForm) Preview() (ProfilePreview, bool) {
	if f.mode != FormEdit {
		return ProfilePreview{}, false
	}
	adjusted := f.adjustedGoal()
	bmr, err := CalculateBMR(f.Gender, f.Age, f.HeightCm, f.WeightKg)
	if err != nil {
		return ProfilePreview{}, false
	}
	calories, err := CalculateDailyCalories(bmr, f.Activity, adjusted)
	if err != nil {
		return ProfilePreview{}, false
	}
	macros, err := CalculateMacros(calories, f.WeightKg)
	if err != nil {
		return ProfilePreview{}, false
	}
	currentBMI, err := CalculateBMI(f.WeightKg, f.HeightCm)
	if err != nil {
		return ProfilePreview{}, false
	}
	goalBMI, err := CalculateBMI(f.GoalWeightKg, f.HeightCm)
	if err != nil {
		return ProfilePreview{}, false
	}
	return ProfilePreview{
		BMR:          bmr,
		Calories:     calories,
		Macros:       macros,
		CurrentBMI:   currentBMI,
		GoalBMI:      goalBMI,
		AdjustedGoal: adjusted,
	}, true
}

// HasChanges reports whether any field differs from the construction
// snapshot. Setup mode always allows submit.
func (f *ProfileForm) HasChanges() bool {
	if f.mode != FormEdit {
		return true
	}
	return f.Gender != f.snapshot.Gender ||
		f.Age != f.snapshot.Age ||
		f.HeightCm != f.snapshot.HeightCm ||
		f.WeightKg != f.snapshot.WeightKg ||
		f.GoalWeightKg != f.snapshot.GoalWeightKg ||
		f.Activity != f.snapshot.Activity ||
		f.Goal != f.snapshot.Goal
}

// Submit re-validates every numeric field strictly. On failure it returns
// the field error map and no profile; on success it resolves the adjusted
// goal and derived values into a complete profile ready to commit.
func (f *ProfileForm) Submit() (model.Profile, map[string]string, error) {
	errors := map[string]string{}
	for field, value := range map[string]float64{
		FieldAge:        float64(f.Age),
		FieldHeight:     f.HeightCm,
		FieldWeight:     f.WeightKg,
		FieldGoalWeight: f.GoalWeightKg,
	} {
		if result := ValidateInputFieldStrict(field, value); !result.Valid {
			errors[field] = result.Error
		}
	}
	if len(errors) > 0 {
		f.errors = errors
		return model.Profile{}, errors, validationErrorf("profile has invalid fields")
	}

	adjusted := f.adjustedGoal()
	bmr, err := CalculateBMR(f.Gender, f.Age, f.HeightCm, f.WeightKg)
	if err != nil {
		return model.Profile{}, nil, err
	}
	calories, err := CalculateDailyCalories(bmr, f.Activity, adjusted)
	if err != nil {
		return model.Profile{}, nil, err
	}
	macros, err := CalculateMacros(calories, f.WeightKg)
	if err != nil {
		return model.Profile{}, nil, err
	}

	waterGoal := f.WaterGoalMl
	if waterGoal == 0 {
		if recommended, recErr := CalculateRecommendedWaterIntake(f.WeightKg, f.Activity); recErr == nil {
			waterGoal = recommended
		}
	}

	return model.Profile{
		Gender:        f.Gender,
		Age:           f.Age,
		HeightCm:      f.HeightCm,
		WeightKg:      f.WeightKg,
		GoalWeightKg:  f.GoalWeightKg,
		Activity:      f.Activity,
		Goal:          adjusted,
		WaterGoalMl:   waterGoal,
		DailyCalories: calories,
		Macros:        macros,
	}, nil, nil
}

// CurrentProfile returns the committed profile or nil before onboarding.
func CurrentProfile(s *store.Store) *model.Profile {
	profile := store.Read(s, store.KeyProfile, (*model.Profile)(nil))
	return profile
}

// CommitProfile replaces the stored profile wholesale and keeps the water
// goal key in sync with it.
func CommitProfile(s *store.Store, profile model.Profile) error {
	if err := store.Write(s, store.KeyProfile, &profile); err != nil {
		return err
	}
	return store.Write(s, store.KeyWaterGoal, profile.WaterGoalMl)
}
