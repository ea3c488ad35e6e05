package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

type LogExerciseInput struct {
	TemplateID  int64
	DurationMin int
	LoggedAt    time.Time
}

// LogExercise records a workout from a template. Calories burned are the
// template's per-minute rate times the duration, rounded.
func LogExercise(s *store.Store, in LogExerciseInput, now time.Time, notifier Notifier) (model.Exercise, error) {
	if in.DurationMin <= 0 {
		return model.Exercise{}, fmt.Errorf("duration must be > 0 minutes")
	}
	template, ok := exerciseTemplateByID(s, in.TemplateID)
	if !ok {
		return model.Exercise{}, fmt.Errorf("exercise template %d not found", in.TemplateID)
	}

	loggedAt := in.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = now
	}
	exercise := model.Exercise{
		ID:             uuid.NewString(),
		Name:           template.Name,
		CaloriesBurned: int(math.Round(template.CaloriesPerMinute * float64(in.DurationMin))),
		DurationMin:    in.DurationMin,
		LoggedAt:       loggedAt.Format(time.RFC3339),
		Category:       template.Category,
		IsCustom:       isCustomTemplate(s, template.ID),
	}

	exercises := store.Read(s, store.KeyDailyExercises, []model.Exercise(nil))
	exercises = append(exercises, exercise)
	if err := store.Write(s, store.KeyDailyExercises, exercises); err != nil {
		return model.Exercise{}, err
	}
	if err := Recompute(s, now, notifier); err != nil {
		return model.Exercise{}, err
	}
	return exercise, nil
}

func DeleteExercise(s *store.Store, id string, now time.Time, notifier Notifier) error {
	exercises := store.Read(s, store.KeyDailyExercises, []model.Exercise(nil))
	kept := exercises[:0]
	found := false
	for _, e := range exercises {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("exercise %s not found", id)
	}
	if err := store.Write(s, store.KeyDailyExercises, kept); err != nil {
		return err
	}
	return Recompute(s, now, notifier)
}

func TodayExercises(s *store.Store) []model.Exercise {
	return store.Read(s, store.KeyDailyExercises, []model.Exercise(nil))
}

type CreateCustomExerciseInput struct {
	Name              string
	CaloriesPerMinute float64
	Category          string
}

var exerciseCategories = map[string]bool{
	model.ExerciseCategoryCardio:   true,
	model.ExerciseCategoryStrength: true,
	model.ExerciseCategoryMobility: true,
	model.ExerciseCategorySports:   true,
}

// Custom template ids start above the seeded range so the two namespaces
// never collide.
const customTemplateIDBase = 1000

func CreateCustomExercise(s *store.Store, in CreateCustomExerciseInput) (model.ExerciseTemplate, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.ExerciseTemplate{}, fmt.Errorf("exercise name is required")
	}
	if in.CaloriesPerMinute <= 0 {
		return model.ExerciseTemplate{}, fmt.Errorf("calories per minute must be > 0")
	}
	category := strings.ToLower(strings.TrimSpace(in.Category))
	if !exerciseCategories[category] {
		return model.ExerciseTemplate{}, fmt.Errorf("invalid category %q (use cardio, strength, mobility, or sports)", in.Category)
	}

	custom := store.Read(s, store.KeyCustomExercises, []model.ExerciseTemplate(nil))
	nextID := int64(customTemplateIDBase)
	for _, t := range custom {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	template := model.ExerciseTemplate{
		ID:                nextID,
		Name:              name,
		CaloriesPerMinute: in.CaloriesPerMinute,
		Category:          category,
	}
	if err := store.Write(s, store.KeyCustomExercises, append(custom, template)); err != nil {
		return model.ExerciseTemplate{}, err
	}
	return template, nil
}

func exerciseTemplateByID(s *store.Store, id int64) (model.ExerciseTemplate, bool) {
	for _, t := range ExerciseTemplates(s) {
		if t.ID == id {
			return t, true
		}
	}
	return model.ExerciseTemplate{}, false
}

func isCustomTemplate(s *store.Store, id int64) bool {
	for _, t := range store.Read(s, store.KeyCustomExercises, []model.ExerciseTemplate(nil)) {
		if t.ID == id {
			return true
		}
	}
	return false
}
