package service

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError marks user-correctable input problems. Callers surface the
// message as a field-level error instead of failing the whole operation.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type rangeConstraint struct {
	min float64
	max float64
	// unit shows up in user-facing messages ("cm", "kg", "kcal", "years").
	unit string
}

var (
	ageConstraint        = rangeConstraint{min: 15, max: 120, unit: "years"}
	heightConstraint     = rangeConstraint{min: 100, max: 250, unit: "cm"}
	weightConstraint     = rangeConstraint{min: 30, max: 300, unit: "kg"}
	goalWeightConstraint = rangeConstraint{min: 30, max: 300, unit: "kg"}
	caloriesConstraint   = rangeConstraint{min: 500, max: 10000, unit: "kcal"}
)

// ValidateOptions controls range checking. AllowPartial skips the minimum
// check for positive below-min values, so a user typing "1" en route to "15"
// is not flagged on every keystroke. The maximum check always applies.
type ValidateOptions struct {
	AllowPartial bool
}

func validateRange(name string, value float64, c rangeConstraint, opts ValidateOptions) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return validationErrorf("%s is not a valid number", name)
	}
	if opts.AllowPartial && value > 0 && value < c.min {
		return nil
	}
	if value < c.min {
		return validationErrorf("%s must be at least %g %s", name, c.min, c.unit)
	}
	if value > c.max {
		return validationErrorf("%s must be at most %g %s", name, c.max, c.unit)
	}
	return nil
}

func ValidateAge(age float64, opts ValidateOptions) error {
	return validateRange("age", age, ageConstraint, opts)
}

func ValidateHeight(height float64, opts ValidateOptions) error {
	return validateRange("height", height, heightConstraint, opts)
}

func ValidateWeight(weight float64, opts ValidateOptions) error {
	return validateRange("weight", weight, weightConstraint, opts)
}

func ValidateGoalWeight(goalWeight float64, opts ValidateOptions) error {
	return validateRange("goal weight", goalWeight, goalWeightConstraint, opts)
}

func ValidateCalories(calories float64, opts ValidateOptions) error {
	return validateRange("calories", calories, caloriesConstraint, opts)
}

// Field names accepted by ValidateInputField and ValidateInputFieldStrict.
const (
	FieldAge        = "age"
	FieldHeight     = "height"
	FieldWeight     = "weight"
	FieldGoalWeight = "goalWeight"
	FieldCalories   = "calories"
)

type FieldResult struct {
	Valid bool
	Error string
}

func validateField(field string, value float64, opts ValidateOptions) error {
	switch field {
	case FieldAge:
		return ValidateAge(value, opts)
	case FieldHeight:
		return ValidateHeight(value, opts)
	case FieldWeight:
		return ValidateWeight(value, opts)
	case FieldGoalWeight:
		return ValidateGoalWeight(value, opts)
	case FieldCalories:
		return ValidateCalories(value, opts)
	default:
		return validationErrorf("unknown field %q", field)
	}
}

func fieldResult(err error) FieldResult {
	if err == nil {
		return FieldResult{Valid: true}
	}
	if IsValidationError(err) {
		return FieldResult{Valid: false, Error: err.Error()}
	}
	return FieldResult{Valid: false, Error: "invalid value"}
}

// ValidateInputField is the live-typing variant: partial values pass, and the
// result never carries an error the user cannot act on.
func ValidateInputField(field string, value float64) FieldResult {
	return fieldResult(validateField(field, value, ValidateOptions{AllowPartial: true}))
}

// ValidateInputFieldStrict is the blur/submit variant with full range checks.
func ValidateInputFieldStrict(field string, value float64) FieldResult {
	return fieldResult(validateField(field, value, ValidateOptions{}))
}
