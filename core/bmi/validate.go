package bmi

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sanatos/backend/core"
)

// Physiologically plausible bounds.
const (
	MaxWeightKg = 500
	MaxHeightCm = 250
	MinAgeYears = 2
	MaxAgeYears = 18
)

var (
	// errors
	ErrWeightOutOfRange    = errors.New("Greutatea trebuie să fie între 1 și 500 kg")
	ErrHeightOutOfRange    = errors.New("Înălțimea trebuie să fie între 1 și 250 cm")
	ErrAgeOutOfRange       = errors.New("Vârsta trebuie să fie între 2 și 18 ani")
	ErrAgeRequired         = errors.New("Introduceți vârsta sau data nașterii")
	ErrGenderInvalid       = errors.New("Selectați sexul copilului")
	ErrMeasuredBeforeBirth = errors.New("Data măsurătorii nu poate fi înaintea datei nașterii")
	ErrBirthDateRequired   = errors.New("Introduceți data nașterii")
	ErrDateFormat          = errors.New("Data trebuie să fie în formatul AAAA-LL-ZZ")
)

// Validate rejects implausible measurements before any calculation runs.
// The age is checked only when provided. Checks run weight, height then age,
// and only the first failure is reported.
// The returned error is a *core.ValidationError whose message is meant for the end user.
func Validate(weightKg, heightCm float64, ageYears ...float64) error {
	if !inRange(weightKg, MaxWeightKg) {
		return newFieldError("weight_kg", ErrWeightOutOfRange)
	}
	if !inRange(heightCm, MaxHeightCm) {
		return newFieldError("height_cm", ErrHeightOutOfRange)
	}
	if len(ageYears) > 0 {
		return validateAge(ageYears[0])
	}
	return nil
}

func validateAge(ageYears float64) error {
	if !isFinite(ageYears) || ageYears < MinAgeYears || ageYears > MaxAgeYears {
		return newFieldError("age_years", ErrAgeOutOfRange)
	}
	return nil
}

// inRange checks that v lies in (0, max].
func inRange(v, max float64) bool {
	return isFinite(v) && v > 0 && v <= max
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func newFieldError(field string, err error) error {
	return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
}
