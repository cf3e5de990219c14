package bmi

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/sanatos/backend/core"
)

var (
	genderTag  = "gender"
	genderText = "sexul trebuie să fie male sau female"

	ageOrBirthDateTag  = "age_or_birth_date"
	ageOrBirthDateText = "introduceți vârsta sau data nașterii"

	ageXorBirthDateTag  = "age_xor_birth_date"
	ageXorBirthDateText = "introduceți fie vârsta, fie data nașterii, nu amândouă"
)

// InitValidators registers the request validations of this package.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(genderTag, genderValidation)
	core.RegisterCustomTranslation(validate, translator, genderTag, genderText)

	validate.RegisterStructValidation(pediatricStructValidation, PediatricInput{})
	core.RegisterCustomTranslation(validate, translator, ageOrBirthDateTag, ageOrBirthDateText)
	core.RegisterCustomTranslation(validate, translator, ageXorBirthDateTag, ageXorBirthDateText)
}

// Custom Validators

// genderValidation checks that the gender is one of Genders
func genderValidation(fl validator.FieldLevel) bool {
	switch g := fl.Field().Interface().(type) {
	case Gender:
		return g.Valid()
	case string:
		return Gender(g).Valid()
	default:
		return false
	}
}

// pediatricStructValidation checks that exactly one of AgeYears or BirthDate is provided
func pediatricStructValidation(sl validator.StructLevel) {
	in, ok := sl.Current().Interface().(PediatricInput)
	if !ok {
		return
	}
	switch {
	case in.AgeYears == nil && in.BirthDate == nil:
		sl.ReportError(in.AgeYears, "age_years", "AgeYears", ageOrBirthDateTag, "")
		sl.ReportError(in.BirthDate, "birth_date", "BirthDate", ageOrBirthDateTag, "")
	case in.AgeYears != nil && in.BirthDate != nil:
		sl.ReportError(in.AgeYears, "age_years", "AgeYears", ageXorBirthDateTag, "")
		sl.ReportError(in.BirthDate, "birth_date", "BirthDate", ageXorBirthDateTag, "")
	}
}
