package bmi

import "math"

// Pediatric category thresholds, applied to the rounded percentile.
const (
	UnderweightPercentileBelow = 5
	OverweightRiskPercentile   = 85
	ObesePercentile            = 95
)

var (
	percentileCategories = map[PediatricCategory]string{
		ChildUnderweight:     "Sub percentila 5",
		ChildNormal:          "Între percentilele 5 și 85",
		ChildOverweightRisk:  "Între percentilele 85 și 95",
		ChildOverweightObese: "Peste percentila 95",
	}

	// romanian needs gendered forms
	pediatricDescriptions = map[PediatricCategory]map[Gender]string{
		ChildUnderweight: {
			Male: "Băiatul are o greutate sub intervalul normal pentru vârsta și sexul său. " +
				"Vă recomandăm un consult la medicul pediatru.",
			Female: "Fata are o greutate sub intervalul normal pentru vârsta și sexul său. " +
				"Vă recomandăm un consult la medicul pediatru.",
		},
		ChildNormal: {
			Male:   "Băiatul are o greutate sănătoasă pentru vârsta și sexul său.",
			Female: "Fata are o greutate sănătoasă pentru vârsta și sexul său.",
		},
		ChildOverweightRisk: {
			Male: "Băiatul este expus riscului de supraponderalitate. " +
				"Încurajați o alimentație echilibrată și activitatea fizică zilnică.",
			Female: "Fata este expusă riscului de supraponderalitate. " +
				"Încurajați o alimentație echilibrată și activitatea fizică zilnică.",
		},
		ChildOverweightObese: {
			Male: "Băiatul este supraponderal sau obez pentru vârsta și sexul său. " +
				"Vă recomandăm un consult la medicul pediatru.",
			Female: "Fata este supraponderală sau obeză pentru vârsta și sexul său. " +
				"Vă recomandăm un consult la medicul pediatru.",
		},
	}

	ageGroups = []struct {
		below float64
		label string
	}{
		{6, "2-5 ani"},
		{12, "6-11 ani"},
		{math.Inf(1), "12-18 ani"},
	}
)

// ClassifyPediatric maps a percentile to its category.
func ClassifyPediatric(percentile int) PediatricCategory {
	switch {
	case percentile < UnderweightPercentileBelow:
		return ChildUnderweight
	case percentile < OverweightRiskPercentile:
		return ChildNormal
	case percentile < ObesePercentile:
		return ChildOverweightRisk
	default:
		return ChildOverweightObese
	}
}

// AgeGroup returns the display label of the age group ageYears belongs to.
func AgeGroup(ageYears float64) string {
	for _, grp := range ageGroups {
		if ageYears < grp.below {
			return grp.label
		}
	}
	return ageGroups[len(ageGroups)-1].label
}

// CalculatePediatric computes the BMI of a child and places it on the default growth reference.
// The input is expected to have passed Validate.
func CalculatePediatric(weightKg, heightCm, ageYears float64, gender Gender) PediatricResult {
	return calculatePediatric(DefaultTable, weightKg, heightCm, ageYears, gender)
}

func calculatePediatric(table *GrowthTable, weightKg, heightCm, ageYears float64, gender Gender) PediatricResult {
	bmi := Round(Compute(weightKg, heightCm))
	percentile := int(math.Round(table.Percentile(gender, ageYears*12, bmi)))
	cat := ClassifyPediatric(percentile)
	return PediatricResult{
		BMI:                bmi,
		Percentile:         percentile,
		Category:           cat,
		CategoryColor:      cat.Color(),
		PercentileCategory: percentileCategories[cat],
		AgeGroup:           AgeGroup(ageYears),
		AgeYears:           math.Round(ageYears*100) / 100,
		Description:        pediatricDescription(cat, gender),
	}
}

func pediatricDescription(cat PediatricCategory, gender Gender) string {
	if !gender.Valid() {
		gender = Male
	}
	return pediatricDescriptions[cat][gender]
}
