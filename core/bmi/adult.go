package bmi

import "math"

// Adult category thresholds, applied to the rounded BMI.
const (
	UnderweightBelow = 18.5
	OverweightFrom   = 25.0
	ObeseFrom        = 30.0

	healthyMax = 24.9
)

var (
	adultRisks = map[AdultCategory]RiskLevel{
		Subponderal:   RiskModerate,
		Normal:        RiskLow,
		Supraponderal: RiskModerate,
		Obezitate:     RiskHigh,
	}

	adultDescriptions = map[AdultCategory]string{
		Subponderal: "Greutatea ta este sub intervalul considerat sănătos. " +
			"Îți recomandăm să discuți cu un medic sau cu un nutriționist.",
		Normal: "Felicitări! Greutatea ta se încadrează în intervalul considerat sănătos. " +
			"Menține o alimentație echilibrată și mișcarea regulată.",
		Supraponderal: "Greutatea ta este peste intervalul considerat sănătos. " +
			"O alimentație echilibrată și activitatea fizică zilnică te pot ajuta.",
		Obezitate: "Greutatea ta indică obezitate, ceea ce crește riscul pentru numeroase afecțiuni. " +
			"Îți recomandăm un consult medical.",
	}
)

// Compute returns the unrounded BMI: weight(kg) / height(m)^2.
func Compute(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// Round rounds the BMI to one decimal, halves away from zero.
func Round(bmi float64) float64 {
	return math.Round(bmi*10) / 10
}

// ClassifyAdult maps an already rounded BMI to its category.
func ClassifyAdult(bmi float64) AdultCategory {
	switch {
	case bmi < UnderweightBelow:
		return Subponderal
	case bmi < OverweightFrom:
		return Normal
	case bmi < ObeseFrom:
		return Supraponderal
	default:
		return Obezitate
	}
}

// CalculateAdult computes and classifies the BMI of an adult.
// The input is expected to have passed Validate.
func CalculateAdult(weightKg, heightCm float64) AdultResult {
	bmi := Round(Compute(weightKg, heightCm))
	cat := ClassifyAdult(bmi)
	return AdultResult{
		BMI:           bmi,
		Category:      cat,
		CategoryColor: cat.Color(),
		Description:   adultDescriptions[cat],
		RiskLevel:     adultRisks[cat],
		HealthyWeight: HealthyWeight(heightCm),
	}
}

// HealthyWeight returns the weights classified as Normal for the given height.
func HealthyWeight(heightCm float64) WeightRange {
	m := heightCm / 100
	return WeightRange{
		MinKg: Round(UnderweightBelow * m * m),
		MaxKg: Round(healthyMax * m * m),
	}
}
