package main

import (
	"math"

	"github.com/pkg/errors"
)

const (
	unitMetric   = "metric"
	unitImperial = "imperial"

	kgPerLb = 0.45359237
	cmPerIn = 2.54
)

var errUnknownUnit = errors.New("unitatea trebuie să fie metric sau imperial")

// toMetric converts weight and height given in unit to kilograms and centimeters.
func toMetric(unit string, weight, height float64) (weightKg, heightCm float64, err error) {
	switch unit {
	case unitMetric:
		return weight, height, nil
	case unitImperial:
		return weight * kgPerLb, height * cmPerIn, nil
	default:
		return 0, 0, errors.Wrapf(errUnknownUnit, "%q", unit)
	}
}

// weightIn converts kg back to the weight unit of unit, rounded to 1 decimal.
func weightIn(unit string, kg float64) float64 {
	if unit == unitImperial {
		kg /= kgPerLb
	}
	return math.Round(kg*10) / 10
}

func weightSymbol(unit string) string {
	if unit == unitImperial {
		return "lb"
	}
	return "kg"
}
