package bmi

import "time"

// NowFunc returns the measurement date used when none is provided.
var NowFunc = time.Now // mockable

// Age is a calendar age.
type Age struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}

// Fractional returns the age in years, eg. 8 years 6 months is 8.5.
func (a Age) Fractional() float64 {
	return float64(a.Years) + float64(a.Months)/12
}

// ResolveAge returns the calendar age at measured of someone born on birth.
// A month is only counted once its anniversary day is reached; month lengths are ignored,
// so Jan 31 -> Feb 28 counts as 0 months.
// measured must not be before birth: the result is negative otherwise.
func ResolveAge(birth, measured time.Time) Age {
	years := measured.Year() - birth.Year()
	months := int(measured.Month()) - int(birth.Month())
	if months < 0 {
		years--
		months += 12
	}
	if measured.Day() < birth.Day() {
		months--
		if months < 0 {
			years--
			months += 12
		}
	}
	return Age{Years: years, Months: months}
}
