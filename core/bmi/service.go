package bmi

import "time"

// ServiceInterface is the calculator exposed to the transport layers.
type ServiceInterface interface {
	Adult(in AdultInput) (AdultResult, error)
	Pediatric(in PediatricInput) (PediatricResult, error)
	Age(birth time.Time, measured *time.Time) (Age, error)
	Table() *GrowthTable
}

// Service validates user input and runs the matching engine.
type Service struct {
	table *GrowthTable
}

var _ ServiceInterface = (*Service)(nil)

// NewService returns a Service using the given growth reference, or DefaultTable when nil.
func NewService(table *GrowthTable) *Service {
	if table == nil {
		table = DefaultTable
	}
	return &Service{table: table}
}

// Table returns the growth reference used for children.
func (svc *Service) Table() *GrowthTable {
	return svc.table
}

func (svc *Service) Adult(in AdultInput) (AdultResult, error) {
	if err := Validate(in.WeightKg, in.HeightCm); err != nil {
		return AdultResult{}, err
	}
	return CalculateAdult(in.WeightKg, in.HeightCm), nil
}

func (svc *Service) Pediatric(in PediatricInput) (PediatricResult, error) {
	if err := Validate(in.WeightKg, in.HeightCm); err != nil {
		return PediatricResult{}, err
	}
	if !in.Gender.Valid() {
		return PediatricResult{}, newFieldError("gender", ErrGenderInvalid)
	}
	age, err := svc.inputAge(in)
	if err != nil {
		return PediatricResult{}, err
	}
	if err := validateAge(age); err != nil {
		return PediatricResult{}, err
	}
	return calculatePediatric(svc.table, in.WeightKg, in.HeightCm, age, in.Gender), nil
}

// Age resolves the age at measured of someone born on birth.
// measured defaults to today.
func (svc *Service) Age(birth time.Time, measured *time.Time) (Age, error) {
	at := NowFunc()
	if measured != nil {
		at = *measured
	}
	if dateOf(at).Before(dateOf(birth)) {
		return Age{}, newFieldError("measured_at", ErrMeasuredBeforeBirth)
	}
	return ResolveAge(birth, at), nil
}

func (svc *Service) inputAge(in PediatricInput) (float64, error) {
	if in.AgeYears != nil {
		return *in.AgeYears, nil
	}
	if in.BirthDate == nil {
		return 0, newFieldError("age_years", ErrAgeRequired)
	}
	var measured *time.Time
	if in.MeasuredAt != nil {
		measured = &in.MeasuredAt.Time
	}
	age, err := svc.Age(in.BirthDate.Time, measured)
	if err != nil {
		return 0, err
	}
	return age.Fractional(), nil
}

// dateOf drops the time of day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
