// Package bmi computes and classifies the Body Mass Index of adults and children.
// The engines are pure: results depend only on their inputs and the read-only
// growth reference table. Service adds input validation and date handling on top.
package bmi

import (
	"strings"
	"time"
)

// Genders
const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Adult categories
const (
	Subponderal   AdultCategory = "Subponderal"
	Normal        AdultCategory = "Normal"
	Supraponderal AdultCategory = "Supraponderal"
	Obezitate     AdultCategory = "Obezitate"
)

// Risk levels
const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Pediatric categories
const (
	ChildUnderweight     PediatricCategory = "Subponderal"
	ChildNormal          PediatricCategory = "Greutate normală"
	ChildOverweightRisk  PediatricCategory = "Risc de supraponderalitate"
	ChildOverweightObese PediatricCategory = "Supraponderal/Obezitate"
)

var (
	AdultCategories     = []AdultCategory{Subponderal, Normal, Supraponderal, Obezitate}
	RiskLevels          = []RiskLevel{RiskLow, RiskModerate, RiskHigh}
	PediatricCategories = []PediatricCategory{ChildUnderweight, ChildNormal, ChildOverweightRisk, ChildOverweightObese}
	Genders             = []Gender{Male, Female}
)

type (
	Gender            string
	AdultCategory     string
	RiskLevel         string
	PediatricCategory string
)

func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// AdultInput contains the measurements of a person aged 18 or more.
type AdultInput struct {
	WeightKg float64 `json:"weight_kg" validate:"finite"`
	HeightCm float64 `json:"height_cm" validate:"finite"`
}

// PediatricInput contains the measurements of a child aged 2 to 18.
// One of AgeYears or BirthDate must be provided; MeasuredAt defaults to today.
type PediatricInput struct {
	WeightKg   float64  `json:"weight_kg" validate:"finite"`
	HeightCm   float64  `json:"height_cm" validate:"finite"`
	Gender     Gender   `json:"gender" validate:"required,gender"`
	AgeYears   *float64 `json:"age_years,omitempty" validate:"omitempty,finite"`
	BirthDate  *Date    `json:"birth_date,omitempty"`
	MeasuredAt *Date    `json:"measured_at,omitempty"`
}

// WeightRange is an inclusive range of weights, in kilograms.
type WeightRange struct {
	MinKg float64 `json:"min_kg"`
	MaxKg float64 `json:"max_kg"`
}

type AdultResult struct {
	BMI           float64       `json:"bmi"`
	Category      AdultCategory `json:"category"`
	CategoryColor ColorToken    `json:"category_color"`
	Description   string        `json:"description"`
	RiskLevel     RiskLevel     `json:"risk_level"`
	HealthyWeight WeightRange   `json:"healthy_weight"`
}

type PediatricResult struct {
	BMI                float64           `json:"bmi"`
	Percentile         int               `json:"percentile"`
	Category           PediatricCategory `json:"category"`
	CategoryColor      ColorToken        `json:"category_color"`
	PercentileCategory string            `json:"percentile_category"`
	AgeGroup           string            `json:"age_group"`
	AgeYears           float64           `json:"age_years"`
	Description        string            `json:"description"`
}

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

const DateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return ErrDateFormat
	}
	*d = parsed
	return nil
}
