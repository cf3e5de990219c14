package bmi

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/sanatos/backend/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		weightKg  float64
		heightCm  float64
		age       []float64
		wantErr   error
		wantField string
	}{
		{name: "valid adult", weightKg: 70, heightCm: 170},
		{name: "valid child", weightKg: 30, heightCm: 130, age: []float64{8.5}},
		{name: "upper bounds", weightKg: 500, heightCm: 250, age: []float64{18}},
		{name: "lower age bound", weightKg: 12, heightCm: 85, age: []float64{2}},
		{name: "zero weight", weightKg: 0, heightCm: 170, wantErr: ErrWeightOutOfRange, wantField: "weight_kg"},
		{name: "negative weight", weightKg: -5, heightCm: 170, wantErr: ErrWeightOutOfRange, wantField: "weight_kg"},
		{name: "weight above 500", weightKg: 600, heightCm: 170, wantErr: ErrWeightOutOfRange, wantField: "weight_kg"},
		{name: "NaN weight", weightKg: math.NaN(), heightCm: 170, wantErr: ErrWeightOutOfRange, wantField: "weight_kg"},
		{name: "zero height", weightKg: 70, heightCm: 0, wantErr: ErrHeightOutOfRange, wantField: "height_cm"},
		{name: "infinite height", weightKg: 70, heightCm: math.Inf(1), wantErr: ErrHeightOutOfRange, wantField: "height_cm"},
		{name: "height above 250", weightKg: 70, heightCm: 251, wantErr: ErrHeightOutOfRange, wantField: "height_cm"},
		{name: "weight reported before height", weightKg: 0, heightCm: 0, wantErr: ErrWeightOutOfRange, wantField: "weight_kg"},
		{name: "height reported before age", weightKg: 70, heightCm: 0, age: []float64{1}, wantErr: ErrHeightOutOfRange, wantField: "height_cm"},
		{name: "age below 2", weightKg: 70, heightCm: 170, age: []float64{1}, wantErr: ErrAgeOutOfRange, wantField: "age_years"},
		{name: "age above 18", weightKg: 70, heightCm: 170, age: []float64{19}, wantErr: ErrAgeOutOfRange, wantField: "age_years"},
		{name: "NaN age", weightKg: 70, heightCm: 170, age: []float64{math.NaN()}, wantErr: ErrAgeOutOfRange, wantField: "age_years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.weightKg, tt.heightCm, tt.age...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			vErr, ok := errors.Cause(err).(*core.ValidationError)
			if !ok {
				t.Fatalf("Validate() error = %v; want *core.ValidationError", err)
			}
			assert.Equal(t, tt.wantErr, vErr.Err)
			assert.Equal(t, tt.wantErr.Error(), err.Error())
			assert.Equal(t, []core.FieldError{{Field: tt.wantField, Error: tt.wantErr.Error()}}, vErr.Fields)
		})
	}
}
