package echoapi

import (
	"math"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sanatos/backend/core"
	"github.com/sanatos/backend/core/bmi"
)

type (
	AgeResponse struct {
		Years    int     `json:"years"`
		Months   int     `json:"months"`
		AgeYears float64 `json:"age_years"`
	}

	GrowthReferenceResponse struct {
		Gender       bmi.Gender      `json:"gender"`
		Percentiles  []float64       `json:"percentiles"`
		MinAgeMonths int             `json:"min_age_months"`
		MaxAgeMonths int             `json:"max_age_months"`
		Rows         []bmi.GrowthRow `json:"rows"`
	}
)

type bmiApi struct {
	svc      bmi.ServiceInterface
	validate *validator.Validate
}

func registerBMIAPI(g *echo.Group, svc bmi.ServiceInterface, validate *validator.Validate) {
	api := bmiApi{
		svc:      svc,
		validate: validate,
	}

	bg := g.Group("/bmi")
	bg.POST("/adult", api.adult)
	bg.POST("/pediatric", api.pediatric)
	bg.GET("/age", api.age)
	bg.GET("/growth-reference/:gender", api.growthReference)
}

// Handlers

func (api *bmiApi) adult(ctx echo.Context) error {
	var data bmi.AdultInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AdultInput")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	res, err := api.svc.Adult(data)
	if err != nil {
		return errors.Wrap(err, "calculating adult BMI")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *bmiApi) pediatric(ctx echo.Context) error {
	var data bmi.PediatricInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PediatricInput")
	}
	data.Gender = bmi.Gender(core.CleanString(string(data.Gender), true))
	data.BirthDate = presentDate(data.BirthDate)
	data.MeasuredAt = presentDate(data.MeasuredAt)
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	res, err := api.svc.Pediatric(data)
	if err != nil {
		return errors.Wrap(err, "calculating pediatric BMI")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *bmiApi) age(ctx echo.Context) error {
	birth, err := queryDate(ctx, "birth_date")
	if err != nil {
		return err
	}
	if birth == nil {
		return core.NewValidationError(
			bmi.ErrBirthDateRequired,
			core.FieldError{Field: "birth_date", Error: bmi.ErrBirthDateRequired.Error()},
		)
	}
	measured, err := queryDate(ctx, "measured_at")
	if err != nil {
		return err
	}

	age, err := api.svc.Age(*birth, measured)
	if err != nil {
		return errors.Wrap(err, "resolving age")
	}
	return ctx.JSON(http.StatusOK, AgeResponse{
		Years:    age.Years,
		Months:   age.Months,
		AgeYears: math.Round(age.Fractional()*100) / 100,
	})
}

func (api *bmiApi) growthReference(ctx echo.Context) error {
	gender := bmi.Gender(core.CleanString(ctx.Param("gender"), true))
	if !gender.Valid() {
		return errHttpNotFound
	}

	table := api.svc.Table()
	minMonths, maxMonths := table.Domain(gender)
	return ctx.JSON(http.StatusOK, GrowthReferenceResponse{
		Gender:       gender,
		Percentiles:  table.Percentiles(gender),
		MinAgeMonths: minMonths,
		MaxAgeMonths: maxMonths,
		Rows:         table.Rows(gender),
	})
}

// presentDate maps a date sent as "" to nil, the same as an omitted one.
func presentDate(d *bmi.Date) *bmi.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

// queryDate parses the YYYY-MM-DD query param name; it returns nil when the param is empty.
func queryDate(ctx echo.Context, name string) (*time.Time, error) {
	raw := core.CleanString(ctx.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	d, err := bmi.ParseDate(raw)
	if err != nil {
		return nil, core.NewValidationError(
			bmi.ErrDateFormat,
			core.FieldError{Field: name, Error: bmi.ErrDateFormat.Error()},
		)
	}
	return &d.Time, nil
}
