package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sanatos/backend/core"
	"github.com/sanatos/backend/core/bmi"
)

var errAgeAndBirth = errors.New("folosiți fie -age, fie -birth, nu amândouă")

func (cli *commandLine) child(args []string) error {
	cmd := cli.newFlagSet("child")
	weight := cmd.Float64("weight", 0, "Weight, in kg (or lb with -unit imperial).")
	height := cmd.Float64("height", 0, "Height, in cm (or in with -unit imperial).")
	gender := cmd.String("gender", "", "The child's gender: male or female.")
	age := cmd.Float64("age", 0, "Age in years, eg. 8.5. Use either -age or -birth.")
	birth := cmd.String("birth", "", "Birth date, YYYY-MM-DD.")
	measured := cmd.String("measured", "", "Measurement date, YYYY-MM-DD. Defaults to today.")
	unit := cmd.String("unit", unitMetric, "Units of -weight and -height: metric or imperial.")

	if err := parse(cmd, args); err != nil {
		return err
	}
	hasAge, hasBirth := isSet(cmd, "age"), isSet(cmd, "birth")
	if !isSet(cmd, "weight") || !isSet(cmd, "height") || !isSet(cmd, "gender") || !(hasAge || hasBirth) {
		cmd.Usage()
		return errHelp
	}
	if hasAge && hasBirth {
		return errAgeAndBirth
	}
	weightKg, heightCm, err := toMetric(*unit, *weight, *height)
	if err != nil {
		return err
	}

	in := bmi.PediatricInput{
		WeightKg: weightKg,
		HeightCm: heightCm,
		Gender:   bmi.Gender(core.CleanString(*gender, true)),
	}
	if hasAge {
		in.AgeYears = age
	} else {
		if in.BirthDate, err = parseDateFlag("birth", *birth); err != nil {
			return err
		}
		if *measured != "" {
			if in.MeasuredAt, err = parseDateFlag("measured", *measured); err != nil {
				return err
			}
		}
	}

	res, err := cli.svc.Pediatric(in)
	if err != nil {
		return err
	}
	cli.printPediatric(res)
	return nil
}

func (cli *commandLine) printPediatric(res bmi.PediatricResult) {
	fmt.Fprintf(cli.out, "IMC: %.1f (%s)\n", res.BMI, cli.paint(string(res.Category), res.CategoryColor))
	fmt.Fprintf(cli.out, "Percentila: %d (%s)\n", res.Percentile, res.PercentileCategory)
	fmt.Fprintf(cli.out, "Vârsta: %s ani (%s)\n", formatFloat(res.AgeYears), res.AgeGroup)
	fmt.Fprintln(cli.out, res.Description)
}

func parseDateFlag(name, value string) (*bmi.Date, error) {
	d, err := bmi.ParseDate(value)
	if err != nil {
		return nil, errors.Wrapf(bmi.ErrDateFormat, "-%s", name)
	}
	return &d, nil
}
