package main

import (
	"fmt"

	"github.com/sanatos/backend/core/bmi"
)

func (cli *commandLine) adult(args []string) error {
	cmd := cli.newFlagSet("adult")
	weight := cmd.Float64("weight", 0, "Weight, in kg (or lb with -unit imperial).")
	height := cmd.Float64("height", 0, "Height, in cm (or in with -unit imperial).")
	unit := cmd.String("unit", unitMetric, "Units of -weight and -height: metric or imperial.")

	if err := parse(cmd, args); err != nil {
		return err
	}
	if !isSet(cmd, "weight") || !isSet(cmd, "height") {
		cmd.Usage()
		return errHelp
	}
	weightKg, heightCm, err := toMetric(*unit, *weight, *height)
	if err != nil {
		return err
	}

	res, err := cli.svc.Adult(bmi.AdultInput{WeightKg: weightKg, HeightCm: heightCm})
	if err != nil {
		return err
	}
	cli.printAdult(res, *unit)
	return nil
}

func (cli *commandLine) printAdult(res bmi.AdultResult, unit string) {
	fmt.Fprintf(cli.out, "IMC: %.1f (%s)\n", res.BMI, cli.paint(string(res.Category), res.CategoryColor))
	fmt.Fprintf(cli.out, "Risc: %s\n", res.RiskLevel)
	fmt.Fprintf(cli.out, "Greutate sănătoasă: %s - %s %s\n",
		formatFloat(weightIn(unit, res.HealthyWeight.MinKg)),
		formatFloat(weightIn(unit, res.HealthyWeight.MaxKg)),
		weightSymbol(unit),
	)
	fmt.Fprintln(cli.out, res.Description)
}
