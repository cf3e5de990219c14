package main

import (
	"fmt"
	"math"
	"time"
)

func (cli *commandLine) age(args []string) error {
	cmd := cli.newFlagSet("age")
	birth := cmd.String("birth", "", "Birth date, YYYY-MM-DD.")
	measured := cmd.String("measured", "", "Measurement date, YYYY-MM-DD. Defaults to today.")

	if err := parse(cmd, args); err != nil {
		return err
	}
	if *birth == "" {
		cmd.Usage()
		return errHelp
	}
	birthDate, err := parseDateFlag("birth", *birth)
	if err != nil {
		return err
	}
	var at *time.Time
	if *measured != "" {
		measuredDate, err := parseDateFlag("measured", *measured)
		if err != nil {
			return err
		}
		at = &measuredDate.Time
	}

	age, err := cli.svc.Age(birthDate.Time, at)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Vârsta: %d ani și %d luni (%s ani)\n",
		age.Years, age.Months, formatFloat(math.Round(age.Fractional()*100)/100))
	return nil
}
