package main

import (
	"log"
	"os"

	"github.com/sanatos/backend/core/bmi"
)

func main() {
	logger := log.New(os.Stderr, "BMI : ", 0)

	cli := newCommandLine(bmi.NewService(nil), os.Stdout)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\neroare: %s\n", err)
		}
		os.Exit(1)
	}
}
