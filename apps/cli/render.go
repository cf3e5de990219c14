package main

import (
	"strconv"

	"github.com/sanatos/backend/core/bmi"
)

const ansiReset = "\033[0m"

var ansiColors = map[bmi.ColorToken]string{
	bmi.ColorBlue:    "\033[34m",
	bmi.ColorGreen:   "\033[32m",
	bmi.ColorEmerald: "\033[92m",
	bmi.ColorYellow:  "\033[33m",
	bmi.ColorRed:     "\033[31m",
}

func (cli *commandLine) paint(s string, token bmi.ColorToken) string {
	code, ok := ansiColors[token]
	if !cli.color || !ok {
		return s
	}
	return code + s + ansiReset
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
