package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/sanatos/backend/core/bmi"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc   bmi.ServiceInterface
	out   io.Writer
	color bool // ANSI colours, only when out is a terminal
}

func newCommandLine(svc bmi.ServiceInterface, out io.Writer) *commandLine {
	var color bool
	if f, ok := out.(*os.File); ok {
		color = isTerminalFunc(int(f.Fd()))
	}
	return &commandLine{svc: svc, out: out, color: color}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  adult -weight W -height H [-unit metric|imperial] - adult BMI")
	fmt.Fprintln(cli.out, "  child -weight W -height H -gender male|female (-age YEARS | -birth YYYY-MM-DD [-measured YYYY-MM-DD]) [-unit metric|imperial] - BMI-for-age of a child aged 2 to 18")
	fmt.Fprintln(cli.out, "  age -birth YYYY-MM-DD [-measured YYYY-MM-DD] - age in years and months")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "adult":
		return cli.adult(args[2:])
	case "child":
		return cli.child(args[2:])
	case "age":
		return cli.age(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

// parse maps -h|-help to errHelp.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

// isSet reports whether the flag name was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	var found bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
