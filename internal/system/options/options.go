package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	includes    []string
	interactive bool
	script      string
	usage       = `lighthouse

Usage:
  lighthouse [-i] [--include=DIR]... [SCRIPT]
  lighthouse [-i] [--include=DIR]... -c COMMAND
  lighthouse -h
  lighthouse -v

Arguments:
  SCRIPT     Path to a lighthouse script.

Options:
  -c, --command=COMMAND  Evaluate the specified command.
  -i, --interactive      Invert interactive mode.
  -I DIR, --include=DIR  Add DIR to the module search path.
  -h, --help             Display this help.
  -v, --version          Print lighthouse version.

If lighthouse's stdin is a TTY and no script or command was given, then
expressions are read interactively. Modules named by require are searched
for in each DIR, then in each entry of LIGHTHOUSE_PATH, and then in the
current directory.
`
	version = "lighthouse 0.1.0"
)

// Command returns the command passed with -c, if any.
func Command() string {
	return command
}

// Includes returns the directories passed with -I, in order.
func Includes() []string {
	return includes
}

// Interactive returns true if expressions should be read interactively.
func Interactive() bool {
	return interactive
}

// Parse parses the command line.
func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")
	includes, _ = opts["--include"].([]string)

	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert
}

// Script returns the script path, if any.
func Script() string {
	return script
}
