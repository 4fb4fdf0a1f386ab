/*
Lighthouse is an interpreter for a small, lexically scoped dialect of
scheme. It reads expressions, evaluates them, and prints the results:

    > (define second
        (lambda (l)
          (car (cdr l))))
    second
    > (second '(a b c))
    b

For more detail, see: https://github.com/ruby2elixir/lighthouse-scheme

Lighthouse is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ruby2elixir/lighthouse-scheme/internal/engine"
	"github.com/ruby2elixir/lighthouse-scheme/internal/system/modules"
	"github.com/ruby2elixir/lighthouse-scheme/internal/system/options"
	"github.com/ruby2elixir/lighthouse-scheme/internal/system/store"
	"github.com/ruby2elixir/lighthouse-scheme/internal/ui"
)

func main() {
	options.Parse()

	e := engine.New(store.New(), modules.New(options.Includes()), os.Stdout)

	if err := e.Boot(); err != nil {
		fail(err)
	}

	switch {
	case options.Command() != "":
		run(e, "-c", options.Command())
	case options.Script() != "":
		b, err := os.ReadFile(options.Script())
		if err != nil {
			fail(err)
		}

		run(e, options.Script(), string(b))
	case options.Interactive():
		ui.Run(e)
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fail(err)
		}

		run(e, "stdin", string(b))
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func run(e *engine.T, label, source string) {
	if _, err := e.Run(label, source); err != nil {
		fail(err)
	}
}
