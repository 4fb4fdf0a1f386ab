// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for lighthouse.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/literal"
	"github.com/ruby2elixir/lighthouse-scheme/internal/engine/eval"
	"github.com/ruby2elixir/lighthouse-scheme/internal/reader"
	"github.com/ruby2elixir/lighthouse-scheme/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed
// expressions. Names supplies candidates for completion.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
	Names() []string
}

const prompt = "> "

// Run reads expressions and sends them to the Evaluator until the
// session quits or stdin is exhausted.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	_ = history.Load(cli.ReadHistory)

	cli.SetCtrlCAborts(true)
	cli.SetTabCompletionStyle(liner.TabPrints)
	cli.SetWordCompleter(complete(e))

	r := reader.New("lighthouse")

	for {
		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
			cli.AppendHistory(line)
		case liner.ErrPromptAborted:
			// Ctrl-C abandons the expression being read.
			r.Close()

			r = reader.New("lighthouse")

			continue
		default:
			// EOF ends the session.
			fmt.Println()
			r.Close()
			save(cli)

			return
		}

		batch, err := r.Scan(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			// A reader does not continue past an error.
			r = reader.New("lighthouse")

			continue
		}

		for _, c := range batch {
			v, err := e.Evaluate(c)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)

				break
			}

			if eval.Quitting(v) {
				r.Close()
				save(cli)

				return
			}

			fmt.Println(literal.String(v))
		}
	}
}

func complete(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		head := line[:pos]
		tail := line[pos:]

		word := head
		if i := strings.LastIndexAny(head, " \t()'\";"); i >= 0 {
			word = head[i+1:]
		}

		head = head[:len(head)-len(word)]

		completions := []string{}

		for _, name := range e.Names() {
			if strings.HasPrefix(name, word) {
				completions = append(completions, name)
			}
		}

		if len(completions) == 0 {
			completions = []string{word}
		}

		return head, completions, tail
	}
}

func save(cli *liner.State) {
	if err := history.Save(cli.WriteHistory); err != nil {
		fmt.Fprintln(os.Stderr, "error writing history:", err)
	}
}
