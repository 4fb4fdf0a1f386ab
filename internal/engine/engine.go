// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed lighthouse code.
package engine

import (
	"io"
	"sort"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/engine/boot"
	"github.com/ruby2elixir/lighthouse-scheme/internal/engine/eval"
	"github.com/ruby2elixir/lighthouse-scheme/internal/engine/primitives"
	"github.com/ruby2elixir/lighthouse-scheme/internal/reader"
)

// Store is the definition store. Names is used for completion.
type Store interface {
	eval.Store
	Names() []string
}

// T (engine) is a facade in front of the machinery for evaluating
// lighthouse code.
type T struct {
	store Store
	v     *eval.T
}

type engine = T

// New creates a new T.
func New(store Store, loader eval.Loader, stdout io.Writer) *T {
	return &T{store: store, v: eval.New(store, loader, stdout)}
}

// Boot evaluates the embedded boot script.
func (e *engine) Boot() error {
	_, err := e.Run("boot.scm", boot.Script())

	return err
}

// Evaluate evaluates a single expression in the empty environment.
func (e *engine) Evaluate(c cell.I) (cell.I, error) {
	return e.v.Value(c)
}

// Names returns every name the engine can resolve: special forms,
// primitives, and current definitions. Used for completion.
func (e *engine) Names() []string {
	unique := map[string]bool{}

	for _, k := range eval.Forms() {
		unique[k] = true
	}

	for _, k := range primitives.Names() {
		unique[k] = true
	}

	for _, k := range e.store.Names() {
		unique[k] = true
	}

	names := make([]string, 0, len(unique))
	for k := range unique {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Run parses source as a program and evaluates each expression in the
// empty environment. It stops at the first error or quit and returns
// the last value produced.
func (e *engine) Run(label, source string) (cell.I, error) {
	program, err := reader.Program(label, source)
	if err != nil {
		return nil, err
	}

	var value cell.I

	for _, c := range program {
		value, err = e.v.Value(c)
		if err != nil {
			return nil, err
		}

		if eval.Quitting(value) {
			break
		}
	}

	return value, nil
}
