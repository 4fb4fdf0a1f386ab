// Released under an MIT license. See LICENSE.

// Package eval provides lighthouse's recursive evaluator.
//
// Evaluation is classify-then-act: a dispatcher selects an action for the
// shape of each expression and the action recurses on subexpressions.
// Identifier lookup walks the environment chain and then falls through to
// the definition store. The store is the only shared mutable state; it is
// injected, never ambient.
package eval

import (
	"io"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/env"
	"github.com/ruby2elixir/lighthouse-scheme/internal/engine/primitives"
	"github.com/ruby2elixir/lighthouse-scheme/internal/reader"
)

// Store is where define'd names live. Lookups that exhaust the
// environment chain fall through to the store.
type Store interface {
	Get(k string) (cell.I, bool)
	Put(k string, v cell.I)
}

// Loader supplies the source text for a module named by require.
type Loader interface {
	Source(name string) (string, error)
}

// T (eval) is an evaluator: a definition store, a module loader, and the
// primitive catalog bound to an output sink.
type T struct {
	store  Store
	loader Loader
	prims  map[string]func(cell.I) cell.I
	loaded map[string]bool
}

type eval = T

// New creates an evaluator. The display primitive writes to stdout.
func New(store Store, loader Loader, stdout io.Writer) *eval {
	return &eval{
		store:  store,
		loader: loader,
		prims:  primitives.Functions(stdout),
		loaded: map[string]bool{},
	}
}

// Evaluate evaluates the expression c in the environment e.
// A quit expression produces the Quit cell, not an error.
func (v *eval) Evaluate(c cell.I, e *env.T) (r cell.I, err error) {
	defer func() {
		if x := recover(); x != nil {
			r = nil
			err = failure(x)
		}
	}()

	return v.meaning(c, e), nil
}

// Value evaluates the expression c in the empty environment.
func (v *eval) Value(c cell.I) (cell.I, error) {
	return v.Evaluate(c, nil)
}

// meaning is the recursive core. It panics on evaluation faults; the
// exported entry points recover and convert them to errors.
func (v *eval) meaning(c cell.I, e *env.T) cell.I {
	return classify(c)(v, c, e)
}

// load reads and evaluates the definitions of the module named name.
// It returns the quit signal if the module quits, and nil otherwise.
func (v *eval) load(name string) cell.I {
	if v.loader == nil {
		panic("require: no module loader")
	}

	src, err := v.loader.Source(name)
	if err != nil {
		panic(err)
	}

	program, err := reader.Program(name, src)
	if err != nil {
		panic(err)
	}

	for _, c := range program {
		if value := v.meaning(c, nil); Quitting(value) {
			return value
		}
	}

	return nil
}
