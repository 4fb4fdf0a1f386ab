// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/env"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/frame"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/list"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/pair"
)

// apply invokes an already evaluated operator on a list of already
// evaluated arguments.
func (v *eval) apply(op cell.I, args cell.I) cell.I {
	switch op := op.(type) {
	case *Primitive:
		fn, ok := v.prims[op.name]
		if !ok {
			panic(op.name + " is not a known primitive")
		}

		return fn(args)

	case *Closure:
		return v.call(op, args)
	}

	panic(op.Name() + " cannot be applied")
}

// call zips the closure's formal parameters with args in a fresh frame
// and evaluates the body in the closure's own captured environment plus
// that frame. The caller's environment plays no part.
func (v *eval) call(op *Closure, args cell.I) cell.I {
	if list.Length(op.Params) != list.Length(args) {
		panic(&ArityError{Params: op.Params, Args: args})
	}

	names := []string{}

	for rest := op.Params; rest != pair.Null; rest = pair.Cdr(rest) {
		names = append(names, common.String(pair.Car(rest)))
	}

	f := frame.New(names, list.Slice(args))

	return v.meaning(op.Body, env.New(f, op.Env))
}
