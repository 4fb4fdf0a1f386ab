// Released under an MIT license. See LICENSE.

package eval

import (
	"fmt"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/loc"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/list"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/validate"
)

// Evaluation faults panic with one of these error types. The exported
// entry points recover and return them as errors.

// LookupError reports an identifier bound nowhere: not in the
// environment chain and not in the definition store.
type LookupError struct {
	Name   string
	Source *loc.T // Location of the identifier, when known.
}

func (e *LookupError) Error() string {
	msg := e.Name + " is not defined"

	if e.Source != nil {
		msg = e.Source.String() + ": " + msg
	}

	return msg
}

// ArityError reports a closure applied to the wrong number of arguments.
type ArityError struct {
	Params cell.I // Formal parameter labels.
	Args   cell.I // Evaluated arguments.
}

func (e *ArityError) Error() string {
	s := validate.Count(int(list.Length(e.Params)), "argument", "s")

	return fmt.Sprintf("expected %s, passed %d", s, list.Length(e.Args))
}

// ShapeError reports an expression or argument with a shape the
// evaluator cannot handle.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return e.Reason
}

// failure converts a recovered value into an error.
func failure(r interface{}) error {
	switch t := r.(type) {
	case error:
		return t
	case string:
		return &ShapeError{Reason: t}
	}

	return &ShapeError{Reason: fmt.Sprintf("%v", r)}
}
