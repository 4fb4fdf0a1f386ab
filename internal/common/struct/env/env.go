// Released under an MIT license. See LICENSE.

// Package env provides lighthouse's environment chain type.
//
// An environment is a chain of frames, innermost first. Extending an
// environment builds a new chain head sharing the tail with the old one;
// environments already captured by closures are never disturbed. The nil
// environment is the empty environment.
package env

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/frame"
)

// T (env) is a linked chain of binding frames.
type T struct {
	frame    *frame.T
	previous *env
}

type env = T

// New creates an environment extending previous with the frame f.
// A nil previous environment is the empty environment.
func New(f *frame.T, previous *env) *env {
	return &env{frame: f, previous: previous}
}

// Lookup walks the chain innermost first and returns the value bound to
// the name k in the nearest frame that binds it.
func (e *env) Lookup(k string) (cell.I, bool) {
	for ; e != nil; e = e.previous {
		if v, ok := e.frame.Get(k); ok {
			return v, true
		}
	}

	return nil, false
}

// Depth returns the number of frames in the chain. Useful for tests.
func (e *env) Depth() int {
	n := 0

	for ; e != nil; e = e.previous {
		n++
	}

	return n
}
