// Released under an MIT license. See LICENSE.

// Package frame provides lighthouse's binding frame type.
//
// A frame binds the names of a lambda's formal parameters to the argument
// values of one call. Names and values are parallel sequences of equal
// length, zipped at call time, and never change afterwards.
package frame

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
)

// T (frame) is one set of name to value bindings.
type T struct {
	names  []string
	values []cell.I
}

type frame = T

// New creates a frame binding each name to the value in the same position.
// The two sequences must be the same length.
func New(names []string, values []cell.I) *frame {
	if len(names) != len(values) {
		panic("frame names and values differ in length")
	}

	return &frame{names: names, values: values}
}

// Get returns the value bound to the name k, scanning front to back.
func (f *frame) Get(k string) (cell.I, bool) {
	for i, name := range f.names {
		if name == k {
			return f.values[i], true
		}
	}

	return nil, false
}

// Size returns the number of bindings in the frame f.
func (f *frame) Size() int {
	return len(f.names)
}
