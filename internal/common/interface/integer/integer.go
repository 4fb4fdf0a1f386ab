// Released under an MIT license. See LICENSE.

// Package integer defines the interface for lighthouse's numeric type.
package integer

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
)

// I (integer) is anything that can be treated as an integer in lighthouse.
type I interface {
	Int() int64
}

type integer = I

// Value returns the int64 value for a cell, if possible.
func Value(c cell.I) int64 {
	i, ok := c.(integer)
	if !ok {
		// Not all cell types can be treated as numbers.
		panic(c.Name() + " cannot be used in a numeric context")
	}

	return i.Int()
}
