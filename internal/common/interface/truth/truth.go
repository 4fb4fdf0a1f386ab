// Released under an MIT license. See LICENSE.

// Package truth defines the interface for lighthouse types that have a truth value.
package truth

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
)

// I (truth) is anything that can evaluate to a false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Only the boolean type carries
// a truth value of its own; every other cell counts as true.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		return true
	}

	return b.Bool()
}
