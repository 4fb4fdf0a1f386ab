// Released under an MIT license. See LICENSE.

// Package num provides lighthouse's integer type.
package num

import (
	"strconv"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/integer"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/literal"
)

const name = "number"

// T (num) wraps Go's int64 type.
type T int64

type num = T

// Int creates a num from the integer i.
func Int(i int64) cell.I {
	n := num(i)

	return &n
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Int() == To(c).Int()
}

// Int returns the value of the num n as an int64.
func (n *num) Int() int64 {
	return int64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return strconv.FormatInt(int64(*n), 10)
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To converts c to a num, if possible.
func To(c cell.I) *num {
	if n, ok := c.(*num); ok {
		return n
	}

	panic(c.Name() + " is not a number")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type is an integer.
	_ = integer.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
