// Released under an MIT license. See LICENSE.

// Package pair provides lighthouse's cons cell type.
package pair

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/literal"
)

const name = "cons"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
// Pairs compare element by element, not by identity.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return cell.I(p) == c
	}

	if !Is(c) {
		return false
	}

	return p.car.Equal(Car(c)) && p.cdr.Equal(Cdr(c))
}

// Literal returns the literal representation of the pair p.
// An improper list prints with its tail after a dot: (a b . c).
func (p *pair) Literal() string {
	if p == Null {
		return "()"
	}

	s := "(" + literal.String(p.car)

	tail := p.cdr

	for {
		switch {
		case tail == Null:
			return s + ")"
		case Is(tail):
			t := To(tail)
			s += " " + literal.String(t.car)
			tail = t.cdr
		default:
			return s + " . " + literal.String(tail) + ")"
		}
	}
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Caar returns the car of the car of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Caar(c cell.I) cell.I {
	return To(To(c).car).car
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Caddr returns the car of the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Caddr(c cell.I) cell.I {
	return To(To(To(c).cdr).cdr).car
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a cons. The empty list is not a cons.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok && c != Null
}

// To converts c to a pair, if possible.
// The empty list has no car or cdr; converting it will panic.
func To(c cell.I) *pair {
	if c == Null {
		panic("the empty list is not a cons")
	}

	if p, ok := c.(*pair); ok {
		return p
	}

	panic(c.Name() + " is not a cons")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
