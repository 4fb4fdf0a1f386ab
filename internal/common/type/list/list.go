// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/pair"
)

// Length returns the number of elements in list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for list != nil && list != pair.Null {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	list := pair.Null

	for i := len(elements) - 1; i >= 0; i-- {
		list = pair.Cons(elements[i], list)
	}

	return list
}

// Reverse reverses list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for list != nil && list != pair.Null {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Slice copies the elements of list into a Go slice.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Slice(list cell.I) []cell.I {
	elements := []cell.I{}

	for list != nil && list != pair.Null {
		elements = append(elements, pair.Car(list))

		list = pair.Cdr(list)
	}

	return elements
}
