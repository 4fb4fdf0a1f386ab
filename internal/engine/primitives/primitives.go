// Released under an MIT license. See LICENSE.

// Package primitives provides lighthouse's built-in operations.
//
// The catalog is fixed. A symbol naming one of these operations always
// evaluates to the primitive, even where a lambda binds the same name.
package primitives

import (
	"io"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
)

// Functions returns the catalog of primitive operations.
// The display operation writes to stdout.
func Functions(stdout io.Writer) map[string]func(cell.I) cell.I {
	return map[string]func(cell.I) cell.I{
		"*":       mul,
		"+":       add,
		"-":       sub,
		"<":       lt,
		">":       gt,
		"add1":    add1,
		"atom?":   isAtom,
		"car":     car,
		"cdr":     cdr,
		"cons":    cons,
		"display": display(stdout),
		"eq?":     eq,
		"null?":   isNull,
		"number?": isNumber,
		"sub1":    sub1,
		"zero?":   isZero,
	}
}

// Defined returns true if name is the name of a primitive operation.
func Defined(name string) bool {
	return defined[name]
}

// Names returns the name of every primitive operation.
func Names() []string {
	names := make([]string, 0, len(defined))

	for k := range defined {
		names = append(names, k)
	}

	return names
}

//nolint:gochecknoglobals
var defined map[string]bool

func init() { //nolint:gochecknoinits
	defined = map[string]bool{}

	for k := range Functions(io.Discard) {
		defined[k] = true
	}
}
