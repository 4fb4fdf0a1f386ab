// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lighthouse types.
package cell

// I (cell) is the basic unit of storage in lighthouse.
type I interface {
	Equal(c I) bool
	Name() string
}
