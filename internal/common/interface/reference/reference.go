// Released under an MIT license. See LICENSE.

// Package reference defines the interface for lighthouse's variable type.
package reference

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
)

// I (reference) is anything that can hold a value.
type I interface {
	Get() cell.I
	Set(cell.I)
}
