// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
)

// QuitSignal is the distinguished result of a quit expression. It is not
// an error: drivers check for it and stop evaluating, cleanly.
type QuitSignal struct{}

//nolint:gochecknoglobals
var Quit cell.I = &QuitSignal{}

// The quit signal type is a cell.

// Equal returns true if the cell c is also the quit signal.
func (q *QuitSignal) Equal(c cell.I) bool {
	_, ok := c.(*QuitSignal)

	return ok
}

// Name returns the name of the quit signal type.
func (*QuitSignal) Name() string {
	return "quit"
}

// Literal returns the literal representation of the quit signal.
func (q *QuitSignal) Literal() string {
	return "#<quit>"
}

// Quitting returns true if the cell c is the quit signal.
func Quitting(c cell.I) bool {
	_, ok := c.(*QuitSignal)

	return ok
}
