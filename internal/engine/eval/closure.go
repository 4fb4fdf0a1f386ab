// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/literal"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/env"
)

// Closure is a lambda bundled with the environment it was created in.
type Closure struct {
	Body   cell.I // Body expression.
	Params cell.I // Formal parameter labels.
	Env    *env.T // Captured environment.
}

// The closure type is a cell.

// Equal returns true if the cell c is the same closure as l.
func (l *Closure) Equal(c cell.I) bool {
	p, ok := c.(*Closure)

	return ok && p == l
}

// Name returns the name of the closure type.
func (*Closure) Name() string {
	return "closure"
}

// Literal returns the literal representation of the closure l.
func (l *Closure) Literal() string {
	return "#<closure " + literal.String(l.Params) + ">"
}
