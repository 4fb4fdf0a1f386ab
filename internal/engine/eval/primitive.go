// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/engine/primitives"
)

// Primitive is a reference to a built-in operation, tagged by its name.
type Primitive struct {
	name string
}

// The primitive type is a cell.

// Equal returns true if c refers to the same primitive operation as p.
func (p *Primitive) Equal(c cell.I) bool {
	o, ok := c.(*Primitive)

	return ok && o.name == p.name
}

// Name returns the name of the primitive type.
func (*Primitive) Name() string {
	return "primitive"
}

// Literal returns the literal representation of the primitive p.
func (p *Primitive) Literal() string {
	return "#<primitive " + p.name + ">"
}

// String returns the name of the operation p refers to.
func (p *Primitive) String() string {
	return p.name
}

// NewPrimitive returns the reference for the primitive operation named k.
func NewPrimitive(k string) cell.I {
	p, ok := prims[k]
	if !ok {
		panic(k + " is not a known primitive")
	}

	return p
}

// One reference per operation; references to the same name are identical.
//
//nolint:gochecknoglobals
var prims = map[string]*Primitive{}

func init() { //nolint:gochecknoinits
	for _, k := range primitives.Names() {
		prims[k] = &Primitive{name: k}
	}
}
