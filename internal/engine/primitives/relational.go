// Released under an MIT license. See LICENSE.

package primitives

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/integer"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/boolean"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/validate"
)

func eq(args cell.I) cell.I {
	v := validate.Fixed("eq?", args, 2, 2)

	return boolean.Bool(v[0].Equal(v[1]))
}

func gt(args cell.I) cell.I {
	v := validate.Fixed(">", args, 2, 2)

	return boolean.Bool(integer.Value(v[0]) > integer.Value(v[1]))
}

func lt(args cell.I) cell.I {
	v := validate.Fixed("<", args, 2, 2)

	return boolean.Bool(integer.Value(v[0]) < integer.Value(v[1]))
}
