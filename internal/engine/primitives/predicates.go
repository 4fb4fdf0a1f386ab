// Released under an MIT license. See LICENSE.

package primitives

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/boolean"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/num"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/sym"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/validate"
)

func isAtom(args cell.I) cell.I {
	v := validate.Fixed("atom?", args, 1, 1)

	return boolean.Bool(sym.Is(v[0]) || num.Is(v[0]))
}

func isNumber(args cell.I) cell.I {
	v := validate.Fixed("number?", args, 1, 1)

	return boolean.Bool(num.Is(v[0]))
}

func isZero(args cell.I) cell.I {
	v := validate.Fixed("zero?", args, 1, 1)

	return boolean.Bool(num.Is(v[0]) && num.To(v[0]).Int() == 0)
}
