// Released under an MIT license. See LICENSE.

package primitives

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/boolean"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/pair"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/validate"
)

func car(args cell.I) cell.I {
	v := validate.Fixed("car", args, 1, 1)

	return pair.Car(v[0])
}

func cdr(args cell.I) cell.I {
	v := validate.Fixed("cdr", args, 1, 1)

	return pair.Cdr(v[0])
}

func cons(args cell.I) cell.I {
	v := validate.Fixed("cons", args, 2, 2)

	return pair.Cons(v[0], v[1])
}

func isNull(args cell.I) cell.I {
	v := validate.Fixed("null?", args, 1, 1)

	return boolean.Bool(v[0] == pair.Null)
}
