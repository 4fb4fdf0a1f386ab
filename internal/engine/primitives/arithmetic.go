// Released under an MIT license. See LICENSE.

package primitives

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/integer"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/list"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/num"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/pair"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/validate"
)

func add(args cell.I) cell.I {
	var sum int64

	for args != pair.Null {
		sum += integer.Value(pair.Car(args))

		args = pair.Cdr(args)
	}

	return num.Int(sum)
}

func add1(args cell.I) cell.I {
	v := validate.Fixed("add1", args, 1, 1)

	return num.Int(integer.Value(v[0]) + 1)
}

func mul(args cell.I) cell.I {
	product := int64(1)

	for args != pair.Null {
		product *= integer.Value(pair.Car(args))

		args = pair.Cdr(args)
	}

	return num.Int(product)
}

// Subtraction reduces right to left: (- 10 3 2) is 10-(3-2), not (10-3)-2.
func sub(args cell.I) cell.I {
	validate.Variadic("-", args, 1, 1)

	v := list.Slice(args)

	difference := integer.Value(v[len(v)-1])

	for i := len(v) - 2; i >= 0; i-- {
		difference = integer.Value(v[i]) - difference
	}

	return num.Int(difference)
}

func sub1(args cell.I) cell.I {
	v := validate.Fixed("sub1", args, 1, 1)

	return num.Int(integer.Value(v[0]) - 1)
}
