// Released under an MIT license. See LICENSE.

package primitives

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/adapted"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/literal"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/pair"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/str"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/validate"
)

func display(w io.Writer) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed("display", args, 1, 1)

		fmt.Fprint(w, text(v[0]))

		return pair.Null
	}
}

// text renders c for display. A string renders as its text with escape
// sequences decoded; every other value renders as its literal.
func text(c cell.I) string {
	if !str.Is(c) {
		return literal.String(c)
	}

	s, err := adapted.ActualBytes(common.String(c))
	if err != nil {
		panic("display: " + err.Error())
	}

	return s
}
