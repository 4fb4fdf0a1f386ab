// Released under an MIT license. See LICENSE.

package validate

import (
	"fmt"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/list"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/pair"
)

// Variadic unpacks between min and max arguments from the list actual.
// It returns the unpacked arguments and any arguments that remain.
// Fewer than min arguments will cause a panic naming the operation op.
func Variadic(op string, actual cell.I, min, max int) ([]cell.I, cell.I) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				s := Count(min, "argument", "s")
				panic(fmt.Sprintf("%s: expected %s, passed %d", op, s, i))
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual
}

// Fixed unpacks between min and max arguments from the list actual.
// Fewer than min or more than max will cause a panic naming op.
func Fixed(op string, actual cell.I, min, max int) []cell.I {
	expected, rest := Variadic(op, actual, min, max)
	if rest != pair.Null {
		s := Count(max, "argument", "s")
		n := int(list.Length(actual))

		panic(fmt.Sprintf("%s: expected %s, passed %d", op, s, n))
	}

	return expected
}

// Count formats n with the label's singular or plural form.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
