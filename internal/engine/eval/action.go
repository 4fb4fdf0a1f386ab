// Released under an MIT license. See LICENSE.

package eval

import (
	"sort"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/truth"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/env"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/loc"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/boolean"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/list"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/num"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/pair"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/str"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/sym"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/validate"
	"github.com/ruby2elixir/lighthouse-scheme/internal/engine/primitives"
)

// action evaluates one shape of expression.
type action func(v *eval, c cell.I, e *env.T) cell.I

// classify selects the action for the expression c. Classification is by
// shape alone; it never consults an environment and has no side effects.
func classify(c cell.I) action {
	switch {
	case num.Is(c), boolean.Is(c):
		return constant
	case str.Is(c):
		return text
	case sym.Is(c):
		if primitives.Defined(common.String(c)) {
			return primitive
		}

		return identifier
	case c == pair.Null:
		return empty
	case pair.Is(c):
		if head := pair.Car(c); sym.Is(head) {
			if a, ok := forms[common.String(head)]; ok {
				return a
			}
		}

		return application
	}

	panic(c.Name() + " cannot be evaluated")
}

// The special forms. Every other list is an application.
//
//nolint:gochecknoglobals
var forms map[string]action

func init() { //nolint:gochecknoinits
	forms = map[string]action{
		"and":     evalAnd,
		"begin":   evalBegin,
		"cond":    evalCond,
		"define":  evalDefine,
		"lambda":  evalLambda,
		"not":     evalNot,
		"or":      evalOr,
		"quit":    evalQuit,
		"quote":   evalQuote,
		"require": evalRequire,
	}
}

// Forms returns the special form names in sorted order.
func Forms() []string {
	names := make([]string, 0, len(forms))

	for k := range forms {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Actions.

func constant(_ *eval, c cell.I, _ *env.T) cell.I {
	return c
}

func text(_ *eval, c cell.I, _ *env.T) cell.I {
	return c
}

func primitive(_ *eval, c cell.I, _ *env.T) cell.I {
	return NewPrimitive(common.String(c))
}

func identifier(v *eval, c cell.I, e *env.T) cell.I {
	k := common.String(c)

	if value, ok := e.Lookup(k); ok {
		return value
	}

	if value, ok := v.store.Get(k); ok {
		return value
	}

	panic(&LookupError{Name: k, Source: source(c)})
}

func empty(_ *eval, _ cell.I, _ *env.T) cell.I {
	panic("cannot evaluate an empty application")
}

func evalQuote(_ *eval, c cell.I, _ *env.T) cell.I {
	return pair.Cadr(c)
}

func evalLambda(_ *eval, c cell.I, e *env.T) cell.I {
	return &Closure{Body: pair.Caddr(c), Params: pair.Cadr(c), Env: e}
}

// A define'd value is evaluated in the empty environment: it can see
// other definitions through the store but captures no frames.
func evalDefine(v *eval, c cell.I, _ *env.T) cell.I {
	name := pair.Cadr(c)
	if !sym.Is(name) {
		panic("define: " + name.Name() + " is not a symbol")
	}

	k := common.String(name)

	value := v.meaning(pair.Caddr(c), nil)
	if Quitting(value) {
		return value
	}

	v.store.Put(k, value)

	return sym.New(k)
}

func evalCond(v *eval, c cell.I, e *env.T) cell.I {
	for lines := pair.Cdr(c); lines != pair.Null; lines = pair.Cdr(lines) {
		clause := pair.Car(lines)
		question := pair.Car(clause)

		if sym.Is(question) && common.String(question) == "else" {
			return v.meaning(pair.Cadr(clause), e)
		}

		value := v.meaning(question, e)
		if Quitting(value) {
			return value
		}

		if truth.Value(value) {
			return v.meaning(pair.Cadr(clause), e)
		}
	}

	panic("cond: no clause matched")
}

func evalAnd(v *eval, c cell.I, e *env.T) cell.I {
	value := cell.I(boolean.True)

	for args := pair.Cdr(c); args != pair.Null; args = pair.Cdr(args) {
		value = v.meaning(pair.Car(args), e)
		if Quitting(value) || !truth.Value(value) {
			return value
		}
	}

	return value
}

func evalOr(v *eval, c cell.I, e *env.T) cell.I {
	value := cell.I(boolean.False)

	for args := pair.Cdr(c); args != pair.Null; args = pair.Cdr(args) {
		value = v.meaning(pair.Car(args), e)
		if Quitting(value) || truth.Value(value) {
			return value
		}
	}

	return value
}

func evalNot(v *eval, c cell.I, e *env.T) cell.I {
	args := validate.Fixed("not", pair.Cdr(c), 1, 1)

	value := v.meaning(args[0], e)
	if Quitting(value) {
		return value
	}

	return boolean.Bool(!truth.Value(value))
}

// An empty begin has no value to produce and fails loudly.
func evalBegin(v *eval, c cell.I, e *env.T) cell.I {
	body := pair.Cdr(c)
	if body == pair.Null {
		panic("begin: empty body")
	}

	var value cell.I

	for ; body != pair.Null; body = pair.Cdr(body) {
		value = v.meaning(pair.Car(body), e)
		if Quitting(value) {
			return value
		}
	}

	return value
}

// Modules load once per session. The loader supplies source text; the
// definitions in it are evaluated here, in the empty environment.
func evalRequire(v *eval, c cell.I, _ *env.T) cell.I {
	args := validate.Fixed("require", pair.Cdr(c), 1, 1)

	if !str.Is(args[0]) {
		panic("require: " + args[0].Name() + " is not a string")
	}

	name := common.String(args[0])

	if !v.loaded[name] {
		v.loaded[name] = true

		if value := v.load(name); value != nil {
			return value
		}
	}

	return args[0]
}

func evalQuit(_ *eval, c cell.I, _ *env.T) cell.I {
	validate.Fixed("quit", pair.Cdr(c), 0, 0)

	return Quit
}

// Arguments evaluate left to right, after the operator.
func application(v *eval, c cell.I, e *env.T) cell.I {
	op := v.meaning(pair.Car(c), e)
	if Quitting(op) {
		return op
	}

	args := pair.Null

	for rest := pair.Cdr(c); rest != pair.Null; rest = pair.Cdr(rest) {
		value := v.meaning(pair.Car(rest), e)
		if Quitting(value) {
			return value
		}

		args = pair.Cons(value, args)
	}

	return v.apply(op, list.Reverse(args))
}

// source returns the lexical location for symbols that carry one.
func source(c cell.I) *loc.T {
	if p, ok := c.(*sym.Plus); ok {
		return p.Source()
	}

	return nil
}
