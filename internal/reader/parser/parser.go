// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for lighthouse scheme.
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/token"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/boolean"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/list"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/num"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/pair"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/str"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/sym"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(cell.I)    // Function to call to emit a parsed expression.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits cells until there are no more tokens.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = errors.New(r)
		default:
			err = errors.New("unexpected error")
		}
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.check(p.expression()))
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) check(c cell.I) cell.I {
	if c == nil {
		t := p.peek()

		loc := t.Source()
		l := loc.Name
		x := strconv.Itoa(loc.Char)
		y := strconv.Itoa(loc.Line)

		panic(l + ":" + y + ":" + x + ": unexpected '" + t.Value() + "'")
	}

	return c
}

func (p *T) expect(cs ...token.Class) {
	t := p.peek()
	if t == nil {
		panic("unexpected end of input")
	}

	if t.Is(cs...) {
		p.consume()

		return
	}

	// Make a nice error message.
	n := len(cs)
	e := make([]string, n)

	for i, c := range cs[:n-1] {
		e[i] = c.String()
	}

	l := cs[n-1].String()
	if n > 2 { //nolint:gomnd
		l = ", or " + l
	} else if n > 1 {
		l = " or " + l
	}

	l = strings.Join(e, ", ") + l

	panic("expected " + l + ` got "` + t.Value() + `"`)
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <expression> ::= Symbol | DoubleQuoted | ''' <expression> | '(' <list> .
func (p *T) expression() cell.I {
	t := p.peek()

	switch {
	case t == nil:
		panic("unexpected end of input")

	case t.Is('('):
		p.consume()

		return p.list()

	case t.Is('\''):
		p.consume()

		return list.New(sym.New("quote"), p.check(p.expression()))

	case t.Is(token.DoubleQuoted):
		p.consume()

		v := t.Value()

		return str.New(v[1 : len(v)-1])

	case t.Is(token.Symbol):
		return p.atom(p.consume())
	}

	return nil
}

// <list> ::= ')' | <expression> <tail> .
func (p *T) list() cell.I {
	t := p.peek()
	if t == nil {
		panic("unexpected end of input")
	}

	if t.Is(')') {
		p.consume()

		return pair.Null
	}

	return pair.Cons(p.check(p.expression()), p.tail())
}

// <tail> ::= ')' | '.' <expression> ')' | <expression> <tail> .
func (p *T) tail() cell.I {
	t := p.peek()
	if t == nil {
		panic("unexpected end of input")
	}

	if t.Is(')') {
		p.consume()

		return pair.Null
	}

	if t.Is('.') {
		p.consume()

		c := p.check(p.expression())

		p.expect(')')

		return c
	}

	return pair.Cons(p.check(p.expression()), p.tail())
}

// An atom is a number, a boolean, or a symbol.
func (p *T) atom(t *token.T) cell.I {
	v := t.Value()

	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return num.Int(n)
	}

	if v == "#t" || v == "#f" {
		return boolean.New(v)
	}

	return sym.Token(t)
}
