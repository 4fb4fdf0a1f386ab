// Released under an MIT license. See LICENSE.

// Package sym provides lighthouse's symbol cell type.
package sym

import (
	"sync"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) wraps Go's string type. Symbols are interned.
type T string

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	return symnew(v)
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func symnew(v string) *sym {
	p, ok := symtry(v)
	if !ok {
		cachel.Lock()
		defer cachel.Unlock()

		if p, ok = cache[v]; ok {
			return p
		}

		s := sym(v)
		p = &s

		cache[v] = p
	}

	return p
}

func symtry(v string) (p *sym, ok bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	p, ok = cache[v]

	return
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
