// Released under an MIT license. See LICENSE.

// Package store provides the process wide table of defined names.
package store

import (
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/hash"
)

// T (store) holds every name created by define. Lookups that exhaust an
// environment chain fall through to a store.
type T struct {
	m *hash.T
}

type store = T

// New creates an empty store.
func New() *T {
	return &T{m: hash.New()}
}

// Get returns the value bound to the name k, if any.
func (s *store) Get(k string) (cell.I, bool) {
	r := s.m.Get(k)
	if r == nil {
		return nil, false
	}

	return r.Get(), true
}

// Names returns every defined name.
func (s *store) Names() []string {
	return s.m.Names()
}

// Put binds the name k to the value v, replacing any previous binding.
func (s *store) Put(k string, v cell.I) {
	s.m.Set(k, v)
}

// Size returns the number of definitions.
func (s *store) Size() int {
	return s.m.Size()
}
