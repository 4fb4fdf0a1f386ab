// Released under an MIT license. See LICENSE.

// Package hash provides lighthouse's name to value mapping type.
package hash

import (
	"sync"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/reference"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/slot"
)

// T (hash) maps names to values.
type T struct {
	sync.RWMutex
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Names returns every name in the hash h.
func (h *hash) Names() []string {
	h.RLock()
	defer h.RUnlock()

	names := make([]string, 0, len(h.m))

	for k := range h.m {
		names = append(names, k)
	}

	return names
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	h.Lock()
	defer h.Unlock()

	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.m[k] = slot.New(v)
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}
