package main

import (
	"bytes"
	"testing"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/literal"
	"github.com/ruby2elixir/lighthouse-scheme/internal/engine"
	"github.com/ruby2elixir/lighthouse-scheme/internal/system/modules"
	"github.com/ruby2elixir/lighthouse-scheme/internal/system/store"
)

func TestInput(t *testing.T) {
	out := &bytes.Buffer{}

	e := engine.New(store.New(), modules.New(nil), out)
	if err := e.Boot(); err != nil {
		t.Fatalf("Unexpected error booting: %v", err)
	}

	v, err := e.Run("test", `
(define rock-band
  (lambda (drummer singer)
    (cons drummer (cons singer '()))))

(define fact
  (lambda (n)
    (cond ((zero? n) 1)
          (else (* n (fact (sub1 n)))))))

(display (rock-band 'neil 'geddy))

(fact 5)
`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s := literal.String(v); s != "120" {
		t.Fatalf("Expected 120; got %s", s)
	}

	if s := out.String(); s != "(neil geddy)" {
		t.Fatalf("Expected (neil geddy); got %q", s)
	}
}
