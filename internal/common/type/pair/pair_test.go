package pair

import (
	"testing"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/literal"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/type/num"
)

func TestAccessors(t *testing.T) {
	// ((1 2) 3 4)
	l := Cons(
		Cons(num.Int(1), Cons(num.Int(2), Null)),
		Cons(num.Int(3), Cons(num.Int(4), Null)),
	)

	if s := literal.String(l); s != "((1 2) 3 4)" {
		t.Fatalf("Expected ((1 2) 3 4); got %s", s)
	}

	if v := Caar(l); !v.Equal(num.Int(1)) {
		t.Fatalf("Expected 1; got %v", v)
	}

	if v := Cadr(l); !v.Equal(num.Int(3)) {
		t.Fatalf("Expected 3; got %v", v)
	}

	if v := Cddr(l); !v.Equal(Cons(num.Int(4), Null)) {
		t.Fatalf("Expected (4); got %v", v)
	}

	if v := Caddr(l); !v.Equal(num.Int(4)) {
		t.Fatalf("Expected 4; got %v", v)
	}
}
