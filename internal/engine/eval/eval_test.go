package eval

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/literal"
	"github.com/ruby2elixir/lighthouse-scheme/internal/reader"
)

func TestSelfEvaluating(t *testing.T) {
	h := setup(t)

	for _, s := range []string{"0", "42", "-7", "#t", "#f", `"hello"`, `"a\nb"`} {
		h.wants(s, s)
	}
}

func TestQuoteReturnsDatumUnevaluated(t *testing.T) {
	h := setup(t)

	h.wants("(quote (car 1))", "(car 1)")
	h.wants("'(a (b c) . d)", "(a (b c) . d)")
	h.wants("'x", "x")
	h.wants("'()", "()")
}

func TestConsCarCdrRoundTrip(t *testing.T) {
	h := setup(t)

	h.wants("(car (cons 1 '(a)))", "1")
	h.wants("(cdr (cons 1 '(a)))", "(a)")
	h.wants("(cons 1 2)", "(1 . 2)")
	h.wants(`(cons "s" '())`, `("s")`)
}

func TestLambdaIdentity(t *testing.T) {
	h := setup(t)

	h.wants("((lambda (x) x) 5)", "5")
	h.wants(`((lambda (x) x) "s")`, `"s"`)
	h.wants("((lambda (x) x) '(a b))", "(a b)")
}

func TestClosureCapturesCreationEnvironment(t *testing.T) {
	h := setup(t)

	h.wants("(((lambda (x) (lambda (y) x)) 1) 2)", "1")
}

func TestParameterShadowsDefinition(t *testing.T) {
	h := setup(t)

	h.eval("(define x 1)")
	h.wants("((lambda (x) x) 2)", "2")
	h.wants("x", "1")
}

func TestDefineReturnsName(t *testing.T) {
	h := setup(t)

	h.wants("(define x 3)", "x")
}

func TestDefineAcceptsAnyExpression(t *testing.T) {
	h := setup(t)

	h.eval("(define head car)")
	h.wants("(head '(1 2))", "1")
}

func TestLaterDefinitionsVisibleThroughStore(t *testing.T) {
	h := setup(t)

	// f references g before g exists.
	h.eval("(define f (lambda (n) (g n)))")
	h.eval("(define g (lambda (n) (add1 n)))")

	h.wants("(f 1)", "2")
}

func TestCapturedFramesBeatLaterDefinitions(t *testing.T) {
	h := setup(t)

	h.eval("(define make (lambda (x) (lambda () x)))")
	h.eval("(define get (make 1))")
	h.eval("(define x 999)")

	h.wants("(get)", "1")
}

func TestDefineEvaluatesInEmptyEnvironment(t *testing.T) {
	h := setup(t)

	h.eval("((lambda (x) (define leak (lambda () x))) 5)")

	_, err := h.run("(leak)")
	if err == nil || !strings.Contains(err.Error(), "x is not defined") {
		t.Fatalf("got %v", err)
	}
}

func TestCond(t *testing.T) {
	h := setup(t)

	h.wants("(cond (else 42))", "42")
	h.wants("(cond (#f 1) (#t 2))", "2")

	// Only #f is false.
	h.wants("(cond (0 1) (else 2))", "1")
	h.wants("(cond ('a 1) (else 2))", "1")

	h.fails("(cond (#f 1))", "no clause matched")
}

func TestAndOrShortCircuit(t *testing.T) {
	h := setup(t)

	// The (car 1) would fail if evaluated.
	h.wants("(and #f (car 1))", "#f")
	h.wants("(or #t (car 1))", "#t")

	h.wants("(and)", "#t")
	h.wants("(or)", "#f")
	h.wants("(and 1 2)", "2")
	h.wants("(or #f 7)", "7")
}

func TestNot(t *testing.T) {
	h := setup(t)

	h.wants("(not #f)", "#t")
	h.wants("(not 3)", "#f")
	h.fails("(not)", "expected 1 argument")
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.wants("(+ 1 2 3)", "6")
	h.wants("(+)", "0")
	h.wants("(* 2 3 4)", "24")
	h.wants("(*)", "1")

	// Subtraction reduces right to left: 10-(3-2).
	h.wants("(- 10 3 2)", "9")
	h.wants("(- 5)", "5")

	h.wants("(add1 41)", "42")
	h.wants("(sub1 0)", "-1")
	h.wants("(> 3 2)", "#t")
	h.wants("(< 3 2)", "#f")

	h.fails("(-)", "expected 1 argument, passed 0")
	h.fails("(> 1)", "expected 2 arguments")
	h.fails("(+ 1 'a)", "symbol cannot be used in a numeric context")
}

func TestEqIsStructural(t *testing.T) {
	h := setup(t)

	h.wants("(eq? '(1 (2)) '(1 (2)))", "#t")
	h.wants(`(eq? "a" "a")`, "#t")
	h.wants("(eq? 1 2)", "#f")
	h.wants("(eq? 'a 'a)", "#t")
	h.wants("(eq? '() '())", "#t")
	h.wants("(eq? '(a) 'a)", "#f")
}

func TestPredicates(t *testing.T) {
	h := setup(t)

	h.wants("(atom? 'a)", "#t")
	h.wants("(atom? 3)", "#t")
	h.wants("(atom? '())", "#f")
	h.wants("(atom? '(a))", "#f")
	h.wants(`(atom? "s")`, "#f")

	h.wants("(null? '())", "#t")
	h.wants("(null? '(a))", "#f")
	h.wants("(null? 5)", "#f")

	h.wants("(number? 3)", "#t")
	h.wants("(number? 'a)", "#f")

	h.wants("(zero? 0)", "#t")
	h.wants("(zero? 1)", "#f")
	h.wants("(zero? 'a)", "#f")
}

func TestBegin(t *testing.T) {
	h := setup(t)

	h.wants("(begin 1 2 3)", "3")
	h.fails("(begin)", "empty body")
}

func TestQuitPropagates(t *testing.T) {
	h := setup(t)

	for _, in := range []string{
		"(quit)",
		"(cons 1 (quit))",
		"(define x (quit))",
		"(and #t (quit))",
		"(or #f (quit))",
		"(begin 1 (quit) 2)",
		"(cond ((quit) 1) (else 2))",
		"((lambda (x) x) (quit))",
	} {
		v, err := h.run(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}

		if !Quitting(v) {
			t.Fatalf("%s evaluates to %s", in, literal.String(v))
		}
	}

	// x was never bound; the quit stopped the define.
	h.fails("x", "x is not defined")
}

func TestQuitStopsLaterExpressions(t *testing.T) {
	h := setup(t)

	// The (car 1) would fail if the program continued past the quit.
	v, err := h.run("(define x 1) (quit) (car 1)")
	if err != nil {
		t.Fatal(err)
	}

	if !Quitting(v) {
		t.Fatalf("got %s", literal.String(v))
	}
}

func TestQuitTakesNoArguments(t *testing.T) {
	h := setup(t)

	h.fails("(quit 1)", "expected 0 arguments")
}

func TestUnknownNameFails(t *testing.T) {
	h := setup(t)

	_, err := h.run("(car y)")
	if err == nil {
		t.Fatal("expected an error")
	}

	var lookup *LookupError
	if !errors.As(err, &lookup) {
		t.Fatalf("got %T: %v", err, err)
	}

	if !strings.Contains(err.Error(), "y is not defined") {
		t.Fatalf("got %v", err)
	}

	if !strings.HasPrefix(err.Error(), "test:") {
		t.Fatalf("no location: %v", err)
	}
}

func TestPrimitiveNamesCannotBeShadowed(t *testing.T) {
	h := setup(t)

	// The parameter binding is invisible; zero? stays primitive.
	h.wants("((lambda (zero?) (zero? 0)) 5)", "#t")
}

func TestApplyNonProcedureFails(t *testing.T) {
	h := setup(t)

	h.fails("(1 2)", "number cannot be applied")
	h.fails(`("s")`, "string cannot be applied")
}

func TestEmptyApplicationFails(t *testing.T) {
	h := setup(t)

	h.fails("()", "cannot evaluate an empty application")
}

func TestArityMismatchFails(t *testing.T) {
	h := setup(t)

	_, err := h.run("((lambda (x) x) 1 2)")
	if err == nil {
		t.Fatal("expected an error")
	}

	var arity *ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("got %T: %v", err, err)
	}

	if err.Error() != "expected 1 argument, passed 2" {
		t.Fatalf("got %v", err)
	}

	h.fails("((lambda (x y) x) 1)", "expected 2 arguments, passed 1")
}

func TestCarOfNonPairFails(t *testing.T) {
	h := setup(t)

	h.fails("(car 5)", "number is not a cons")
	h.fails("(car '())", "the empty list is not a cons")
	h.fails("(cdr '())", "the empty list is not a cons")
}

func TestDisplay(t *testing.T) {
	h := setup(t)

	h.writes("(display 42)", "42")
	h.writes("(display 'sym)", "sym")
	h.writes("(display '(1 2))", "(1 2)")
	h.writes(`(display "plain")`, "plain")
	h.writes(`(display "a\nb")`, "a\nb")
	h.writes(`(display "tab\te")`, "tab\te")
}

func TestRequireLoadsOnce(t *testing.T) {
	h := setup(t)

	h.wants(`(require "util")`, `"util"`)
	h.wants("(twice 4)", "8")

	h.eval(`(require "util")`)

	if h.loader.loads != 1 {
		t.Fatalf("module loaded %d times", h.loader.loads)
	}
}

func TestRequireRejectsNonStrings(t *testing.T) {
	h := setup(t)

	h.fails("(require util)", "is not a string")
	h.fails("(require)", "expected 1 argument")
}

func TestRequireMissingModuleFails(t *testing.T) {
	h := setup(t)

	h.fails(`(require "nope")`, "cannot find module nope")
}

func TestRockBand(t *testing.T) {
	h := setup(t)

	h.eval(`
		(define member?
		  (lambda (a lat)
		    (cond ((null? lat) #f)
		          ((eq? (car lat) a) #t)
		          (else (member? a (cdr lat))))))
	`)

	h.eval(`
		(define is-rock-band?
		  (lambda (band-name)
		    (and (member? (quote a) band-name)
		         (member? (quote c) band-name)
		         (member? (quote d) band-name))))
	`)

	h.wants("(is-rock-band? (quote (a c d c)))", "#t")
	h.wants("(is-rock-band? (quote (a b b a)))", "#f")
}

func TestRecursionThroughStore(t *testing.T) {
	h := setup(t)

	h.eval(`
		(define fact
		  (lambda (n)
		    (cond ((zero? n) 1)
		          (else (* n (fact (sub1 n)))))))
	`)

	h.wants("(fact 10)", "3628800")
}

// Helpers.

type testStore struct {
	m map[string]cell.I
}

func (s *testStore) Get(k string) (cell.I, bool) {
	v, ok := s.m[k]

	return v, ok
}

func (s *testStore) Put(k string, v cell.I) {
	s.m[k] = v
}

type countingLoader struct {
	m     map[string]string
	loads int
}

func (l *countingLoader) Source(name string) (string, error) {
	l.loads++

	src, ok := l.m[name]
	if !ok {
		return "", errors.New("cannot find module " + name)
	}

	return src, nil
}

type harness struct {
	t      *testing.T
	v      *T
	out    *bytes.Buffer
	loader *countingLoader
}

func setup(t *testing.T) *harness {
	t.Helper()

	out := &bytes.Buffer{}
	loader := &countingLoader{m: map[string]string{
		"util": "(define twice (lambda (n) (+ n n)))",
	}}

	return &harness{
		t:      t,
		v:      New(&testStore{m: map[string]cell.I{}}, loader, out),
		out:    out,
		loader: loader,
	}
}

// run parses src and evaluates each expression in the empty environment.
func (h *harness) run(src string) (cell.I, error) {
	h.t.Helper()

	program, err := reader.Program("test", src)
	if err != nil {
		h.t.Fatalf("parse: %v", err)
	}

	var value cell.I

	for _, c := range program {
		value, err = h.v.Value(c)
		if err != nil {
			return nil, err
		}

		if Quitting(value) {
			break
		}
	}

	return value, nil
}

func (h *harness) eval(src string) cell.I {
	h.t.Helper()

	v, err := h.run(src)
	if err != nil {
		h.t.Fatalf("%s: %v", src, err)
	}

	return v
}

func (h *harness) wants(src, want string) {
	h.t.Helper()

	if v := literal.String(h.eval(src)); v != want {
		h.t.Fatalf("%s evaluates to %s, want %s", src, v, want)
	}
}

func (h *harness) writes(src, want string) {
	h.t.Helper()

	h.out.Reset()

	if v := literal.String(h.eval(src)); v != "()" {
		h.t.Fatalf("%s evaluates to %s", src, v)
	}

	if s := h.out.String(); s != want {
		h.t.Fatalf("%s wrote %q, want %q", src, s, want)
	}
}

func (h *harness) fails(src, want string) {
	h.t.Helper()

	_, err := h.run(src)
	if err == nil {
		h.t.Fatalf("%s: expected an error", src)
	}

	if !strings.Contains(err.Error(), want) {
		h.t.Fatalf("%s: got %q, want %q", src, err, want)
	}
}
