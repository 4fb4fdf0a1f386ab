package reader

import (
	"strings"

	"github.com/ruby2elixir/lighthouse-scheme/internal/common/interface/cell"
	"github.com/ruby2elixir/lighthouse-scheme/internal/common/struct/token"
	"github.com/ruby2elixir/lighthouse-scheme/internal/reader/lexer"
	"github.com/ruby2elixir/lighthouse-scheme/internal/reader/parser"
)

// T (reader) encapsulates the lighthouse lexer and parser.
type T struct {
	e chan error
	i chan string
	o chan []cell.I
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{
		e: make(chan error),
		i: make(chan string),
		o: make(chan []cell.I),
		s: lexer.New(name),
	}

	var v []cell.I

	r.p = parser.New(func(c cell.I) {
		v = append(v, c)
	}, func() *token.T {
		t := r.s.Token()

		for t == nil {
			r.o <- v

			v = nil

			if !r.next() {
				close(r.o)

				return nil
			}

			t = r.s.Token()
		}

		return t
	})

	go r.start()

	return r
}

// Close terminates the reader and waits for it to wind down. A reader
// whose Scan returned an error has already terminated and must not be
// closed; it is simply dropped.
func (r *reader) Close() {
	close(r.i)

	for range r.o {
	}

	<-r.e
}

// Scan reads the line and returns the expressions the line completes.
// An empty batch means the reader is waiting for more input. If scan
// encounters an error it returns the error and the reader must be
// replaced; a reader does not continue past an error.
func (r *reader) Scan(line string) (c []cell.I, err error) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	r.i <- line

	select {
	case c = <-r.o:
	case err = <-r.e:
	}

	return c, err
}

func (r *reader) next() bool {
	line, ok := <-r.i
	if ok {
		r.s.Scan(line)
	}

	return ok
}

func (r *reader) start() {
	r.next()

	r.e <- r.p.Parse()
	close(r.e)
}

// Program parses source as a complete sequence of expressions.
// The name is used to label locations in error messages.
func Program(name, source string) ([]cell.I, error) {
	if !strings.HasSuffix(source, "\n") {
		source += "\n"
	}

	s := lexer.New(name)
	s.Scan(source)

	var v []cell.I

	p := parser.New(func(c cell.I) {
		v = append(v, c)
	}, s.Token)

	if err := p.Parse(); err != nil {
		return nil, err
	}

	return v, nil
}
