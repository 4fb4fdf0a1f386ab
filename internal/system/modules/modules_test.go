package modules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbedded(t *testing.T) {
	m := New(nil)

	s, err := m.Source("lists")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(s, "(define member?") {
		t.Fatalf("Unexpected source for lists: %s", s)
	}

	s, err = m.Source("tuples")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(s, "(define tup?") {
		t.Fatalf("Unexpected source for tuples: %s", s)
	}
}

func TestMissing(t *testing.T) {
	m := New(nil)

	_, err := m.Source("no-such-module")
	if err == nil || !strings.Contains(err.Error(), "cannot find module no-such-module") {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestIncludeDirectory(t *testing.T) {
	dir := t.TempDir()

	write(t, filepath.Join(dir, "extra.scm"), "(define life 42)\n")
	write(t, filepath.Join(dir, "bare"), "(define bare 1)\n")

	m := New([]string{dir})

	s, err := m.Source("extra")
	if err != nil || !strings.Contains(s, "life") {
		t.Fatalf("Unexpected source for extra: %s (%v)", s, err)
	}

	// A module file does not need the .scm suffix.
	s, err = m.Source("bare")
	if err != nil || !strings.Contains(s, "bare") {
		t.Fatalf("Unexpected source for bare: %s (%v)", s, err)
	}
}

func TestSearchPath(t *testing.T) {
	dir := t.TempDir()

	write(t, filepath.Join(dir, "onpath.scm"), "(define onpath 1)\n")

	t.Setenv("LIGHTHOUSE_PATH", dir)

	m := New(nil)

	s, err := m.Source("onpath")
	if err != nil || !strings.Contains(s, "onpath") {
		t.Fatalf("Unexpected source for onpath: %s (%v)", s, err)
	}
}

func TestEmbeddedWinsOverInclude(t *testing.T) {
	dir := t.TempDir()

	write(t, filepath.Join(dir, "lists.scm"), "(define shadow 1)\n")

	m := New([]string{dir})

	s, err := m.Source("lists")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if strings.Contains(s, "shadow") {
		t.Fatal("Expected the embedded module to win")
	}
}

func write(t *testing.T, name, text string) {
	t.Helper()

	if err := os.WriteFile(name, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}
}
