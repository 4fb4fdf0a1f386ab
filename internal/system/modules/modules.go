// Released under an MIT license. See LICENSE.

// Package modules locates the source for modules named by require.
package modules

import (
	"embed"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

//go:embed lib/*.scm
var lib embed.FS //nolint:gochecknoglobals

// T (modules) resolves module names to source text.
type T struct {
	dirs []string // Directories to search, in order.
}

type modules = T

// New creates a module loader. Modules are resolved against the
// embedded standard library, then each include directory, then each
// entry of the LIGHTHOUSE_PATH environment variable, and finally the
// current directory.
func New(include []string) *T {
	dirs := make([]string, 0, len(include)+1)
	dirs = append(dirs, include...)

	if path := os.Getenv("LIGHTHOUSE_PATH"); path != "" {
		for _, dir := range strings.Split(path, string(os.PathListSeparator)) {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}

	return &T{dirs: append(dirs, ".")}
}

// Source returns the source text for the module named name.
// A module file can be named either name or name.scm.
func (m *modules) Source(name string) (string, error) {
	if b, err := lib.ReadFile("lib/" + name + ".scm"); err == nil {
		return string(b), nil
	}

	for _, dir := range m.dirs {
		for _, p := range []string{name, name + ".scm"} {
			if b, err := os.ReadFile(filepath.Join(dir, p)); err == nil {
				return string(b), nil
			}
		}
	}

	return "", errors.New("cannot find module " + name)
}
