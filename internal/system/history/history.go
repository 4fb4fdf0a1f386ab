// Package history saves and restores the line history for interactive
// sessions. The read and write callbacks match the signatures of liner's
// ReadHistory and WriteHistory methods.
package history

import (
	"io"
	"os"
	"path"
)

// Load reads saved history with the callback read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		return err
	}

	return f.Close()
}

// Save writes current history with the callback write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		return err
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(path.Join(os.Getenv("HOME"), ".lighthouse_history"))
}
