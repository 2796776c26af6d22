package scene

import (
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Write a file through a temporary sibling that is renamed over path once fill
// succeeds. Filesystem failures come back as *OutputError carrying path.
func writeAtomic(fs afero.Fs, path string, fill func(w io.Writer) error) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(fs, dir, "."+name+".*.tmp")
	if err != nil {
		return &OutputError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		var outputErr *OutputError
		if errors.As(err, &outputErr) && outputErr.Path == "" {
			outputErr.Path = path
		}
		return err
	}

	if err := fill(tmp); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(&OutputError{Path: path, Err: err})
	}
	if err := fs.Rename(tmpName, path); err != nil {
		_ = fs.Remove(tmpName)
		return &OutputError{Path: path, Err: err}
	}
	return nil
}
