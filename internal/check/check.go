// Package check provides the pre-pipeline validation of the scan root.
package check

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-git/go-billy/v5"
)

// Sentinel errors returned by Root.
var (
	ErrRootNotFound = errors.New("root directory not found")
	ErrRootNotDir   = errors.New("root is not a directory")
)

// Root verifies that root exists and is a directory. Any other stat failure
// (permissions, I/O) is returned wrapped as-is.
func Root(fsys billy.Filesystem, root string) error {
	fi, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return fmt.Errorf("stat root %s: %w", root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}
	return nil
}
