package planner

import (
	"path/filepath"
	"strings"
)

// resolveLayout returns the raw parent and model directory names for dir.
//
//	<root>/<parent>/<model>[/deeper...]  → (parent, model)
//	<root>/<model>                       → (base(root), model)
//	<root>                               → unsupported
//
// Directories outside root are unsupported as well.
func resolveLayout(root, dir string) (parentRaw, modelRaw string, err error) {
	rel, relErr := filepath.Rel(root, dir)
	if relErr != nil {
		return "", "", &LayoutError{Dir: dir, Rel: rel}
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", &LayoutError{Dir: dir, Rel: rel}
	}

	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) >= 2 {
		return parts[0], parts[1], nil
	}
	return filepath.Base(root), parts[0], nil
}
