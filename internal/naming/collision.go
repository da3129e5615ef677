package naming

import (
	"fmt"
	"path/filepath"
)

// CollisionError reports two source files that would be renamed onto the
// same destination. It is always fatal: the plan is abandoned before any
// filesystem change.
type CollisionError struct {
	Dir      string // directory holding the shared target
	Target   string // shared target file name
	Existing string // source file name that claimed Target first
	Incoming string // source file name that tried to claim it again
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("target name collision in %s: %s and %s -> %s",
		e.Dir, e.Incoming, e.Existing, e.Target)
}

// TargetRegistry tracks destination paths claimed by source paths during
// one planning pass. Unlike a dedup resolver it never invents an
// alternative name; a second owner is an error.
type TargetRegistry struct {
	owners map[string]string // destination path → source path that owns it
}

// NewTargetRegistry creates a ready-to-use registry.
func NewTargetRegistry() *TargetRegistry {
	return &TargetRegistry{owners: make(map[string]string)}
}

// Claim records source as the owner of dest. Re-claiming by the same source
// is a no-op. A claim by a different source returns a *CollisionError.
func (r *TargetRegistry) Claim(source, dest string) error {
	owner, exists := r.owners[dest]
	if exists && owner != source {
		return &CollisionError{
			Dir:      filepath.Dir(dest),
			Target:   filepath.Base(dest),
			Existing: filepath.Base(owner),
			Incoming: filepath.Base(source),
		}
	}
	r.owners[dest] = source
	return nil
}
