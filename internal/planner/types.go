package planner

import "fmt"

// ImageDir is one directory found by traversal together with the direct
// child file names that carry a recognized image extension. Files are in
// whatever order the walker produced; the builder sorts them.
type ImageDir struct {
	Dir   string
	Files []string
}

// Operation is a single pending rename. Both paths are absolute.
type Operation struct {
	Source string
	Dest   string
}

// Skip records a directory excluded from the plan and why.
type Skip struct {
	Dir string
	Err error
}

// Plan is the ordered list of operations handed to the executor. Order is
// significant: the executor derives temporary names from positions.
type Plan struct {
	Ops []Operation

	// Bookkeeping for the run summary; not consumed by the executor.
	Skipped   []Skip
	Images    int // image files considered in planned directories
	Unchanged int // files already carrying their canonical name
}

// Len returns the number of operations.
func (p *Plan) Len() int { return len(p.Ops) }

// Empty reports whether nothing needs renaming.
func (p *Plan) Empty() bool { return len(p.Ops) == 0 }

// Sources returns the set of source paths in the plan.
func (p *Plan) Sources() map[string]bool {
	out := make(map[string]bool, len(p.Ops))
	for _, op := range p.Ops {
		out[op.Source] = true
	}
	return out
}

// LayoutError reports a directory that is neither <root>/<model> nor
// <root>/<parent>/<model>[/...].
type LayoutError struct {
	Dir string
	Rel string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("not parent/model structure: %s", e.Dir)
}
