package planner

import (
	"path/filepath"
	"sort"

	"github.com/backmassage/imgnorm/internal/naming"
)

// Logger is the minimal logging interface the builder needs for skip
// diagnostics. Defined here so planner stays testable with a fake.
type Logger interface {
	Warn(string, ...interface{})
}

// Namer composes a target file name for one slot.
type Namer func(parent string, model naming.ModelName, idx int, ext string) string

// Builder turns collector output into a rename plan.
type Builder struct {
	Root   string
	Log    Logger
	Target Namer // defaults to naming.TargetName
}

// NewBuilder returns a Builder for root using the canonical target names.
func NewBuilder(root string, log Logger) *Builder {
	return &Builder{Root: root, Log: log, Target: naming.TargetName}
}

// BuildPlan is shorthand for NewBuilder(root, log).Build(dirs).
func BuildPlan(root string, dirs []ImageDir, log Logger) (*Plan, error) {
	return NewBuilder(root, log).Build(dirs)
}

// Build produces the rename plan for dirs, in the given directory order.
//
// Per directory:
//  1. Resolve (parent, model) from the path relative to root; skip on an
//     unsupported layout
//  2. Canonicalize the model name; skip the directory if unknown
//  3. Sort file names bytewise and number them from 1
//  4. Files already named for their slot claim that name first
//  5. Every other file claims its target; a second owner aborts the build
//
// Skips are logged as warnings and recorded in Plan.Skipped. The only error
// returned is a *naming.CollisionError.
func (b *Builder) Build(dirs []ImageDir) (*Plan, error) {
	target := b.Target
	if target == nil {
		target = naming.TargetName
	}

	plan := &Plan{}
	registry := naming.NewTargetRegistry()

	for _, d := range dirs {
		parentRaw, modelRaw, err := resolveLayout(b.Root, d.Dir)
		if err != nil {
			b.warn("Skipping directory (not parent/model structure): %s", d.Dir)
			plan.Skipped = append(plan.Skipped, Skip{Dir: d.Dir, Err: err})
			continue
		}

		parent := naming.ParentLabel(parentRaw)
		model, err := naming.CanonicalizeModel(modelRaw)
		if err != nil {
			b.warn("%v; skipping directory %s", err, d.Dir)
			plan.Skipped = append(plan.Skipped, Skip{Dir: d.Dir, Err: err})
			continue
		}

		ops, err := planDir(d, parent, model, target, registry, plan)
		if err != nil {
			return nil, err
		}
		plan.Ops = append(plan.Ops, ops...)
	}
	return plan, nil
}

type slot struct {
	name   string
	target string
}

// planDir numbers the images of one directory and returns its operations
// in increasing sequence order.
func planDir(
	d ImageDir,
	parent string,
	model naming.ModelName,
	target Namer,
	registry *naming.TargetRegistry,
	plan *Plan,
) ([]Operation, error) {
	files := append([]string(nil), d.Files...)
	sort.Strings(files)

	slots := make([]slot, 0, len(files))
	for i, name := range files {
		// The sequence number counts every listed file so that numbering
		// matches the sorted listing even if a non-image slipped through.
		if !naming.IsImage(name) {
			continue
		}
		slots = append(slots, slot{
			name:   name,
			target: target(parent, model, i+1, filepath.Ext(name)),
		})
	}
	plan.Images += len(slots)

	// Already-canonical files claim their names before anything else so
	// that a later slot cannot be planned onto them.
	for _, s := range slots {
		if s.name != s.target {
			continue
		}
		p := filepath.Join(d.Dir, s.name)
		if err := registry.Claim(p, p); err != nil {
			return nil, err
		}
		plan.Unchanged++
	}

	var ops []Operation
	for _, s := range slots {
		if s.name == s.target {
			continue
		}
		src := filepath.Join(d.Dir, s.name)
		dst := filepath.Join(d.Dir, s.target)
		if err := registry.Claim(src, dst); err != nil {
			return nil, err
		}
		ops = append(ops, Operation{Source: src, Dest: dst})
	}
	return ops, nil
}

func (b *Builder) warn(format string, args ...interface{}) {
	if b.Log != nil {
		b.Log.Warn(format, args...)
	}
}
