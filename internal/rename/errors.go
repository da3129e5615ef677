package rename

import (
	"errors"
	"fmt"
)

// Phase identifies where an apply failed.
type Phase int

const (
	PhasePreflight Phase = iota // before any mutation
	PhaseStage                  // source → temporary name
	PhaseFinalize               // temporary name → destination
)

func (p Phase) String() string {
	switch p {
	case PhasePreflight:
		return "preflight"
	case PhaseStage:
		return "phase 1 (temporary names)"
	case PhaseFinalize:
		return "phase 2 (final names)"
	}
	return fmt.Sprintf("phase %d", int(p))
}

// Sentinel causes reported by preflight.
var (
	ErrSourceMissing = errors.New("source file does not exist")
	ErrTempExists    = errors.New("temporary path already exists")
	ErrDestExists    = errors.New("destination exists and is not renamed by this plan")
)

// ApplyError is a fatal failure while applying a plan.
type ApplyError struct {
	Phase Phase
	Index int    // plan position of the failing operation
	From  string // path being moved (or checked, in preflight)
	To    string
	Done  int // renames completed before the failure
	Err   error
}

// Partial reports whether the filesystem was changed before the failure.
func (e *ApplyError) Partial() bool { return e.Done > 0 }

func (e *ApplyError) Error() string {
	state := "no changes made"
	if e.Partial() {
		state = fmt.Sprintf("changes partially made (%d rename(s) done; temporary __tmp_renaming_ names may remain)", e.Done)
	}
	return fmt.Sprintf("%s failed at operation %d (%s -> %s): %v; %s",
		e.Phase, e.Index, e.From, e.To, e.Err, state)
}

func (e *ApplyError) Unwrap() error { return e.Err }
