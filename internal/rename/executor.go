package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/backmassage/imgnorm/internal/display"
	"github.com/backmassage/imgnorm/internal/planner"
)

// Logger is the minimal logging interface needed by Execute.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
}

// Result summarizes an Execute call.
type Result struct {
	Planned int
	Renamed int
	Applied bool
}

// TempName returns the staging name for the operation at plan position
// index. It depends only on its inputs, and distinct indexes never produce
// the same name, so staged files cannot collide with each other.
func TempName(index int, base string) string {
	return fmt.Sprintf("__tmp_renaming_%d__%s", index, base)
}

// TempPath places TempName next to src.
func TempPath(index int, src string) string {
	return filepath.Join(filepath.Dir(src), TempName(index, filepath.Base(src)))
}

// Execute reports plan and, when apply is set, performs it on fsys.
// The full plan is always logged before anything is touched.
func Execute(fsys billy.Filesystem, plan *planner.Plan, apply bool, log Logger) (Result, error) {
	res := Result{Planned: plan.Len()}

	if plan.Empty() {
		log.Info("No files to rename.")
		return res, nil
	}

	log.Info("Planned renames: %s", display.FormatCount(plan.Len(), "file"))
	for _, op := range plan.Ops {
		log.Info("%s", display.FormatRename(op.Source, op.Dest))
	}

	if !apply {
		log.Info("")
		log.Info("Dry run only; no files were renamed.")
		return res, nil
	}

	n, err := Apply(fsys, plan)
	res.Renamed = n
	if err != nil {
		return res, err
	}
	res.Applied = true
	log.Info("")
	log.Success("Rename applied successfully.")
	return res, nil
}

// Apply runs preflight, stage and finalize. It returns the number of
// operations that reached their destination.
func Apply(fsys billy.Filesystem, plan *planner.Plan) (int, error) {
	if err := preflight(fsys, plan); err != nil {
		return 0, err
	}

	done := 0
	temps := make([]string, len(plan.Ops))

	for i, op := range plan.Ops {
		tmp := TempPath(i, op.Source)
		if err := fsys.Rename(op.Source, tmp); err != nil {
			return 0, &ApplyError{Phase: PhaseStage, Index: i, From: op.Source, To: tmp, Done: done, Err: err}
		}
		temps[i] = tmp
		done++
	}

	finalized := 0
	for i, op := range plan.Ops {
		if err := fsys.MkdirAll(filepath.Dir(op.Dest), 0o755); err != nil {
			return finalized, &ApplyError{Phase: PhaseFinalize, Index: i, From: temps[i], To: op.Dest, Done: done, Err: err}
		}
		if err := fsys.Rename(temps[i], op.Dest); err != nil {
			return finalized, &ApplyError{Phase: PhaseFinalize, Index: i, From: temps[i], To: op.Dest, Done: done, Err: err}
		}
		done++
		finalized++
	}
	return finalized, nil
}

// preflight rejects plans that would lose data before anything moves.
func preflight(fsys billy.Filesystem, plan *planner.Plan) error {
	sources := plan.Sources()
	// Case-insensitive filesystems report "x.PNG" when asked for "x.png".
	// Such a destination is allowed only if it is the same file as a source
	// that differs from it in case alone.
	folded := make(map[string][]string, len(sources))
	for s := range sources {
		k := strings.ToLower(s)
		folded[k] = append(folded[k], s)
	}

	for i, op := range plan.Ops {
		fail := func(to string, err error) error {
			return &ApplyError{Phase: PhasePreflight, Index: i, From: op.Source, To: to, Err: err}
		}

		if _, err := fsys.Lstat(op.Source); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fail(op.Dest, ErrSourceMissing)
			}
			return fail(op.Dest, err)
		}

		tmp := TempPath(i, op.Source)
		if exists, err := pathExists(fsys, tmp); err != nil {
			return fail(tmp, err)
		} else if exists {
			return fail(tmp, ErrTempExists)
		}

		if sources[op.Dest] {
			continue
		}
		if exists, err := pathExists(fsys, op.Dest); err != nil {
			return fail(op.Dest, err)
		} else if exists && !sameAsAny(fsys, op.Dest, folded[strings.ToLower(op.Dest)]) {
			return fail(op.Dest, ErrDestExists)
		}
	}
	return nil
}

func pathExists(fsys billy.Filesystem, p string) (bool, error) {
	_, err := fsys.Lstat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// sameAsAny reports whether p and one of candidates are the same file.
func sameAsAny(fsys billy.Filesystem, p string, candidates []string) bool {
	if len(candidates) == 0 {
		return false
	}
	pi, err := fsys.Lstat(p)
	if err != nil {
		return false
	}
	for _, c := range candidates {
		ci, err := fsys.Lstat(c)
		if err == nil && os.SameFile(pi, ci) {
			return true
		}
	}
	return false
}
