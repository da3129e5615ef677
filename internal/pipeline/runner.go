package pipeline

import (
	"fmt"

	"github.com/go-git/go-billy/v5"

	"github.com/backmassage/imgnorm/internal/check"
	"github.com/backmassage/imgnorm/internal/config"
	"github.com/backmassage/imgnorm/internal/display"
	"github.com/backmassage/imgnorm/internal/logging"
	"github.com/backmassage/imgnorm/internal/planner"
	"github.com/backmassage/imgnorm/internal/rename"
)

// Run is the top-level entry point. cfg.Root must already be absolute.
// The returned error is fatal: a missing root, a walk failure, a target
// collision, or a failed apply (see *rename.ApplyError).
func Run(cfg *config.Config, log *logging.Logger, fsys billy.Filesystem) (RunStats, error) {
	var stats RunStats

	log.Info("Scanning root: %s", cfg.Root)
	if err := check.Root(fsys, cfg.Root); err != nil {
		return stats, err
	}

	dirs, err := Collect(fsys, cfg.Root, log)
	if err != nil {
		return stats, fmt.Errorf("scan %s: %w", cfg.Root, err)
	}
	stats.Dirs = len(dirs)

	plan, err := planner.BuildPlan(cfg.Root, dirs, log)
	if err != nil {
		return stats, err
	}
	stats.SkippedDirs = len(plan.Skipped)
	stats.Images = plan.Images
	stats.Unchanged = plan.Unchanged
	stats.Planned = plan.Len()

	res, err := rename.Execute(fsys, plan, cfg.Apply, log)
	stats.Renamed = res.Renamed
	if err != nil {
		return stats, err
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Summary (%s):", cfg.Mode())
	log.Info("  Image directories: %d (%d skipped)", stats.Dirs, stats.SkippedDirs)
	log.Info("  Images considered: %d (%d already canonical)", stats.Images, stats.Unchanged)
	if cfg.Apply {
		log.Info("  Renamed: %s", display.FormatCount(stats.Renamed, "file"))
		return
	}
	log.Info("  Would rename: %s", display.FormatCount(stats.Pending(), "file"))
}
