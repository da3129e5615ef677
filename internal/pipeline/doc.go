// Package pipeline orchestrates one run: root check, image collection,
// plan construction, plan report/apply, and the closing summary.
//
//   - Collect(fsys, root, log) → []planner.ImageDir
//     Recursive walk; keeps directories with at least one image and
//     skips unreadable subtrees with a warning.
//   - Run(cfg, log, fsys) → RunStats, error
//     collect → planner.BuildPlan → rename.Execute → summary. Errors are
//     fatal and returned; per-directory problems are warnings.
package pipeline
