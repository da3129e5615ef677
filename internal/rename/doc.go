// Package rename applies a rename plan to a filesystem.
//
// Application is two-phase so that overlapping operations (A→B with B→C,
// or a swap A↔B) behave as if every rename happened at once:
//
//   - Preflight: sources exist, temporary paths are free, and no
//     destination would overwrite a file outside the plan.
//   - Stage: every source moves to __tmp_renaming_<index>__<base> in its
//     own directory, in plan order.
//   - Finalize: every staged file moves to its destination, in plan order,
//     creating destination directories as needed.
//
// A failure in stage or finalize stops immediately. Nothing is rolled back;
// the returned *ApplyError says how many renames had already happened.
package rename
