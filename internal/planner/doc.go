// Package planner builds the rename plan: for every image directory it
// resolves the parent/model layout, canonicalizes both names, numbers the
// files deterministically, and emits (source, destination) operations.
//
// Implemented:
//   - ImageDir, Operation, Plan, Skip, LayoutError (types.go)
//   - resolveLayout: the two supported directory shapes (layout.go)
//   - Builder / BuildPlan: per-directory sequencing with target claims and
//     fatal collision detection (planner.go)
//
// Nothing here touches the filesystem; the plan is pure data handed to the
// rename package.
package planner
