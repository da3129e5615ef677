// Package naming turns raw directory names into the pieces of a canonical
// image file name and guards against two files claiming the same name.
//
//   - CanonicalizeModel: raw model directory → whitelisted [ModelName]
//     (alphanumeric, case-insensitive match; "Nano Banana*" alias).
//   - ParentLabel: raw parent directory → label (spaces to underscores).
//   - TargetName: <ParentLabel>-<ModelName>-<seq><ext>.
//   - IsImage: recognized image extension check.
//   - TargetRegistry: in-run destination owner map; collisions are fatal.
package naming
