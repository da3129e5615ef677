package naming

import (
	"fmt"
	"strings"
)

// ParentLabel converts a raw parent directory name into the label embedded
// in output names. Only spaces change (to underscores); periods, hyphens
// and all other characters pass through.
//
//	"Claude 2.1 Maya Coorporate" -> "Claude_2.1_Maya_Coorporate"
func ParentLabel(raw string) string {
	return strings.ReplaceAll(raw, " ", "_")
}

// TargetName composes the canonical file name for the idx-th (1-based)
// image of a directory. ext keeps its leading dot and is lower-cased.
//
//	<ParentLabel>-<ModelName>-<idx><ext>
func TargetName(parent string, model ModelName, idx int, ext string) string {
	return fmt.Sprintf("%s-%s-%d%s", parent, model, idx, strings.ToLower(ext))
}
