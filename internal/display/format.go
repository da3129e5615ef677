package display

import (
	"fmt"

	"github.com/backmassage/imgnorm/internal/term"
)

// FormatCount returns "<n> <noun>(s)", e.g. "3 file(s)", matching the
// wording of the run reports.
func FormatCount(n int, noun string) string {
	return fmt.Sprintf("%d %s(s)", n, noun)
}

// FormatRename renders one plan line: "<src> -> <dst>". The arrow and the
// destination are styled when colors are enabled.
func FormatRename(src, dst string) string {
	return src + " " + term.Paint(term.Muted, "->") + " " + term.Paint(term.Cyan, dst)
}
