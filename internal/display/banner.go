package display

import (
	"fmt"
	"io"

	"github.com/backmassage/imgnorm/internal/term"
)

const banner = ` _
(_)_ __ ___   __ _ _ __   ___  _ __ _ __ ___
| | '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \ / _ \| '__| '_ ` + "`" + ` _ \
| | | | | | | (_| | | | | (_) | |  | | | | | |
|_|_| |_| |_|\__, |_| |_|\___/|_|  |_| |_| |_|
             |___/`

// PrintBanner writes the ASCII art banner to w; magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Paint(term.Magenta, banner))
}
