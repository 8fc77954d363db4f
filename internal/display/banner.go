package display

import (
	"fmt"
	"io"

	"github.com/backmassage/batchrename/internal/term"
)

// PrintBanner prints the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, ` _         _       _
| |__ __ _| |_ __| |_  _ _ ___ _ _  __ _ _ __  ___
| '_ \/ _`+"`"+` |  _/ _| ' \| '_/ -_) ' \/ _`+"`"+` | '  \/ -_)
|_.__/\__,_|\__\__|_||_|_| \___|_||_\__,_|_|_|_\___|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
