package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Terminal colors
var (
	Brand  = color.New(color.FgHiBlue, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// banner prints the command header.
func banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s — %s\n\n", Brand.Sprint("infinicanvas"), subtitle)
}

// statusIcon returns a check or cross.
func statusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}
