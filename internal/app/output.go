package app

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
)

// printer writes one-shot command results, coloured when requested.
type printer struct {
	w  io.Writer
	au aurora.Aurora
}

func newPrinter(w io.Writer, color bool) printer {
	if w == nil {
		w = os.Stdout
	}
	return printer{w: w, au: aurora.NewAurora(color)}
}

func (p printer) success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.au.Green("ok"), fmt.Sprintf(format, args...))
}

func (p printer) info(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.au.Bold(label+":"), p.au.Cyan(value))
}
