package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// printer writes status lines, colored when w is a terminal.
type printer struct {
	w     io.Writer
	green *color.Color
	red   *color.Color
}

func newPrinter(w io.Writer) *printer {
	p := &printer{
		w:     w,
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
	}

	if isTerminal(w) && os.Getenv("NO_COLOR") == "" {
		p.green.EnableColor()
		p.red.EnableColor()
	} else {
		p.green.DisableColor()
		p.red.DisableColor()
	}

	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) ok(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.green.Sprint("✓"), fmt.Sprintf(format, args...))
}

func (p *printer) fail(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.red.Sprint("✗"), fmt.Sprintf(format, args...))
}
