package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"glslfront/internal/diag"
	"glslfront/internal/source"
)

type palette struct {
	err, warn, info, note, code, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders bag in a human-readable form. Call bag.Sort() first for a
// stable order. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline and, optionally, its notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	file := fs.Get(d.Primary.File)
	if file == nil {
		fmt.Fprintf(w, "%s %s: %s\n", p.severity(d.Severity).Sprint(d.Severity), p.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col,
		p.severity(d.Severity).Sprint(d.Severity), p.code.Sprint(d.Code.ID()), d.Message)
	writeExcerpt(w, file, start, end, int(opts.Context), p)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		if fs.Get(n.Span.File) == nil {
			fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
			continue
		}
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
			formatPath(fs, n.Span.File, opts.PathMode), ns.Line, ns.Col, n.Msg)
	}
}

// writeExcerpt prints the primary line with context lines around it and
// underlines the span. Multi-line spans are underlined to the end of the first line.
func writeExcerpt(w io.Writer, f *source.File, start, end source.LineCol, context int, p palette) {
	first := max(int(start.Line)-context, 1)
	last := int(start.Line) + context
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		line := f.GetLine(uint32(ln))
		if ln != int(start.Line) && line == "" {
			continue
		}
		line = expandTabs(line)
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), line)
		if ln != int(start.Line) {
			continue
		}
		raw := f.GetLine(start.Line)
		from := displayWidth(raw, int(start.Col)-1)
		to := displayWidth(raw, len(raw))
		if end.Line == start.Line {
			to = displayWidth(raw, int(end.Col)-1)
		}
		mark := "^" + strings.Repeat("~", max(to-from-1, 0))
		fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", from), p.caret.Sprint(mark))
	}
}

// displayWidth is the terminal width of the first n bytes of line.
func displayWidth(line string, n int) int {
	n = min(max(n, 0), len(line))
	return runewidth.StringWidth(expandTabs(line[:n]))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
