package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Formatter formats diagnostics in a Rust-style format with source code
// snippets.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string // cache of source text by filename
}

// NewFormatter creates a new diagnostic formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{
		out:         w,
		sourceCache: make(map[string]string),
	}
}

// AddSource registers source text for a filename so snippets can be
// rendered without touching the filesystem (REPL input, tests).
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// LoadSource loads source code for a file (cached).
func (f *Formatter) LoadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

// Format formats and prints a diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	if !d.Span.IsValid() {
		f.printFooter(d)
		return
	}

	src, err := f.LoadSource(d.Span.Filename)
	if err != nil || src == "" {
		// No source available; point at the location and move on.
		fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		f.printFooter(d)
		return
	}

	f.printSnippet(src, d.Span)
	f.printFooter(d)
}

// printHeader prints the error header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = "error"
	}

	if d.Code != "" {
		fmt.Fprintf(f.out, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(f.out, "%s: %s\n", severity, d.Message)
	}
}

// printSnippet prints the offending source line with a caret underline.
func (f *Formatter) printSnippet(src string, span Span) {
	lines := strings.Split(src, "\n")
	if span.Line < 1 || span.Line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", span.String())
		return
	}
	lineContent := strings.TrimRight(lines[span.Line-1], "\r")

	gutter := strings.Repeat(" ", len(fmt.Sprintf("%d", span.Line)))

	fmt.Fprintf(f.out, "%s--> %s\n", gutter, span.String())
	fmt.Fprintf(f.out, "%s |\n", gutter)
	fmt.Fprintf(f.out, "%d | %s\n", span.Line, lineContent)

	col := span.Column - 1
	if col > len(lineContent) {
		col = len(lineContent)
	}
	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	if rest := len(lineContent) - col; width > rest && rest >= 1 {
		width = rest
	}
	fmt.Fprintf(f.out, "%s | %s%s\n", gutter, strings.Repeat(" ", col), strings.Repeat("^", width))
}

// printFooter prints notes and help text.
func (f *Formatter) printFooter(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "help: %s\n", d.Help)
	}
}
