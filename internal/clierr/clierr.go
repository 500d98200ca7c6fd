// Package clierr formats diagnostics for the command-line surface: a
// source excerpt, a line:column header, and a caret pointing at the byte
// offset the underlying library or type-store operation failed at.
package clierr

import (
	"fmt"
	"strings"
)

// Position is a 1-indexed line/column pair, derived from a byte offset
// into a source string.
type Position struct {
	Line   int
	Column int
}

// LocateOffset walks source and returns the 1-indexed line/column of the
// given byte offset. An offset past the end of source clamps to the last
// position in the text.
func LocateOffset(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col}
}

// Diagnostic is a single reportable failure: a message plus the source
// text and byte offset it applies to.
type Diagnostic struct {
	Message string
	Source  string
	Label   string // e.g. a file name or "--against"; empty is fine
	Offset  int
}

// New builds a Diagnostic at the given byte offset into source.
func New(message, source, label string, offset int) *Diagnostic {
	return &Diagnostic{Message: message, Source: source, Label: label, Offset: offset}
}

// Error implements the error interface via uncolored Format.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic: a header naming the position, the
// offending source line, a caret under the exact column, then the
// message. If color is true, ANSI escapes highlight the caret and
// message the way a terminal-attached run would want.
func (d *Diagnostic) Format(color bool) string {
	pos := LocateOffset(d.Source, d.Offset)

	var sb strings.Builder
	if d.Label != "" {
		fmt.Fprintf(&sb, "error in %s:%d:%d\n", d.Label, pos.Line, pos.Column)
	} else {
		fmt.Fprintf(&sb, "error at %d:%d\n", pos.Line, pos.Column)
	}

	if line := sourceLine(d.Source, pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of diagnostics, numbering them when there is
// more than one.
func FormatAll(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "failed with %d error(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d of %d]\n", i+1, len(diags))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
