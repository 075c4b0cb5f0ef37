// Package render formats command output, styled with lipgloss when stdout is
// a terminal and plain otherwise.
package render

import (
	"fmt"
	"strings"

	"github.com/skyburst/gbmfn/pkg/gbmfn"
)

// Renderer produces output lines for the CLI. The zero value renders plain
// text; use New to honor terminal detection.
type Renderer struct {
	color bool
}

// New creates a Renderer that styles output only when stdout is a terminal
// and no automation indicator is set.
func New() *Renderer {
	return &Renderer{color: UseColor()}
}

// NewPlain creates a Renderer that never styles output.
func NewPlain() *Renderer {
	return &Renderer{}
}

// Fields renders a record's fields as aligned label/value rows.
func (r *Renderer) Fields(rec gbmfn.Record) string {
	rows := []struct {
		label string
		value string
	}{
		{"name", rec.Basename()},
		{"data_type", rec.DataType},
		{"detector", rec.Detector.Code()},
		{"trigger", fmt.Sprintf("%t", rec.Trigger)},
		{"uid", rec.UID},
		{"meta", strings.TrimPrefix(rec.Meta, "_")},
		{"version", rec.VersionStr()},
		{"extension", rec.Extension},
		{"directory", rec.Directory},
	}

	var b strings.Builder
	for _, row := range rows {
		label := fmt.Sprintf("%-10s", row.label)
		value := row.value
		if r.color {
			label = LabelStyle.Render(label)
			value = ValueStyle.Render(value)
		}
		fmt.Fprintf(&b, "%s %s\n", label, value)
	}
	return b.String()
}

// Good renders a success line with a check mark.
func (r *Renderer) Good(format string, args ...interface{}) string {
	line := SymbolCheck + " " + fmt.Sprintf(format, args...)
	if r.color {
		return SuccessStyle.Render(line)
	}
	return line
}

// Bad renders a failure line with a cross mark.
func (r *Renderer) Bad(format string, args ...interface{}) string {
	line := SymbolCross + " " + fmt.Sprintf(format, args...)
	if r.color {
		return ErrorStyle.Render(line)
	}
	return line
}

// Muted renders a low-emphasis line.
func (r *Renderer) Muted(format string, args ...interface{}) string {
	line := fmt.Sprintf(format, args...)
	if r.color {
		return MutedStyle.Render(line)
	}
	return line
}
