// Package rewrite implements the text-level alert migration engine.
//
// Every transformation is a Step: a presence predicate plus an insertion rule
// expressed with regular-expression anchors over raw text. No TSX parsing is
// involved, so a missing anchor turns a step into a no-op rather than an error.
package rewrite

import (
	"strings"

	m "github.com/mouse-blink/alertmigrate/internal/model"
)

// Step is one idempotent transformation over a SourceText.
type Step interface {
	// Name identifies the step in listings and logs.
	Name() string
	// Marker is the text whose presence means the step is already applied.
	Marker() string
	// Present reports whether the step's effect already exists in text.
	Present(text m.SourceText) bool
	// Apply inserts the step's effect. It returns text unchanged when the
	// step's anchor cannot be found.
	Apply(text m.SourceText) m.SourceText
}

// splice inserts insert at offset.
func splice(text m.SourceText, offset int, insert string) m.SourceText {
	return text[:offset] + m.SourceText(insert) + text[offset:]
}

// newline returns the line ending used by text.
func newline(text m.SourceText) string {
	if strings.Contains(string(text), "\r\n") {
		return "\r\n"
	}

	return "\n"
}

// lineIndent returns the leading whitespace of the line containing offset,
// and whether only whitespace precedes offset on that line.
func lineIndent(text m.SourceText, offset int) (string, bool) {
	start := strings.LastIndexByte(string(text[:offset]), '\n') + 1
	prefix := string(text[start:offset])
	trimmed := strings.TrimLeft(prefix, " \t")

	return prefix[:len(prefix)-len(trimmed)], trimmed == ""
}
