package rewrite

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/alertmigrate/internal/model"
)

var (
	// returnTagPattern matches `return (` followed by an opening JSX tag.
	// Group 1 is the tag.
	returnTagPattern = regexp.MustCompile(`\breturn\s*\(\s*(<[^>]+>)`)
	// closingTagPattern matches a closing tag followed by the `);` ending a
	// return statement. Group 1 is the tag.
	closingTagPattern = regexp.MustCompile(`(</[^>]+>)\s*\);`)
)

// renderStep wraps the first returned JSX element in a fragment that also
// renders the alert handle.
//
// The fragment is closed after the last `</tag>` followed by `);` in the
// file. That only matches the right element when the component's top-level
// return is the last such statement in the file.
type renderStep struct {
	marker string
	indent string
}

func newRenderStep(migration m.Migration) *renderStep {
	return &renderStep{
		marker: "{" + migration.HandleName + "}",
		indent: migration.Indent,
	}
}

func (s *renderStep) Name() string { return "render" }

func (s *renderStep) Marker() string { return s.marker }

func (s *renderStep) Present(text m.SourceText) bool {
	return strings.Contains(string(text), s.marker)
}

// Apply inserts the fragment around the returned JSX. When either the opening
// or the closing anchor is missing nothing is inserted.
func (s *renderStep) Apply(text m.SourceText) m.SourceText {
	open := returnTagPattern.FindStringSubmatchIndex(string(text))
	if open == nil {
		return text
	}

	tagStart, tagEnd := open[2], open[3]

	closings := closingTagPattern.FindAllStringSubmatchIndex(string(text), -1)
	if len(closings) == 0 {
		return text
	}

	closing := closings[len(closings)-1]
	if closing[2] < tagEnd {
		return text
	}

	indent, ownLine := lineIndent(text, tagStart)
	if !ownLine {
		returnIndent, _ := lineIndent(text, open[0])
		indent = returnIndent + s.indent
	}

	nl := newline(text)

	text = splice(text, closing[3], nl+indent+"</>")

	return splice(text, tagStart, "<>"+nl+indent+s.marker+nl+indent)
}
