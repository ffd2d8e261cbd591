package adapter

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/alertmigrate/internal/model"
	"github.com/pmezard/go-difflib/difflib"
)

// diffContextLines is the number of unchanged lines shown around a change.
const diffContextLines = 2

// Differ renders the change a rewrite makes to one file.
type Differ interface {
	Diff(path m.Path, before, after m.SourceText) string
}

// PatchDiffer renders unified diffs with difflib.
type PatchDiffer struct {
	context int
}

// NewPatchDiffer creates a PatchDiffer.
func NewPatchDiffer() *PatchDiffer {
	return &PatchDiffer{context: diffContextLines}
}

// Diff returns a unified diff of before and after, or "" when they are equal.
func (d *PatchDiffer) Diff(path m.Path, before, after m.SourceText) string {
	if before == after {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(string(before)),
		B:        splitLines(string(after)),
		FromFile: fmt.Sprintf("a/%s", path),
		ToFile:   fmt.Sprintf("b/%s", path),
		Context:  d.context,
	})
	if err != nil {
		return ""
	}

	return diff
}

// splitLines splits text into newline-terminated lines. A last line without
// a newline gets one so hunk lines never run together.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] += "\n"
	}

	return lines
}
