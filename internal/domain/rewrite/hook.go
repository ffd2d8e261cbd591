package rewrite

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/alertmigrate/internal/model"
)

// componentPattern matches the opening of a default-exported function
// component, up to and including its body's opening brace.
var componentPattern = regexp.MustCompile(`\bexport\s+default\s+function\s+[A-Za-z_$][\w$]*\s*\([^)]*\)\s*\{`)

type hookStep struct {
	marker    string
	statement string
	indent    string
}

func newHookStep(migration m.Migration) *hookStep {
	return &hookStep{
		marker: migration.HookName + "()",
		statement: "const { " + migration.ReplacementCall + ", " + migration.HandleName + " } = " +
			migration.HookName + "();",
		indent: migration.Indent,
	}
}

func (s *hookStep) Name() string { return "hook" }

func (s *hookStep) Marker() string { return s.marker }

func (s *hookStep) Present(text m.SourceText) bool {
	return strings.Contains(string(text), s.marker)
}

// Apply inserts the hook invocation right after the component's opening
// brace. Components that are not `export default function` are left alone.
func (s *hookStep) Apply(text m.SourceText) m.SourceText {
	loc := componentPattern.FindStringIndex(string(text))
	if loc == nil {
		return text
	}

	return splice(text, loc[1], newline(text)+s.bodyIndent(text, loc[1])+s.statement)
}

// bodyIndent returns the indentation of the first non-blank line after the
// brace at offset, or the configured indent when the body has none.
func (s *hookStep) bodyIndent(text m.SourceText, offset int) string {
	rest := string(text[offset:])

	// skip the remainder of the brace line
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return s.indent
	}

	for _, line := range strings.Split(rest[nl+1:], "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimLeft(line, " \t")

		if trimmed == "" {
			continue
		}

		if trimmed == line || strings.HasPrefix(trimmed, "}") {
			return s.indent
		}

		return line[:len(line)-len(trimmed)]
	}

	return s.indent
}
