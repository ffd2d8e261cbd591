package rewrite

import (
	"regexp"

	m "github.com/mouse-blink/alertmigrate/internal/model"
)

// bareCallPattern matches a whole-word call of name, so `myalert(` is left
// alone when name is `alert`.
func bareCallPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\(`)
}

type callSiteStep struct {
	bareCall    string
	replacement string
	pattern     *regexp.Regexp
}

func newCallSiteStep(migration m.Migration) *callSiteStep {
	return &callSiteStep{
		bareCall:    migration.BareCall,
		replacement: migration.ReplacementCall + "(",
		pattern:     bareCallPattern(migration.BareCall),
	}
}

func (s *callSiteStep) Name() string { return "call-site" }

func (s *callSiteStep) Marker() string { return "no bare " + s.bareCall + "(" }

// Present reports whether no bare call is left to rewrite.
func (s *callSiteStep) Present(text m.SourceText) bool {
	return !s.pattern.MatchString(string(text))
}

// Apply rewrites every bare call to the replacement call.
func (s *callSiteStep) Apply(text m.SourceText) m.SourceText {
	return m.SourceText(s.pattern.ReplaceAllLiteralString(string(text), s.replacement))
}
