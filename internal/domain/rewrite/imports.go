package rewrite

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/alertmigrate/internal/model"
)

// importLinePattern matches a single-line `import ... from "...";` statement,
// or the `} from "...";` line closing a multi-line import. Groups: quote,
// semicolon, line ending.
var importLinePattern = regexp.MustCompile(
	`(?m)^(?:import\b[^\n]*?\bfrom|\}[ \t]*from)[ \t]*(["'])[^"'\n]*["'][ \t]*(;?)[ \t]*(?://[^\n]*)?(\r?\n)`,
)

type importStep struct {
	hookName   string
	hookModule string
}

func newImportStep(migration m.Migration) *importStep {
	return &importStep{
		hookName:   migration.HookName,
		hookModule: migration.HookModule,
	}
}

func (s *importStep) Name() string { return "import" }

func (s *importStep) Marker() string { return s.hookName }

func (s *importStep) Present(text m.SourceText) bool {
	return strings.Contains(string(text), s.hookName)
}

// Apply inserts the hook import after the last import statement. Text without
// any import statement is returned as is.
func (s *importStep) Apply(text m.SourceText) m.SourceText {
	matches := importLinePattern.FindAllStringSubmatchIndex(string(text), -1)
	if len(matches) == 0 {
		return text
	}

	last := matches[len(matches)-1]
	quote := string(text[last[2]:last[3]])
	semicolon := string(text[last[4]:last[5]])
	lineEnd := string(text[last[6]:last[7]])

	statement := "import { " + s.hookName + " } from " + quote + s.hookModule + quote + semicolon + lineEnd

	return splice(text, last[1], statement)
}
