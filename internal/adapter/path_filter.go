package adapter

import (
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/alertmigrate/internal/model"
	"github.com/woozymasta/pathrules"
)

// PathFilter decides whether a target path is skipped.
type PathFilter interface {
	Excluded(path m.Path) bool
}

// RulesPathFilter excludes paths with gitignore-style rules. The last
// matching rule wins; `!pattern` re-includes a path.
type RulesPathFilter struct {
	matcher *pathrules.Matcher
}

// NewRulesPathFilter compiles patterns followed by the rules found in
// ruleFiles, in that order.
func NewRulesPathFilter(patterns []string, ruleFiles ...string) (*RulesPathFilter, error) {
	rules, err := pathrules.ParseRulesString(strings.Join(patterns, "\n"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse exclude patterns: %w", err)
	}

	if len(ruleFiles) > 0 {
		fileRules, err := pathrules.LoadRulesFiles(ruleFiles...)
		if err != nil {
			return nil, fmt.Errorf("failed to load ignore files: %w", err)
		}

		rules = pathrules.MergeRules(rules, fileRules)
	}

	matcher, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		DefaultAction: pathrules.ActionInclude,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compile exclude rules: %w", err)
	}

	return &RulesPathFilter{matcher: matcher}, nil
}

// Excluded reports whether path matches an exclude rule.
func (f *RulesPathFilter) Excluded(path m.Path) bool {
	candidate := filepath.ToSlash(filepath.Clean(string(path)))
	candidate = strings.TrimPrefix(candidate, "./")

	return f.matcher.Excluded(candidate, false)
}
