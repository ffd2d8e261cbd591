package rewrite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/alertmigrate/internal/model"
)

// ErrInvalidMigration is returned when migration names cannot produce an
// idempotent rewrite.
var ErrInvalidMigration = errors.New("invalid migration")

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

// Validate checks that the migration names are usable identifiers and that
// the rewritten call sites cannot be matched again.
func Validate(migration m.Migration) error {
	identifiers := []struct {
		field string
		value string
	}{
		{"hook_name", migration.HookName},
		{"bare_call", migration.BareCall},
		{"replacement_call", migration.ReplacementCall},
		{"handle_name", migration.HandleName},
	}

	for _, id := range identifiers {
		if !identifierPattern.MatchString(id.value) {
			return fmt.Errorf("%w: %s %q is not an identifier", ErrInvalidMigration, id.field, id.value)
		}
	}

	if migration.HookModule == "" || strings.ContainsAny(migration.HookModule, "\"'`\r\n") {
		return fmt.Errorf("%w: hook_module %q must be a non-empty unquoted module path", ErrInvalidMigration, migration.HookModule)
	}

	if strings.Trim(migration.Indent, " \t") != "" {
		return fmt.Errorf("%w: indent must contain only spaces or tabs", ErrInvalidMigration)
	}

	if bareCallPattern(migration.BareCall).MatchString(migration.ReplacementCall + "(") {
		return fmt.Errorf("%w: replacement_call %q is matched by bare_call %q", ErrInvalidMigration, migration.ReplacementCall, migration.BareCall)
	}

	if bareCallPattern(migration.BareCall).MatchString(migration.HookModule) {
		return fmt.Errorf("%w: hook_module %q is matched by bare_call %q", ErrInvalidMigration, migration.HookModule, migration.BareCall)
	}

	if bareCallPattern(migration.BareCall).MatchString(migration.HookName + "()") {
		return fmt.Errorf("%w: hook_name %q is matched by bare_call %q", ErrInvalidMigration, migration.HookName, migration.BareCall)
	}

	return nil
}
