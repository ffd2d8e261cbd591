package model

// Migration holds the names the transformation steps look for and insert.
type Migration struct {
	// HookName is the imported hook symbol, e.g. useCustomAlert.
	HookName string
	// HookModule is the module specifier the hook is imported from.
	HookModule string
	// BareCall is the inline call being replaced, e.g. alert.
	BareCall string
	// ReplacementCall is the function returned by the hook, e.g. showAlert.
	ReplacementCall string
	// HandleName is the renderable alert-UI handle returned by the hook.
	HandleName string
	// Indent is used when the surrounding indentation cannot be detected.
	Indent string
}

// DefaultMigration returns the CustomAlert migration settings.
func DefaultMigration() Migration {
	return Migration{
		HookName:        "useCustomAlert",
		HookModule:      "@/components/CustomAlert",
		BareCall:        "alert",
		ReplacementCall: "showAlert",
		HandleName:      "AlertComponent",
		Indent:          "    ",
	}
}

// DefaultTargets lists the settings pages migrated when neither the command
// line nor the config file names any target.
func DefaultTargets() []Path {
	return []Path{
		"src/app/(main)/settings/ai/pdf-extract-prompt/page.tsx",
		"src/app/(main)/settings/ai/pdf-extract-test/page.tsx",
		"src/app/(main)/settings/report/static-info/page.tsx",
		"src/app/(main)/settings/report/single-choice/page.tsx",
		"src/app/(main)/settings/report/multi-choice/page.tsx",
		"src/app/(main)/settings/report/image-config/page.tsx",
		"src/app/(main)/settings/report/templates/page.tsx",
		"src/app/(main)/settings/construct-chattels/page.tsx",
	}
}
