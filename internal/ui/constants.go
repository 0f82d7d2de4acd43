package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconRun      = "▶"
)

// Layout sizing
const (
	SettingsDialogW float32 = 520
	SettingsDialogH float32 = 480
)

// Settings form limits
const (
	TimeoutPlaceholder = "0-1440"
)
