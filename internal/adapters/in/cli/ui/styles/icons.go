package styles

// Status indicators. Plain unicode so no patched font is required.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
)
