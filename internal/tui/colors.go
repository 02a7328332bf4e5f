package tui

// Color constants for the venue dashboard theme (dark navy + gold).
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#151545" // Panel navy
	ColorBorder         = "#2A2A5A" // Muted blue

	// Text Colors
	ColorPrimaryText   = "#FFFFFF" // Primary text
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#FFD700" // Gold: headers, selection, totals
	ColorAccentBright = "#F6C90E" // Warm yellow: highlights

	// State Colors
	ColorStopped = "#FF5F5F" // Stopped stations, errors
	ColorRunning = "#7CFF8A" // Active stations, confirmations
	ColorPaused  = "#F6C90E" // Paused stations, warnings
)
