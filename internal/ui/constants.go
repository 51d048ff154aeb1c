package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconMusic    = "🎵"
	IconMuted    = "🔇"
	IconFolder   = "📁"
)

// Window sizing
const (
	WindowWidth  float32 = 400
	WindowHeight float32 = 200
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 320
	SettingsDialogHeight float32 = 260
)

// Background animation
const (
	BackgroundFrameInterval = 50 * time.Millisecond
)

// Bundled media
const (
	BackgroundFile = "background.gif"
	AppIcon        = "app_icon.png"
)

// Volume sliders step in percent
const (
	VolumeSliderStep = 1.0
)
