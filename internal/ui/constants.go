package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLoading  = "⏳"
	IconLoaded   = "✓"
)

// Slot row sizing
const (
	SlotImageWidth   float32 = 120
	SlotImageHeight  float32 = 80
	SlotButtonWidth  float32 = 80
	SlotButtonHeight float32 = 40
	RowSpacing       float32 = 10
	ScreenSpacing    float32 = 16
	ScreenSideMargin float32 = 16

	// Mobile-specific sizing
	MobileButtonHeight float32 = 48
)

// Status bar values; loading sits halfway
const (
	ProgressEmpty   = 0.0
	ProgressLoading = 0.5
	ProgressLoaded  = 1.0
)

// Window defaults
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640
)
