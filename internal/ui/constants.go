package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	DashPlaceholder = "—"
	TimePlaceholder = "0:00"
)

// Layout sizing
const (
	CoverSize       float32 = 260
	MobileCoverSize float32 = 180
	TimeLabelWidth  float32 = 52

	// Share of the window width given to the player pane on desktop
	PlayerPaneOffset = 0.62

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	DesktopSpacing float32 = 8
	MobileSpacing  float32 = 16
)

// Seek slider works in thousandths of the track so values stay whole steps
const (
	SeekSliderMax  = 1000.0
	SeekSliderStep = 1.0
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 420
)

// CoverExtensions lists image formats accepted for cover art, in lookup order
var CoverExtensions = []string{".png", ".jpg", ".jpeg"}
