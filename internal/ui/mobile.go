package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// isMobileDevice checks if the app is running on a mobile device
func isMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// isLandscape returns true if device is in landscape orientation
func isLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// coverSize returns the cover art size for the current device
func coverSize() fyne.Size {
	if isMobileDevice() {
		return fyne.NewSquareSize(MobileCoverSize)
	}
	return fyne.NewSquareSize(CoverSize)
}

// spacing returns appropriate spacing between player sections
func spacing() float32 {
	if isMobileDevice() {
		return MobileSpacing
	}
	return DesktopSpacing
}

// playerLayout places the track list beside the player on desktop and in
// landscape, and below it in portrait on mobile
func playerLayout(playerPane, trackPane fyne.CanvasObject) fyne.CanvasObject {
	if isMobileDevice() && !isLandscape() {
		return container.NewBorder(playerPane, nil, nil, nil, trackPane)
	}

	split := container.NewHSplit(playerPane, trackPane)
	split.Offset = PlayerPaneOffset
	return split
}
