package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Accent used by the seek slider, play button and current track row
var accent = color.NRGBA{R: 230, G: 81, B: 0, A: 255}

// Player colors per variant; names not listed come from the default theme
var (
	lightPalette = map[fyne.ThemeColorName]color.Color{
		theme.ColorNamePrimary:    accent,
		theme.ColorNameFocus:      color.NRGBA{R: 230, G: 81, B: 0, A: 96},
		theme.ColorNameSelection:  color.NRGBA{R: 230, G: 81, B: 0, A: 48},
		theme.ColorNameBackground: color.NRGBA{R: 250, G: 248, B: 245, A: 255},
		theme.ColorNameForeground: color.NRGBA{R: 33, G: 33, B: 33, A: 255},
	}
	darkPalette = map[fyne.ThemeColorName]color.Color{
		theme.ColorNamePrimary:    accent,
		theme.ColorNameFocus:      color.NRGBA{R: 255, G: 138, B: 76, A: 96},
		theme.ColorNameSelection:  color.NRGBA{R: 255, G: 138, B: 76, A: 56},
		theme.ColorNameBackground: color.NRGBA{R: 20, G: 18, B: 17, A: 255},
		theme.ColorNameForeground: color.NRGBA{R: 240, G: 236, B: 232, A: 255},
		theme.ColorNameButton:     color.NRGBA{R: 44, G: 40, B: 38, A: 255},
	}
)

// Sizes tuned for a single player screen: large transport icons, roomy seek track
var playerSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNameInlineIcon:         24,
	theme.SizeNameInputRadius:        6,
	theme.SizeNameSelectionRadius:    4,
	theme.SizeNameInputBorder:        2,
	theme.SizeNameSeparatorThickness: 1,
	theme.SizeNameScrollBarSmall:     4,
	theme.SizeNameCaptionText:        11,
}

// PlayerTheme overlays the player palette and sizes on the default theme
type PlayerTheme struct {
	fyne.Theme
}

// NewPlayerTheme creates a new player theme
func NewPlayerTheme() fyne.Theme {
	return &PlayerTheme{Theme: theme.DefaultTheme()}
}

// Color returns the player color for name, falling back to the default theme
func (t *PlayerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	palette := lightPalette
	if variant == theme.VariantDark {
		palette = darkPalette
	}
	if c, ok := palette[name]; ok {
		return c
	}
	return t.Theme.Color(name, variant)
}

// Size returns the player size for name, falling back to the default theme
func (t *PlayerTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := playerSizes[name]; ok {
		return size
	}
	return t.Theme.Size(name)
}
