package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestPlayerThemeColors(t *testing.T) {
	th := NewPlayerTheme()

	tests := []struct {
		name    string
		variant fyne.ThemeVariant
	}{
		{"light", theme.VariantLight},
		{"dark", theme.VariantDark},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if th.Color(theme.ColorNamePrimary, test.variant) != accent {
				t.Error("Primary color should be the player accent")
			}
			if th.Color(theme.ColorNameError, test.variant) != theme.DefaultTheme().Color(theme.ColorNameError, test.variant) {
				t.Error("Unlisted colors should come from the default theme")
			}
		})
	}

	if th.Color(theme.ColorNameBackground, theme.VariantLight) == th.Color(theme.ColorNameBackground, theme.VariantDark) {
		t.Error("Light and dark backgrounds should differ")
	}
}

func TestPlayerThemeSizes(t *testing.T) {
	th := NewPlayerTheme()

	if th.Size(theme.SizeNameInlineIcon) != 24 {
		t.Errorf("Expected transport icon size 24, got %v", th.Size(theme.SizeNameInlineIcon))
	}
	if th.Size(theme.SizeNameText) != theme.DefaultTheme().Size(theme.SizeNameText) {
		t.Error("Unlisted sizes should come from the default theme")
	}
	if th.Icon(theme.IconNameMediaPlay) == nil {
		t.Error("Icons should come from the default theme")
	}
}
