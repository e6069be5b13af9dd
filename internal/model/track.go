package model

import (
	"fmt"
	"strings"
)

// Track is one playable playlist item. It is created once at startup and never mutated.
type Track struct {
	Title  string // display title
	Artist string // display artist
	Cover  string // cover image reference, resolved by the UI
	Asset  string // audio asset reference, resolved by the asset resolver
}

// IsZero reports whether the track carries no data
func (t Track) IsZero() bool {
	return t == Track{}
}

// GetDisplayTitle returns title, asset name, or a placeholder in order of preference
func (t Track) GetDisplayTitle() string {
	if title := strings.TrimSpace(t.Title); title != "" {
		return title
	}

	if t.Asset != "" {
		// Remove file extension for cleaner display
		name := t.Asset
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		return name
	}

	return "—"
}

// String returns "Artist - Title" for log output
func (t Track) String() string {
	if t.Artist == "" {
		return t.GetDisplayTitle()
	}
	return fmt.Sprintf("%s - %s", t.Artist, t.GetDisplayTitle())
}
