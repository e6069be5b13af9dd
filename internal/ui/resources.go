package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog/log"

	"github.com/ytget/track-player/internal/platform"
)

// AppIcon is the application icon file name looked up next to the binary
const AppIcon = "track-player.png"

// LoadAppIcon loads the application icon from file path
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// PlaceholderCover is shown when a track has no cover or it cannot be loaded
func PlaceholderCover() fyne.Resource {
	return theme.MediaMusicIcon()
}

// CoverLoader resolves cover references to image resources in the assets directory
type CoverLoader struct {
	dir   string
	cache map[string]fyne.Resource
}

// NewCoverLoader creates a loader for covers stored in dir
func NewCoverLoader(dir string) *CoverLoader {
	return &CoverLoader{
		dir:   dir,
		cache: make(map[string]fyne.Resource),
	}
}

// Load returns the cover image for name, or the placeholder
func (c *CoverLoader) Load(name string) fyne.Resource {
	if name == "" {
		return PlaceholderCover()
	}
	if res, ok := c.cache[name]; ok {
		return res
	}

	res := PlaceholderCover()
	path, err := platform.FindAsset(c.dir, name, CoverExtensions)
	if err == nil {
		loaded, loadErr := fyne.LoadResourceFromPath(path)
		if loadErr == nil {
			res = loaded
		}
		err = loadErr
	}
	if err != nil {
		log.Debug().Err(err).Str("cover", name).Msg("Using placeholder cover")
	}

	c.cache[name] = res
	return res
}
