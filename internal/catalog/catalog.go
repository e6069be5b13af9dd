// Package catalog provides the static playlist the player starts with.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/track-player/internal/model"
)

//go:embed tracks.yaml
var builtin []byte

type file struct {
	Tracks []entry `yaml:"tracks"`
}

type entry struct {
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
	Cover  string `yaml:"cover"`
	Asset  string `yaml:"asset"`
}

// Builtin returns the embedded playlist
func Builtin() ([]model.Track, error) {
	return Parse(builtin)
}

// Parse decodes a YAML playlist. Every entry needs a title and an asset.
func Parse(data []byte) ([]model.Track, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	tracks := make([]model.Track, 0, len(f.Tracks))
	for i, e := range f.Tracks {
		e.Title = strings.TrimSpace(e.Title)
		e.Asset = strings.TrimSpace(e.Asset)
		if e.Title == "" {
			return nil, fmt.Errorf("track %d: title is required", i+1)
		}
		if e.Asset == "" {
			return nil, fmt.Errorf("track %d (%s): asset is required", i+1, e.Title)
		}

		tracks = append(tracks, model.Track{
			Title:  e.Title,
			Artist: strings.TrimSpace(e.Artist),
			Cover:  strings.TrimSpace(e.Cover),
			Asset:  e.Asset,
		})
	}
	return tracks, nil
}
