package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ytget/track-player/internal/platform"
	"github.com/ytget/track-player/internal/player"
)

// FileResolver maps asset references to files under a directory
type FileResolver struct {
	dir  string
	exts []string
}

var _ player.Resolver = (*FileResolver)(nil)

// NewFileResolver creates a resolver rooted at dir
func NewFileResolver(dir string) *FileResolver {
	return &FileResolver{dir: dir, exts: SupportedExtensions}
}

// Dir returns the directory assets are looked up in
func (r *FileResolver) Dir() string {
	return r.dir
}

// Resolve finds the audio file for name. WAV headers are validated up front
// so a broken file is reported as ErrAssetLoadFailed before the engine sees it.
func (r *FileResolver) Resolve(name string) (player.Asset, error) {
	path, err := platform.FindAsset(r.dir, name, r.exts)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return player.Asset{}, fmt.Errorf("%w: %w", player.ErrAssetNotFound, err)
		}
		return player.Asset{}, fmt.Errorf("%w: %w", player.ErrAssetLoadFailed, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ExtWAV {
		duration, err := ProbeWAV(path)
		if err != nil {
			return player.Asset{}, fmt.Errorf("%w: %w", player.ErrAssetLoadFailed, err)
		}
		log.Debug().Str("asset", name).Dur("duration", duration).Msg("WAV header checked")
	}

	return player.Asset{Name: name, Path: path, Ext: ext}, nil
}
