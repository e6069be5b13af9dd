package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Directory names
const (
	AssetsDirName    = "assets"
	MusicDirName     = "Music"
	AppDirName       = "TrackPlayer"
	AndroidMusicRoot = "/sdcard/Music"
)

// Common file name variations ignored when matching asset names
var (
	FileNameVariations = []string{"-", "_", " "}
)

// CreateDirectoryIfNotExists creates a directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// IsAndroid reports whether the process runs inside a Fyne Android build
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// GetDefaultAssetsDir returns where track audio and cover files are looked up.
// An "assets" directory next to the executable wins; otherwise ~/Music/TrackPlayer.
func GetDefaultAssetsDir() (string, error) {
	if IsAndroid() {
		return filepath.Join(AndroidMusicRoot, AppDirName), nil
	}

	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), AssetsDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, MusicDirName, AppDirName), nil
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// FindAsset locates name inside dir. A name without extension is tried with
// each of exts in order. If no exact match exists, files whose base name
// matches ignoring case and separators are considered. The returned error
// wraps os.ErrNotExist when nothing matches.
func FindAsset(dir, name string, exts []string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("asset name is empty: %w", os.ErrNotExist)
	}

	ext := strings.ToLower(filepath.Ext(name))
	candidates := []string{name}
	if !containsExt(exts, ext) {
		candidates = candidates[:0]
		for _, e := range exts {
			candidates = append(candidates, name+e)
		}
	}

	// First, try exact names
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if FileExists(path) {
			return path, nil
		}
	}

	// Then look for files with similar names
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	wantBase := normalizeName(strings.TrimSuffix(name, filepath.Ext(name)))
	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		entryName := entry.Name()
		entryExt := strings.ToLower(filepath.Ext(entryName))
		if !containsExt(exts, entryExt) {
			continue
		}
		if containsExt(exts, ext) && entryExt != ext {
			continue
		}
		if normalizeName(strings.TrimSuffix(entryName, filepath.Ext(entryName))) == wantBase {
			matches = append(matches, filepath.Join(dir, entryName))
		}
	}

	if len(matches) > 0 {
		// Prefer extensions in the order given, then lexical order
		sort.Slice(matches, func(i, j int) bool {
			ri := extRank(exts, filepath.Ext(matches[i]))
			rj := extRank(exts, filepath.Ext(matches[j]))
			if ri != rj {
				return ri < rj
			}
			return matches[i] < matches[j]
		})
		return matches[0], nil
	}

	return "", fmt.Errorf("file not found: %s in %s: %w", name, dir, os.ErrNotExist)
}

// normalizeName lower-cases name and strips separator variations
func normalizeName(name string) string {
	clean := strings.ToLower(strings.TrimSpace(name))
	for _, variation := range FileNameVariations {
		clean = strings.ReplaceAll(clean, variation, "")
	}
	return clean
}

func containsExt(exts []string, ext string) bool {
	return extRank(exts, ext) >= 0
}

func extRank(exts []string, ext string) int {
	ext = strings.ToLower(ext)
	for i, e := range exts {
		if strings.ToLower(e) == ext {
			return i
		}
	}
	return -1
}
