package config

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/ytget/track-player/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAssetsDir    = "assets_directory"
	KeyTickInterval = "tick_interval_ms"
	KeyVolume       = "volume"
	KeyLanguage     = "app_language"
	KeyLogLevel     = "log_level"
)

// Default values
const (
	DefaultTickIntervalMs = 500
	MinTickIntervalMs     = 100
	MaxTickIntervalMs     = 2000
	DefaultVolume         = 0.0
	MinVolume             = -5.0
	MaxVolume             = 2.0
	DefaultLanguage       = "system"
	DefaultLogLevel       = "info"
	FallbackAssetsDir     = "assets"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAssetsDirectory returns the directory track audio and covers are read from
func (s *Settings) GetAssetsDirectory() string {
	dir := s.app.Preferences().String(KeyAssetsDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultAssetsDir()
		if err != nil {
			defaultDir = FallbackAssetsDir
		}
		s.SetAssetsDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetAssetsDirectory sets the assets directory
func (s *Settings) SetAssetsDirectory(dir string) {
	s.app.Preferences().SetString(KeyAssetsDir, dir)
}

// GetTickInterval returns how often playback progress is sampled
func (s *Settings) GetTickInterval() time.Duration {
	value := s.app.Preferences().Int(KeyTickInterval)
	if value <= 0 {
		s.SetTickInterval(DefaultTickIntervalMs)
		return DefaultTickIntervalMs * time.Millisecond
	}
	return time.Duration(value) * time.Millisecond
}

// SetTickInterval sets the progress sampling interval in milliseconds
func (s *Settings) SetTickInterval(ms int) {
	if ms < MinTickIntervalMs {
		ms = MinTickIntervalMs
	}
	if ms > MaxTickIntervalMs {
		ms = MaxTickIntervalMs
	}
	s.app.Preferences().SetInt(KeyTickInterval, ms)
}

// GetVolume returns the output volume
func (s *Settings) GetVolume() float64 {
	return s.app.Preferences().FloatWithFallback(KeyVolume, DefaultVolume)
}

// SetVolume sets the output volume
func (s *Settings) SetVolume(volume float64) {
	if volume < MinVolume {
		volume = MinVolume
	}
	if volume > MaxVolume {
		volume = MaxVolume
	}
	s.app.Preferences().SetFloat(KeyVolume, volume)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevel returns the configured log level, falling back to info on bad input
func (s *Settings) GetLogLevel() zerolog.Level {
	raw := s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
	level, err := zerolog.ParseLevel(raw)
	if err != nil || raw == "" {
		return zerolog.InfoLevel
	}
	return level
}

// SetLogLevel sets the log level by name (debug, info, warn, error)
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLogLevelOptions returns available log level names
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}
