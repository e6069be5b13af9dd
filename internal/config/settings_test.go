package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAssetsDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetAssetsDirectory()
	if dir == "" {
		t.Error("Assets directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/music"
	settings.SetAssetsDirectory(customDir)

	retrievedDir := settings.GetAssetsDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected assets directory %s, got %s", customDir, retrievedDir)
	}
}

func TestTickInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	interval := settings.GetTickInterval()
	if interval != 500*time.Millisecond {
		t.Errorf("Expected default tick interval 500ms, got %v", interval)
	}

	// Test setting custom value
	settings.SetTickInterval(250)
	if settings.GetTickInterval() != 250*time.Millisecond {
		t.Errorf("Expected tick interval 250ms, got %v", settings.GetTickInterval())
	}

	// Test boundary values
	settings.SetTickInterval(10) // Should be clamped to 100
	if settings.GetTickInterval() != MinTickIntervalMs*time.Millisecond {
		t.Error("Tick interval should be clamped to minimum 100ms")
	}

	settings.SetTickInterval(60000) // Should be clamped to 2000
	if settings.GetTickInterval() != MaxTickIntervalMs*time.Millisecond {
		t.Error("Tick interval should be clamped to maximum 2000ms")
	}
}

func TestVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetVolume() != DefaultVolume {
		t.Errorf("Expected default volume %v, got %v", DefaultVolume, settings.GetVolume())
	}

	settings.SetVolume(-1.5)
	if settings.GetVolume() != -1.5 {
		t.Errorf("Expected volume -1.5, got %v", settings.GetVolume())
	}

	settings.SetVolume(9)
	if settings.GetVolume() != MaxVolume {
		t.Errorf("Volume should be clamped to %v, got %v", MaxVolume, settings.GetVolume())
	}

	settings.SetVolume(-9)
	if settings.GetVolume() != MinVolume {
		t.Errorf("Volume should be clamped to %v, got %v", MinVolume, settings.GetVolume())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLogLevel() != zerolog.InfoLevel {
		t.Errorf("Expected default log level info, got %v", settings.GetLogLevel())
	}

	settings.SetLogLevel("debug")
	if settings.GetLogLevel() != zerolog.DebugLevel {
		t.Errorf("Expected log level debug, got %v", settings.GetLogLevel())
	}

	settings.SetLogLevel("loud")
	if settings.GetLogLevel() != zerolog.InfoLevel {
		t.Errorf("Invalid log level should fall back to info, got %v", settings.GetLogLevel())
	}

	if len(settings.GetLogLevelOptions()) != 4 {
		t.Errorf("Expected 4 log level options, got %d", len(settings.GetLogLevelOptions()))
	}
}
