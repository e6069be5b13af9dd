package main

import (
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ytget/track-player/internal/audio"
	"github.com/ytget/track-player/internal/catalog"
	"github.com/ytget/track-player/internal/config"
	"github.com/ytget/track-player/internal/platform"
	"github.com/ytget/track-player/internal/player"
	"github.com/ytget/track-player/internal/playlist"
	"github.com/ytget/track-player/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.track-player"
	AppName = "Track Player"

	WindowWidth  = 820
	WindowHeight = 520
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPlayerTheme())
	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	settings := config.NewSettings(myApp)
	zerolog.SetGlobalLevel(settings.GetLogLevel())
	log.Info().Str("version", version).Msgf("%s starting", AppName)

	tracks, err := catalog.Builtin()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read built-in playlist")
	}

	assetsDir := settings.GetAssetsDirectory()
	if err := platform.CreateDirectoryIfNotExists(assetsDir); err != nil {
		log.Warn().Err(err).Str("dir", assetsDir).Msg("Failed to ensure assets dir")
	}

	out, err := audio.NewSpeaker(audio.DefaultSampleRate, audio.DefaultBuffer)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open audio output")
	}
	engine := audio.NewEngine(out)
	engine.SetVolume(settings.GetVolume())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	nav := playlist.NewNavigator(tracks)
	root := ui.NewRootUI(myWindow, settings, nav.Tracks())

	// Ticks run on the Fyne main thread like every other controller call
	controller := player.NewController(nav, engine, audio.NewFileResolver(assetsDir), root, player.NewTickerScheduler(fyne.Do))
	controller.SetTickInterval(settings.GetTickInterval())
	root.Bind(controller)

	root.SetOnSettingsChanged(func(s *config.Settings) {
		engine.SetVolume(s.GetVolume())
		controller.SetTickInterval(s.GetTickInterval())
		zerolog.SetGlobalLevel(s.GetLogLevel())
		log.Debug().
			Float64("volume", s.GetVolume()).
			Dur("tick_interval", s.GetTickInterval()).
			Msg("Settings applied")
	})

	myWindow.SetOnClosed(controller.Close)

	log.Info().Str("assets", assetsDir).Int("tracks", nav.Len()).Msg("Player ready")
	controller.LoadTrack(0)

	myWindow.ShowAndRun()
}
