package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/track-player/internal/config"
	"github.com/ytget/track-player/internal/model"
	"github.com/ytget/track-player/internal/player"
)

// Transport is the set of playback actions the window can trigger
type Transport interface {
	TogglePlayPause()
	Next()
	Previous()
	Select(index int)
	Seek(seconds float64)
	Snapshot() player.Snapshot
}

// RootUI represents the main player window. It is the controller's Display and
// must only be called on the Fyne main thread.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	covers       *CoverLoader
	transport    Transport

	// Track info
	cover       *CoverArt
	titleLabel  *widget.Label
	artistLabel *widget.Label
	trackList   *TrackList

	// Progress
	seekSlider    *widget.Slider
	currentLabel  *widget.Label
	durationLabel *widget.Label
	duration      float64
	seeking       bool // user is dragging the slider
	settingSlider bool // slider value is being set from a progress update
	dragCancelled bool // track changed mid-drag; ignore the rest of it

	// Transport
	prevBtn      *widget.Button
	playPauseBtn *widget.Button
	nextBtn      *widget.Button
	icon         model.Icon

	onSettingsChanged func(*config.Settings)
}

var _ player.Display = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI for tracks
func NewRootUI(window fyne.Window, settings *config.Settings, tracks []model.Track) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		covers:       NewCoverLoader(settings.GetAssetsDirectory()),
		icon:         model.IconPlay,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI(tracks)
	return ui
}

// Bind connects the window controls to transport
func (ui *RootUI) Bind(transport Transport) {
	ui.transport = transport
}

// SetOnSettingsChanged registers a callback run after the settings dialog saves
func (ui *RootUI) SetOnSettingsChanged(fn func(*config.Settings)) {
	ui.onSettingsChanged = fn
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(tracks []model.Track) {
	ui.createMenu()

	ui.cover = NewCoverArt(PlaceholderCover(), coverSize(), ui.onCoverGesture)

	ui.titleLabel = widget.NewLabel(DashPlaceholder)
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis

	ui.artistLabel = widget.NewLabel(DashPlaceholder)
	ui.artistLabel.Alignment = fyne.TextAlignCenter
	ui.artistLabel.Truncation = fyne.TextTruncateEllipsis

	// Seek slider and time labels
	ui.seekSlider = widget.NewSlider(0, SeekSliderMax)
	ui.seekSlider.Step = SeekSliderStep
	ui.seekSlider.OnChanged = ui.onSeekChanged
	ui.seekSlider.OnChangeEnded = ui.onSeekEnded
	ui.seekSlider.Disable()

	ui.currentLabel = widget.NewLabel(TimePlaceholder)
	ui.currentLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.durationLabel = widget.NewLabel(TimePlaceholder)
	ui.durationLabel.TextStyle = fyne.TextStyle{Monospace: true}

	progressRow := container.NewBorder(nil, nil,
		container.NewGridWrap(fyne.NewSize(TimeLabelWidth, ui.currentLabel.MinSize().Height), ui.currentLabel),
		container.NewGridWrap(fyne.NewSize(TimeLabelWidth, ui.durationLabel.MinSize().Height), ui.durationLabel),
		ui.seekSlider,
	)

	// Transport buttons
	ui.prevBtn = widget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), ui.onPrevious)
	ui.playPauseBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), ui.onPlayPause)
	ui.playPauseBtn.Importance = widget.HighImportance
	ui.nextBtn = widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), ui.onNext)

	buttonSize := fyne.NewSize(MinTouchTargetSize*1.5, MinTouchTargetSize)
	controls := container.NewCenter(container.NewGridWrap(buttonSize, ui.prevBtn, ui.playPauseBtn, ui.nextBtn))

	playerPane := container.NewVBox(
		container.NewCenter(ui.cover),
		ui.titleLabel,
		ui.artistLabel,
		layoutSpacer(),
		progressRow,
		controls,
	)

	ui.trackList = NewTrackList(tracks, ui.onTrackSelected)

	ui.window.SetContent(playerLayout(container.NewPadded(playerPane), ui.trackList.Container()))
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)

	log.Debug().Int("tracks", len(tracks)).Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	text := ui.localization.GetText

	settingsItem := fyne.NewMenuItem(text(KeySettings), ui.onShowSettings)

	playbackMenu := fyne.NewMenu(text(KeyPlayback),
		fyne.NewMenuItem(text(KeyPlay)+" / "+text(KeyPause), ui.onPlayPause),
		fyne.NewMenuItem(text(KeyPrevious), ui.onPrevious),
		fyne.NewMenuItem(text(KeyNext), ui.onNext),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(text(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(text(KeyFile), settingsItem),
		playbackMenu,
		languageMenu,
	))
}

// ShowTrack implements player.Display
func (ui *RootUI) ShowTrack(title, artist, cover string) {
	// A drag started on the previous track no longer applies
	if ui.seeking {
		ui.seeking = false
		ui.dragCancelled = true
	}

	ui.titleLabel.SetText(orPlaceholder(title))
	ui.artistLabel.SetText(orPlaceholder(artist))
	ui.cover.SetResource(ui.covers.Load(cover))

	if ui.transport != nil {
		ui.trackList.SetCurrent(ui.transport.Snapshot().Index)
	}
}

// ShowTransport implements player.Display
func (ui *RootUI) ShowTransport(icon model.Icon) {
	ui.icon = icon
	if icon == model.IconPause {
		ui.playPauseBtn.SetIcon(theme.MediaPauseIcon())
		return
	}
	ui.playPauseBtn.SetIcon(theme.MediaPlayIcon())
}

// ShowProgress implements player.Display
func (ui *RootUI) ShowProgress(progress player.Progress) {
	ui.duration = progress.Duration
	ui.durationLabel.SetText(progress.Total)

	if progress.Duration > 0 {
		ui.seekSlider.Enable()
	} else {
		ui.seeking = false
		ui.seekSlider.Disable()
	}

	// Keep the thumb where the user holds it
	if ui.seeking {
		return
	}

	ui.settingSlider = true
	ui.seekSlider.SetValue(math.Round(progress.Fraction() * SeekSliderMax))
	ui.settingSlider = false
	ui.currentLabel.SetText(progress.Current)
}

// onSeekChanged previews the target time while the slider is dragged
func (ui *RootUI) onSeekChanged(value float64) {
	if ui.settingSlider || ui.dragCancelled {
		return
	}
	ui.seeking = true
	ui.currentLabel.SetText(player.FormatTime(ui.sliderSeconds(value)))
}

// onSeekEnded commits the slider position
func (ui *RootUI) onSeekEnded(value float64) {
	if ui.settingSlider {
		return
	}
	// Drags cancelled by a track change are dropped on release
	if ui.dragCancelled {
		ui.dragCancelled = false
		return
	}
	ui.seeking = false
	if ui.transport != nil {
		ui.transport.Seek(ui.sliderSeconds(value))
	}
}

// sliderSeconds converts a slider value to a position in the track
func (ui *RootUI) sliderSeconds(value float64) float64 {
	return value / SeekSliderMax * ui.duration
}

func (ui *RootUI) onPlayPause() {
	if ui.transport != nil {
		ui.transport.TogglePlayPause()
	}
}

func (ui *RootUI) onNext() {
	if ui.transport != nil {
		ui.transport.Next()
	}
}

func (ui *RootUI) onPrevious() {
	if ui.transport != nil {
		ui.transport.Previous()
	}
}

func (ui *RootUI) onTrackSelected(index int) {
	if ui.transport != nil {
		ui.transport.Select(index)
	}
}

// onCoverGesture maps cover taps and swipes to transport actions
func (ui *RootUI) onCoverGesture(gesture GestureType) {
	switch gesture {
	case GestureTap:
		ui.onPlayPause()
	case GestureSwipeLeft:
		ui.onNext()
	case GestureSwipeRight:
		ui.onPrevious()
	}
}

// onTypedKey handles keyboard shortcuts
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeySpace:
		ui.onPlayPause()
	case fyne.KeyRight:
		ui.onNext()
	case fyne.KeyLeft:
		ui.onPrevious()
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the window and notifies the app
func (ui *RootUI) onSettingsSaved() {
	if ui.settings.GetLanguage() != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
	}

	if ui.onSettingsChanged != nil {
		ui.onSettingsChanged(ui.settings)
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Recreate menu to update labels and checkmarks
	ui.createMenu()
}

func orPlaceholder(s string) string {
	if s == "" {
		return DashPlaceholder
	}
	return s
}

// layoutSpacer adds device-dependent vertical space
func layoutSpacer() fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(0, spacing()))
}
