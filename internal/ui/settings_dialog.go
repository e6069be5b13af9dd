package ui

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/track-player/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	assetsDirEntry *widget.Entry
	intervalEntry  *widget.Entry
	volumeSlider   *widget.Slider
	volumeLabel    *widget.Label
	languageSelect *widget.Select
	logLevelSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after settings are stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	// Assets directory selection
	sd.assetsDirEntry = widget.NewEntry()
	sd.assetsDirEntry.SetPlaceHolder(config.FallbackAssetsDir)

	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	assetsDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.assetsDirEntry)

	// Progress update interval
	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinTickIntervalMs, config.MaxTickIntervalMs))

	// Volume
	sd.volumeLabel = widget.NewLabel("")
	sd.volumeSlider = widget.NewSlider(config.MinVolume, config.MaxVolume)
	sd.volumeSlider.Step = 0.5
	sd.volumeSlider.OnChanged = func(v float64) {
		sd.volumeLabel.SetText(strconv.FormatFloat(v, 'f', 1, 64))
	}
	volumeRow := container.NewBorder(nil, nil, nil, sd.volumeLabel, sd.volumeSlider)

	// Language selection
	sd.languageSelect = widget.NewSelect(slices.Sorted(maps.Keys(sd.settings.GetLanguageOptions())), nil)
	sd.languageSelect.PlaceHolder = "system"

	// Log level selection
	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyPlaybackGroup)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyAssetsDirectory)+":"),
		assetsDirRow,

		widget.NewLabel(text(KeyTickInterval)+":"),
		sd.intervalEntry,

		widget.NewLabel(text(KeyVolume)+":"),
		volumeRow,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceGroup)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(text(KeyLogLevel)+":"),
		sd.logLevelSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.assetsDirEntry.SetText(sd.settings.GetAssetsDirectory())
	sd.intervalEntry.SetText(strconv.Itoa(int(sd.settings.GetTickInterval().Milliseconds())))
	sd.volumeSlider.SetValue(sd.settings.GetVolume())
	sd.volumeLabel.SetText(strconv.FormatFloat(sd.settings.GetVolume(), 'f', 1, 64))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel().String())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.assetsDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if sd.apply() {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}

// apply stores the form values and reports whether the assets directory changed
func (sd *SettingsDialog) apply() bool {
	dirChanged := false
	assetsDir := strings.TrimSpace(sd.assetsDirEntry.Text)
	if assetsDir != "" && assetsDir != sd.settings.GetAssetsDirectory() {
		sd.settings.SetAssetsDirectory(assetsDir)
		dirChanged = true
	}

	if ms, err := strconv.Atoi(strings.TrimSpace(sd.intervalEntry.Text)); err == nil {
		sd.settings.SetTickInterval(ms)
	}

	sd.settings.SetVolume(sd.volumeSlider.Value)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	return dirChanged
}
