package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/track-player/internal/config"
	"github.com/ytget/track-player/internal/model"
	"github.com/ytget/track-player/internal/player"
)

// recordingTransport records actions triggered from the window
type recordingTransport struct {
	calls []string
	seeks []float64
	index int
}

func (r *recordingTransport) TogglePlayPause() { r.calls = append(r.calls, "toggle") }
func (r *recordingTransport) Next()            { r.calls = append(r.calls, "next") }
func (r *recordingTransport) Previous()        { r.calls = append(r.calls, "previous") }

func (r *recordingTransport) Select(index int) {
	r.calls = append(r.calls, "select")
	r.index = index
}

func (r *recordingTransport) Seek(seconds float64) {
	r.calls = append(r.calls, "seek")
	r.seeks = append(r.seeks, seconds)
}

func (r *recordingTransport) Snapshot() player.Snapshot {
	return player.Snapshot{Index: r.index}
}

var testTracks = []model.Track{
	{Title: "Track 1", Artist: "2Pac", Cover: "cover_1", Asset: "track1"},
	{Title: "Track 2", Artist: "50 Cent", Cover: "cover_2", Asset: "track2"},
	{Title: "Track 3", Artist: "Eminem", Cover: "cover_3", Asset: "track3"},
}

func newTestRootUI(t *testing.T) (*RootUI, *recordingTransport) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetAssetsDirectory(t.TempDir())
	settings.SetLanguage("en")

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	ui := NewRootUI(window, settings, testTracks)
	transport := &recordingTransport{}
	ui.Bind(transport)
	return ui, transport
}

func TestRootUIInitialState(t *testing.T) {
	ui, _ := newTestRootUI(t)

	if ui.titleLabel.Text != DashPlaceholder {
		t.Errorf("Expected placeholder title, got %q", ui.titleLabel.Text)
	}
	if ui.currentLabel.Text != TimePlaceholder || ui.durationLabel.Text != TimePlaceholder {
		t.Errorf("Expected zero times, got %q / %q", ui.currentLabel.Text, ui.durationLabel.Text)
	}
	if !ui.seekSlider.Disabled() {
		t.Error("Seek slider should be disabled until a track is loaded")
	}
	if ui.icon != model.IconPlay {
		t.Errorf("Expected play icon, got %v", ui.icon)
	}
	if ui.window.Title() != "Track Player" {
		t.Errorf("Unexpected window title %q", ui.window.Title())
	}
}

func TestRootUIShowTrack(t *testing.T) {
	ui, transport := newTestRootUI(t)
	transport.index = 1

	ui.ShowTrack("Track 2", "50 Cent", "cover_2")

	if ui.titleLabel.Text != "Track 2" {
		t.Errorf("Expected title 'Track 2', got %q", ui.titleLabel.Text)
	}
	if ui.artistLabel.Text != "50 Cent" {
		t.Errorf("Expected artist '50 Cent', got %q", ui.artistLabel.Text)
	}
	if ui.cover.Resource().Name() != PlaceholderCover().Name() {
		t.Error("Missing cover file should fall back to the placeholder")
	}
	if ui.trackList.Current() != 1 {
		t.Errorf("Expected track list to mark index 1, got %d", ui.trackList.Current())
	}

	ui.ShowTrack("", "", "")
	if ui.titleLabel.Text != DashPlaceholder || ui.artistLabel.Text != DashPlaceholder {
		t.Errorf("Empty fields should render as placeholders, got %q / %q", ui.titleLabel.Text, ui.artistLabel.Text)
	}
}

func TestRootUIShowTransport(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.ShowTransport(model.IconPause)
	if ui.playPauseBtn.Icon.Name() != theme.MediaPauseIcon().Name() {
		t.Error("Expected pause icon while playing")
	}

	ui.ShowTransport(model.IconPlay)
	if ui.playPauseBtn.Icon.Name() != theme.MediaPlayIcon().Name() {
		t.Error("Expected play icon while stopped")
	}
}

func TestRootUIShowProgress(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.ShowProgress(player.NewProgress(65, 130))

	if ui.currentLabel.Text != "1:05" {
		t.Errorf("Expected current '1:05', got %q", ui.currentLabel.Text)
	}
	if ui.durationLabel.Text != "2:10" {
		t.Errorf("Expected duration '2:10', got %q", ui.durationLabel.Text)
	}
	if ui.seekSlider.Value != 500 {
		t.Errorf("Expected slider at 500, got %v", ui.seekSlider.Value)
	}
	if ui.seekSlider.Disabled() {
		t.Error("Seek slider should be enabled for a loaded track")
	}

	ui.ShowProgress(player.NewProgress(0, 0))
	if !ui.seekSlider.Disabled() {
		t.Error("Seek slider should be disabled without a duration")
	}
	if ui.seekSlider.Value != 0 {
		t.Errorf("Expected slider reset to 0, got %v", ui.seekSlider.Value)
	}
}

func TestRootUISeekSlider(t *testing.T) {
	ui, transport := newTestRootUI(t)
	ui.ShowProgress(player.NewProgress(10, 200))

	// Dragging previews the time and freezes progress updates
	ui.onSeekChanged(250)
	if ui.currentLabel.Text != "0:50" {
		t.Errorf("Expected preview '0:50', got %q", ui.currentLabel.Text)
	}

	ui.ShowProgress(player.NewProgress(11, 200))
	if ui.currentLabel.Text != "0:50" {
		t.Errorf("Progress must not override a drag in progress, got %q", ui.currentLabel.Text)
	}

	ui.onSeekEnded(250)
	if len(transport.seeks) != 1 || transport.seeks[0] != 50 {
		t.Fatalf("Expected one seek to 50s, got %v", transport.seeks)
	}

	ui.ShowProgress(player.NewProgress(50, 200))
	if ui.currentLabel.Text != "0:50" || ui.seekSlider.Value != 250 {
		t.Errorf("Progress should resume after the drag, got %q at %v", ui.currentLabel.Text, ui.seekSlider.Value)
	}
	if len(transport.seeks) != 1 {
		t.Errorf("Programmatic slider updates must not seek, got %v", transport.seeks)
	}
}

func TestRootUITrackChangeCancelsSeek(t *testing.T) {
	ui, transport := newTestRootUI(t)
	ui.ShowProgress(player.NewProgress(10, 200))

	ui.onSeekChanged(500)

	// Next via keyboard while the slider is held
	ui.ShowTrack("Track 2", "50 Cent", "cover_2")
	ui.ShowProgress(player.NewProgress(0, 60))

	if ui.currentLabel.Text != "0:00" || ui.seekSlider.Value != 0 {
		t.Errorf("New track progress should show, got %q at %v", ui.currentLabel.Text, ui.seekSlider.Value)
	}

	// The rest of the stale drag does nothing
	ui.onSeekChanged(700)
	if ui.currentLabel.Text != "0:00" {
		t.Errorf("Stale drag must not preview, got %q", ui.currentLabel.Text)
	}
	ui.onSeekEnded(700)
	if len(transport.seeks) != 0 {
		t.Errorf("Track change must cancel the drag, got seeks %v", transport.seeks)
	}

	// A fresh drag works again
	ui.onSeekChanged(500)
	ui.onSeekEnded(500)
	if len(transport.seeks) != 1 || transport.seeks[0] != 30 {
		t.Errorf("Expected one seek to 30s, got %v", transport.seeks)
	}
}

func TestRootUIButtons(t *testing.T) {
	ui, transport := newTestRootUI(t)

	test.Tap(ui.playPauseBtn)
	test.Tap(ui.nextBtn)
	test.Tap(ui.prevBtn)

	expected := []string{"toggle", "next", "previous"}
	if len(transport.calls) != len(expected) {
		t.Fatalf("Expected calls %v, got %v", expected, transport.calls)
	}
	for i, call := range expected {
		if transport.calls[i] != call {
			t.Errorf("Call %d: expected %s, got %s", i, call, transport.calls[i])
		}
	}
}

func TestRootUIKeyboardAndGestures(t *testing.T) {
	ui, transport := newTestRootUI(t)

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyA})

	test.Tap(ui.cover)
	ui.onCoverGesture(GestureSwipeLeft)
	ui.onCoverGesture(GestureSwipeRight)
	ui.onCoverGesture(GestureNone)

	expected := []string{"toggle", "next", "previous", "toggle", "next", "previous"}
	if len(transport.calls) != len(expected) {
		t.Fatalf("Expected calls %v, got %v", expected, transport.calls)
	}
	for i, call := range expected {
		if transport.calls[i] != call {
			t.Errorf("Call %d: expected %s, got %s", i, call, transport.calls[i])
		}
	}
}

func TestRootUITrackListSelect(t *testing.T) {
	ui, transport := newTestRootUI(t)

	ui.trackList.list.Select(2)

	if len(transport.calls) != 1 || transport.calls[0] != "select" || transport.index != 2 {
		t.Errorf("Expected select(2), got %v index %d", transport.calls, transport.index)
	}
}

func TestRootUIUnbound(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	settings := config.NewSettings(app)
	settings.SetAssetsDirectory(t.TempDir())

	ui := NewRootUI(test.NewWindow(nil), settings, testTracks)

	// Controls must be safe before a transport is bound
	test.Tap(ui.playPauseBtn)
	ui.onSeekEnded(500)
	ui.ShowTrack("Track 1", "2Pac", "cover_1")
	if ui.trackList.Current() != -1 {
		t.Errorf("Expected no highlighted track, got %d", ui.trackList.Current())
	}
}

func TestRootUISettingsSaved(t *testing.T) {
	ui, _ := newTestRootUI(t)

	var applied *config.Settings
	ui.SetOnSettingsChanged(func(s *config.Settings) { applied = s })

	ui.settings.SetLanguage("ru")
	ui.onSettingsSaved()

	if applied != ui.settings {
		t.Error("Settings callback should receive the window settings")
	}
	if ui.localization.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language 'ru', got %s", ui.localization.GetCurrentLanguage())
	}
	if ui.window.Title() != "Плеер" {
		t.Errorf("Expected localized title, got %q", ui.window.Title())
	}
}
