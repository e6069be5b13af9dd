package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/track-player/internal/model"
)

// TrackList shows the playlist and marks the current track
type TrackList struct {
	tracks  []model.Track
	current int

	container *fyne.Container
	list      *widget.List

	onSelect func(index int)
}

// NewTrackList creates a list over tracks. onSelect receives the tapped index.
func NewTrackList(tracks []model.Track, onSelect func(index int)) *TrackList {
	tl := &TrackList{
		tracks:   tracks,
		current:  -1,
		onSelect: onSelect,
	}

	tl.createUI()
	return tl
}

// createUI creates the list widget
func (tl *TrackList) createUI() {
	tl.list = widget.NewList(
		func() int {
			return len(tl.tracks)
		},
		func() fyne.CanvasObject {
			return newTrackRow()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(tl.tracks) {
				return
			}
			obj.(*trackRow).update(id, tl.tracks[id], id == tl.current)
		},
	)

	// Selection is a one-shot action; the current track is drawn by the row itself
	tl.list.OnSelected = func(id widget.ListItemID) {
		tl.list.UnselectAll()
		if tl.onSelect != nil {
			tl.onSelect(id)
		}
	}

	tl.container = container.NewBorder(nil, nil, nil, nil, tl.list)
}

// Container returns the list's root object
func (tl *TrackList) Container() *fyne.Container {
	return tl.container
}

// Current returns the highlighted index, -1 when none
func (tl *TrackList) Current() int {
	return tl.current
}

// SetCurrent highlights the track at index
func (tl *TrackList) SetCurrent(index int) {
	if index == tl.current {
		return
	}
	tl.current = index
	tl.list.Refresh()
	if index >= 0 && index < len(tl.tracks) {
		tl.list.ScrollTo(index)
	}
}

// trackRow renders one playlist entry
type trackRow struct {
	widget.BaseWidget

	number *widget.Label
	title  *widget.Label
	artist *widget.Label
	marker *widget.Icon
}

func newTrackRow() *trackRow {
	r := &trackRow{
		number: widget.NewLabel(""),
		title:  widget.NewLabel(""),
		artist: widget.NewLabel(""),
		marker: widget.NewIcon(theme.MediaPlayIcon()),
	}
	r.title.Truncation = fyne.TextTruncateEllipsis
	r.artist.Truncation = fyne.TextTruncateEllipsis
	r.artist.Importance = widget.LowImportance
	r.marker.Hide()
	r.ExtendBaseWidget(r)
	return r
}

// CreateRenderer implements fyne.Widget
func (r *trackRow) CreateRenderer() fyne.WidgetRenderer {
	info := container.NewVBox(r.title, r.artist)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, r.number, r.marker, info))
}

func (r *trackRow) update(index int, track model.Track, current bool) {
	r.number.SetText(strconv.Itoa(index + 1))

	r.title.TextStyle = fyne.TextStyle{Bold: current}
	r.title.SetText(track.GetDisplayTitle())

	artist := track.Artist
	if artist == "" {
		artist = DashPlaceholder
	}
	r.artist.SetText(artist)

	if current {
		r.marker.Show()
	} else {
		r.marker.Hide()
	}
}
