// Package playlist owns the ordered track list and the current selection.
package playlist

import "github.com/ytget/track-player/internal/model"

// Navigator holds an ordered playlist and the index of the selected track.
// The index is always within bounds while the playlist is non-empty.
type Navigator struct {
	tracks []model.Track
	index  int
}

// NewNavigator creates a navigator positioned at the first track
func NewNavigator(tracks []model.Track) *Navigator {
	owned := make([]model.Track, len(tracks))
	copy(owned, tracks)
	return &Navigator{tracks: owned}
}

// Len returns the number of tracks
func (n *Navigator) Len() int {
	return len(n.tracks)
}

// Index returns the current index
func (n *Navigator) Index() int {
	return n.index
}

// Tracks returns a copy of the playlist in playback order
func (n *Navigator) Tracks() []model.Track {
	out := make([]model.Track, len(n.tracks))
	copy(out, n.tracks)
	return out
}

// Current returns the selected track, or false if the playlist is empty
func (n *Navigator) Current() (model.Track, bool) {
	return n.At(n.index)
}

// At returns the track at index, or false if index is out of range
func (n *Navigator) At(index int) (model.Track, bool) {
	if index < 0 || index >= len(n.tracks) {
		return model.Track{}, false
	}
	return n.tracks[index], true
}

// Next moves to the following track, wrapping from the last to the first.
// It returns the resulting index.
func (n *Navigator) Next() int {
	if len(n.tracks) == 0 {
		return n.index
	}
	if n.index == len(n.tracks)-1 {
		n.index = 0
	} else {
		n.index++
	}
	return n.index
}

// Previous moves to the preceding track, wrapping from the first to the last.
// It returns the resulting index.
func (n *Navigator) Previous() int {
	if len(n.tracks) == 0 {
		return n.index
	}
	if n.index == 0 {
		n.index = len(n.tracks) - 1
	} else {
		n.index--
	}
	return n.index
}

// Select jumps to index. Out-of-range indices are rejected.
func (n *Navigator) Select(index int) bool {
	if index < 0 || index >= len(n.tracks) {
		return false
	}
	n.index = index
	return true
}
