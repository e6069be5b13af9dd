package player

import (
	"time"

	"github.com/ytget/track-player/internal/model"
)

// Asset is a resolved, loadable audio resource
type Asset struct {
	Name string // reference as written in the playlist
	Path string // location on disk
	Ext  string // lower-case extension including the dot, e.g. ".mp3"
}

// Engine defines the audio transport bound to one asset at a time.
type Engine interface {
	// Load binds the engine to asset in a paused state and returns its duration in seconds
	Load(asset Asset) (float64, error)
	Play()
	Pause()
	IsPlaying() bool
	// Position returns the current position in seconds
	Position() float64
	SetPosition(seconds float64)
	// Close releases the bound asset. Calling Close with nothing bound is allowed.
	Close()
}

// Resolver maps a track asset reference to a loadable asset.
type Resolver interface {
	Resolve(name string) (Asset, error)
}

// Progress carries display-ready progress values
type Progress struct {
	Value    float64 // current position in seconds, within [0, Duration]
	Duration float64 // track duration in seconds
	Current  string  // formatted current time, e.g. "1:05"
	Total    string  // formatted duration
}

// Display is the passive presentation sink notified by the controller.
type Display interface {
	ShowTrack(title, artist, cover string)
	ShowTransport(icon model.Icon)
	ShowProgress(progress Progress)
}

// Timer is a cancellable handle for a recurring callback. Stop must be
// idempotent, and once it returns the callback must not start again. When
// callbacks and Stop share one goroutine this makes Stop synchronous.
type Timer interface {
	Stop()
}

// Scheduler starts recurring callbacks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
}
