package model

// PlaybackState represents the state of the playback controller
type PlaybackState string

const (
	// StateIdle means no track session is bound
	StateIdle PlaybackState = "Idle"

	// StateLoadedStopped means a session exists but transport is stopped
	StateLoadedStopped PlaybackState = "Loaded-Stopped"

	// StatePlaying means transport is running and progress is sampled
	StatePlaying PlaybackState = "Playing"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// HasSession returns true if the state implies a bound track session
func (ps PlaybackState) HasSession() bool {
	return ps == StateLoadedStopped || ps == StatePlaying
}

// Icon returns the transport glyph the play/pause control should show
func (ps PlaybackState) Icon() Icon {
	if ps == StatePlaying {
		return IconPause
	}
	return IconPlay
}

// Icon is the glyph shown on the play/pause control
type Icon string

const (
	IconPlay  Icon = "play"
	IconPause Icon = "pause"
)

// String returns the string representation of Icon
func (i Icon) String() string {
	return string(i)
}
