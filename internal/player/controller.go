package player

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ytget/track-player/internal/model"
	"github.com/ytget/track-player/internal/playlist"
)

// session is the live binding between a track and the engine
type session struct {
	id       string
	track    model.Track
	asset    Asset
	duration float64
}

// Snapshot is a read-only view of the controller state
type Snapshot struct {
	State     model.PlaybackState
	Index     int
	Track     model.Track
	Duration  float64
	Position  float64
	Playing   bool // sticky play intent, survives failed loads
	SessionID string
}

// Controller drives the engine for the navigator's current track.
// The progress timer runs if and only if playing is set and a session exists.
type Controller struct {
	nav       *playlist.Navigator
	engine    Engine
	resolver  Resolver
	display   Display
	scheduler Scheduler
	interval  time.Duration

	session *session
	timer   Timer
	playing bool
}

// NewController creates a controller in the Idle state
func NewController(nav *playlist.Navigator, engine Engine, resolver Resolver, display Display, scheduler Scheduler) *Controller {
	return &Controller{
		nav:       nav,
		engine:    engine,
		resolver:  resolver,
		display:   display,
		scheduler: scheduler,
		interval:  DefaultTickInterval,
	}
}

// SetTickInterval changes the progress sampling interval. It applies from the next timer start.
func (c *Controller) SetTickInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	c.interval = interval
}

// State returns the current playback state
func (c *Controller) State() model.PlaybackState {
	switch {
	case c.session == nil:
		return model.StateIdle
	case c.timer != nil:
		return model.StatePlaying
	default:
		return model.StateLoadedStopped
	}
}

// Snapshot returns the current controller state
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		State:   c.State(),
		Index:   c.nav.Index(),
		Playing: c.playing,
	}
	if track, ok := c.nav.Current(); ok {
		snap.Track = track
	}
	if c.session != nil {
		snap.Duration = c.session.duration
		snap.Position = c.engine.Position()
		snap.SessionID = c.session.id
	}
	return snap
}

// LoadTrack binds the track at index, releasing the previous session first.
// Out-of-range indices are ignored. A failed load leaves the controller Idle.
// If playback was active, the new track starts immediately.
func (c *Controller) LoadTrack(index int) {
	track, ok := c.nav.At(index)
	if !ok {
		return
	}
	c.nav.Select(index)

	c.release()
	c.display.ShowTrack(track.Title, track.Artist, track.Cover)

	asset, duration, err := c.open(track)
	if err != nil {
		event := log.Warn()
		if !IsAssetError(err) {
			event = log.Error()
		}
		event.Err(err).
			Int("index", index).
			Str("track", track.String()).
			Str("asset", track.Asset).
			Msg("Failed to load track")
		c.display.ShowProgress(NewProgress(0, 0))
		c.display.ShowTransport(c.transportIcon())
		return
	}

	c.session = &session{
		id:       uuid.NewString(),
		track:    track,
		asset:    asset,
		duration: duration,
	}
	c.display.ShowProgress(NewProgress(0, duration))

	log.Debug().
		Str("session", c.session.id).
		Str("track", track.String()).
		Str("path", asset.Path).
		Float64("duration", duration).
		Bool("autoplay", c.playing).
		Msg("Track loaded")

	if c.playing {
		c.engine.Play()
		c.startTimer()
	}
	c.display.ShowTransport(c.transportIcon())
}

// TogglePlayPause pauses when playing and plays otherwise. With nothing
// loaded it loads the current track first; if that load fails it does nothing.
func (c *Controller) TogglePlayPause() {
	if c.session == nil {
		c.LoadTrack(c.nav.Index())
		if c.session == nil {
			c.display.ShowTransport(c.transportIcon())
			return
		}
		c.play()
		return
	}

	if c.engine.IsPlaying() {
		c.pause()
	} else {
		c.play()
	}
}

// Next advances to the following track with wraparound
func (c *Controller) Next() {
	if c.nav.Len() == 0 {
		return
	}
	c.LoadTrack(c.nav.Next())
}

// Previous moves to the preceding track with wraparound
func (c *Controller) Previous() {
	if c.nav.Len() == 0 {
		return
	}
	c.LoadTrack(c.nav.Previous())
}

// Select loads the track at index, e.g. from a track list
func (c *Controller) Select(index int) {
	if !c.nav.Select(index) {
		return
	}
	c.LoadTrack(index)
}

// Seek moves the session to seconds, clamped to the track duration.
// Transport state is left untouched so a stopped track resumes from here.
func (c *Controller) Seek(seconds float64) {
	if c.session == nil {
		return
	}

	c.engine.SetPosition(clamp(seconds, 0, c.session.duration))
	c.display.ShowProgress(NewProgress(c.engine.Position(), c.session.duration))
}

// Close releases the session and timer
func (c *Controller) Close() {
	c.release()
	c.playing = false
}

// tick samples the engine and stops transport at end of track
func (c *Controller) tick() {
	if c.session == nil {
		return
	}

	position := c.engine.Position()
	c.display.ShowProgress(NewProgress(position, c.session.duration))

	if position >= c.session.duration {
		c.engine.Pause()
		c.playing = false
		c.stopTimer()
		log.Debug().Str("session", c.session.id).Msg("Reached end of track")
		c.display.ShowTransport(c.transportIcon())
	}
}

// transportIcon follows the play intent, so a failed load while playing keeps
// showing pause until the user stops or a later load resumes
func (c *Controller) transportIcon() model.Icon {
	if c.playing {
		return model.IconPause
	}
	return model.IconPlay
}

func (c *Controller) play() {
	c.engine.Play()
	c.playing = true
	c.startTimer()
	c.display.ShowTransport(c.transportIcon())
}

func (c *Controller) pause() {
	c.engine.Pause()
	c.playing = false
	c.stopTimer()
	c.display.ShowTransport(c.transportIcon())
}

// open resolves and loads the track asset
func (c *Controller) open(track model.Track) (Asset, float64, error) {
	asset, err := c.resolver.Resolve(track.Asset)
	if err != nil {
		return Asset{}, 0, err
	}

	duration, err := c.engine.Load(asset)
	if err != nil {
		c.engine.Close()
		return Asset{}, 0, err
	}
	return asset, duration, nil
}

// release stops transport and the timer and drops the session
func (c *Controller) release() {
	c.stopTimer()
	if c.session == nil {
		return
	}

	c.engine.Pause()
	c.engine.Close()
	log.Debug().Str("session", c.session.id).Msg("Session released")
	c.session = nil
}

func (c *Controller) startTimer() {
	c.stopTimer()
	c.timer = c.scheduler.Every(c.interval, c.tick)
}

func (c *Controller) stopTimer() {
	if c.timer == nil {
		return
	}
	c.timer.Stop()
	c.timer = nil
}
