package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"github.com/rs/zerolog/log"

	"github.com/ytget/track-player/internal/player"
)

// Supported asset extensions, in lookup order
const (
	ExtMP3 = ".mp3"
	ExtWAV = ".wav"
)

// SupportedExtensions lists asset extensions the engine can decode
var SupportedExtensions = []string{ExtMP3, ExtWAV}

// Volume settings for effects.Volume (exponent steps of VolumeBase)
const (
	VolumeBase    = 2
	MinVolume     = -5.0 // at or below this the output is silent
	MaxVolume     = 2.0
	DefaultVolume = 0.0
)

// Engine plays one decoded asset at a time through an Output.
// Fields read by the output goroutine are guarded by Output.Lock.
type Engine struct {
	out    Output
	volume float64

	stream     beep.StreamSeekCloser
	format     beep.Format
	ctrl       *beep.Ctrl
	vol        *effects.Volume
	attached   bool // streamer chain is in the output mixer
	generation int  // bumped on every Load/Close to ignore stale end callbacks
}

var _ player.Engine = (*Engine)(nil)

// NewEngine creates an engine with nothing loaded
func NewEngine(out Output) *Engine {
	return &Engine{out: out, volume: DefaultVolume}
}

// SetVolume sets the output volume, clamped to [MinVolume, MaxVolume]
func (e *Engine) SetVolume(volume float64) {
	volume = clampVolume(volume)

	e.out.Lock()
	defer e.out.Unlock()

	e.volume = volume
	if e.vol != nil {
		e.vol.Volume = volume
		e.vol.Silent = volume <= MinVolume
	}
}

// Volume returns the configured volume
func (e *Engine) Volume() float64 {
	e.out.Lock()
	defer e.out.Unlock()
	return e.volume
}

// Load decodes asset and binds it paused at position zero
func (e *Engine) Load(asset player.Asset) (float64, error) {
	e.Close()

	stream, format, err := decode(asset)
	if err != nil {
		return 0, err
	}

	var src beep.Streamer = stream
	if rate := e.out.SampleRate(); rate != 0 && format.SampleRate != rate {
		src = beep.Resample(ResampleQuality, format.SampleRate, rate, stream)
	}

	e.out.Lock()
	e.stream = stream
	e.format = format
	e.ctrl = &beep.Ctrl{Streamer: src, Paused: true}
	e.vol = &effects.Volume{
		Streamer: e.ctrl,
		Base:     VolumeBase,
		Volume:   e.volume,
		Silent:   e.volume <= MinVolume,
	}
	e.out.Unlock()

	e.attach()

	duration := format.SampleRate.D(stream.Len()).Seconds()
	log.Debug().
		Str("asset", asset.Name).
		Int("sample_rate", int(format.SampleRate)).
		Int("channels", format.NumChannels).
		Float64("duration", duration).
		Msg("Asset decoded")
	return duration, nil
}

// Play starts or resumes transport. A finished track restarts from the beginning.
func (e *Engine) Play() {
	e.out.Lock()
	if e.ctrl == nil {
		e.out.Unlock()
		return
	}
	if e.stream.Position() >= e.stream.Len() {
		if err := e.stream.Seek(0); err != nil {
			log.Warn().Err(err).Msg("Failed to rewind finished track")
		}
	}
	e.ctrl.Paused = false
	reattach := !e.attached
	e.out.Unlock()

	if reattach {
		e.attach()
	}
}

// Pause stops transport and keeps the position
func (e *Engine) Pause() {
	e.out.Lock()
	defer e.out.Unlock()

	if e.ctrl != nil {
		e.ctrl.Paused = true
	}
}

// IsPlaying reports whether audio is actively streaming
func (e *Engine) IsPlaying() bool {
	e.out.Lock()
	defer e.out.Unlock()

	return e.ctrl != nil && !e.ctrl.Paused && e.attached && e.stream.Position() < e.stream.Len()
}

// Position returns the current position in seconds
func (e *Engine) Position() float64 {
	e.out.Lock()
	defer e.out.Unlock()

	if e.stream == nil {
		return 0
	}
	return e.format.SampleRate.D(e.stream.Position()).Seconds()
}

// SetPosition seeks to seconds, clamped to the stream bounds
func (e *Engine) SetPosition(seconds float64) {
	e.out.Lock()
	defer e.out.Unlock()

	if e.stream == nil {
		return
	}

	n := e.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	if n < 0 {
		n = 0
	}
	if n > e.stream.Len() {
		n = e.stream.Len()
	}
	if err := e.stream.Seek(n); err != nil {
		log.Warn().Err(err).Float64("seconds", seconds).Msg("Seek failed")
	}
}

// Close detaches and releases the bound asset
func (e *Engine) Close() {
	e.out.Lock()
	stream := e.stream
	if e.ctrl != nil {
		e.ctrl.Paused = true
	}
	e.stream = nil
	e.ctrl = nil
	e.vol = nil
	e.attached = false
	e.generation++
	e.out.Unlock()

	if stream == nil {
		return
	}
	e.out.Clear()
	if err := stream.Close(); err != nil {
		log.Debug().Err(err).Msg("Failed to close stream")
	}
}

// attach hands the streamer chain to the output and tracks when it drains
func (e *Engine) attach() {
	e.out.Lock()
	if e.vol == nil {
		e.out.Unlock()
		return
	}
	gen := e.generation
	chain := beep.Seq(e.vol, beep.Callback(func() {
		// Runs on the output goroutine with the output lock held
		if e.generation == gen {
			e.attached = false
		}
	}))
	e.attached = true
	e.out.Unlock()

	e.out.Play(chain)
}

// decode opens and decodes an asset by extension
func decode(asset player.Asset) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(asset.Ext)
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(asset.Path))
	}
	if ext != ExtMP3 && ext != ExtWAV {
		return nil, beep.Format{}, fmt.Errorf("%w: %s: unsupported format %q", player.ErrAssetLoadFailed, asset.Name, ext)
	}

	f, err := os.Open(asset.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, beep.Format{}, fmt.Errorf("%w: %w", player.ErrAssetNotFound, err)
		}
		return nil, beep.Format{}, fmt.Errorf("%w: %w", player.ErrAssetLoadFailed, err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext {
	case ExtMP3:
		stream, format, err = mp3.Decode(f)
	case ExtWAV:
		stream, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %s: %w", player.ErrAssetLoadFailed, asset.Name, err)
	}

	return stream, format, nil
}

func clampVolume(v float64) float64 {
	if v < MinVolume {
		return MinVolume
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}
