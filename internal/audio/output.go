package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Output sample format shared by all tracks
const (
	DefaultSampleRate = beep.SampleRate(48000)
	DefaultBuffer     = 100 * time.Millisecond
	ResampleQuality   = 4
)

// Output is the sink the engine mixes into. Lock/Unlock guard state the
// output goroutine reads while streaming.
type Output interface {
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
	SampleRate() beep.SampleRate
}

// Speaker is the system audio device
type Speaker struct {
	rate beep.SampleRate
}

// NewSpeaker initializes the speaker once for the whole process
func NewSpeaker(rate beep.SampleRate, buffer time.Duration) (*Speaker, error) {
	if err := speaker.Init(rate, rate.N(buffer)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{rate: rate}, nil
}

// Play adds a streamer to the speaker mixer
func (s *Speaker) Play(st beep.Streamer) {
	speaker.Play(st)
}

// Clear removes all streamers from the mixer
func (s *Speaker) Clear() {
	speaker.Clear()
}

// Lock blocks the speaker goroutine
func (s *Speaker) Lock() {
	speaker.Lock()
}

// Unlock resumes the speaker goroutine
func (s *Speaker) Unlock() {
	speaker.Unlock()
}

// SampleRate returns the device sample rate
func (s *Speaker) SampleRate() beep.SampleRate {
	return s.rate
}
