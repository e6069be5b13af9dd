package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gowav "github.com/go-audio/wav"
)

// ProbeWAV checks the WAV header at path and returns the length of its PCM data
func ProbeWAV(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("%s: invalid WAV header", filepath.Base(path))
	}
	if err := dec.FwdToPCM(); err != nil {
		return 0, fmt.Errorf("%s: find PCM data: %w", filepath.Base(path), err)
	}
	if dec.AvgBytesPerSec == 0 {
		return 0, fmt.Errorf("%s: zero byte rate", filepath.Base(path))
	}

	return time.Duration(dec.PCMLen()) * time.Second / time.Duration(dec.AvgBytesPerSec), nil
}
