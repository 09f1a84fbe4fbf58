package player

import (
	"fmt"
	"io"
	"os"
)

// DeviceSink writes PCM to a device or pipe path, reopened per track.
// Sample rate negotiation is the device's problem; most PCM pipes accept
// 44.1kHz stereo, which is what go-mp3 emits.
type DeviceSink struct {
	Path string
}

// Open opens the device for one playback session.
func (s DeviceSink) Open(sampleRate int) (io.WriteCloser, error) {
	f, err := os.OpenFile(s.Path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("opening audio device %s: %w", s.Path, err)
	}
	return f, nil
}
