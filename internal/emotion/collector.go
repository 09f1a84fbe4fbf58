package emotion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/justestif/go-mood-player/internal/mood"
)

// Detection session defaults.
const (
	DefaultFrameCount = 12
	DefaultFrameDelay = 100 * time.Millisecond
)

// Collector runs bounded detection sessions against an emotion source. Each
// Collect call owns one session: up to frameCount frames, paced by frameDelay,
// frames without a face counted but not voted.
type Collector struct {
	source     Source
	frameCount int
	frameDelay time.Duration
	log        *zap.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithFrameCount sets the maximum number of frames per session.
func WithFrameCount(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.frameCount = n
		}
	}
}

// WithFrameDelay sets the pause between frame captures.
func WithFrameDelay(d time.Duration) Option {
	return func(c *Collector) {
		if d >= 0 {
			c.frameDelay = d
		}
	}
}

// NewCollector creates a Collector for the given source.
func NewCollector(source Source, log *zap.Logger, opts ...Option) *Collector {
	c := &Collector{
		source:     source,
		frameCount: DefaultFrameCount,
		frameDelay: DefaultFrameDelay,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect samples up to the configured number of frames and returns the
// emotion votes gathered. A device failure before any frame was sampled is
// returned as an error; a device failure mid-session ends the session early
// and returns the votes collected so far, so "zero votes" and "no device"
// remain distinguishable at the caller.
func (c *Collector) Collect(ctx context.Context) ([]mood.Vote, error) {
	var votes []mood.Vote

	for frame := 0; frame < c.frameCount; frame++ {
		if frame > 0 && c.frameDelay > 0 {
			select {
			case <-time.After(c.frameDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		vote, err := c.source.CaptureFrame(ctx)
		switch {
		case errors.Is(err, ErrNoFace):
			continue
		case errors.Is(err, ErrDeviceUnavailable):
			if frame == 0 {
				return nil, fmt.Errorf("opening capture device: %w", err)
			}
			c.log.Warn("capture device lost mid-session",
				zap.Int("frame", frame),
				zap.Int("votes", len(votes)))
			return votes, nil
		case err != nil:
			return nil, fmt.Errorf("capturing frame %d: %w", frame, err)
		}

		votes = append(votes, vote)
	}

	c.log.Debug("detection session complete",
		zap.Int("frames", c.frameCount),
		zap.Int("votes", len(votes)))

	return votes, nil
}
