// Package emotion provides per-frame emotion capture and the bounded
// detection session that collects votes for mood aggregation.
package emotion

import (
	"context"
	"errors"

	"github.com/justestif/go-mood-player/internal/mood"
)

// Sentinel errors.
var (
	// ErrNoFace is returned by a source when a frame was captured but no
	// face was found in it.
	ErrNoFace = errors.New("no face detected")

	// ErrDeviceUnavailable is returned when the capture device cannot be
	// opened or stops responding.
	ErrDeviceUnavailable = errors.New("capture device unavailable")
)

// Source yields one emotion vote per call. Implementations may block for
// device or network I/O on every call. Any concrete classifier (local model,
// remote inference service, test stub) satisfies this interface.
type Source interface {
	CaptureFrame(ctx context.Context) (mood.Vote, error)
}
