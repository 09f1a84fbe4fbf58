// Package player implements the local audio engine: MP3 decode streamed to
// a PCM sink, with an explicit completion signal instead of polling.
package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/go-mp3"
	"go.uber.org/zap"
)

// ErrUnplayable is returned when a file cannot be decoded for playback.
var ErrUnplayable = errors.New("unplayable file")

// Sink opens a writer for interleaved 16-bit little-endian stereo PCM at the
// given sample rate. The concrete sink is the output device boundary: an
// ALSA pipe, a sound-server socket, or an in-memory buffer in tests.
type Sink interface {
	Open(sampleRate int) (io.WriteCloser, error)
}

// Playback represents one in-flight track. Play returns as soon as audio has
// started; Done reports when it finished (or failed mid-stream).
type Playback struct {
	Path string
	done chan error
}

// Done yields exactly one value when playback ends. A nil value means the
// track played to completion.
func (p *Playback) Done() <-chan error {
	return p.done
}

// Wait blocks until playback ends or ctx is canceled.
func (p *Playback) Wait(ctx context.Context) error {
	select {
	case err := <-p.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Engine plays local MP3 files through a Sink.
type Engine struct {
	sink Sink
	log  *zap.Logger
}

// NewEngine creates an Engine writing to sink.
func NewEngine(sink Sink, log *zap.Logger) *Engine {
	return &Engine{sink: sink, log: log}
}

// Play opens and starts decoding the file at path. It returns once the
// decoder and sink are ready, so a returned *Playback means audio has
// started; the rest of the track streams in the background and completion is
// signaled on Done. Files that cannot be opened or decoded fail with
// ErrUnplayable.
func (e *Engine) Play(ctx context.Context, path string) (*Playback, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".mp3" {
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrUnplayable, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnplayable, err)
	}

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnplayable, err)
	}

	out, err := e.sink.Open(decoder.SampleRate())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening audio sink: %w", err)
	}

	e.log.Info("playback started",
		zap.String("path", path),
		zap.Int("sample_rate", decoder.SampleRate()))

	pb := &Playback{Path: path, done: make(chan error, 1)}

	go func() {
		defer f.Close()
		defer out.Close()
		pb.done <- e.stream(ctx, decoder, out)
	}()

	return pb, nil
}

// stream copies decoded PCM to the sink until EOF or cancellation. The sink
// paces writes: a real output device blocks until it has drained.
func (e *Engine) stream(ctx context.Context, decoder *mp3.Decoder, out io.Writer) error {
	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := decoder.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return fmt.Errorf("writing to audio sink: %w", werr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decoding: %w", err)
		}
	}
}
