package router

import (
	"context"
	"fmt"

	"github.com/justestif/go-mood-player/internal/catalog"
	"github.com/justestif/go-mood-player/internal/mood"
	"github.com/justestif/go-mood-player/internal/player"
	"github.com/justestif/go-mood-player/internal/streaming"
)

// StreamingClient is the slice of the streaming API the backend needs.
// *streaming.Client satisfies it.
type StreamingClient interface {
	SearchMoodPlaylist(ctx context.Context, m mood.Mood) (streaming.Playlist, error)
	ActiveDevices(ctx context.Context) ([]streaming.Device, error)
	StartPlayback(ctx context.Context, device streaming.Device, playlist streaming.Playlist) error
}

// StreamingBackend plays mood playlists on a remote device. Each of its
// three steps (search, device enumeration, playback start) fails
// independently, and every failure is soft: the router moves on.
type StreamingBackend struct {
	client StreamingClient
}

// NewStreamingBackend creates a StreamingBackend over an authenticated client.
func NewStreamingBackend(client StreamingClient) *StreamingBackend {
	return &StreamingBackend{client: client}
}

// Name implements Backend.
func (b *StreamingBackend) Name() string { return "streaming" }

// Play searches a playlist for the mood and starts it on the first
// available device.
func (b *StreamingBackend) Play(ctx context.Context, m mood.Mood) (Result, error) {
	playlist, err := b.client.SearchMoodPlaylist(ctx, m)
	if err != nil {
		return Result{}, fmt.Errorf("playlist search: %w", err)
	}

	devices, err := b.client.ActiveDevices(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("device enumeration: %w", err)
	}
	if len(devices) == 0 {
		return Result{}, fmt.Errorf("device enumeration: %w", streaming.ErrNoDevices)
	}

	if err := b.client.StartPlayback(ctx, devices[0], playlist); err != nil {
		return Result{}, fmt.Errorf("playback start: %w", err)
	}

	return Result{Track: playlist.Name}, nil
}

// AudioEngine is the slice of the local player the backend needs.
// *player.Engine satisfies it.
type AudioEngine interface {
	Play(ctx context.Context, path string) (*player.Playback, error)
}

// LocalBackend plays a random track from the local catalog entry
// for the mood.
type LocalBackend struct {
	catalog *catalog.Catalog
	engine  AudioEngine
}

// NewLocalBackend creates a LocalBackend.
func NewLocalBackend(cat *catalog.Catalog, engine AudioEngine) *LocalBackend {
	return &LocalBackend{catalog: cat, engine: engine}
}

// Name implements Backend.
func (b *LocalBackend) Name() string { return "local" }

// Play picks a random track for the mood and starts it. The returned
// Result.Wait blocks until the track finishes, for callers that want the
// default interactive behavior.
func (b *LocalBackend) Play(ctx context.Context, m mood.Mood) (Result, error) {
	track, err := b.catalog.PickRandom(m)
	if err != nil {
		return Result{}, err
	}

	pb, err := b.engine.Play(ctx, track)
	if err != nil {
		return Result{}, err
	}

	return Result{Track: track, Wait: pb.Wait}, nil
}
