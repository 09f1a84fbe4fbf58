package router

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/justestif/go-mood-player/internal/catalog"
	"github.com/justestif/go-mood-player/internal/mood"
	"github.com/justestif/go-mood-player/internal/player"
	"github.com/justestif/go-mood-player/internal/streaming"
)

// stubStreaming scripts the three streaming sub-steps independently.
type stubStreaming struct {
	searchErr error
	devices   []streaming.Device
	deviceErr error
	startErr  error

	startedOn streaming.Device
}

func (s *stubStreaming) SearchMoodPlaylist(ctx context.Context, m mood.Mood) (streaming.Playlist, error) {
	if s.searchErr != nil {
		return streaming.Playlist{}, s.searchErr
	}
	return streaming.Playlist{URI: "spotify:playlist:abc", Name: "Test Mix"}, nil
}

func (s *stubStreaming) ActiveDevices(ctx context.Context) ([]streaming.Device, error) {
	if s.deviceErr != nil {
		return nil, s.deviceErr
	}
	return s.devices, nil
}

func (s *stubStreaming) StartPlayback(ctx context.Context, device streaming.Device, playlist streaming.Playlist) error {
	if s.startErr != nil {
		return s.startErr
	}
	s.startedOn = device
	return nil
}

func TestStreamingBackendPlay(t *testing.T) {
	tests := []struct {
		name    string
		client  *stubStreaming
		wantErr error
	}{
		{
			name: "all steps succeed",
			client: &stubStreaming{devices: []streaming.Device{
				{ID: "d1", Name: "Kitchen"},
				{ID: "d2", Name: "Office"},
			}},
		},
		{
			name:    "search finds nothing",
			client:  &stubStreaming{searchErr: streaming.ErrNoPlaylist},
			wantErr: streaming.ErrNoPlaylist,
		},
		{
			name: "no devices",
			client: &stubStreaming{
				deviceErr: streaming.ErrNoDevices,
			},
			wantErr: streaming.ErrNoDevices,
		},
		{
			name:    "empty device list without error",
			client:  &stubStreaming{},
			wantErr: streaming.ErrNoDevices,
		},
		{
			name: "playback start fails",
			client: &stubStreaming{
				devices:  []streaming.Device{{ID: "d1", Name: "Kitchen"}},
				startErr: errors.New("api error"),
			},
			wantErr: errAnyFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewStreamingBackend(tt.client)

			result, err := b.Play(context.Background(), mood.Happy)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("Play() succeeded, want error")
				}
				if tt.wantErr != errAnyFailure && !errors.Is(err, tt.wantErr) {
					t.Fatalf("Play() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Play() unexpected error: %v", err)
			}
			if result.Track != "Test Mix" {
				t.Errorf("Track = %q, want %q", result.Track, "Test Mix")
			}
			// First enumerated device is used.
			if tt.client.startedOn.ID != "d1" {
				t.Errorf("started on device %q, want %q", tt.client.startedOn.ID, "d1")
			}
		})
	}
}

// errAnyFailure marks table rows that only assert an error happened.
var errAnyFailure = errors.New("any failure")

// recordingEngine pretends every file plays and records the path.
type recordingEngine struct {
	played string
}

func (e *recordingEngine) Play(ctx context.Context, path string) (*player.Playback, error) {
	e.played = path
	return &player.Playback{Path: path}, nil
}

func TestLocalBackendPlay(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "happy")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "song.mp3"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	cat := catalog.New(root, catalog.WithRand(rand.New(rand.NewPCG(1, 1))))
	engine := &recordingEngine{}
	b := NewLocalBackend(cat, engine)

	result, err := b.Play(context.Background(), mood.Happy)
	if err != nil {
		t.Fatalf("Play() unexpected error: %v", err)
	}

	if filepath.Base(result.Track) != "song.mp3" {
		t.Errorf("Track = %q, want song.mp3", result.Track)
	}
	if engine.played != result.Track {
		t.Errorf("engine played %q, want %q", engine.played, result.Track)
	}
	if result.Wait == nil {
		t.Error("Wait is nil, want a completion waiter for local playback")
	}
}

func TestLocalBackendEmptyCatalog(t *testing.T) {
	cat := catalog.New(t.TempDir())
	b := NewLocalBackend(cat, &recordingEngine{})

	_, err := b.Play(context.Background(), mood.Sad)
	if !errors.Is(err, catalog.ErrNoTracks) {
		t.Errorf("Play() error = %v, want ErrNoTracks", err)
	}
}
