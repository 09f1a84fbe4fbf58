// Package streaming provides the Spotify playback backend: playlist search,
// device enumeration and remote playback start.
package streaming

import (
	"context"
	"errors"
	"fmt"

	"github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/justestif/go-mood-player/internal/mood"
)

// Sentinel errors. Both are soft at the routing layer: the router falls
// through to the next backend rather than aborting the request.
var (
	// ErrNoPlaylist is returned when the search matched nothing.
	ErrNoPlaylist = errors.New("no playlist found")

	// ErrNoDevices is returned when the account has no device to play on.
	ErrNoDevices = errors.New("no active devices")
)

const searchLimit = 5

// Playlist identifies a remote playlist.
type Playlist struct {
	URI  string
	Name string
}

// Device identifies a playback device on the user's account.
type Device struct {
	ID   string
	Name string
}

// Client wraps the Spotify API client with the operations the playback
// router needs, rate-limited to stay under the Web API quota.
type Client struct {
	api     *spotify.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// New creates a Client. The underlying API client must already be
// authenticated with playback scopes.
func New(api *spotify.Client, log *zap.Logger) *Client {
	return &Client{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(10), 5),
		log:     log,
	}
}

// SearchMoodPlaylist searches for a playlist matching the mood and returns
// the top result. Returns ErrNoPlaylist when nothing matched.
func (c *Client) SearchMoodPlaylist(ctx context.Context, m mood.Mood) (Playlist, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Playlist{}, err
	}

	query := fmt.Sprintf("%s playlist", m)
	result, err := c.api.Search(ctx, query, spotify.SearchTypePlaylist, spotify.Limit(searchLimit))
	if err != nil {
		return Playlist{}, fmt.Errorf("searching playlists: %w", err)
	}

	if result.Playlists == nil || len(result.Playlists.Playlists) == 0 {
		return Playlist{}, fmt.Errorf("%w for mood %q", ErrNoPlaylist, m)
	}

	top := result.Playlists.Playlists[0]
	c.log.Debug("playlist search hit",
		zap.String("mood", m.String()),
		zap.String("playlist", top.Name))

	return Playlist{URI: string(top.URI), Name: top.Name}, nil
}

// ActiveDevices lists the devices available for remote playback, in the
// order the API returns them. Returns ErrNoDevices when the list is empty.
func (c *Client) ActiveDevices(ctx context.Context) ([]Device, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	playerDevices, err := c.api.PlayerDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	if len(playerDevices) == 0 {
		return nil, ErrNoDevices
	}

	devices := make([]Device, len(playerDevices))
	for i, d := range playerDevices {
		devices[i] = Device{ID: string(d.ID), Name: d.Name}
	}
	return devices, nil
}

// StartPlayback begins playing the playlist on the given device.
func (c *Client) StartPlayback(ctx context.Context, device Device, playlist Playlist) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	deviceID := spotify.ID(device.ID)
	contextURI := spotify.URI(playlist.URI)

	err := c.api.PlayOpt(ctx, &spotify.PlayOptions{
		DeviceID:        &deviceID,
		PlaybackContext: &contextURI,
	})
	if err != nil {
		return fmt.Errorf("starting playback on %s: %w", device.Name, err)
	}

	c.log.Info("remote playback started",
		zap.String("device", device.Name),
		zap.String("playlist", playlist.Name))

	return nil
}
