// Package config loads the player configuration from the environment once
// at startup. Components receive the parts they need by reference; nothing
// reads environment variables after this point.
package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ErrMissingSpotifyCredentials is returned when streaming is requested but
// the credentials are incomplete.
var ErrMissingSpotifyCredentials = errors.New("missing SPOTIFY_ID or SPOTIFY_SECRET")

// Config holds all runtime configuration.
type Config struct {
	// Local music library root, one folder per mood.
	MusicRoot string `envconfig:"MUSIC_ROOT" default:"music"`

	// PCM output device or pipe for local playback.
	AudioDevice string `envconfig:"AUDIO_DEVICE" default:"/tmp/mood-player-pcm"`

	// Emotion inference service.
	InferenceURL string `envconfig:"INFERENCE_URL" default:"http://127.0.0.1:5005"`
	CameraIndex  int    `envconfig:"CAMERA_INDEX" default:"0"`

	// Detection session bounds.
	FrameCount int           `envconfig:"FRAME_COUNT" default:"12"`
	FrameDelay time.Duration `envconfig:"FRAME_DELAY" default:"100ms"`

	// Spotify credentials, both optional: streaming is simply unavailable
	// without them.
	SpotifyID     string `envconfig:"SPOTIFY_ID"`
	SpotifySecret string `envconfig:"SPOTIFY_SECRET"`
}

// Load processes the environment into a Config.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SpotifyConfigured reports whether both Spotify credentials are present.
func (c *Config) SpotifyConfigured() bool {
	return c.SpotifyID != "" && c.SpotifySecret != ""
}

// SpotifyCredentials returns the credential pair, validating completeness.
// Half-set credentials are a configuration mistake, not an absence.
func (c *Config) SpotifyCredentials() (id, secret string, err error) {
	if c.SpotifyID == "" || c.SpotifySecret == "" {
		return "", "", ErrMissingSpotifyCredentials
	}
	return c.SpotifyID, c.SpotifySecret, nil
}
