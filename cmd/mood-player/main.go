// Command mood-player infers a mood from webcam, text or manual input and
// routes music playback to Spotify or the local library.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/justestif/go-mood-player/internal/auth"
	"github.com/justestif/go-mood-player/internal/catalog"
	"github.com/justestif/go-mood-player/internal/config"
	"github.com/justestif/go-mood-player/internal/emotion"
	"github.com/justestif/go-mood-player/internal/mood"
	"github.com/justestif/go-mood-player/internal/player"
	"github.com/justestif/go-mood-player/internal/router"
	"github.com/justestif/go-mood-player/internal/sentiment"
	"github.com/justestif/go-mood-player/internal/streaming"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	cat := catalog.New(cfg.MusicRoot)
	if err := cat.EnsureFolders(); err != nil {
		return fmt.Errorf("preparing music folders: %w", err)
	}

	ctx := context.Background()

	source := emotion.NewClient(cfg.InferenceURL, cfg.CameraIndex)
	collector := emotion.NewCollector(source, logger,
		emotion.WithFrameCount(cfg.FrameCount),
		emotion.WithFrameDelay(cfg.FrameDelay))
	resolver := mood.NewResolver(collector, sentiment.New())

	engine := player.NewEngine(player.DeviceSink{Path: cfg.AudioDevice}, logger)
	local := router.NewLocalBackend(cat, engine)

	// Present-but-broken credentials fail startup; absent credentials just
	// leave streaming unavailable.
	var remote router.Backend
	if cfg.SpotifyConfigured() {
		id, secret, err := cfg.SpotifyCredentials()
		if err != nil {
			return err
		}

		authenticator, err := auth.New(id, secret, auth.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("configuring Spotify auth: %w", err)
		}

		client, err := authenticator.Authenticate(ctx)
		if err != nil {
			return fmt.Errorf("authenticating with Spotify: %w", err)
		}

		remote = router.NewStreamingBackend(streaming.New(client, logger))
		fmt.Println("Spotify integration enabled.")
	}

	app := &app{
		resolver: resolver,
		router:   router.New(logger),
		local:    local,
		remote:   remote,
	}

	return app.menuLoop(ctx, os.Stdin, os.Stdout)
}
