// Package catalog maps moods to local music folders and selects tracks
// from them.
package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/justestif/go-mood-player/internal/mood"
)

// ErrNoTracks is returned when the folder for a mood holds no playable files.
var ErrNoTracks = errors.New("no tracks for mood")

// audioExtensions are the file extensions recognized as playable.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".ogg":  true,
	".flac": true,
}

const placeholderName = "README.txt"

// Catalog is a static mood-to-folder mapping under a single root. The
// mapping never changes after construction; folders themselves may be
// created lazily by EnsureFolders. Safe for concurrent readers.
type Catalog struct {
	root string
	rand *rand.Rand // nil means the global source
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRand sets a deterministic random source, used by tests.
func WithRand(r *rand.Rand) Option {
	return func(c *Catalog) {
		c.rand = r
	}
}

// New creates a Catalog rooted at dir, one subdirectory per canonical mood.
func New(root string, opts ...Option) *Catalog {
	c := &Catalog{root: root}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the folder holding tracks for a mood.
func (c *Catalog) Dir(m mood.Mood) string {
	return filepath.Join(c.root, m.String())
}

// EnsureFolders creates the per-mood folder layout. Idempotent: existing
// folders and their contents are left untouched. A newly created folder gets
// a placeholder README telling the user what to put there.
func (c *Catalog) EnsureFolders() error {
	for _, m := range mood.All {
		dir := c.Dir(m)

		if _, err := os.Stat(dir); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking folder %s: %w", dir, err)
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating folder %s: %w", dir, err)
		}

		placeholder := fmt.Sprintf("Place audio files for mood %q in this folder.\n", m)
		if err := os.WriteFile(filepath.Join(dir, placeholderName), []byte(placeholder), 0644); err != nil {
			return fmt.Errorf("writing placeholder in %s: %w", dir, err)
		}
	}
	return nil
}

// Tracks lists the playable files in the mood's folder, sorted by name.
// A missing folder yields an empty list, not an error.
func (c *Catalog) Tracks(m mood.Mood) ([]string, error) {
	dir := c.Dir(m)

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", dir, err)
	}

	var tracks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if audioExtensions[ext] {
			tracks = append(tracks, filepath.Join(dir, entry.Name()))
		}
	}
	return tracks, nil
}

// PickRandom selects one track uniformly at random from the mood's folder.
// There is no played-before memory: repeats across calls are expected.
// Returns ErrNoTracks when the folder is empty or missing.
func (c *Catalog) PickRandom(m mood.Mood) (string, error) {
	tracks, err := c.Tracks(m)
	if err != nil {
		return "", err
	}
	if len(tracks) == 0 {
		return "", fmt.Errorf("%w %q in %s", ErrNoTracks, m, c.Dir(m))
	}

	if c.rand != nil {
		return tracks[c.rand.IntN(len(tracks))], nil
	}
	return tracks[rand.IntN(len(tracks))], nil
}
