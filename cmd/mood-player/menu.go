package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/justestif/go-mood-player/internal/emotion"
	"github.com/justestif/go-mood-player/internal/mood"
	"github.com/justestif/go-mood-player/internal/router"
)

// app holds the wired components the interactive loop drives.
type app struct {
	resolver *mood.Resolver
	router   *router.Router
	local    router.Backend
	remote   router.Backend // nil when Spotify is not configured
}

// menuLoop runs the interactive session until the user exits or input ends.
// Every failure inside an iteration is recoverable: the loop re-prompts.
func (a *app) menuLoop(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintln(out, "Mood-Based Music Player")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	for {
		fmt.Fprintln(out, "\nChoose input method:")
		fmt.Fprintln(out, "1) Webcam emotion detection")
		fmt.Fprintln(out, "2) Describe how you feel (text sentiment)")
		fmt.Fprintln(out, "3) Manual mood selection")
		fmt.Fprintln(out, "4) Exit")
		fmt.Fprint(out, "Enter choice (1-4): ")

		choice, ok := readLine(scanner)
		if !ok {
			return nil // input closed
		}

		var m mood.Mood
		var err error

		switch choice {
		case "1":
			fmt.Fprintln(out, "Detecting mood from webcam... (look at the camera)")
			m, err = a.resolver.FromCamera(ctx)
			if errors.Is(err, mood.ErrMoodUndetermined) {
				fmt.Fprintln(out, "Could not determine a mood. Try again.")
				continue
			}
			if errors.Is(err, emotion.ErrDeviceUnavailable) {
				fmt.Fprintln(out, "Webcam unavailable. Check the camera and try again.")
				continue
			}
			if err != nil {
				fmt.Fprintf(out, "Detection failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Detected mood: %s\n", m)

		case "2":
			fmt.Fprintln(out, "Write how you feel (a few sentences):")
			text, ok := readLine(scanner)
			if !ok {
				return nil
			}
			m = a.resolver.FromText(text)
			fmt.Fprintf(out, "Inferred mood from text: %s\n", m)

		case "3":
			fmt.Fprintf(out, "Available moods: %s\n", moodList())
			fmt.Fprint(out, "Type mood: ")
			input, ok := readLine(scanner)
			if !ok {
				return nil
			}
			m, err = a.resolver.FromInput(input)
			if err != nil {
				fmt.Fprintf(out, "%v\n", err)
				continue
			}

		case "4":
			fmt.Fprintln(out, "Goodbye!")
			return nil

		default:
			fmt.Fprintln(out, "Invalid choice.")
			continue
		}

		a.play(ctx, scanner, out, m)
	}
}

// play asks for a playback route and drives the router. AllFailed is
// reported, not fatal: the menu loop continues.
func (a *app) play(ctx context.Context, scanner *bufio.Scanner, out io.Writer, m mood.Mood) {
	backends := []router.Backend{a.local}

	if a.remote != nil {
		fmt.Fprintln(out, "\nPlayback options:")
		fmt.Fprintln(out, "1) Play local music (default)")
		fmt.Fprintln(out, "2) Try Spotify playlists")
		fmt.Fprint(out, "Choose (1 or 2): ")

		choice, ok := readLine(scanner)
		if !ok {
			return
		}
		if choice == "2" {
			backends = []router.Backend{a.remote, a.local}
		}
	}

	req := router.NewRequest(m, backends)

	outcome, err := a.router.Route(ctx, req)
	if err != nil {
		var allFailed router.AllFailedError
		if errors.As(err, &allFailed) {
			fmt.Fprintln(out, "Could not play anything:")
			for _, reason := range allFailed.Reasons {
				fmt.Fprintf(out, "  %s: %v\n", reason.Backend, reason.Err)
			}
			return
		}
		fmt.Fprintf(out, "Playback failed: %v\n", err)
		return
	}

	fmt.Fprintf(out, "Playing via %s: %s\n", outcome.Backend, outcome.Track)

	// Local playback blocks until the track ends; remote playback is
	// controlled from the Spotify app.
	if outcome.Wait != nil {
		if err := outcome.Wait(ctx); err != nil {
			fmt.Fprintf(out, "Playback ended with error: %v\n", err)
			return
		}
		fmt.Fprintln(out, "Track finished.")
	} else {
		fmt.Fprintln(out, "Tip: control playback in your Spotify app.")
	}
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func moodList() string {
	names := make([]string, len(mood.All))
	for i, m := range mood.All {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
