package router

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/justestif/go-mood-player/internal/mood"
)

// stubBackend records whether it was attempted.
type stubBackend struct {
	name   string
	track  string
	err    error
	called int
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Play(ctx context.Context, m mood.Mood) (Result, error) {
	s.called++
	if s.err != nil {
		return Result{}, s.err
	}
	return Result{Track: s.track}, nil
}

func TestRouteFallthrough(t *testing.T) {
	streaming := &stubBackend{name: "streaming", err: errors.New("no playlist found")}
	local := &stubBackend{name: "local", track: "music/happy/song.mp3"}

	r := New(zap.NewNop())
	req := NewRequest(mood.Happy, []Backend{streaming, local})

	outcome, err := r.Route(context.Background(), req)
	if err != nil {
		t.Fatalf("Route() unexpected error: %v", err)
	}

	if outcome.Backend != "local" {
		t.Errorf("Backend = %q, want %q", outcome.Backend, "local")
	}
	if outcome.Track != "music/happy/song.mp3" {
		t.Errorf("Track = %q, want the local track", outcome.Track)
	}
	if streaming.called != 1 {
		t.Errorf("streaming attempted %d times, want 1", streaming.called)
	}
	if local.called != 1 {
		t.Errorf("local attempted %d times, want 1", local.called)
	}
}

func TestRouteAllFailed(t *testing.T) {
	streaming := &stubBackend{name: "streaming", err: errors.New("search failed")}
	local := &stubBackend{name: "local", err: errors.New("no tracks for mood")}

	r := New(zap.NewNop())
	req := NewRequest(mood.Sad, []Backend{streaming, local})

	_, err := r.Route(context.Background(), req)
	if !errors.Is(err, ErrAllFailed) {
		t.Fatalf("Route() error = %v, want ErrAllFailed", err)
	}

	var allFailed AllFailedError
	if !errors.As(err, &allFailed) {
		t.Fatalf("Route() error type = %T, want AllFailedError", err)
	}

	if len(allFailed.Reasons) != 2 {
		t.Fatalf("recorded %d reasons, want 2", len(allFailed.Reasons))
	}
	// Reasons keep attempt order.
	if allFailed.Reasons[0].Backend != "streaming" || allFailed.Reasons[1].Backend != "local" {
		t.Errorf("reasons out of order: %+v", allFailed.Reasons)
	}
}

func TestRouteSingleSuccess(t *testing.T) {
	first := &stubBackend{name: "streaming", track: "Happy Hits"}
	second := &stubBackend{name: "local", track: "music/happy/song.mp3"}

	r := New(zap.NewNop())
	req := NewRequest(mood.Happy, []Backend{first, second})

	outcome, err := r.Route(context.Background(), req)
	if err != nil {
		t.Fatalf("Route() unexpected error: %v", err)
	}

	if outcome.Backend != "streaming" {
		t.Errorf("Backend = %q, want %q", outcome.Backend, "streaming")
	}
	// No backend is attempted after one succeeds.
	if second.called != 0 {
		t.Errorf("second backend attempted %d times, want 0", second.called)
	}
}

func TestRoutePriorityOrder(t *testing.T) {
	var order []string

	a := &orderBackend{name: "a", order: &order, err: errors.New("down")}
	b := &orderBackend{name: "b", order: &order, err: errors.New("down")}
	c := &orderBackend{name: "c", order: &order}

	r := New(zap.NewNop())
	req := NewRequest(mood.Neutral, []Backend{a, b, c})

	if _, err := r.Route(context.Background(), req); err != nil {
		t.Fatalf("Route() unexpected error: %v", err)
	}

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("attempt order %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("attempt order %v, want %v", order, want)
		}
	}
}

type orderBackend struct {
	name  string
	order *[]string
	err   error
}

func (s *orderBackend) Name() string { return s.name }

func (s *orderBackend) Play(ctx context.Context, m mood.Mood) (Result, error) {
	*s.order = append(*s.order, s.name)
	if s.err != nil {
		return Result{}, s.err
	}
	return Result{Track: "t"}, nil
}

func TestRouteNoBackends(t *testing.T) {
	r := New(zap.NewNop())
	req := NewRequest(mood.Angry, nil)

	_, err := r.Route(context.Background(), req)
	if !errors.Is(err, ErrAllFailed) {
		t.Errorf("Route() with no backends error = %v, want ErrAllFailed", err)
	}
}
