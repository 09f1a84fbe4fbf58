// Package router implements playback routing: given a mood and an ordered
// list of backends, try each in turn and report which one played.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/justestif/go-mood-player/internal/mood"
)

// ErrAllFailed is returned when every backend in a request failed.
var ErrAllFailed = errors.New("all playback backends failed")

// Result is what a backend reports on success. Wait is non-nil when the
// backend can block until playback finishes (local playback); remote
// backends start playback and leave control to the remote player.
type Result struct {
	Track string
	Wait  func(ctx context.Context) error
}

// Backend is one playback provider. A failed Play is always soft at this
// layer: the router falls through to the next backend in priority order.
type Backend interface {
	Name() string
	Play(ctx context.Context, m mood.Mood) (Result, error)
}

// Request is one playback attempt: a canonical mood plus backends in
// priority order. Created per user action and consumed exactly once.
type Request struct {
	ID       uuid.UUID
	Mood     mood.Mood
	Backends []Backend
}

// NewRequest builds a Request with a fresh ID.
func NewRequest(m mood.Mood, backends []Backend) Request {
	return Request{ID: uuid.New(), Mood: m, Backends: backends}
}

// Outcome reports a successful route: which backend played and what.
type Outcome struct {
	RequestID uuid.UUID
	Backend   string
	Track     string
	Wait      func(ctx context.Context) error // nil when playback is remote
}

// Reason records why one backend failed, in attempt order.
type Reason struct {
	Backend string
	Err     error
}

// AllFailedError carries the ordered per-backend failure reasons when no
// backend could play. Recoverable: the caller decides whether to retry.
type AllFailedError struct {
	Reasons []Reason
}

func (e AllFailedError) Error() string {
	parts := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		parts[i] = fmt.Sprintf("%s: %v", r.Backend, r.Err)
	}
	return fmt.Sprintf("all playback backends failed: %s", strings.Join(parts, "; "))
}

func (e AllFailedError) Is(target error) bool {
	return target == ErrAllFailed
}

// Router attempts backends in caller-supplied priority order.
type Router struct {
	log *zap.Logger
}

// New creates a Router.
func New(log *zap.Logger) *Router {
	return &Router{log: log}
}

// Route attempts each backend in order and stops at the first success; no
// further backend is tried once one has started playback. When every backend
// fails it returns an AllFailedError listing each failure in attempt order.
func (r *Router) Route(ctx context.Context, req Request) (Outcome, error) {
	if len(req.Backends) == 0 {
		return Outcome{}, AllFailedError{}
	}

	var reasons []Reason

	for _, backend := range req.Backends {
		result, err := backend.Play(ctx, req.Mood)
		if err != nil {
			r.log.Warn("backend failed, falling through",
				zap.String("request_id", req.ID.String()),
				zap.String("backend", backend.Name()),
				zap.String("mood", req.Mood.String()),
				zap.Error(err))
			reasons = append(reasons, Reason{Backend: backend.Name(), Err: err})
			continue
		}

		r.log.Info("playback routed",
			zap.String("request_id", req.ID.String()),
			zap.String("backend", backend.Name()),
			zap.String("mood", req.Mood.String()),
			zap.String("track", result.Track))

		return Outcome{
			RequestID: req.ID,
			Backend:   backend.Name(),
			Track:     result.Track,
			Wait:      result.Wait,
		}, nil
	}

	return Outcome{}, AllFailedError{Reasons: reasons}
}
