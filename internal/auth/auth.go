// Package auth runs the Spotify authorization-code flow and caches the
// resulting token so interactive sessions only touch the browser once.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Spotify requires an explicit IPv4 loopback redirect for local apps.
// See: https://developer.spotify.com/documentation/web-api/concepts/redirect-uri
const (
	redirectURI     = "http://127.0.0.1:8080/callback"
	callbackAddr    = "127.0.0.1:8080"
	callbackTimeout = 2 * time.Minute
)

var (
	// ErrMissingCredentials is returned when the client ID or secret is empty.
	ErrMissingCredentials = errors.New("missing Spotify client ID or secret")

	// ErrAuthTimeout is returned when the OAuth callback is not received in time.
	ErrAuthTimeout = errors.New("authentication timed out waiting for callback")

	// ErrStateMismatch is returned when the OAuth state parameter doesn't match.
	ErrStateMismatch = errors.New("OAuth state mismatch")
)

// Authenticator obtains Spotify clients authorized for playback control,
// preferring the cached token over a fresh browser round trip.
type Authenticator struct {
	auth  *spotifyauth.Authenticator
	cache *TokenCache
	log   *zap.Logger
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithLogger sets the logger for flow diagnostics, including the
// authorization URL shown to the user.
func WithLogger(log *zap.Logger) Option {
	return func(a *Authenticator) { a.log = log }
}

// WithTokenCache overrides the default token cache location.
func WithTokenCache(cache *TokenCache) Option {
	return func(a *Authenticator) { a.cache = cache }
}

// New creates an Authenticator from explicit credentials. Credentials come
// from the startup configuration; this package never reads the environment.
// Returns ErrMissingCredentials if either value is empty.
func New(clientID, clientSecret string, opts ...Option) (*Authenticator, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	a := &Authenticator{
		auth: spotifyauth.New(
			spotifyauth.WithClientID(clientID),
			spotifyauth.WithClientSecret(clientSecret),
			spotifyauth.WithRedirectURL(redirectURI),
			spotifyauth.WithScopes(
				spotifyauth.ScopeUserModifyPlaybackState,
				spotifyauth.ScopeUserReadPlaybackState,
				spotifyauth.ScopeUserReadPrivate,
			),
		),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.cache == nil {
		cache, err := DefaultTokenCache()
		if err != nil {
			return nil, fmt.Errorf("creating token cache: %w", err)
		}
		a.cache = cache
	}

	return a, nil
}

// Authenticate returns an authenticated Spotify client. A cached token is
// tried first; only when it is absent or rejected does the interactive
// browser flow run.
func (a *Authenticator) Authenticate(ctx context.Context) (*spotify.Client, error) {
	cached, err := a.cache.Load()
	if err != nil {
		return nil, fmt.Errorf("loading cached token: %w", err)
	}

	if cached != nil {
		client, err := a.verifyToken(ctx, cached)
		if err == nil {
			return client, nil
		}
		a.log.Warn("cached token rejected, starting interactive flow",
			zap.Error(err))
	}

	return a.interactiveFlow(ctx)
}

// verifyToken builds a client over the token and checks it with a profile
// lookup. A token refreshed by oauth2 during the lookup is written back to
// the cache.
func (a *Authenticator) verifyToken(ctx context.Context, token *oauth2.Token) (*spotify.Client, error) {
	client := spotify.New(a.auth.Client(ctx, token), spotify.WithRetry(true))

	if _, err := client.CurrentUser(ctx); err != nil {
		return nil, err
	}

	if refreshed, err := client.Token(); err == nil && refreshed.AccessToken != token.AccessToken {
		if err := a.cache.Save(refreshed); err != nil {
			a.log.Warn("failed to cache refreshed token", zap.Error(err))
		}
	}
	return client, nil
}

// flowResult carries the outcome of one callback hit.
type flowResult struct {
	token *oauth2.Token
	err   error
}

// interactiveFlow runs the authorization-code flow: a loopback callback
// server, a browser URL for the user, then a code-for-token exchange.
func (a *Authenticator) interactiveFlow(ctx context.Context) (*spotify.Client, error) {
	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("generating state: %w", err)
	}

	// Buffered so the handler never blocks if the flow already gave up.
	results := make(chan flowResult, 1)

	mux := chi.NewRouter()
	mux.Get("/callback", func(w http.ResponseWriter, r *http.Request) {
		a.serveCallback(w, r, state, results)
	})

	server := &http.Server{Addr: callbackAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			results <- flowResult{err: fmt.Errorf("callback server: %w", err)}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	a.log.Info("authorization required, open the URL in a browser",
		zap.String("url", a.auth.AuthURL(state)))

	var res flowResult
	select {
	case res = <-results:
	case <-time.After(callbackTimeout):
		return nil, ErrAuthTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.err != nil {
		return nil, res.err
	}

	if err := a.cache.Save(res.token); err != nil {
		// Auth itself succeeded; the next session just re-authorizes.
		a.log.Warn("failed to cache token", zap.Error(err))
	}

	return spotify.New(a.auth.Client(ctx, res.token), spotify.WithRetry(true)), nil
}

// serveCallback validates the redirect from Spotify and exchanges the
// authorization code for a token.
func (a *Authenticator) serveCallback(w http.ResponseWriter, r *http.Request, expectedState string, results chan<- flowResult) {
	if r.URL.Query().Get("state") != expectedState {
		http.Error(w, "State mismatch", http.StatusBadRequest)
		results <- flowResult{err: ErrStateMismatch}
		return
	}

	if msg := r.URL.Query().Get("error"); msg != "" {
		http.Error(w, "Authentication failed: "+msg, http.StatusBadRequest)
		results <- flowResult{err: fmt.Errorf("spotify auth error: %s", msg)}
		return
	}

	token, err := a.auth.Token(r.Context(), expectedState, r)
	if err != nil {
		http.Error(w, "Failed to get token", http.StatusInternalServerError)
		results <- flowResult{err: fmt.Errorf("exchanging code for token: %w", err)}
		return
	}

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Authentication Successful</title></head>
<body>
<h1>Authentication Successful!</h1>
<p>You can close this window and return to the terminal.</p>
</body>
</html>`)

	results <- flowResult{token: token}
}

// generateState creates a random state string for OAuth.
func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Logout removes the cached token.
func (a *Authenticator) Logout() error {
	return a.cache.Delete()
}
