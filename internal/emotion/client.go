package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/justestif/go-mood-player/internal/mood"
)

const userAgent = "mood-player/1.0"

// Client is an emotion Source backed by a facial-expression inference
// service. Each CaptureFrame call asks the service to grab one webcam frame
// and classify it, keeping all model-specific types out of this process.
type Client struct {
	baseURL     string
	cameraIndex int
	httpClient  *http.Client
}

// NewClient creates a Client for an inference service at baseURL.
func NewClient(baseURL string, cameraIndex int) *Client {
	return &Client{
		baseURL:     baseURL,
		cameraIndex: cameraIndex,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// frameResponse is the wire shape of one classified frame.
type frameResponse struct {
	Faces []struct {
		Emotions map[string]float64 `json:"emotions"`
	} `json:"faces"`
}

// CaptureFrame grabs and classifies a single frame. Returns ErrNoFace when
// the frame contained no face, and ErrDeviceUnavailable when the service
// reports the camera cannot be opened or is unreachable.
func (c *Client) CaptureFrame(ctx context.Context) (mood.Vote, error) {
	params := url.Values{
		"camera": {strconv.Itoa(c.cameraIndex)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/frame?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building frame request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusServiceUnavailable:
		return "", fmt.Errorf("%w: inference service reports no camera", ErrDeviceUnavailable)
	default:
		return "", fmt.Errorf("inference service status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading frame response: %w", err)
	}

	var frame frameResponse
	if err := json.Unmarshal(body, &frame); err != nil {
		return "", fmt.Errorf("parsing frame response: %w", err)
	}

	if len(frame.Faces) == 0 {
		return "", ErrNoFace
	}

	// First face only; multi-face frames are out of scope.
	return topEmotion(frame.Faces[0].Emotions)
}

// topEmotion picks the highest-probability label from a distribution.
// Ties break toward the lexicographically smaller label so the result does
// not depend on map iteration order.
func topEmotion(emotions map[string]float64) (mood.Vote, error) {
	if len(emotions) == 0 {
		return "", ErrNoFace
	}

	var top string
	best := -1.0
	for label, p := range emotions {
		if p > best || (p == best && label < top) {
			best = p
			top = label
		}
	}

	return mood.Vote(top), nil
}
