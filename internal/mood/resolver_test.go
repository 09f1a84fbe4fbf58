package mood

import (
	"context"
	"errors"
	"testing"
)

// stubCollector returns canned votes or a canned error.
type stubCollector struct {
	votes []Vote
	err   error
}

func (s stubCollector) Collect(ctx context.Context) ([]Vote, error) {
	return s.votes, s.err
}

// stubScorer returns a fixed polarity.
type stubScorer struct {
	polarity float64
}

func (s stubScorer) Score(text string) float64 {
	return s.polarity
}

func TestResolverFromCamera(t *testing.T) {
	deviceErr := errors.New("capture device unavailable")

	tests := []struct {
		name      string
		collector stubCollector
		want      Mood
		wantErr   error
	}{
		{
			name:      "majority vote resolves",
			collector: stubCollector{votes: []Vote{"sad", "sad", "happy"}},
			want:      Sad,
		},
		{
			name:      "no votes is undetermined",
			collector: stubCollector{votes: nil},
			wantErr:   ErrMoodUndetermined,
		},
		{
			name:      "device error propagates distinctly",
			collector: stubCollector{err: deviceErr},
			wantErr:   deviceErr,
		},
		{
			name:      "only non-canonical votes is undetermined",
			collector: stubCollector{votes: []Vote{"excited", "excited"}},
			wantErr:   ErrMoodUndetermined,
		},
		{
			name:      "non-canonical votes are discarded before aggregation",
			collector: stubCollector{votes: []Vote{"excited", "happy", "excited"}},
			want:      Happy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.collector, stubScorer{})

			got, err := r.FromCamera(context.Background())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromCamera() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("FromCamera() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FromCamera() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolverFromText(t *testing.T) {
	tests := []struct {
		name     string
		polarity float64
		want     Mood
	}{
		{name: "positive text", polarity: 0.8, want: Happy},
		{name: "negative text", polarity: -0.6, want: Sad},
		{name: "flat text", polarity: 0.1, want: Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(stubCollector{}, stubScorer{polarity: tt.polarity})

			if got := r.FromText("whatever"); got != tt.want {
				t.Errorf("FromText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolverFromInput(t *testing.T) {
	r := NewResolver(stubCollector{}, stubScorer{})

	got, err := r.FromInput(" Angry ")
	if err != nil {
		t.Fatalf("FromInput() unexpected error: %v", err)
	}
	if got != Angry {
		t.Errorf("FromInput() = %q, want %q", got, Angry)
	}

	if _, err := r.FromInput("bored"); !errors.Is(err, ErrUnknownMood) {
		t.Errorf("FromInput(\"bored\") error = %v, want ErrUnknownMood", err)
	}
}
