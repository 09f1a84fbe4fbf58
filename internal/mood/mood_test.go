package mood

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mood
		wantErr bool
	}{
		{
			name:  "exact lowercase",
			input: "happy",
			want:  Happy,
		},
		{
			name:  "mixed case with trailing space",
			input: "HAPPY ",
			want:  Happy,
		},
		{
			name:  "leading whitespace",
			input: "  neutral",
			want:  Neutral,
		},
		{
			name:    "unknown mood",
			input:   "excited",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMood) {
					t.Fatalf("Parse(%q) error = %v, want ErrUnknownMood", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSuggestion(t *testing.T) {
	_, err := Parse("hapy")

	var unknownErr UnknownMoodError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("Parse(\"hapy\") error = %v, want UnknownMoodError", err)
	}

	if unknownErr.Suggestion != Happy {
		t.Errorf("Suggestion = %q, want %q", unknownErr.Suggestion, Happy)
	}
}

func TestParseNoSuggestionForDistantInput(t *testing.T) {
	_, err := Parse("xyzzy")

	var unknownErr UnknownMoodError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("Parse(\"xyzzy\") error = %v, want UnknownMoodError", err)
	}

	if unknownErr.Suggestion != "" {
		t.Errorf("Suggestion = %q, want empty", unknownErr.Suggestion)
	}
}

func TestValid(t *testing.T) {
	for _, m := range All {
		if !m.Valid() {
			t.Errorf("%q should be valid", m)
		}
	}

	if Mood("excited").Valid() {
		t.Error("\"excited\" should not be valid")
	}
}
