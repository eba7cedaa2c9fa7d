package report

import (
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean ascii", "Song A", "Song A"},
		{"unicode kept", "Sigur Rós – Hoppípolla", "Sigur Rós – Hoppípolla"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline removed", "line1\nline2", "line1line2"},
		{"escape removed", "red\x1b[31m", "red[31m"},
		{"invalid byte dropped", "bad\xffbyte", "badbyte"},
		{"nbsp becomes space", "non\u00a0breaking", "non breaking"},
		{"C1 control removed", "x\u0085y", "xy"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{
			name:     "no truncation needed",
			input:    "hello",
			maxWidth: 10,
			want:     "hello",
		},
		{
			name:     "exact fit",
			input:    "hello",
			maxWidth: 5,
			want:     "hello",
		},
		{
			name:     "truncation with ellipsis",
			input:    "hello world",
			maxWidth: 8,
			want:     "hello...",
		},
		{
			name:     "wide characters count double",
			input:    "日本語の歌",
			maxWidth: 7,
			want:     "日本...",
		},
		{
			name:     "empty string",
			input:    "",
			maxWidth: 10,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 6, "abc   "},
		{"abcdefghij", 6, "abc..."},
		{"日本", 6, "日本  "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TruncateAndPad(tt.input, tt.width); got != tt.want {
				t.Errorf("TruncateAndPad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}

func TestPlays(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 plays"},
		{1, "1 play"},
		{2, "2 plays"},
		{1024, "1,024 plays"},
	}

	for _, tt := range tests {
		if got := Plays(tt.n); got != tt.want {
			t.Errorf("Plays(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
