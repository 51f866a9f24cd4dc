package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "punctuation stripped",
			input:    "Hello, World!",
			expected: "hello-world",
		},
		{
			name:     "runs of spaces collapse",
			input:    "  A   B  ",
			expected: "a-b",
		},
		{
			name:     "with numbers",
			input:    "Top 10 IPTV Apps",
			expected: "top-10-iptv-apps",
		},
		{
			name:     "accents removed",
			input:    "Café résumé",
			expected: "cafe-resume",
		},
		{
			name:     "existing hyphens kept single",
			input:    "Hello - World",
			expected: "hello-world",
		},
		{
			name:     "only special characters",
			input:    "!@#$%^&*()",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Hello, World!", "  A   B  ", "Top 10 IPTV Apps", "Café résumé"}
	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
