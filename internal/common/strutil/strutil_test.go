package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "notebook",
			expected: "notebook",
		},
		{
			name:     "strips diacritics",
			input:    "acentuação é comum",
			expected: "acentuacao e comum",
		},
		{
			name:     "collapses punctuation runs to single spaces",
			input:    "smart-tv 50\" --- 4k!!",
			expected: "smart tv 50 4k",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  iphone 15  ",
			expected: "iphone 15",
		},
		{
			name:     "preserves letter case",
			input:    "MacBook Pro",
			expected: "MacBook Pro",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			input:    "!@#$%",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestForceHTTPS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "rewrites insecure scheme",
			input:    "http://img.example.com/p/1.jpg",
			expected: "https://img.example.com/p/1.jpg",
		},
		{
			name:     "already secure is unchanged",
			input:    "https://img.example.com/p/1.jpg",
			expected: "https://img.example.com/p/1.jpg",
		},
		{
			name:     "only the first occurrence is rewritten",
			input:    "http://proxy.example.com/?target=http://img.example.com",
			expected: "https://proxy.example.com/?target=http://img.example.com",
		},
		{
			name:     "no scheme is unchanged",
			input:    "img.png",
			expected: "img.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForceHTTPS(tt.input))
		})
	}
}

func TestForceHTTPSPtr(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ForceHTTPSPtr(nil))
	})

	t.Run("non-nil is rewritten", func(t *testing.T) {
		in := "http://img.example.com/p/1.jpg"
		out := ForceHTTPSPtr(&in)
		if assert.NotNil(t, out) {
			assert.Equal(t, "https://img.example.com/p/1.jpg", *out)
		}
		// input is not mutated
		assert.Equal(t, "http://img.example.com/p/1.jpg", in)
	})
}
