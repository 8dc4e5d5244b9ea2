package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxBytes int
		want     string
	}{
		{name: "short text untouched", text: "héllo", maxBytes: 10, want: "héllo"},
		{name: "ascii cut", text: "abcdef", maxBytes: 3, want: "abc"},
		{name: "cut inside two byte rune backs off", text: "aé", maxBytes: 2, want: "a"},
		{name: "cut inside four byte rune backs off", text: "ab😀c", maxBytes: 4, want: "ab"},
		{name: "cut on rune boundary", text: "aéb", maxBytes: 3, want: "aé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateUTF8(tt.text, tt.maxBytes)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}

	long := strings.Repeat("日本", maxEmbedInputChars)
	got := truncateUTF8(long, maxEmbedInputChars)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), maxEmbedInputChars)
}
