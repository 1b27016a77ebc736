package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Why did the chicken cross the road?", "why-did-the-chicken-cross-the-road"},
		{"  Knock knock!  ", "knock-knock"},
		{"What's brown and sticky?", "what-s-brown-and-sticky"},
		{"UPPER lower 123", "upper-lower-123"},
		{"---", ""},
		{"", ""},
		{"a  b\t c", "a-b-c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input=%q", tt.in)
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("ha ", 100)
	slug := Slugify(long)
	assert.LessOrEqual(t, len(slug), 50)
	assert.False(t, strings.HasSuffix(slug, "-"))
	assert.False(t, strings.HasPrefix(slug, "-"))
}

func TestRandStringBytesMaskImpr(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		s := RandStringBytesMaskImpr(8)
		assert.Len(t, s, 8)
		for _, r := range s {
			assert.Contains(t, letterBytes, string(r))
		}
		seen[s] = true
	}
	assert.Greater(t, len(seen), 1)
}
