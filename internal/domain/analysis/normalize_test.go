package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "Senior Engineer", "senior engineer"},
		{"newlines become spaces", "python\njava\nsql", "python java sql"},
		{"collapses whitespace", "  too   many\t spaces \n ", "too many spaces"},
		{"already clean", "machine learning", "machine learning"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "Led   a Team\nof Engineers"
	once := Normalize(in)
	assert.Equal(t, once, Normalize(once))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount("built many things"))
	assert.Equal(t, 2, WordCount("  spaced \n out  "))
}
