package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillMatchPercent(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		user     []string
		want     int
	}{
		{"empty requirements", []string{}, []string{"React"}, 0},
		{"empty user skills", []string{"React"}, nil, 0},
		{"case insensitive full match", []string{"X"}, []string{"x"}, 100},
		{"half match", []string{"React", "Python"}, []string{"react"}, 50},
		{"no overlap", []string{"Go", "Rust"}, []string{"React"}, 0},
		{"rounding", []string{"a", "b", "c"}, []string{"a"}, 33},
		{"rounds up", []string{"a", "b", "c"}, []string{"a", "b"}, 67},
		{"whitespace tolerant", []string{" React "}, []string{"react"}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkillMatchPercent(tt.required, tt.user))
		})
	}
}
