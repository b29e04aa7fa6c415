package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOpenRequest(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedName  string
		expectedCount int
	}{
		{
			name:          "Name only",
			input:         "梦魇武器箱",
			expectedName:  "梦魇武器箱",
			expectedCount: 1,
		},
		{
			name:          "Leading count",
			input:         "5 梦魇武器箱",
			expectedName:  "梦魇武器箱",
			expectedCount: 5,
		},
		{
			name:          "Trailing count token",
			input:         "梦魇武器箱 10",
			expectedName:  "梦魇武器箱",
			expectedCount: 10,
		},
		{
			name:          "Count glued to name",
			input:         "梦魇武器箱5",
			expectedName:  "梦魇武器箱",
			expectedCount: 5,
		},
		{
			name:          "Multi-word name with trailing count",
			input:         "光谱 2 号武器箱 3",
			expectedName:  "光谱 2 号武器箱",
			expectedCount: 3,
		},
		{
			name:          "Zero count clamps to one",
			input:         "梦魇武器箱 0",
			expectedName:  "梦魇武器箱",
			expectedCount: 1,
		},
		{
			name:          "Negative count clamps to one",
			input:         "-3 梦魇武器箱",
			expectedName:  "梦魇武器箱",
			expectedCount: 1,
		},
		{
			name:          "Extra whitespace",
			input:         "  梦魇武器箱   7  ",
			expectedName:  "梦魇武器箱",
			expectedCount: 7,
		},
		{
			name:          "Empty input",
			input:         "",
			expectedName:  "",
			expectedCount: 1,
		},
		{
			name:          "Pure number is a name, not a count",
			input:         "2",
			expectedName:  "2",
			expectedCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, count := ParseOpenRequest(tt.input)
			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}
