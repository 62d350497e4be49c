package colourset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input    string
		expected RGB
	}{
		{"#ff0000", RGB{255, 0, 0}},
		{"ff8000", RGB{255, 128, 0}},
		{"#FF8000", RGB{255, 128, 0}},
		{"  #0a0B0c ", RGB{10, 11, 12}},
		{"#f00", RGB{255, 0, 0}},
		{"0f8", RGB{0, 255, 136}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"", "#", "#ff00", "#ff00000", "#12345g", "red", "#gggggg"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseHex(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidHex))
		})
	}
}

func TestRGB_Formatting(t *testing.T) {
	c := RGB{255, 128, 0}
	assert.Equal(t, "#ff8000", c.Hex())
	assert.Equal(t, "rgb(255, 128, 0)", c.String())

	parsed, err := ParseHex(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestHue(t *testing.T) {
	tests := []struct {
		colour   RGB
		expected float64
	}{
		{RGB{255, 0, 0}, 0},
		{RGB{255, 255, 0}, 1.0 / 6.0},
		{RGB{0, 255, 0}, 1.0 / 3.0},
		{RGB{0, 0, 255}, 2.0 / 3.0},
		{RGB{255, 0, 255}, 5.0 / 6.0},
		{RGB{42, 42, 42}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.colour.Hex(), func(t *testing.T) {
			assert.InDelta(t, tt.expected, Hue(tt.colour), 1e-9)
		})
	}
}
