package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"maxcolours/pkg/colourset"
)

func triadResult(t *testing.T) Result {
	t.Helper()
	seed := colourset.RGB{R: 255}
	colours, err := colourset.GenerateFrom(seed, 3)
	require.NoError(t, err)
	return NewResult(seed, colours)
}

func TestNewResult(t *testing.T) {
	r := triadResult(t)

	assert.Equal(t, "#ff0000", r.Seed)
	assert.Equal(t, 3, r.Count)
	require.Len(t, r.Colours, 3)
	assert.Equal(t, Swatch{Index: 1, Hex: "#00ff00", Green: 255, Hue: 120}, r.Colours[1])
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, r.Hexes())
}

func TestParseOutputFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", "yaml"} {
		_, err := ParseOutputFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseOutputFormat("xml")
	assert.Error(t, err)
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, triadResult(t), OutputFormatJSON, RenderOptions{}))

	var decoded Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, triadResult(t), decoded)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, triadResult(t), OutputFormatYAML, RenderOptions{}))

	assert.Contains(t, buf.String(), "seed: '#ff0000'")
	var decoded Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, triadResult(t), decoded)
}

func TestRender_Table(t *testing.T) {
	tests := []struct {
		name      string
		opts      RenderOptions
		wantTotal bool
	}{
		{"with summary", RenderOptions{}, true},
		{"quiet", RenderOptions{Quiet: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, triadResult(t), OutputFormatTable, tt.opts))

			out := buf.String()
			assert.Contains(t, out, "HEX")
			assert.Contains(t, out, "#0000ff")
			assert.Contains(t, out, "240.0°")
			assert.NotContains(t, out, "\x1b[", "no colour escapes without Color")
			if tt.wantTotal {
				assert.Contains(t, out, "Total: 3 colours from seed #ff0000")
			} else {
				assert.NotContains(t, out, "Total:")
			}
		})
	}
}

func TestRender_TableWithColor(t *testing.T) {
	text.EnableColors()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, triadResult(t), OutputFormatTable, RenderOptions{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, triadResult(t), OutputFormat("xml"), RenderOptions{})
	assert.Error(t, err)
}

func TestCopyHexes(t *testing.T) {
	original := writeClipboard
	defer func() { writeClipboard = original }()

	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	require.NoError(t, CopyHexes(triadResult(t)))
	assert.Equal(t, "#ff0000\n#00ff00\n#0000ff", copied)

	writeClipboard = func(string) error { return errors.New("no clipboard utilities available") }
	err := CopyHexes(triadResult(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to copy colours to clipboard")
}
