package cmd

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maxcolours/internal/cli"
	"maxcolours/internal/config"
	"maxcolours/pkg/colourset"
)

func TestGenerate_ChannelArgs(t *testing.T) {
	cfg := writeConfig(t, "")
	out, _, err := executeCommand(t, "generate", "255", "0", "0", "-n", "3", "-o", "json", "--config", cfg)
	require.NoError(t, err)

	var result cli.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, result.Hexes())
}

func TestGenerate_HexSources(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
	}{
		{"positional hex", "", []string{"#ff0000"}},
		{"hex flag", "", []string{"--hex", "f00"}},
		{"configured seed", "defaults:\n  seed: '#ff0000'\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "-n", "2", "-o", "yaml", "--config", writeConfig(t, tt.config)}, tt.args...)
			out, _, err := executeCommand(t, args...)
			require.NoError(t, err)
			assert.Contains(t, out, "hex: '#00ffff'")
		})
	}
}

func TestGenerate_ConfigDefaults(t *testing.T) {
	cfg := writeConfig(t, "defaults:\n  count: 5\n  output: json\n")
	out, _, err := executeCommand(t, "generate", "0", "0", "255", "--config", cfg)
	require.NoError(t, err)

	var result cli.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 5, result.Count)
	assert.Equal(t, "#0000ff", result.Colours[0].Hex)
}

func TestGenerate_TableOutput(t *testing.T) {
	out, _, err := executeCommand(t, "generate", "255", "0", "0", "--no-color", "--config", writeConfig(t, ""))
	require.NoError(t, err)
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "Total:")
	assert.NotContains(t, out, "\x1b[", "buffers are not terminals")

	out, _, err = executeCommand(t, "generate", "255", "0", "0", "-q", "--config", writeConfig(t, ""))
	require.NoError(t, err)
	assert.NotContains(t, out, "Total:")
}

func TestGenerate_Rejections(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"size too small", []string{"-n", "1", "255", "0", "0"}, colourset.ErrSizeTooSmall},
		{"size too large", []string{"-n", "11", "255", "0", "0"}, colourset.ErrSizeTooLarge},
		{"channel too high", []string{"-n", "2", "1000", "0", "0"}, colourset.ErrChannelOutOfRange},
		{"negative channel", []string{"-n", "2", "--", "0", "0", "-42"}, colourset.ErrChannelOutOfRange},
		{"black", []string{"-n", "2", "0", "0", "0"}, colourset.ErrGreyscaleRejected},
		{"grey", []string{"-n", "2", "42", "42", "42"}, colourset.ErrGreyscaleRejected},
		{"white hex", []string{"-n", "2", "#ffffff"}, colourset.ErrGreyscaleRejected},
		{"bad hex", []string{"#nothex"}, colourset.ErrInvalidHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "--config", writeConfig(t, "")}, tt.args...)
			out, _, err := executeCommand(t, args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Empty(t, out, "no partial output on rejected input")
		})
	}
}

func TestGenerate_ArgumentErrors(t *testing.T) {
	cfg := writeConfig(t, "")

	_, _, err := executeCommand(t, "generate", "255", "0", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 channel values or 1 hex colour")

	_, _, err = executeCommand(t, "generate", "red", "0", "0", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid red channel "red"`)

	_, _, err = executeCommand(t, "generate", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no seed colour given")

	_, _, err = executeCommand(t, "generate", "255", "0", "0", "-o", "xml", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestResolveSeed(t *testing.T) {
	defaults := config.Defaults{Seed: "#00ff00"}

	seed, err := resolveSeed([]string{"1", "2", "300"}, "#ff0000", defaults)
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 2, 300}, seed, "positional channels win and are not clamped")

	seed, err = resolveSeed(nil, "#ff0000", defaults)
	require.NoError(t, err)
	assert.Equal(t, [3]int{255, 0, 0}, seed)

	seed, err = resolveSeed(nil, "", defaults)
	require.NoError(t, err)
	assert.Equal(t, [3]int{0, 255, 0}, seed)
}
