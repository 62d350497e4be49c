package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"maxcolours/internal/cli"
	"maxcolours/internal/config"
	"maxcolours/pkg/colourset"
	"maxcolours/pkg/logging"
)

const subsystem = "MCPServer"

var errMissingSeed = errors.New("a seed is required: pass hex, or red, green and blue")

// Server wraps an MCP server with the colour tools registered.
type Server struct {
	mcp      *server.MCPServer
	defaults config.Defaults
}

// New creates a server. defaults supply the count and seed when a call omits them.
func New(version string, defaults config.Defaults) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			"maxcolours",
			version,
			server.WithToolCapabilities(false),
		),
		defaults: defaults,
	}
	s.mcp.AddTool(GenerateColourSetTool(), s.handleGenerateColourSet)
	return s
}

// Serve runs the stdio transport on in/out until ctx is cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info(subsystem, "Serving %s over stdio", ToolGenerateColourSet)
	err := server.NewStdioServer(s.mcp).Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server stopped: %w", err)
	}
	return nil
}

// handleGenerateColourSet handles the generate_colour_set MCP tool
func (s *Server) handleGenerateColourSet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count, err := s.countFrom(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	seed, err := s.seedFrom(request)
	if err != nil {
		// Size rules are checked before channel rules.
		if colourset.KindOf(err) == colourset.KindChannelOutOfRange {
			if sizeErr := colourset.ValidateCount(count); sizeErr != nil {
				return mcp.NewToolResultError(sizeErr.Error()), nil
			}
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	colours, err := colourset.Generate(seed[0], seed[1], seed[2], count)
	if err != nil {
		logging.Debug(subsystem, "Rejected %v with count %d: %s", seed, count, colourset.KindOf(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := cli.NewResult(colourset.RGB{R: uint8(seed[0]), G: uint8(seed[1]), B: uint8(seed[2])}, colours)
	jsonData, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format colours: %v", err)), nil
	}

	logging.Debug(subsystem, "Generated %d colours from %s", count, result.Seed)
	return mcp.NewToolResultText(string(jsonData)), nil
}

// countFrom reads count, falling back to the configured default.
func (s *Server) countFrom(request mcp.CallToolRequest) (int, error) {
	raw, ok := request.GetArguments()["count"]
	if !ok {
		return s.defaults.Count, nil
	}
	v, whole, err := numberArg(raw)
	if err != nil || !whole {
		return 0, fmt.Errorf("count must be a whole number between %d and %d", colourset.MinCount, colourset.MaxCount)
	}
	return v, nil
}

// seedFrom resolves the seed channels. Channels are kept as plain ints so that
// out-of-range values reach colourset validation instead of wrapping.
func (s *Server) seedFrom(request mcp.CallToolRequest) ([3]int, error) {
	if hex := request.GetString("hex", ""); hex != "" {
		return parseHexSeed(hex)
	}

	args := request.GetArguments()
	_, hasRed := args["red"]
	_, hasGreen := args["green"]
	_, hasBlue := args["blue"]
	if hasRed || hasGreen || hasBlue {
		var seed [3]int
		for i, name := range []string{"red", "green", "blue"} {
			raw, ok := args[name]
			if !ok {
				return seed, fmt.Errorf("%s parameter is required with the other channels", name)
			}
			v, whole, err := numberArg(raw)
			if err != nil {
				return seed, fmt.Errorf("%s parameter must be a number", name)
			}
			if !whole {
				return seed, &colourset.ValidationError{Kind: colourset.KindChannelOutOfRange, Channel: name}
			}
			seed[i] = v
		}
		return seed, nil
	}

	if s.defaults.Seed != "" {
		return parseHexSeed(s.defaults.Seed)
	}
	return [3]int{}, errMissingSeed
}

func parseHexSeed(hex string) ([3]int, error) {
	c, err := colourset.ParseHex(hex)
	if err != nil {
		return [3]int{}, err
	}
	return [3]int{int(c.R), int(c.G), int(c.B)}, nil
}

// numberArg converts a decoded JSON number to int. whole is false when the
// value has a fractional part; such values are never truncated.
func numberArg(raw any) (v int, whole bool, err error) {
	var f float64
	switch n := raw.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	case json.Number:
		if f, err = n.Float64(); err != nil {
			return 0, false, err
		}
	default:
		return 0, false, fmt.Errorf("not a number: %T", raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false, nil
	}
	// Keep huge values out of range instead of letting the conversion wrap.
	return int(max(min(f, math.MaxInt32), math.MinInt32)), true, nil
}
