package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"maxcolours/pkg/colourset"
)

// ToolGenerateColourSet is the name of the generation tool.
const ToolGenerateColourSet = "generate_colour_set"

// GenerateColourSetTool describes the generation tool and its arguments.
func GenerateColourSetTool() mcp.Tool {
	return mcp.NewTool(ToolGenerateColourSet,
		mcp.WithDescription("Generate mutually distinguishable colours from one seed colour. "+
			"All colours have full saturation and brightness and evenly spaced hues; "+
			"the first colour is the seed hue."),
		mcp.WithString("hex",
			mcp.Description("Seed colour as #rrggbb or #rgb. Alternative to red, green and blue."),
		),
		mcp.WithNumber("red",
			mcp.Description("Seed red channel (0-255)"),
		),
		mcp.WithNumber("green",
			mcp.Description("Seed green channel (0-255)"),
		),
		mcp.WithNumber("blue",
			mcp.Description("Seed blue channel (0-255)"),
		),
		mcp.WithNumber("count",
			mcp.Description("Number of colours to generate"),
			mcp.Min(colourset.MinCount),
			mcp.Max(colourset.MaxCount),
		),
	)
}
