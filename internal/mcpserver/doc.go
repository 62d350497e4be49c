// Package mcpserver exposes colour set generation as an MCP tool.
//
// The server speaks MCP over stdio and registers a single tool,
// generate_colour_set. A seed is given either as a hex string or as red,
// green and blue channel numbers; count defaults to the configured value.
// Rejected input is returned as a tool error carrying the canonical
// validation message, so assistants can correct the call and retry.
package mcpserver
