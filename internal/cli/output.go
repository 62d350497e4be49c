package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (want table, json or yaml)", s)
	}
}

// RenderOptions contains options for rendering a result
type RenderOptions struct {
	Quiet bool // Suppress the summary line under tables
	Color bool // Emit ANSI colour escapes
}

// Render writes the result to w in the requested format.
func Render(w io.Writer, r Result, format OutputFormat, opts RenderOptions) error {
	switch format {
	case OutputFormatJSON:
		return renderJSON(w, r)
	case OutputFormatYAML:
		return renderYAML(w, r)
	case OutputFormatTable:
		return renderTable(w, r, opts)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderJSON(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, r Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return enc.Close()
}

// renderTable formats the colour set as a rounded table
func renderTable(w io.Writer, r Result, opts RenderOptions) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	headers := table.Row{}
	for _, col := range []string{"index", "hex", "red", "green", "blue", "hue"} {
		headers = append(headers, paint(opts, text.FgHiCyan, strings.ToUpper(col)))
	}
	t.AppendHeader(headers)

	for _, s := range r.Colours {
		t.AppendRow(table.Row{s.Index, s.Hex, s.Red, s.Green, s.Blue, fmt.Sprintf("%.1f°", s.Hue)})
	}
	t.Render()

	if !opts.Quiet {
		_, err := fmt.Fprintf(w, "\n%s %s colours from seed %s\n",
			paint(opts, text.FgHiBlue, "Total:"),
			paint(opts, text.FgHiWhite, fmt.Sprint(r.Count)),
			r.Seed)
		return err
	}
	return nil
}

func paint(opts RenderOptions, c text.Color, s string) string {
	if !opts.Color {
		return s
	}
	return c.Sprint(s)
}
