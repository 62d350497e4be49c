package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"maxcolours/internal/cli"
	"maxcolours/internal/color"
	"maxcolours/internal/config"
	"maxcolours/pkg/colourset"
	"maxcolours/pkg/logging"
)

func newGenerateCmd() *cobra.Command {
	var (
		count  int
		hex    string
		output string
		quiet  bool
		copyTo bool
	)

	cmd := &cobra.Command{
		Use:   "generate [<red> <green> <blue> | <hex>]",
		Short: "Generate a colour set from a seed colour",
		Long: `Generate a set of mutually distinguishable colours from one seed colour.

The seed is given as three channel values in [0-255] or as a hex string.
Without arguments the --hex flag is used, then the seed from the config file.
Greyscale seeds (red == green == blue) have no hue and are rejected.

Examples:
  maxcolours generate 255 0 0 --count 3
  maxcolours generate '#e4572e' -n 6 -o json
  maxcolours generate --hex 0f8 --copy

Use '--' before channel values that start with a minus sign.`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0, 1, 3:
				return nil
			default:
				return fmt.Errorf("expected 3 channel values or 1 hex colour, got %d arguments", len(args))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = loadedConfig.Defaults.Count
			}
			if output == "" {
				output = loadedConfig.Defaults.Output
			}
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}

			seed, err := resolveSeed(args, hex, loadedConfig.Defaults)
			if err != nil {
				return err
			}

			colours, err := colourset.Generate(seed[0], seed[1], seed[2], count)
			if err != nil {
				logging.Debug("Generate", "Rejected seed %v with count %d: %s", seed, count, colourset.KindOf(err))
				return err
			}
			result := cli.NewResult(colourset.RGB{R: uint8(seed[0]), G: uint8(seed[1]), B: uint8(seed[2])}, colours)
			logging.Info("Generate", "Generated %d colours from %s", result.Count, result.Seed)

			noColor, _ := cmd.Flags().GetBool("no-color")
			out := cmd.OutOrStdout()
			opts := cli.RenderOptions{
				Quiet: quiet,
				Color: color.Enabled(out, noColor),
			}
			if err := cli.Render(out, result, format, opts); err != nil {
				return err
			}

			if copyTo {
				if err := cli.CopyHexes(result); err != nil {
					logging.Warn("Generate", "%v", err)
				} else if !quiet {
					fmt.Fprintln(cmd.ErrOrStderr(), "Colours copied to clipboard")
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", config.DefaultCount, "Number of colours to generate (2-10, default from config)")
	cmd.Flags().StringVar(&hex, "hex", "", "Seed colour as #rrggbb or #rgb")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (table, json, yaml; default from config)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.Flags().BoolVar(&copyTo, "copy", false, "Copy the generated hex values to the clipboard")

	return cmd
}

// resolveSeed picks the seed from positional arguments, then the --hex flag,
// then the configured default. Channel values are not clamped.
func resolveSeed(args []string, hexFlag string, defaults config.Defaults) ([3]int, error) {
	switch {
	case len(args) == 3:
		var seed [3]int
		for i, name := range []string{"red", "green", "blue"} {
			v, err := strconv.Atoi(args[i])
			if err != nil {
				return seed, fmt.Errorf("invalid %s channel %q: %w", name, args[i], err)
			}
			seed[i] = v
		}
		return seed, nil
	case len(args) == 1:
		return hexSeed(args[0])
	case hexFlag != "":
		return hexSeed(hexFlag)
	case defaults.Seed != "":
		return hexSeed(defaults.Seed)
	default:
		return [3]int{}, fmt.Errorf("no seed colour given: pass <red> <green> <blue>, a hex colour, or set defaults.seed in the config")
	}
}

func hexSeed(s string) ([3]int, error) {
	c, err := colourset.ParseHex(s)
	if err != nil {
		return [3]int{}, err
	}
	return [3]int{int(c.R), int(c.G), int(c.B)}, nil
}
