package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"maxcolours/internal/config"
	"maxcolours/pkg/logging"
)

// loadedConfig holds the configuration resolved before any subcommand runs.
var loadedConfig = config.GetDefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "maxcolours",
		Short: "Generate sets of mutually distinguishable colours",
		Long: `maxcolours derives a set of easily distinguishable colours from a single
seed colour, e.g. to assign player or team colours from one accent colour.

Every generated colour has full saturation and brightness. Hues are spread
evenly around the colour wheel, starting at the hue of the seed.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. rejected seed colours)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logging.InitForCLI(level, cmd.ErrOrStderr())

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			loadedConfig = cfg
			logging.Debug("Config", "Using defaults: count=%d output=%s seed=%q",
				cfg.Defaults.Count, cfg.Defaults.Output, cfg.Defaults.Seed)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/maxcolours/config.yaml and ./.maxcolours/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSelfUpdateCmd())

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadConfigFrom(path)
	}
	return config.LoadConfig()
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "maxcolours version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
