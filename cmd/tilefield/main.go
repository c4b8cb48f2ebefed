// tilefield is a terminal viewer for a procedurally generated tile field.
//
// Usage:
//
//	tilefield                - Open the interactive viewer (same as view)
//	tilefield view           - Open the interactive viewer
//	tilefield frame          - Print one frame to stdout and exit
//	tilefield legend         - Show tile colors and controls
//	tilefield sessions       - Browse recorded session statistics
//
// Global flags:
//
//	--config <path>    - Path to config YAML
//	--db <path>        - Set database path (default: ~/.tilefield/sessions.db)
//	--log-file <path>  - Write logs to a file instead of stderr
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefield/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilefield",
	Short: "Tilefield - Scroll around a generated tile world in your terminal",
	Long: `Tilefield draws a 100x100 world of grass and water tiles and lets you
scroll the view with the keyboard.

Available commands:
  view      - Interactive viewer (default)
  frame     - Print a single frame and exit
  legend    - Show tile colors and controls
  sessions  - Browse recorded session statistics

Examples:
  tilefield
  tilefield view --record
  tilefield frame --rows 24 --cols 80 --x 10
  tilefield sessions --plain`,
	SilenceUsage: true,
	RunE:         runView,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilefield/sessions.db", "Path to session statistics database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Flags().BoolVar(&flagRecord, "record", false, "Save session statistics to the database")

	// Add subcommands
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(legendCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// newLogger builds the process logger. The returned closer releases the
// log file, if any.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilefield",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadConfig resolves the configuration and logs where it came from.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if path == "" {
		path = "embedded defaults"
	}
	logger.Debug("config loaded", "source", path,
		"world", fmt.Sprintf("%dx%d", cfg.World.Width, cfg.World.Height),
		"buffer", cfg.Render.BufferSize,
		"read_timeout_ds", cfg.Input.ReadTimeout,
	)
	return cfg, nil
}
