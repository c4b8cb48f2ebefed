package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefield/internal/platform/terminal"
	"github.com/vovakirdan/tilefield/internal/platform/tui"
	"github.com/vovakirdan/tilefield/internal/storage"
	"github.com/vovakirdan/tilefield/internal/world"
)

var flagRecord bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer",
	Long: `Open the tile field in the current terminal.

Controls:
  w/s      - Scroll up/down
  a/d      - Scroll left/right
  q        - Quit

The view is redrawn after every key press and picks up terminal
resizes on the next redraw. SIGTERM and SIGHUP restore the terminal
before exiting.

Examples:
  tilefield view
  tilefield view --record
  tilefield view --log-file /tmp/tilefield.log --debug`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&flagRecord, "record", false, "Save session statistics to the database")
}

func runView(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	rc := cfg.Runtime()

	grid, err := world.NewGrid(rc.WorldWidth, rc.WorldHeight)
	if err != nil {
		return err
	}

	sess, err := terminal.Open(terminal.Options{ReadTimeout: rc.ReadTimeout})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	// Stderr shares the screen with the frames, so the loop only logs to a file.
	var loopLogger *log.Logger
	if flagLogFile != "" {
		loopLogger = logger
	}

	out, runErr := tui.NewLoop(sess, grid, tui.LoopOptions{
		BufferSize: rc.BufferSize,
		Logger:     loopLogger,
	}).Run(ctx)

	// The terminal is restored at this point.
	logger.Debug("session ended",
		"reason", out.Reason,
		"frames", out.Frames,
		"bytes", out.Bytes,
		"writes", out.Writes,
		"duration", out.Duration,
	)

	if flagRecord {
		recordSession(logger, out, rc.WorldWidth, rc.WorldHeight, rc.BufferSize)
	}

	if runErr != nil {
		return fmt.Errorf("session ended (%s): %w", out.Reason, runErr)
	}
	return nil
}

// recordSession saves the outcome. Failures are logged, never fatal.
func recordSession(logger *log.Logger, out tui.Outcome, w, h, bufSize int) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open sessions database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveSession(storage.SessionRecord{
		StartedAt:  out.Started,
		Duration:   out.Duration,
		Frames:     out.Frames,
		Bytes:      out.Bytes,
		Writes:     out.Writes,
		Escapes:    out.Escapes,
		EndReason:  string(out.Reason),
		WorldW:     w,
		WorldH:     h,
		BufferSize: bufSize,
	})
	if err != nil {
		logger.Warn("could not save session", "error", err)
		return
	}
	logger.Debug("session recorded", "id", id, "db", flagDBPath)
}
