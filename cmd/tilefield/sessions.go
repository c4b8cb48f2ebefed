package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilefield/internal/platform/tui"
	"github.com/vovakirdan/tilefield/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
	flagLimit int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse recorded session statistics",
	Long: `Show statistics of sessions recorded with 'tilefield view --record'.

By default an interactive table is shown. Use --plain for a text
listing suitable for scripts.

Examples:
  tilefield sessions
  tilefield sessions --plain --limit 5
  tilefield sessions --clear`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text listing")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions in the plain listing")
}

func runSessions(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open sessions database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("All recorded sessions deleted.")
		return nil
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printSessions(store)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunSessions(store, width, height)
}

func printSessions(store *storage.Store) error {
	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		return err
	}
	sum, err := store.Summarize()
	if err != nil {
		return err
	}

	fmt.Println("Recorded Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tilefield view --record' to record one.")
		return nil
	}

	// Print header
	fmt.Printf("  %-15s  %-8s  %-7s  %-10s  %-7s  %-8s  %s\n", "Started", "Length", "Frames", "Bytes", "Writes", "B/frame", "End")
	fmt.Printf("  %-15s  %-8s  %-7s  %-10s  %-7s  %-8s  %s\n", "-------", "------", "------", "-----", "------", "-------", "---")

	for _, row := range tui.SessionRows(sessions) {
		fmt.Printf("  %-15s  %-8s  %-7s  %-10s  %-7s  %-8s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}

	fmt.Println()
	fmt.Println(tui.SummaryLine(sum))
	return nil
}
