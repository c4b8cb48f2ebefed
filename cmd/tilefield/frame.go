package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefield/internal/core"
	"github.com/vovakirdan/tilefield/internal/render"
	"github.com/vovakirdan/tilefield/internal/world"
)

var (
	flagRows int
	flagCols int
	flagX    int
	flagY    int
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Print a single frame and exit",
	Long: `Render one frame of the viewer to stdout without touching terminal
modes. The output is the exact byte stream the interactive viewer
writes for the same size and offset.

Examples:
  tilefield frame
  tilefield frame --rows 40 --cols 120
  tilefield frame --x 30 --y -10 > frame.ans`,
	Args: cobra.NoArgs,
	RunE: runFrame,
}

func init() {
	frameCmd.Flags().IntVar(&flagRows, "rows", 24, "Frame height in rows")
	frameCmd.Flags().IntVar(&flagCols, "cols", 80, "Frame width in columns")
	frameCmd.Flags().IntVar(&flagX, "x", 0, "Horizontal offset (positive scrolls right)")
	frameCmd.Flags().IntVar(&flagY, "y", 0, "Vertical offset (positive scrolls up)")
}

func runFrame(cmd *cobra.Command, args []string) error {
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

	buf := render.NewBuffer(os.Stdout, rc.BufferSize)
	size := core.Size{Rows: max(flagRows, 0), Columns: max(flagCols, 0)}
	stats, err := render.NewRenderer(grid, buf).Render(size, core.Offset{X: flagX, Y: flagY})
	if err != nil {
		return err
	}

	// Leave the shell prompt on a clean line with default colors.
	if _, err := os.Stdout.WriteString(render.ResetStyle + "\n"); err != nil {
		return err
	}

	logger.Debug("frame written",
		"cells", stats.Cells,
		"escapes", stats.Escapes,
		"bytes", stats.Bytes,
		"writes", buf.Writes(),
	)
	return nil
}
