package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilefield/internal/core"
	"github.com/vovakirdan/tilefield/internal/world"
)

// swatchWidth is the width of a color sample in the legend.
const swatchWidth = 4

// swatchStyle returns a style painting the background with c.
func swatchStyle(c core.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(strconv.Itoa(c.ANSIIndex())))
}

// LegendEntry describes one tile kind as drawn by the viewer.
type LegendEntry struct {
	Kind  world.TileKind
	Color core.Color
}

// LegendEntries lists every tile kind with its background color.
func LegendEntries() []LegendEntry {
	kinds := world.Kinds()
	entries := make([]LegendEntry, len(kinds))
	for i, k := range kinds {
		entries[i] = LegendEntry{Kind: k, Color: k.Color()}
	}
	return entries
}

// Legend renders the tile legend and the controls as a styled block.
func Legend() string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	sb.WriteString(titleStyle.Render("Tiles"))
	sb.WriteString("\n")
	for _, e := range LegendEntries() {
		swatch := swatchStyle(e.Color).Render(strings.Repeat(" ", swatchWidth))
		fmt.Fprintf(&sb, "  %s  %-6s %s\n", swatch, e.Kind, dimStyle.Render(fmt.Sprintf("ESC[%dm %s", e.Color, e.Color)))
	}

	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render("Keys"))
	sb.WriteString("\n")
	for _, k := range []struct{ key, help string }{
		{"w", "scroll up"},
		{"s", "scroll down"},
		{"a", "scroll left"},
		{"d", "scroll right"},
		{"q", "quit"},
	} {
		fmt.Fprintf(&sb, "  %s  %s\n", titleStyle.Render(k.key), k.help)
	}
	fmt.Fprintf(&sb, "\n  %s marks the center of the view\n", titleStyle.Render("P"))

	return sb.String()
}
