package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type cellColors struct {
	fg, bg string
}

// styleCache maps a hex color pair to its lipgloss style.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(fg, bg core.RGB) (cellColors, lipgloss.Style) {
	k := cellColors{fg: fg.Hex(), bg: bg.Hex()}
	if st, ok := c[k]; ok {
		return k, st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(k.fg)).
		Background(lipgloss.Color(k.bg))
	c[k] = st
	return k, st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, styleCache{})
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key, style := styles.get(cell.FG, cell.BG)

			// Collect consecutive cells with the same colors
			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if k, _ := styles.get(cell.FG, cell.BG); k != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
