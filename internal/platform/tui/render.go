package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorSand:          "223",
	core.ColorPink:          "210",
	core.ColorBrown:         "130",
}

// Palette turns a Screen into styled text for one output.
// SSH sessions need their own renderer so color detection matches the
// remote terminal rather than the server's.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPalette builds styles from r, or from the default renderer when nil.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Palette{
		styles: make(map[core.Color]lipgloss.Style, len(ansiCodes)),
		plain:  r.NewStyle(),
	}
	for c, code := range ansiCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.plain
}

// RenderScreen renders with the default palette.
func RenderScreen(s *core.Screen) string {
	return NewPalette(nil).Render(s)
}
