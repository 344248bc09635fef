package gen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"schemegen/base16"
)

var (
	keyStyle    = lipgloss.NewStyle().Bold(true).PaddingRight(1)
	absentStyle = lipgloss.NewStyle().Faint(true)
)

// Preview prints one line per slot: a color swatch, the slot key and the hex
// value. Absent slots print "-".
func Preview(w io.Writer, pal *base16.Palette) error {
	for i, s := range pal {
		line := keyStyle.Render(base16.Key(i))
		if s.Ok {
			hex := s.Color.String()
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
			line = lipgloss.JoinHorizontal(lipgloss.Top, swatch, " ", line, hex)
		} else {
			line = lipgloss.JoinHorizontal(lipgloss.Top, "    ", " ", line, absentStyle.Render("-"))
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
