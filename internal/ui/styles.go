package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

// Dashes returns the separator line used around every result block.
func Dashes(width int) string {
	if width < 0 {
		width = 0
	}
	return strings.Repeat("-", width)
}

// Separator prints a green dash line of the given width.
func Separator(width int) {
	pterm.Println(pterm.Green(Dashes(width)))
}
