package views

import (
	"github.com/hance08/sats/internal/ui"
	"github.com/pterm/pterm"
)

// RenderResult prints an operation result followed by the dash line.
func RenderResult(message string, dashWidth int) {
	pterm.Println()
	pterm.Success.Println(message)
	ui.Separator(dashWidth)
}

// RenderProblem prints a recoverable problem between dash lines.
func RenderProblem(message string, dashWidth int) {
	ui.Separator(dashWidth)
	pterm.Warning.Println(message)
	ui.Separator(dashWidth)
}

func RenderFarewell(message string, dashWidth int) {
	ui.Separator(dashWidth)
	pterm.Println(message)
}
