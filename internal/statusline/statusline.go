// Package statusline renders a one-line "cwd | last decision | command"
// summary, the same segmented layout the project's Python statusline
// (model | pwd | git branch) used, but reporting the hook's own last
// decision instead of git state.
package statusline

import "github.com/charmbracelet/lipgloss"

var (
	segmentStyle = lipgloss.NewStyle().Padding(0, 1)
	allowStyle   = segmentStyle.Foreground(lipgloss.Color("2"))
	askStyle     = segmentStyle.Foreground(lipgloss.Color("3"))
	dimStyle     = segmentStyle.Foreground(lipgloss.Color("8"))
	separator    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("│")
)

// Render builds the status line for one decision.
func Render(cwd, decision, command string) string {
	decisionStyle := askStyle
	if decision == "allow" {
		decisionStyle = allowStyle
	}
	segments := []string{
		dimStyle.Render(cwd),
		decisionStyle.Render(decision),
		dimStyle.Render(command),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		segments[0], separator, segments[1], separator, segments[2])
}
