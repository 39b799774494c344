// Package palette picks the color used to render a decision, adapting its
// output to the terminal's actual color capability instead of emitting raw
// ANSI codes unconditionally.
package palette

import "github.com/muesli/termenv"

var profile = termenv.ColorProfile()

// safeColor and askColor are the two decision colors. "ask" and any
// unrecognized decision share amber/yellow - both mean "this hook did not
// grant allow" - "allow" is green.
var (
	safeColor = profile.Color("2")
	askColor  = profile.Color("3")
)

// Render colors s according to decision ("allow"/"ask"/anything else falls
// back to the "ask" color).
func Render(decision, s string) string {
	color := askColor
	if decision == "allow" {
		color = safeColor
	}
	return termenv.String(s).Foreground(color).String()
}
