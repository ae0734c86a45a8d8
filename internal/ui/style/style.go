// Package style holds the marks and colors of klse's log lines.
package style

import "github.com/charmbracelet/lipgloss"

// Tone is the kind of outcome a line reports.
type Tone uint8

const (
	// Neutral is progress information such as "Watching src for changes".
	Neutral Tone = iota
	// Done is a finished step: a compiled unit, an up to date object, a created directory.
	Done
	// Caution is a recoverable surprise such as changed CFLAGS.
	Caution
	// Failed is an error that ends the command.
	Failed
)

// Arrow prefixes each cause when an error chain is printed.
const Arrow = "→"

// Mark is the icon and color a line of some Tone is printed with.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

var marks = [...]Mark{
	Neutral: {Color: lipgloss.Color("#667085")},
	Done:    {Icon: "✓", Color: lipgloss.Color("#22A06B")},
	Caution: {Icon: "!", Color: lipgloss.Color("#F59E0B")},
	Failed:  {Icon: "✗", Color: lipgloss.Color("#D93025")},
}

// MarkFor returns the mark of t. Unknown tones render as Neutral.
func MarkFor(t Tone) Mark {
	if int(t) >= len(marks) {
		return marks[Neutral]
	}
	return marks[t]
}

// Prefix renders msg behind the icon of m, if it has one.
func (m Mark) Prefix(msg string) string {
	if m.Icon == "" {
		return msg
	}
	return m.Icon + " " + msg
}
