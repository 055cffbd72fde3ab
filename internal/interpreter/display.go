package interpreter

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toyrobot/internal/robot"
)

var robotStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

func glyph(d robot.Direction) string {
	switch d {
	case robot.East:
		return ">"
	case robot.South:
		return "v"
	case robot.West:
		return "<"
	default:
		return "^"
	}
}

// Render draws the table with the robot on it, north row on top.
func Render(w io.Writer, r *robot.Robot) error {
	var b strings.Builder
	for y := robot.TableSize - 1; y >= 0; y-- {
		for x := 0; x < robot.TableSize; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if r.Placed() && r.X() == x && r.Y() == y {
				b.WriteString(robotStyle.Render(glyph(r.Heading())))
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
