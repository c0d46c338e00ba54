package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSGR = "\x1b[0m"

// Overlay draws fg on top of bg with its top-left corner at (x, y). bg is
// padded with blank lines and spaces to width × height first.
func Overlay(bg, fg string, x, y, width, height int) string {
	x = max(x, 0)
	y = max(y, 0)

	lines := strings.Split(bg, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}

	for i, fgLine := range strings.Split(fg, "\n") {
		row := y + i
		if row >= len(lines) {
			break
		}
		line := lines[row]
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		fgWidth := ansi.StringWidth(fgLine)
		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(line, x+fgWidth, "")
		lines[row] = left + resetSGR + fgLine + resetSGR + right
	}
	return strings.Join(lines, "\n")
}

// backdrop renders what sits behind the dialog.
func (s Styles) backdrop(base string, width, height int) string {
	var lines []string
	if s.Dim {
		lines = strings.Split(ansi.Strip(base), "\n")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		lines[i] = s.Backdrop.Render(line)
	}
	return strings.Join(lines, "\n")
}
