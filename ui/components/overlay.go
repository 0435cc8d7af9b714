package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Rect is a hit box in terminal cells.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Canvas pads or truncates s to exactly width x height cells.
func Canvas(s string, width, height int) string {
	lines := splitLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// Place draws layer over base with its top-left corner at (x, y). Rows of the
// layer that fall outside the canvas are dropped.
func Place(base, layer string, x, y, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := splitLines(Canvas(base, width, height), height)
	layerLines := strings.Split(layer, "\n")
	layerWidth := Width(layer)
	if x < 0 {
		x = 0
	}
	for i, line := range layerLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		segment := padRight(line, layerWidth)
		pos := x + ansi.StringWidth(segment)
		right := dropColumns(target, pos)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = ansi.Truncate(left+segment+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

// Center places layer in the middle of the canvas and returns where it landed.
func Center(base, layer string, width, height int) (string, Rect) {
	w, h := Width(layer), Height(layer)
	x := max((width-w)/2, 0)
	y := max((height-h)/2, 0)
	return Place(base, layer, x, y, width, height), Rect{X: x, Y: y, W: w, H: h}
}

// Width is the widest line of s in cells.
func Width(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := ansi.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

func Height(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

func splitLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
