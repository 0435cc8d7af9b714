package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriShell/internal/theme"
)

func palette(t *testing.T) theme.Palette {
	t.Helper()
	p, ok := theme.Lookup(theme.Light)
	require.True(t, ok)
	return p
}

func sheetButtons() []ButtonView {
	return []ButtonView{
		{Text: "Open"},
		{Text: "Share"},
		{Text: "Cancel", Style: ButtonCancel},
	}
}

// requireHits checks that every hit box covers the cell where its button
// label is drawn.
func requireHits(t *testing.T, rendered string, rects []Rect, buttons []ButtonView) {
	t.Helper()
	lines := strings.Split(ansi.Strip(rendered), "\n")
	for i, b := range buttons {
		r := rects[i]
		require.LessOrEqual(t, r.Y+r.H, len(lines), b.Text)
		found := false
		for y := r.Y; y < r.Y+r.H; y++ {
			col := strings.Index(lines[y], b.Text)
			if col >= 0 && r.Contains(ansi.StringWidth(lines[y][:col]), y) {
				found = true
				break
			}
		}
		require.True(t, found, "hit box of %q misses its label", b.Text)
	}
}

func TestActionSheetHitBoxes(t *testing.T) {
	p := palette(t)
	buttons := sheetButtons()

	sheet, rects := RenderActionSheet(p, "Share photo", "", buttons, 0, 80)
	requireHits(t, sheet, rects, buttons)
}

func TestActionSheetHitBoxesWithWrappedTitle(t *testing.T) {
	p := palette(t)
	buttons := sheetButtons()
	title := strings.Repeat("sheet title ", 10)

	sheet, rects := RenderActionSheet(p, title, "A message long enough to wrap over more than one line of the sheet body.", buttons, 1, 80)
	require.Greater(t, Height(sheet), 8)
	requireHits(t, sheet, rects, buttons)
}

func TestAlertHitBoxesWithWrappedTitle(t *testing.T) {
	p := palette(t)
	buttons := []ButtonView{{Text: "Cancel", Style: ButtonCancel}, {Text: "Delete", Style: ButtonDestructive}}

	card, rects := RenderAlert(p, strings.Repeat("Delete Item ", 8), "Are you sure?", buttons, 1, 80, true)
	requireHits(t, card, rects, buttons)
}

func TestPlaceClipsLayerToCanvas(t *testing.T) {
	layer := "abc\ndef\nghi"

	out := Place("", layer, 8, 2, 10, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		require.Equal(t, 10, ansi.StringWidth(l))
	}
	require.Equal(t, "        ab", lines[2])

	out = Place("0123456789", layer, 0, -1, 10, 3)
	lines = strings.Split(out, "\n")
	require.Equal(t, "def3456789", lines[0])
	require.Equal(t, "ghi       ", lines[1])
	require.Equal(t, strings.Repeat(" ", 10), lines[2])

	require.Empty(t, Place("base", layer, 0, 0, 0, 3))
}

func TestCenterReportsPlacement(t *testing.T) {
	_, r := Center("", "xx\nxx", 10, 6)
	require.Equal(t, Rect{X: 4, Y: 2, W: 2, H: 2}, r)
	require.True(t, r.Contains(5, 3))
	require.False(t, r.Contains(6, 3))
	require.Equal(t, Rect{X: 5, Y: 4, W: 2, H: 2}, r.Offset(1, 2))
}

func TestMenuRowRevealsActionWhileDragging(t *testing.T) {
	p := palette(t)
	row := MenuRow{Icon: "*", Title: "Settings", ActionCols: 10, Width: 40}

	closed := ansi.Strip(RenderMenuRow(p, row))
	require.Equal(t, 40, ansi.StringWidth(closed))
	require.NotContains(t, closed, "Delete")

	row.ShiftCols = 4
	dragging := ansi.Strip(RenderMenuRow(p, row))
	require.Equal(t, 40, ansi.StringWidth(dragging))
	require.True(t, strings.HasSuffix(dragging, ansi.Truncate(ActionLabel(false), 4, "")), dragging)

	row.ShiftCols, row.Open = 10, true
	open := ansi.Strip(RenderMenuRow(p, row))
	require.Equal(t, 40, ansi.StringWidth(open))
	require.Contains(t, open, "Delete")

	row.Logout = true
	require.Contains(t, ansi.Strip(RenderMenuRow(p, row)), "Logout")
}
