package tui

import (
	"strings"

	"github.com/avkit/segcut/internal/tui/styles"
)

// Strip is a text drawing surface for one segment's marker canvas: a
// single row of columns standing in for a pixel canvas. It implements
// marker.DrawSurface, mapping pixel offsets onto columns.
type Strip struct {
	widthPx float64
	cols    int
	ticks   []bool
}

// NewStrip creates a strip of cols columns representing widthPx pixels.
func NewStrip(widthPx float64, cols int) *Strip {
	if cols < 1 {
		cols = 1
	}
	return &Strip{
		widthPx: widthPx,
		cols:    cols,
		ticks:   make([]bool, cols),
	}
}

// DrawTick renders a vertical dashed tick at the given pixel offset.
func (s *Strip) DrawTick(xPosition float64) {
	col := int(xPosition / s.widthPx * float64(s.cols))
	if col < 0 {
		col = 0
	}
	if col >= s.cols {
		col = s.cols - 1
	}
	s.ticks[col] = true
}

// Clear erases the strip.
func (s *Strip) Clear() {
	s.ticks = make([]bool, s.cols)
}

// TickCount returns how many columns carry a tick.
func (s *Strip) TickCount() int {
	n := 0
	for _, t := range s.ticks {
		if t {
			n++
		}
	}
	return n
}

// Render returns the strip as a styled timeline row, with an optional
// playhead column.
func (s *Strip) Render(playheadCol int) string {
	var b strings.Builder
	for i := 0; i < s.cols; i++ {
		switch {
		case s.ticks[i]:
			b.WriteString(styles.CanvasTick.Render("┊"))
		case i == playheadCol:
			b.WriteString(styles.Secondary.Render("●"))
		default:
			b.WriteString(styles.Canvas.Render("─"))
		}
	}
	return b.String()
}
