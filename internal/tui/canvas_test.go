package tui

import (
	"strings"
	"testing"
)

func TestStripDrawTick(t *testing.T) {
	s := NewStrip(200, 32)

	s.DrawTick(100) // middle of the canvas
	if s.TickCount() != 1 {
		t.Fatalf("TickCount = %d, want 1", s.TickCount())
	}

	out := s.Render(-1)
	if !strings.Contains(out, "┊") {
		t.Errorf("rendered strip missing tick glyph: %q", out)
	}
}

func TestStripClampsOutOfRange(t *testing.T) {
	s := NewStrip(200, 32)
	s.DrawTick(-5)
	s.DrawTick(500)
	if s.TickCount() != 2 {
		t.Fatalf("TickCount = %d, want 2", s.TickCount())
	}
}

func TestStripClear(t *testing.T) {
	s := NewStrip(200, 32)
	s.DrawTick(50)
	s.DrawTick(150)
	s.Clear()
	if s.TickCount() != 0 {
		t.Errorf("TickCount after Clear = %d, want 0", s.TickCount())
	}
	if strings.Contains(s.Render(-1), "┊") {
		t.Error("cleared strip still renders ticks")
	}
}

func TestStripRendersPlayhead(t *testing.T) {
	s := NewStrip(200, 32)
	out := s.Render(4)
	if !strings.Contains(out, "●") {
		t.Errorf("rendered strip missing playhead glyph: %q", out)
	}
}
