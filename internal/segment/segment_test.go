package segment

import (
	"reflect"
	"testing"
)

func testOrder(ids ...string) *Order {
	segs := make([]*Segment, len(ids))
	for i, id := range ids {
		segs[i] = &Segment{ID: id, EndS: float64(i+1) * 10}
	}
	return NewOrder(segs)
}

func TestOrder_Move(t *testing.T) {
	o := testOrder("a", "b", "c", "d")

	if !o.Move(0, 2) {
		t.Fatal("Move(0, 2) should succeed")
	}
	want := []string{"b", "c", "a", "d"}
	if got := o.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("after Move(0, 2): got %v, want %v", got, want)
	}

	if o.IndexOf("a") != 2 {
		t.Errorf("IndexOf(a) = %d, want 2 after reindex", o.IndexOf("a"))
	}
}

func TestOrder_MoveOutOfBounds(t *testing.T) {
	o := testOrder("a", "b")

	tests := []struct {
		name     string
		from, to int
	}{
		{"negative from", -1, 0},
		{"from past end", 2, 0},
		{"negative to", 0, -1},
		{"to past end", 0, 2},
		{"same position", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if o.Move(tt.from, tt.to) {
				t.Errorf("Move(%d, %d) should be a no-op", tt.from, tt.to)
			}
			if got := o.IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
				t.Errorf("order changed to %v", got)
			}
		})
	}
}

func TestOrder_MoveResetsPlayed(t *testing.T) {
	o := testOrder("a", "b", "c")
	for _, s := range o.Segments() {
		s.Played = true
	}

	// Moving any segment invalidates playback state for all of them.
	o.Move(2, 0)

	for _, s := range o.Segments() {
		if s.Played {
			t.Errorf("segment %s still marked played after reorder", s.ID)
		}
	}
}

func TestOrder_Lookups(t *testing.T) {
	o := testOrder("a", "b")

	if o.ByID("missing") != nil {
		t.Error("ByID on unknown id should return nil")
	}
	if o.IndexOf("missing") != -1 {
		t.Error("IndexOf on unknown id should return -1")
	}
	if o.At(-1) != nil || o.At(2) != nil {
		t.Error("At out of bounds should return nil")
	}
	if s := o.ByID("b"); s == nil || s.ID != "b" {
		t.Errorf("ByID(b) = %v", s)
	}
}

func TestSegment_Duration(t *testing.T) {
	s := &Segment{StartS: 2.5, EndS: 10}
	if got := s.Duration(); got != 7.5 {
		t.Errorf("Duration() = %v, want 7.5", got)
	}
}

func TestSplitIDs(t *testing.T) {
	got := SplitIDs("4", 3)
	want := []string{"4.1", "4.2", "4.3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitIDs(4, 3) = %v, want %v", got, want)
	}

	got = SplitIDs("4.2", 2)
	want = []string{"4.2.1", "4.2.2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitIDs(4.2, 2) = %v, want %v", got, want)
	}
}

func TestIsSequential(t *testing.T) {
	tests := []struct {
		current, next string
		want          bool
	}{
		{"1", "2", true},
		{"4.2", "4.3", true},
		{"4.2.1", "4.2.2", true},
		{"3", "4.1", true},
		{"4.1", "4.2.1", true},
		{"1", "3", false},
		{"2", "1", false},
		{"3", "4.2", false}, // split run not starting at .1
		{"4.2", "5", false}, // cannot tell whether the split run ended
		{"4.1", "5.1", false},
		{"a", "b", false},
		{"1", "1", false},
	}

	for _, tt := range tests {
		if got := IsSequential(tt.current, tt.next); got != tt.want {
			t.Errorf("IsSequential(%q, %q) = %v, want %v", tt.current, tt.next, got, tt.want)
		}
	}
}
