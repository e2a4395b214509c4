package cutlist

import (
	"reflect"
	"testing"

	"github.com/avkit/segcut/internal/marker"
)

func threeSegments() *File {
	return &File{
		Segments: []Record{
			{ID: "1", StartS: 0, EndS: 10},
			{ID: "2", StartS: 10, EndS: 30},
			{ID: "3", StartS: 30, EndS: 35},
		},
		Markers: map[string][]marker.Marker{
			"2": {{SegmentID: "2", CutTimeS: 5, CanvasPosition: 50}},
		},
	}
}

func ids(f *File) []string {
	out := make([]string, len(f.Segments))
	for i, r := range f.Segments {
		out[i] = r.ID
	}
	return out
}

func TestApplySplit(t *testing.T) {
	f := threeSegments()

	// Cut segment 2 (duration 20) at 5s and 12s of its own timeline.
	// Insertion order of markers is not time order; 12 before 5 here.
	if err := f.ApplySplit("2", []float64{12, 5}); err != nil {
		t.Fatalf("ApplySplit: %v", err)
	}

	want := []string{"1", "2.1", "2.2", "2.3", "3"}
	if got := ids(f); !reflect.DeepEqual(got, want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}

	children := f.Segments[1:4]
	wantRanges := []Record{
		{ID: "2.1", StartS: 10, EndS: 15},
		{ID: "2.2", StartS: 15, EndS: 22},
		{ID: "2.3", StartS: 22, EndS: 30},
	}
	if !reflect.DeepEqual(children, wantRanges) {
		t.Errorf("children = %+v, want %+v", children, wantRanges)
	}

	if _, ok := f.Markers["2"]; ok {
		t.Error("markers for the split segment should be discarded")
	}
}

func TestApplySplit_Errors(t *testing.T) {
	f := threeSegments()

	if err := f.ApplySplit("9", []float64{1}); err == nil {
		t.Error("unknown segment should error")
	}
	// Cuts at or beyond the segment bounds are unusable.
	if err := f.ApplySplit("3", []float64{0, 5, 99}); err == nil {
		t.Error("no usable cuts should error")
	}
	if got := ids(f); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Errorf("failed splits must leave the file unchanged, got %v", got)
	}
}

func TestApplyCombine(t *testing.T) {
	f := threeSegments()

	if err := f.ApplyCombine([][]string{{"1", "2"}}); err != nil {
		t.Fatalf("ApplyCombine: %v", err)
	}

	if got := ids(f); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Fatalf("segments = %v", got)
	}
	merged := f.Segments[0]
	// 10s + 20s of combined material starting where the first member did.
	if merged.StartS != 0 || merged.EndS != 30 {
		t.Errorf("merged range = [%v, %v], want [0, 30]", merged.StartS, merged.EndS)
	}
	if _, ok := f.Markers["2"]; ok {
		t.Error("markers of absorbed members should be discarded")
	}
}

func TestApplyCombine_Errors(t *testing.T) {
	f := threeSegments()

	if err := f.ApplyCombine([][]string{{"1"}}); err == nil {
		t.Error("groups of one should be rejected")
	}
	if err := f.ApplyCombine([][]string{{"1", "ghost"}}); err == nil {
		t.Error("unknown members should be rejected")
	}
}

func TestApplyCombine_MultipleGroups(t *testing.T) {
	f := &File{Segments: []Record{
		{ID: "a", StartS: 0, EndS: 1},
		{ID: "b", StartS: 1, EndS: 2},
		{ID: "c", StartS: 2, EndS: 3},
		{ID: "d", StartS: 3, EndS: 4},
		{ID: "e", StartS: 4, EndS: 5},
	}}

	if err := f.ApplyCombine([][]string{{"a", "b"}, {"d", "e"}}); err != nil {
		t.Fatalf("ApplyCombine: %v", err)
	}
	if got := ids(f); !reflect.DeepEqual(got, []string{"a", "c", "d"}) {
		t.Errorf("segments = %v", got)
	}
}
