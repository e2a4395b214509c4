package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/avkit/segcut/internal/event"
	"github.com/avkit/segcut/internal/marker"
	"github.com/avkit/segcut/internal/playback"
	"github.com/avkit/segcut/internal/segment"
)

type stubHandle struct {
	playing bool
	time    float64
	dur     float64
}

func (s *stubHandle) Play()                { s.playing = true }
func (s *stubHandle) Pause()               { s.playing = false }
func (s *stubHandle) CurrentTime() float64 { return s.time }
func (s *stubHandle) Duration() float64    { return s.dur }

// capture subscribes to every event and records what was published.
func capture(bus *event.Bus) *[]event.Event {
	var events []event.Event
	bus.SubscribeAll(func(e event.Event) {
		events = append(events, e)
	})
	return &events
}

func segments(ids ...string) []*segment.Segment {
	segs := make([]*segment.Segment, len(ids))
	for i, id := range ids {
		segs[i] = &segment.Segment{ID: id, StartS: float64(i) * 10, EndS: float64(i+1) * 10}
	}
	return segs
}

// newEditor builds a controller in segments mode with selection and drag
// enabled, and a synchronous deferral so tests see restoration immediately.
func newEditor(t *testing.T, ids ...string) (*Controller, *[]event.Event) {
	t.Helper()
	bus := event.NewBus()
	events := capture(bus)
	c := NewController(segments(ids...), Options{
		Bus:            bus,
		AllowSelection: true,
		AllowDrag:      true,
		Defer:          func(d time.Duration, fn func()) { fn() },
	})
	c.SetMode(ModeSegments)
	*events = nil // drop the mode.changed from setup
	return c, events
}

func eventTypes(events []event.Event) []string {
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.EventType()
	}
	return types
}

func TestCombine_TwoAdjacentPairs(t *testing.T) {
	c, events := newEditor(t, "a", "b", "c", "d", "e")
	for _, id := range []string{"a", "b", "d", "e"} {
		c.ToggleCombine(id)
	}

	if got := c.CombineButtonText(); got != "Combine a,b & d,e" {
		t.Errorf("CombineButtonText() = %q, want %q", got, "Combine a,b & d,e")
	}

	c.Combine()

	if len(*events) != 1 {
		t.Fatalf("expected 1 event, got %v", eventTypes(*events))
	}
	combine := (*events)[0].(event.CombineRequestedEvent)
	want := [][]string{{"a", "b"}, {"d", "e"}}
	if !reflect.DeepEqual(combine.Groups, want) {
		t.Errorf("Groups = %v, want %v", combine.Groups, want)
	}
	if c.Selection().Len() != 0 {
		t.Error("combine selection should be cleared after a successful combine")
	}
}

func TestCombine_NonAdjacentIsNoOp(t *testing.T) {
	c, events := newEditor(t, "a", "b", "c")
	c.ToggleCombine("a")
	c.ToggleCombine("c")

	c.Combine()

	if len(*events) != 0 {
		t.Errorf("no event should be emitted, got %v", eventTypes(*events))
	}
	if got := c.CombineTooltip(); got != "Select consecutive segments to combine" {
		t.Errorf("CombineTooltip() = %q", got)
	}
	if c.Selection().Len() != 2 {
		t.Error("failed combine must keep the selection")
	}
}

func TestCombine_SingleSelectionTooltip(t *testing.T) {
	c, _ := newEditor(t, "a", "b", "c")
	c.ToggleCombine("a")

	if got := c.CombineTooltip(); got != "Select atleast 2 segments to combine" {
		t.Errorf("CombineTooltip() = %q", got)
	}
	if got := c.Groups(); len(got) != 0 {
		t.Errorf("Groups() = %v, want empty", got)
	}
}

func TestToggleCombine_Gating(t *testing.T) {
	bus := event.NewBus()
	c := NewController(segments("a", "b"), Options{Bus: bus, AllowDrag: true})
	c.SetMode(ModeSegments)

	// Selection disabled.
	c.ToggleCombine("a")
	if c.Selection().Len() != 0 {
		t.Error("ToggleCombine should be inert when selection is disabled")
	}

	// Selection enabled but preview mode.
	c2, _ := newEditor(t, "a", "b")
	c2.SetMode(ModePreview)
	c2.ToggleCombine("a")
	if c2.Selection().Len() != 0 {
		t.Error("ToggleCombine should be inert in preview mode")
	}
}

func TestToggleSelection_IndependentOfCombine(t *testing.T) {
	c, _ := newEditor(t, "a", "b", "c")

	c.ToggleSelection("a")
	c.ToggleSelection("b")
	c.ToggleCombine("b")
	c.ToggleCombine("c")

	if !c.Order().ByID("a").Selected || !c.Order().ByID("b").Selected {
		t.Error("inspection selection flags should be set")
	}
	if c.Selection().Contains("a") {
		t.Error("inspection selection must not leak into the combine set")
	}
	// The inspection flag plays no role in group resolution.
	if got := c.Groups(); len(got) != 1 || !reflect.DeepEqual([]string(got[0]), []string{"b", "c"}) {
		t.Errorf("Groups() = %v, want [[b c]]", got)
	}

	c.ToggleSelection("a")
	if c.Order().ByID("a").Selected {
		t.Error("second toggle should clear the flag")
	}
}

func TestReorder(t *testing.T) {
	c, events := newEditor(t, "a", "b", "c")
	for _, s := range c.Order().Segments() {
		s.Played = true
	}

	c.Reorder(0, 2)

	if got := c.Order().IDs(); !reflect.DeepEqual(got, []string{"b", "c", "a"}) {
		t.Errorf("order = %v", got)
	}
	for _, s := range c.Order().Segments() {
		if s.Played {
			t.Errorf("segment %s still played after reorder", s.ID)
		}
	}
	if types := eventTypes(*events); !reflect.DeepEqual(types, []string{"order.changed"}) {
		t.Errorf("events = %v", types)
	}
}

func TestReorder_NoOps(t *testing.T) {
	c, events := newEditor(t, "a", "b")
	c.Reorder(0, 5)
	c.Reorder(-1, 0)
	if len(*events) != 0 {
		t.Errorf("out-of-bounds reorder emitted %v", eventTypes(*events))
	}

	// Drag disabled.
	bus := event.NewBus()
	events2 := capture(bus)
	c2 := NewController(segments("a", "b"), Options{Bus: bus, AllowSelection: true})
	c2.Reorder(0, 1)
	if got := c2.Order().IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("order changed with drag disabled: %v", got)
	}
	if len(*events2) != 0 {
		t.Errorf("events with drag disabled: %v", eventTypes(*events2))
	}
}

func TestAddMarker(t *testing.T) {
	c, events := newEditor(t, "a")
	c.Playback().Set("a", &stubHandle{time: 2.5, dur: 10})

	c.AddMarker("a")

	got := c.Markers().Markers("a")
	if len(got) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(got))
	}
	if got[0].CutTimeS != 2.5 {
		t.Errorf("CutTimeS = %v", got[0].CutTimeS)
	}
	// Default canvas width is 200: 2.5/10 * 200 = 50.
	if got[0].CanvasPosition != 50 {
		t.Errorf("CanvasPosition = %v, want 50", got[0].CanvasPosition)
	}
	if types := eventTypes(*events); !reflect.DeepEqual(types, []string{"marker.added"}) {
		t.Errorf("events = %v", types)
	}
}

func TestAddMarker_AtTimeZeroIsRejected(t *testing.T) {
	c, events := newEditor(t, "a")
	c.Playback().Set("a", &stubHandle{time: 0, dur: 10})

	before := len(c.Markers().Markers("a"))
	c.AddMarker("a")

	if after := len(c.Markers().Markers("a")); after != before || after != 0 {
		t.Errorf("marker store changed: %d -> %d", before, after)
	}
	if len(*events) != 0 {
		t.Errorf("events = %v", eventTypes(*events))
	}
}

func TestAddMarker_NoPlaybackHandle(t *testing.T) {
	c, events := newEditor(t, "a")
	c.AddMarker("a")
	if c.Markers().Has("a") || len(*events) != 0 {
		t.Error("AddMarker without a handle should be a no-op")
	}
}

func TestClearMarkers_Idempotent(t *testing.T) {
	c, events := newEditor(t, "a")
	c.Playback().Set("a", &stubHandle{time: 1, dur: 10})
	c.AddMarker("a")
	*events = nil

	c.ClearMarkers("a")
	c.ClearMarkers("a")

	if c.Markers().Has("a") {
		t.Error("markers should be gone")
	}
	// Only the first clear had anything to announce.
	if types := eventTypes(*events); !reflect.DeepEqual(types, []string{"marker.cleared"}) {
		t.Errorf("events = %v", types)
	}
}

func TestSplit(t *testing.T) {
	c, events := newEditor(t, "a", "b")
	h := &stubHandle{time: 1.0, dur: 10}
	c.Playback().Set("a", h)
	c.AddMarker("a")
	h.time = 2.5
	c.AddMarker("a")
	*events = nil

	c.Split("a")

	if len(*events) != 1 {
		t.Fatalf("expected 1 event, got %v", eventTypes(*events))
	}
	split := (*events)[0].(event.SplitRequestedEvent)
	if split.SegmentID != "a" {
		t.Errorf("SegmentID = %q", split.SegmentID)
	}
	if len(split.Markers) != 2 || split.Markers[0].CutTimeS != 1.0 || split.Markers[1].CutTimeS != 2.5 {
		t.Errorf("emitted markers = %+v", split.Markers)
	}
	if c.Markers().Has("a") {
		t.Error("segment markers should be cleared optimistically")
	}
	if !c.Splitting() {
		t.Error("session-wide splitting flag should be set")
	}
	if !c.Order().ByID("a").Splitting {
		t.Error("segment splitting flag should be set")
	}
}

func TestSplit_WithoutMarkersIsNoOp(t *testing.T) {
	c, events := newEditor(t, "a")
	c.Split("a")
	if len(*events) != 0 || c.Splitting() {
		t.Error("split without markers should do nothing")
	}
}

func TestRefresh_AfterSplitResumesPlayback(t *testing.T) {
	c, events := newEditor(t, "a", "b")
	h := &stubHandle{time: 1, dur: 10}
	c.Playback().Set("a", h)
	c.AddMarker("a")
	c.Split("a")
	*events = nil

	restored := false
	c.Markers().SetSurface("a.1", surfaceFunc(func() { restored = true }))

	// Host performed the split and refreshed the list.
	c.Refresh(segments("a.1", "a.2", "b"), nil)

	if types := eventTypes(*events); !reflect.DeepEqual(types, []string{"playback.resume"}) {
		t.Errorf("events = %v", types)
	}
	if !h.playing {
		t.Error("playback should be resumed on every registered handle")
	}
	if c.Splitting() {
		t.Error("splitting flag should be consumed by the refresh")
	}
	if restored {
		t.Error("marker restoration must not run on a post-split refresh")
	}
}

func TestRefresh_RestoresMarkersAfterSettling(t *testing.T) {
	var deferred []func()
	bus := event.NewBus()
	c := NewController(segments("a"), Options{
		Bus:            bus,
		AllowSelection: true,
		AllowDrag:      true,
		Defer:          func(d time.Duration, fn func()) { deferred = append(deferred, fn) },
	})
	c.SetMode(ModeSegments)

	ticks := 0
	c.Markers().SetSurface("a", surfaceFunc(func() { ticks++ }))

	c.Refresh(segments("a"), map[string][]marker.Marker{
		"a": {{SegmentID: "a", CutTimeS: 1, CanvasPosition: 20}},
	})

	if ticks != 0 {
		t.Error("restoration must wait for the settling delay")
	}
	if len(deferred) != 1 {
		t.Fatalf("expected 1 deferred restoration, got %d", len(deferred))
	}
	deferred[0]()
	if ticks != 1 {
		t.Errorf("expected 1 restored tick, got %d", ticks)
	}
	// The store itself holds exactly the replaced markers.
	if got := len(c.Markers().Markers("a")); got != 1 {
		t.Errorf("store has %d markers", got)
	}
}

func TestRefresh_PreviewModeSkipsReconciliation(t *testing.T) {
	bus := event.NewBus()
	deferrals := 0
	c := NewController(segments("a"), Options{
		Bus:   bus,
		Defer: func(d time.Duration, fn func()) { deferrals++ },
	})

	c.Refresh(segments("a", "b"), nil)

	if deferrals != 0 {
		t.Error("preview mode must not schedule marker restoration")
	}
}

func TestSetCurrentIndex(t *testing.T) {
	bus := event.NewBus()
	events := capture(bus)
	c := NewController(segments("a", "b", "c"), Options{Bus: bus})

	// Preview mode: auto-scroll.
	c.SetCurrentIndex(1)
	if types := eventTypes(*events); !reflect.DeepEqual(types, []string{"scroll.requested"}) {
		t.Fatalf("events = %v", types)
	}
	if (*events)[0].(event.ScrollRequestedEvent).Index != 1 {
		t.Error("scroll index mismatch")
	}
	if !c.Order().At(1).Played {
		t.Error("current segment should be marked played")
	}

	// Segments mode: no auto-scroll.
	c.SetMode(ModeSegments)
	*events = nil
	c.SetCurrentIndex(2)
	if len(*events) != 0 {
		t.Errorf("segments mode emitted %v", eventTypes(*events))
	}

	// Out of bounds: no-op.
	c.SetCurrentIndex(99)
	if c.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex = %d, want 2", c.CurrentIndex())
	}
}

func TestSeek(t *testing.T) {
	c, events := newEditor(t, "a", "b")
	c.Seek("b")
	if len(*events) != 1 {
		t.Fatalf("events = %v", eventTypes(*events))
	}
	if got := (*events)[0].(event.SeekRequestedEvent).SegmentID; got != "b" {
		t.Errorf("SegmentID = %q", got)
	}
}

func TestSelectPattern(t *testing.T) {
	c, _ := newEditor(t, "3", "4.1", "4.2", "4.3", "5")

	n, err := c.SelectPattern("4.*")
	if err != nil {
		t.Fatalf("SelectPattern: %v", err)
	}
	if n != 3 {
		t.Errorf("matched %d, want 3", n)
	}
	want := [][]string{{"4.1", "4.2", "4.3"}}
	groups := c.Groups()
	got := make([][]string, len(groups))
	for i, g := range groups {
		got[i] = g
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Groups() = %v, want %v", got, want)
	}

	// Re-selecting matches nothing new.
	n, err = c.SelectPattern("4.*")
	if err != nil || n != 0 {
		t.Errorf("second SelectPattern = (%d, %v), want (0, nil)", n, err)
	}

	if _, err := c.SelectPattern("[bad"); err == nil {
		t.Error("malformed pattern should return an error")
	}
}

func TestDefaultDeferrerUsesTimer(t *testing.T) {
	bus := event.NewBus()
	c := NewController(segments("a"), Options{
		Bus:         bus,
		SettleDelay: time.Millisecond,
	})
	c.SetMode(ModeSegments)

	done := make(chan struct{})
	c.Markers().SetSurface("a", surfaceFunc(func() {
		select {
		case <-done:
		default:
			close(done)
		}
	}))
	c.Refresh(segments("a"), map[string][]marker.Marker{
		"a": {{SegmentID: "a", CutTimeS: 1, CanvasPosition: 10}},
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deferred restoration never ran")
	}
}

// surfaceFunc adapts a func into a DrawSurface that counts ticks.
type surfaceFunc func()

func (f surfaceFunc) DrawTick(x float64) { f() }
func (f surfaceFunc) Clear()             {}

var _ playback.Handle = (*stubHandle)(nil)
