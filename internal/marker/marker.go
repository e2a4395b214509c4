// Package marker stores the cut markers a user places on segments and
// mirrors them onto host-supplied drawing surfaces.
//
// A marker records both the cut time within the segment's own timeline and
// the derived horizontal pixel offset on the segment's canvas. Markers are
// kept in insertion order (the order of user actions), not time order.
package marker

// Marker is a user-placed cut point within one segment's timeline.
type Marker struct {
	SegmentID      string  `yaml:"av_segment_id"`
	CutTimeS       float64 `yaml:"cut_time_s"`
	CanvasPosition float64 `yaml:"canvas_position"`
}

// DrawSurface is the per-segment drawing capability supplied by the host.
// The store never owns a surface; it only requests draw operations, and a
// segment without a registered surface simply isn't drawn on.
type DrawSurface interface {
	// DrawTick renders a short vertical dashed tick at the given
	// horizontal offset.
	DrawTick(xPosition float64)
	// Clear erases everything drawn on the surface.
	Clear()
}

// Store holds the per-segment marker sequences for one session.
// It is not safe for concurrent use; the session owns it and touches it
// only from the interaction goroutine.
type Store struct {
	markers   map[string][]Marker
	positions map[string]map[float64]bool // dedup key: canvas position
	surfaces  map[string]DrawSurface
}

// NewStore creates an empty marker store.
func NewStore() *Store {
	return &Store{
		markers:   make(map[string][]Marker),
		positions: make(map[string]map[float64]bool),
		surfaces:  make(map[string]DrawSurface),
	}
}

// SetSurface registers (or replaces) the drawing surface for a segment.
// A nil surface unregisters it.
func (s *Store) SetSurface(segmentID string, surface DrawSurface) {
	if surface == nil {
		delete(s.surfaces, segmentID)
		return
	}
	s.surfaces[segmentID] = surface
}

// Add places a marker for the segment at the current playback time.
// The canvas position is derived from the time's fraction of the segment
// duration projected onto the canvas width. Returns the stored marker and
// true, or a zero marker and false when the placement was rejected:
// non-positive times and duplicate positions are silently ignored.
func (s *Store) Add(segmentID string, currentTimeS, segmentDurationS, canvasWidthPx float64) (Marker, bool) {
	if currentTimeS <= 0 {
		return Marker{}, false
	}
	position := currentTimeS / segmentDurationS * canvasWidthPx
	if s.positions[segmentID][position] {
		return Marker{}, false
	}

	m := Marker{
		SegmentID:      segmentID,
		CutTimeS:       currentTimeS,
		CanvasPosition: position,
	}
	s.markers[segmentID] = append(s.markers[segmentID], m)
	if s.positions[segmentID] == nil {
		s.positions[segmentID] = make(map[float64]bool)
	}
	s.positions[segmentID][position] = true

	if surface, ok := s.surfaces[segmentID]; ok {
		surface.DrawTick(position)
	}
	return m, true
}

// Clear removes every marker for the segment and wipes its surface.
// Calling it on a segment without markers is a no-op.
func (s *Store) Clear(segmentID string) {
	delete(s.markers, segmentID)
	delete(s.positions, segmentID)
	if surface, ok := s.surfaces[segmentID]; ok {
		surface.Clear()
	}
}

// Has reports whether the segment has at least one marker.
func (s *Store) Has(segmentID string) bool {
	return len(s.markers[segmentID]) > 0
}

// Markers returns a copy of the segment's marker sequence in insertion
// order.
func (s *Store) Markers(segmentID string) []Marker {
	src := s.markers[segmentID]
	if len(src) == 0 {
		return nil
	}
	out := make([]Marker, len(src))
	copy(out, src)
	return out
}

// Restore re-issues a draw call for every stored marker. It is used after
// a view refresh recreated the drawing surfaces: the store itself is left
// untouched, only the ticks are drawn again.
func (s *Store) Restore() {
	for segmentID, markers := range s.markers {
		surface, ok := s.surfaces[segmentID]
		if !ok {
			continue
		}
		for _, m := range markers {
			surface.DrawTick(m.CanvasPosition)
		}
	}
}

// Replace installs a fresh marker map, as supplied by the host after a
// split or combine round-trip. Existing surfaces stay registered.
func (s *Store) Replace(markers map[string][]Marker) {
	s.markers = make(map[string][]Marker, len(markers))
	s.positions = make(map[string]map[float64]bool, len(markers))
	for segmentID, seq := range markers {
		if len(seq) == 0 {
			continue
		}
		s.markers[segmentID] = append([]Marker(nil), seq...)
		pos := make(map[float64]bool, len(seq))
		for _, m := range seq {
			pos[m.CanvasPosition] = true
		}
		s.positions[segmentID] = pos
	}
}

// All returns the full marker map, keyed by segment id. The returned map
// and slices are copies.
func (s *Store) All() map[string][]Marker {
	out := make(map[string][]Marker, len(s.markers))
	for segmentID, seq := range s.markers {
		out[segmentID] = append([]Marker(nil), seq...)
	}
	return out
}
