// Package segment defines the segment records edited by a session and the
// ordered list they live in. A segment's position is implicit: it is the
// segment's index in the Order, never stored on the record itself.
package segment

// Segment is one contiguous unit of media in the edited sequence.
// Identity is the ID string, which must be unique and stable across
// reorders. The boolean flags are transient UI state owned by the session.
type Segment struct {
	ID     string  // Stable segment identifier (av_segment_id in cut lists)
	StartS float64 // Start of the segment in the source timeline, seconds
	EndS   float64 // End of the segment in the source timeline, seconds

	Selected  bool // Toggled by the user for inspection
	Played    bool // Playback reached this segment; reset on reorder
	Splitting bool // A split for this segment is in flight
}

// Duration returns the segment's length in seconds.
func (s *Segment) Duration() float64 {
	return s.EndS - s.StartS
}

// Order is the canonical ordered sequence of segments. It owns the segment
// records; callers mutate it only through its methods.
type Order struct {
	segments []*Segment
	index    map[string]int // id -> position, rebuilt on every mutation
}

// NewOrder creates an Order over the given segments. The slice is adopted,
// not copied.
func NewOrder(segments []*Segment) *Order {
	o := &Order{segments: segments}
	o.reindex()
	return o
}

func (o *Order) reindex() {
	o.index = make(map[string]int, len(o.segments))
	for i, s := range o.segments {
		o.index[s.ID] = i
	}
}

// Len returns the number of segments.
func (o *Order) Len() int {
	return len(o.segments)
}

// IDs returns the segment ids in order.
func (o *Order) IDs() []string {
	ids := make([]string, len(o.segments))
	for i, s := range o.segments {
		ids[i] = s.ID
	}
	return ids
}

// At returns the segment at position i, or nil if i is out of bounds.
func (o *Order) At(i int) *Segment {
	if i < 0 || i >= len(o.segments) {
		return nil
	}
	return o.segments[i]
}

// ByID returns the segment with the given id, or nil if unknown.
func (o *Order) ByID(id string) *Segment {
	i, ok := o.index[id]
	if !ok {
		return nil
	}
	return o.segments[i]
}

// IndexOf returns the position of id in the order, or -1 if unknown.
func (o *Order) IndexOf(id string) int {
	i, ok := o.index[id]
	if !ok {
		return -1
	}
	return i
}

// Move relocates the segment at position from to position to and reports
// whether anything changed. Playback state is only meaningful for a stable
// order, so every segment's Played flag is reset on a successful move.
func (o *Order) Move(from, to int) bool {
	n := len(o.segments)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return false
	}
	s := o.segments[from]
	o.segments = append(o.segments[:from], o.segments[from+1:]...)
	o.segments = append(o.segments[:to], append([]*Segment{s}, o.segments[to:]...)...)
	o.reindex()
	for _, seg := range o.segments {
		seg.Played = false
	}
	return true
}

// Segments returns the underlying ordered slice. Callers must not reorder
// it directly.
func (o *Order) Segments() []*Segment {
	return o.segments
}
