// Package playback defines the per-segment playback capability the
// session consumes. The host owns the actual players; the session only
// sees this interface, keyed by segment id.
package playback

// Handle controls playback of a single segment.
type Handle interface {
	Play()
	Pause()
	// CurrentTime returns the playback position within the segment's own
	// timeline, in seconds.
	CurrentTime() float64
	// Duration returns the segment's length in seconds.
	Duration() float64
}

// Registry maps segment ids to their playback handles. Lookups for
// unknown ids return nil; callers treat an absent handle as "no playback
// available" and skip the operation.
type Registry struct {
	handles map[string]Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]Handle)}
}

// Set registers (or replaces) the handle for a segment. A nil handle
// unregisters it.
func (r *Registry) Set(segmentID string, h Handle) {
	if h == nil {
		delete(r.handles, segmentID)
		return
	}
	r.handles[segmentID] = h
}

// Get returns the handle for a segment, or nil if none is registered.
func (r *Registry) Get(segmentID string) Handle {
	return r.handles[segmentID]
}

// PlayAll resumes playback on every registered handle.
func (r *Registry) PlayAll() {
	for _, h := range r.handles {
		h.Play()
	}
}

// PauseAll pauses every registered handle.
func (r *Registry) PauseAll() {
	for _, h := range r.handles {
		h.Pause()
	}
}
