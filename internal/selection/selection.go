// Package selection tracks which segments the user has marked for a
// pending combine. The set is unordered; ordering is reintroduced by the
// group resolver, which consults the live segment order.
package selection

// Tracker is the set of segment ids queued for combining. Toggle
// semantics: marking a marked segment unmarks it. Not safe for concurrent
// use; it is owned by the session.
type Tracker struct {
	ids map[string]bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{ids: make(map[string]bool)}
}

// Toggle adds the id if absent, removes it if present, and reports whether
// the id is selected afterwards.
func (t *Tracker) Toggle(id string) bool {
	if t.ids[id] {
		delete(t.ids, id)
		return false
	}
	t.ids[id] = true
	return true
}

// Add marks the id as selected regardless of its current state.
func (t *Tracker) Add(id string) {
	t.ids[id] = true
}

// Contains reports whether the id is selected.
func (t *Tracker) Contains(id string) bool {
	return t.ids[id]
}

// Clear empties the set.
func (t *Tracker) Clear() {
	t.ids = make(map[string]bool)
}

// Len returns the number of selected ids.
func (t *Tracker) Len() int {
	return len(t.ids)
}
