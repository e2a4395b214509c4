// Package event defines the events a segment-editing session exchanges
// with its host. See doc.go for the catalog.
package event

import (
	"time"

	"github.com/avkit/segcut/internal/marker"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "split.requested").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Outward Intents
// -----------------------------------------------------------------------------

// SeekRequestedEvent asks the host to move playback to a segment.
type SeekRequestedEvent struct {
	baseEvent
	SegmentID string
}

// NewSeekRequestedEvent creates a SeekRequestedEvent.
func NewSeekRequestedEvent(segmentID string) SeekRequestedEvent {
	return SeekRequestedEvent{
		baseEvent: newBaseEvent("seek.requested"),
		SegmentID: segmentID,
	}
}

// SplitRequestedEvent asks the host to split a segment at the given
// markers. Markers are in insertion order, exactly as stored when the
// split was requested; the host owns the authoritative mutation.
type SplitRequestedEvent struct {
	baseEvent
	SegmentID string
	Markers   []marker.Marker
}

// NewSplitRequestedEvent creates a SplitRequestedEvent.
func NewSplitRequestedEvent(segmentID string, markers []marker.Marker) SplitRequestedEvent {
	return SplitRequestedEvent{
		baseEvent: newBaseEvent("split.requested"),
		SegmentID: segmentID,
		Markers:   markers,
	}
}

// CombineRequestedEvent asks the host to merge each group into a single
// segment. Groups are ordered lists of segment ids, each of length >= 2,
// in segment-order.
type CombineRequestedEvent struct {
	baseEvent
	Groups [][]string
}

// NewCombineRequestedEvent creates a CombineRequestedEvent.
func NewCombineRequestedEvent(groups [][]string) CombineRequestedEvent {
	return CombineRequestedEvent{
		baseEvent: newBaseEvent("combine.requested"),
		Groups:    groups,
	}
}

// ScrollRequestedEvent asks the host to smoothly scroll the segment at
// Index into view. Only emitted in preview mode.
type ScrollRequestedEvent struct {
	baseEvent
	Index int
}

// NewScrollRequestedEvent creates a ScrollRequestedEvent.
func NewScrollRequestedEvent(index int) ScrollRequestedEvent {
	return ScrollRequestedEvent{
		baseEvent: newBaseEvent("scroll.requested"),
		Index:     index,
	}
}

// PlaybackResumeEvent asks the host to resume playback on every segment
// player. Emitted when a refresh follows a just-completed split, in place
// of marker restoration.
type PlaybackResumeEvent struct {
	baseEvent
}

// NewPlaybackResumeEvent creates a PlaybackResumeEvent.
func NewPlaybackResumeEvent() PlaybackResumeEvent {
	return PlaybackResumeEvent{baseEvent: newBaseEvent("playback.resume")}
}

// -----------------------------------------------------------------------------
// Informational Events
// -----------------------------------------------------------------------------

// OrderChangedEvent is emitted after a successful drag-reorder.
type OrderChangedEvent struct {
	baseEvent
	From int // Original position of the moved segment
	To   int // New position of the moved segment
	IDs  []string
}

// NewOrderChangedEvent creates an OrderChangedEvent.
func NewOrderChangedEvent(from, to int, ids []string) OrderChangedEvent {
	return OrderChangedEvent{
		baseEvent: newBaseEvent("order.changed"),
		From:      from,
		To:        to,
		IDs:       ids,
	}
}

// MarkerAddedEvent is emitted when a marker is stored for a segment.
type MarkerAddedEvent struct {
	baseEvent
	Marker marker.Marker
}

// NewMarkerAddedEvent creates a MarkerAddedEvent.
func NewMarkerAddedEvent(m marker.Marker) MarkerAddedEvent {
	return MarkerAddedEvent{
		baseEvent: newBaseEvent("marker.added"),
		Marker:    m,
	}
}

// MarkerClearedEvent is emitted when a segment's markers are cleared.
type MarkerClearedEvent struct {
	baseEvent
	SegmentID string
}

// NewMarkerClearedEvent creates a MarkerClearedEvent.
func NewMarkerClearedEvent(segmentID string) MarkerClearedEvent {
	return MarkerClearedEvent{
		baseEvent: newBaseEvent("marker.cleared"),
		SegmentID: segmentID,
	}
}

// ModeChangedEvent is emitted when the session switches between preview
// and segments editing mode.
type ModeChangedEvent struct {
	baseEvent
	Mode string // "preview" or "segments"
}

// NewModeChangedEvent creates a ModeChangedEvent.
func NewModeChangedEvent(mode string) ModeChangedEvent {
	return ModeChangedEvent{
		baseEvent: newBaseEvent("mode.changed"),
		Mode:      mode,
	}
}
