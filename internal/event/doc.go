// Package event provides a pub-sub event bus connecting the editing
// session to its host.
//
// The session core never talks to playback, rendering, or persistence
// directly: every outward intent (seek, split, combine, scroll, resume) is
// published as an event, and the host subscribes to the ones it cares
// about. Informational events (order changed, marker added) let the host
// keep its view current without polling.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Categories
//
// Outward intents (the session asking the host to act):
//   - [SeekRequestedEvent]: move playback to a segment
//   - [SplitRequestedEvent]: split a segment at its markers
//   - [CombineRequestedEvent]: merge each consecutive group into one segment
//   - [ScrollRequestedEvent]: scroll a segment into view (preview mode)
//   - [PlaybackResumeEvent]: resume every segment player after a split refresh
//
// Informational (state changes the host may want to mirror):
//   - [OrderChangedEvent], [MarkerAddedEvent], [MarkerClearedEvent],
//     [ModeChangedEvent]
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called
// synchronously in registration order and are protected against panics.
//
// # Event Type Naming Convention
//
// Event types follow the pattern "category.action":
//   - seek.requested, split.requested, combine.requested, scroll.requested
//   - playback.resume
//   - order.changed, marker.added, marker.cleared, mode.changed
package event
