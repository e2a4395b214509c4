// Package session implements the segment-editing session state machine.
//
// A Controller owns the segment order, the marker store, and the combine
// selection for one user's pass over one segment list. User actions
// (reorder, mark, split, combine, seek) mutate that state synchronously
// and emit outward intents on the event bus; the host performs the
// authoritative mutations and hands back a refreshed segment list, which
// the controller reconciles.
package session

import (
	"time"

	"github.com/gobwas/glob"

	"github.com/avkit/segcut/internal/event"
	"github.com/avkit/segcut/internal/group"
	"github.com/avkit/segcut/internal/logging"
	"github.com/avkit/segcut/internal/marker"
	"github.com/avkit/segcut/internal/playback"
	"github.com/avkit/segcut/internal/segment"
	"github.com/avkit/segcut/internal/selection"
)

// Mode is the session's editing mode.
type Mode string

const (
	// ModePreview is the read-only mode: playback advances, the current
	// segment auto-scrolls into view, split/combine are inactive.
	ModePreview Mode = "preview"
	// ModeSegments is the editing mode: split/combine affordances are
	// active and no auto-scroll occurs.
	ModeSegments Mode = "segments"
)

// Deferrer schedules fn to run once after d. The default uses
// time.AfterFunc; tests inject a synchronous implementation. The deferral
// exists to let drawing surfaces mount before markers are restored onto
// them; it is one-shot and never cancelled (a stale restoration redraws
// idempotently).
type Deferrer func(d time.Duration, fn func())

// Options configures a Controller. Zero values get sensible defaults.
type Options struct {
	Bus      *event.Bus         // Required: where outward intents go
	Markers  *marker.Store      // Defaults to a fresh store
	Playback *playback.Registry // Defaults to an empty registry
	Logger   *logging.Logger    // Defaults to a discard logger

	// CanvasWidthPx is the drawing-surface width used to derive marker
	// canvas positions. Defaults to 200.
	CanvasWidthPx float64
	// SettleDelay is how long to wait after a refresh before restoring
	// markers, so surfaces can mount. Defaults to 100ms.
	SettleDelay time.Duration
	// Defer schedules the settling delay. Defaults to time.AfterFunc.
	Defer Deferrer

	// AllowSelection gates combine-selection toggling.
	AllowSelection bool
	// AllowDrag gates reordering.
	AllowDrag bool
}

// Controller coordinates marker placement, selection, reorder, split and
// combine over one ordered segment list. All methods must be called from
// the single interaction goroutine; the controller holds no locks.
type Controller struct {
	order    *segment.Order
	markers  *marker.Store
	tracker  *selection.Tracker
	playback *playback.Registry
	bus      *event.Bus
	log      *logging.Logger

	mode         Mode
	splitting    bool // A split round-trip is in flight
	currentIndex int

	canvasWidth    float64
	settleDelay    time.Duration
	deferFn        Deferrer
	allowSelection bool
	allowDrag      bool
}

// NewController creates a session over the given segments.
func NewController(segments []*segment.Segment, opts Options) *Controller {
	if opts.Bus == nil {
		opts.Bus = event.NewBus()
	}
	if opts.Markers == nil {
		opts.Markers = marker.NewStore()
	}
	if opts.Playback == nil {
		opts.Playback = playback.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.CanvasWidthPx <= 0 {
		opts.CanvasWidthPx = 200
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = 100 * time.Millisecond
	}
	if opts.Defer == nil {
		opts.Defer = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}

	return &Controller{
		order:          segment.NewOrder(segments),
		markers:        opts.Markers,
		tracker:        selection.NewTracker(),
		playback:       opts.Playback,
		bus:            opts.Bus,
		log:            opts.Logger.WithMode(string(ModePreview)),
		mode:           ModePreview,
		canvasWidth:    opts.CanvasWidthPx,
		settleDelay:    opts.SettleDelay,
		deferFn:        opts.Defer,
		allowSelection: opts.AllowSelection,
		allowDrag:      opts.AllowDrag,
	}
}

// Order exposes the live segment order.
func (c *Controller) Order() *segment.Order { return c.order }

// Markers exposes the marker store, e.g. for the host to register
// drawing surfaces.
func (c *Controller) Markers() *marker.Store { return c.markers }

// Playback exposes the playback registry for the host to register
// per-segment handles.
func (c *Controller) Playback() *playback.Registry { return c.playback }

// Bus exposes the event bus the controller publishes on.
func (c *Controller) Bus() *event.Bus { return c.bus }

// Mode returns the current editing mode.
func (c *Controller) Mode() Mode { return c.mode }

// Splitting reports whether a split round-trip is in flight.
func (c *Controller) Splitting() bool { return c.splitting }

// CurrentIndex returns the index of the segment playback is on.
func (c *Controller) CurrentIndex() int { return c.currentIndex }

// SetMode switches between preview and segments mode.
func (c *Controller) SetMode(mode Mode) {
	if mode == c.mode {
		return
	}
	c.mode = mode
	c.log = c.log.WithMode(string(mode))
	c.log.Debug("mode changed")
	c.bus.Publish(event.NewModeChangedEvent(string(mode)))
}

// SetCurrentIndex records which segment playback has advanced to. In
// preview mode this requests a smooth scroll of that segment into view;
// in segments mode no auto-scroll occurs.
func (c *Controller) SetCurrentIndex(i int) {
	if i < 0 || i >= c.order.Len() {
		return
	}
	c.currentIndex = i
	if seg := c.order.At(i); seg != nil {
		seg.Played = true
	}
	if c.mode == ModePreview {
		c.bus.Publish(event.NewScrollRequestedEvent(i))
	}
}

// Reorder moves the segment at from to position to. Out-of-bounds indices
// and disabled dragging are no-ops. A successful move resets every
// segment's played flag: playback state is only meaningful for a stable
// order.
func (c *Controller) Reorder(from, to int) {
	if !c.allowDrag {
		return
	}
	if !c.order.Move(from, to) {
		return
	}
	c.log.Debug("segments reordered", "from", from, "to", to)
	c.bus.Publish(event.NewOrderChangedEvent(from, to, c.order.IDs()))
}

// AddMarker places a cut marker on the segment at its current playback
// position. The segment id must exist; a segment without a playback
// handle, a non-positive time, and a duplicate position are all no-ops.
func (c *Controller) AddMarker(id string) {
	h := c.playback.Get(id)
	if h == nil {
		return
	}
	seg := c.order.ByID(id)
	duration := h.Duration()
	if seg != nil && seg.Duration() > 0 {
		duration = seg.Duration()
	}
	m, ok := c.markers.Add(id, h.CurrentTime(), duration, c.canvasWidth)
	if !ok {
		return
	}
	c.log.Debug("marker added", "segment", id, "cut_time_s", m.CutTimeS)
	c.bus.Publish(event.NewMarkerAddedEvent(m))
}

// ClearMarkers removes every marker for the segment. Idempotent.
func (c *Controller) ClearMarkers(id string) {
	if !c.markers.Has(id) {
		return
	}
	c.markers.Clear(id)
	c.bus.Publish(event.NewMarkerClearedEvent(id))
}

// Seek asks the host to move playback to the segment.
func (c *Controller) Seek(id string) {
	c.bus.Publish(event.NewSeekRequestedEvent(id))
}

// ToggleSelection flips the segment's inspection-selection flag. This is
// independent of the combine selection; see ToggleCombine.
func (c *Controller) ToggleSelection(id string) {
	seg := c.order.ByID(id)
	seg.Selected = !seg.Selected
}

// ToggleCombine adds the segment to (or removes it from) the pending
// combine selection. No-op when selection is disabled.
func (c *Controller) ToggleCombine(id string) {
	if !c.allowSelection || c.mode != ModeSegments {
		return
	}
	c.tracker.Toggle(id)
}

// SelectPattern adds every segment whose id matches the glob pattern to
// the combine selection ("4.*" selects all children of segment 4).
// Returns the number of newly matched segments.
func (c *Controller) SelectPattern(pattern string) (int, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return 0, err
	}
	matched := 0
	for _, id := range c.order.IDs() {
		if g.Match(id) && !c.tracker.Contains(id) {
			c.tracker.Add(id)
			matched++
		}
	}
	return matched, nil
}

// Selection exposes the combine-selection tracker.
func (c *Controller) Selection() *selection.Tracker { return c.tracker }

// Groups resolves the current consecutive groups.
func (c *Controller) Groups() []group.Group {
	return group.Resolve(c.order.IDs(), c.tracker)
}

// CombineButtonText is the caption for the combine affordance.
func (c *Controller) CombineButtonText() string {
	return group.ButtonText(c.Groups(), c.tracker.Len())
}

// CombineTooltip explains the current combine state.
func (c *Controller) CombineTooltip() string {
	return group.Tooltip(c.Groups(), c.tracker.Len())
}

// Split emits the segment's marker sequence as a split request, flags the
// segment (and the session) as splitting, and optimistically clears the
// segment's markers: the host is expected to perform the split and hand
// back a fresh segment list. A segment without markers is a no-op.
func (c *Controller) Split(id string) {
	markers := c.markers.Markers(id)
	if len(markers) == 0 {
		return
	}
	if seg := c.order.ByID(id); seg != nil {
		seg.Splitting = true
	}
	c.splitting = true
	c.markers.Clear(id)
	c.log.Info("split requested", "segment", id, "markers", len(markers))
	c.bus.Publish(event.NewSplitRequestedEvent(id, markers))
}

// Combine resolves the consecutive groups and, if any exist, emits them
// as a combine request and clears the combine selection. With no valid
// group nothing is emitted and the selection is kept.
func (c *Controller) Combine() {
	groups := c.Groups()
	if len(groups) == 0 {
		return
	}
	payload := make([][]string, len(groups))
	for i, g := range groups {
		payload[i] = append([]string(nil), g...)
	}
	c.tracker.Clear()
	c.log.Info("combine requested", "groups", len(payload))
	c.bus.Publish(event.NewCombineRequestedEvent(payload))
}

// Refresh reconciles a host-supplied segment list and marker map, as
// delivered at session start or after a split/combine round-trip. The
// state is adopted as-is. In segments mode exactly one of two follow-ups
// runs: if the refresh completes a split, playback resumes on every
// segment player; otherwise marker restoration is scheduled after the
// settling delay so recreated surfaces can mount first. The splitting
// flag is consumed either way.
func (c *Controller) Refresh(segments []*segment.Segment, markers map[string][]marker.Marker) {
	c.order = segment.NewOrder(segments)
	c.markers.Replace(markers)
	if c.currentIndex >= c.order.Len() {
		c.currentIndex = 0
	}
	c.log.Debug("refreshed", "segments", c.order.Len())

	if c.mode != ModeSegments {
		return
	}
	if c.splitting {
		c.splitting = false
		c.playback.PlayAll()
		c.bus.Publish(event.NewPlaybackResumeEvent())
		return
	}
	c.deferFn(c.settleDelay, c.markers.Restore)
}
